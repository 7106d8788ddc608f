package controllers

import (
	"net/http"

	"inventory-system/internal/services"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// AdminDashboard и ManagerDashboard отдают одну и ту же сводку:
// роли различаются доступными действиями, а не данными панели.
func (ctrl *DashboardController) AdminDashboard(c echo.Context) error {
	return ctrl.managerSummary(c)
}

func (ctrl *DashboardController) ManagerDashboard(c echo.Context) error {
	return ctrl.managerSummary(c)
}

func (ctrl *DashboardController) managerSummary(c echo.Context) error {
	summary, err := ctrl.dashboardService.GetManagerDashboard(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("Dashboard: ошибка формирования сводки", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, summary, "Сводка успешно сформирована", http.StatusOK)
}

func (ctrl *DashboardController) EngineerDashboard(c echo.Context) error {
	actor, err := utils.GetUserFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	summary, err := ctrl.dashboardService.GetEngineerDashboard(c.Request().Context(), actor)
	if err != nil {
		ctrl.logger.Error("EngineerDashboard: ошибка формирования сводки",
			zap.Uint64("userID", actor.ID), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, summary, "Сводка успешно сформирована", http.StatusOK)
}
