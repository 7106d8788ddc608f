package controllers

import (
	"net/http"

	"inventory-system/internal/services"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetEngineers — список инженеров для выпадающих списков назначения.
// Параметр search фильтрует по подстроке имени без учета регистра.
func (ctrl *UserController) GetEngineers(c echo.Context) error {
	search := c.QueryParam("search")

	engineers, err := ctrl.userService.GetEngineers(c.Request().Context(), search)
	if err != nil {
		ctrl.logger.Error("GetEngineers: ошибка получения списка", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, engineers, "Список инженеров успешно получен", http.StatusOK)
}
