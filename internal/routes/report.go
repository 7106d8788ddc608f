package routes

import (
	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runReportRouter(secureGroup *echo.Group, reportCtrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/reports/equipment", reportCtrl.GetEquipmentReport,
		authMW.RequireRoles(constants.RoleAdmin, constants.RoleManager))
}
