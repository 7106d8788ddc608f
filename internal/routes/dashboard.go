package routes

import (
	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardCtrl *controllers.DashboardController, authMW *middleware.AuthMiddleware) {
	dashboardGroup := secureGroup.Group("/dashboard")
	{
		dashboardGroup.GET("/admin", dashboardCtrl.AdminDashboard,
			authMW.RequireRoles(constants.RoleAdmin))
		dashboardGroup.GET("/manager", dashboardCtrl.ManagerDashboard,
			authMW.RequireRoles(constants.RoleManager))
		dashboardGroup.GET("/engineer", dashboardCtrl.EngineerDashboard,
			authMW.RequireRoles(constants.RoleEngineer))
	}
}
