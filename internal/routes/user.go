package routes

import (
	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runUserRouter(secureGroup *echo.Group, userCtrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/users/engineers", userCtrl.GetEngineers,
		authMW.RequireRoles(constants.RoleAdmin, constants.RoleManager))
}
