package routes

import (
	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runFieldRouter(secureGroup *echo.Group, fieldCtrl *controllers.FieldController, authMW *middleware.AuthMiddleware) {
	manage := authMW.RequireRoles(constants.RoleAdmin, constants.RoleManager)
	{
		secureGroup.GET("/fields", fieldCtrl.GetFields)
		secureGroup.POST("/fields", fieldCtrl.CreateField, manage)
		secureGroup.POST("/fields/:id/equipment", fieldCtrl.AttachEquipment, manage)
	}
}
