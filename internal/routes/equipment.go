package routes

import (
	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(secureGroup *echo.Group, equipmentCtrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	manage := authMW.RequireRoles(constants.RoleAdmin, constants.RoleManager)
	{
		secureGroup.GET("/equipment", equipmentCtrl.GetEquipments)
		secureGroup.GET("/equipment/assigned", equipmentCtrl.GetMyEquipment)
		secureGroup.GET("/equipment/:id", equipmentCtrl.FindEquipment)
		secureGroup.POST("/equipment", equipmentCtrl.CreateEquipment, manage)
		secureGroup.POST("/equipment/assign", equipmentCtrl.AssignEquipment, manage)
		secureGroup.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment, manage)
		secureGroup.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment,
			authMW.RequireRoles(constants.RoleAdmin))
	}
}
