package routes

import (
	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runRequestRouter(secureGroup *echo.Group, requestCtrl *controllers.RequestController, authMW *middleware.AuthMiddleware) {
	review := authMW.RequireRoles(constants.RoleAdmin, constants.RoleManager)
	{
		secureGroup.GET("/requests", requestCtrl.GetRequests, review)
		secureGroup.GET("/requests/pending", requestCtrl.GetPendingRequests, review)
		secureGroup.GET("/requests/my", requestCtrl.GetMyRequests)
		secureGroup.GET("/requests/:id", requestCtrl.FindRequest)

		// Подача заявки — действие инженера.
		secureGroup.POST("/requests", requestCtrl.SubmitRequest,
			authMW.RequireRoles(constants.RoleEngineer))

		secureGroup.POST("/requests/approve/:id", requestCtrl.ApproveRequest, review)
		secureGroup.POST("/requests/reject/:id", requestCtrl.RejectRequest, review)
		secureGroup.POST("/requests/link/:id", requestCtrl.LinkEquipment, review)

		// Быстрый отказ без указания причины доступен только администратору.
		secureGroup.POST("/requests/deny/:id", requestCtrl.DenyRequest,
			authMW.RequireRoles(constants.RoleAdmin))
	}
}
