package router

import (
	"courtsched/core/middleware"
	"courtsched/modules/slotconfig/controller"

	"github.com/labstack/echo/v4"
)

type SlotConfigRouter struct {
	Controller *controller.SlotConfigController
}

func NewSlotConfigRouter(ctrl *controller.SlotConfigController) *SlotConfigRouter {
	return &SlotConfigRouter{Controller: ctrl}
}

func (r *SlotConfigRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.GET("/courts/:courtId/slot-configurations", r.Controller.ListByCourt)

	admin := v1.Group("/admin", mw.AuthMiddleware())
	admin.POST("/slot-configurations", r.Controller.Upsert)
	admin.PUT("/slot-configurations/:id/deactivate", r.Controller.Deactivate)
}
