package router

import (
	"courtsched/core/middleware"
	"courtsched/modules/court/controller"

	"github.com/labstack/echo/v4"
)

type CourtRouter struct {
	Controller *controller.CourtController
}

func NewCourtRouter(ctrl *controller.CourtController) *CourtRouter {
	return &CourtRouter{Controller: ctrl}
}

func (r *CourtRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.GET("/courts", r.Controller.List)

	admin := v1.Group("/admin", mw.AuthMiddleware())
	admin.POST("/courts", r.Controller.Create)
}
