package router

import (
	"courtsched/core/middleware"
	"courtsched/modules/block/controller"

	"github.com/labstack/echo/v4"
)

type BlockRouter struct {
	Controller *controller.BlockController
}

func NewBlockRouter(ctrl *controller.BlockController) *BlockRouter {
	return &BlockRouter{Controller: ctrl}
}

func (r *BlockRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.GET("/blocks", r.Controller.List)

	admin := v1.Group("/admin", mw.AuthMiddleware())
	admin.POST("/blocks", r.Controller.Create)
	admin.DELETE("/blocks/:id", r.Controller.Delete)
}
