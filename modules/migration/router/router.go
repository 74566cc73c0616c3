package router

import (
	"courtsched/core/middleware"
	"courtsched/modules/migration/controller"

	"github.com/labstack/echo/v4"
)

type MigrationRouter struct {
	Controller *controller.MigrationController
}

func NewMigrationRouter(ctrl *controller.MigrationController) *MigrationRouter {
	return &MigrationRouter{Controller: ctrl}
}

func (r *MigrationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	admin := e.Group("/api/v1/admin", mw.AuthMiddleware())
	admin.POST("/migration/run", r.Controller.Run)
}
