package court

import (
	"courtsched/core/database"
	"courtsched/core/middleware"
	"courtsched/modules/court/controller"
	"courtsched/modules/court/repository"
	"courtsched/modules/court/router"
	"courtsched/modules/court/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.CourtService {
	repo := repository.NewCourtRepository(db)
	svc := service.NewCourtService(repo)
	ctrl := controller.NewCourtController(svc)
	router.NewCourtRouter(ctrl).Setup(e, mw)
	return svc
}
