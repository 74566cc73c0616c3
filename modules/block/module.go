package block

import (
	"courtsched/core/cache"
	"courtsched/core/database"
	"courtsched/core/middleware"
	"courtsched/modules/block/controller"
	"courtsched/modules/block/repository"
	"courtsched/modules/block/router"
	"courtsched/modules/block/service"
	courtservice "courtsched/modules/court/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache, courtSvc courtservice.CourtServiceInterface, mw *middleware.Middleware) *service.BlockService {
	repo := repository.NewBlockRepository(db)
	svc := service.NewBlockService(repo, courtSvc, cache)
	ctrl := controller.NewBlockController(svc)
	router.NewBlockRouter(ctrl).Setup(e, mw)
	return svc
}
