package slotconfig

import (
	"courtsched/core/cache"
	"courtsched/core/database"
	"courtsched/core/middleware"
	courtservice "courtsched/modules/court/service"
	"courtsched/modules/slotconfig/controller"
	"courtsched/modules/slotconfig/repository"
	"courtsched/modules/slotconfig/router"
	"courtsched/modules/slotconfig/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache, courtSvc courtservice.CourtServiceInterface, mw *middleware.Middleware) *service.SlotConfigService {
	repo := repository.NewSlotConfigRepository(db)
	svc := service.NewSlotConfigService(repo, courtSvc, cache)
	ctrl := controller.NewSlotConfigController(svc)
	router.NewSlotConfigRouter(ctrl).Setup(e, mw)
	return svc
}
