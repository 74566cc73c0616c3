package availability

import (
	"courtsched/core/cache"
	"courtsched/core/database"
	"courtsched/modules/availability/controller"
	"courtsched/modules/availability/router"
	"courtsched/modules/availability/service"
	blockrepo "courtsched/modules/block/repository"
	bookingrepo "courtsched/modules/booking/repository"
	courtservice "courtsched/modules/court/service"
	slotrepo "courtsched/modules/slotconfig/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache, courtSvc courtservice.CourtServiceInterface) *service.AvailabilityService {
	svc := service.NewAvailabilityService(
		courtSvc,
		slotrepo.NewSlotConfigRepository(db),
		blockrepo.NewBlockRepository(db),
		bookingrepo.NewBookingRepository(db),
		cache,
	)
	ctrl := controller.NewAvailabilityController(svc)
	router.NewAvailabilityRouter(ctrl).Setup(e)
	return svc
}
