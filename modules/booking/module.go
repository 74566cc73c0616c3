package booking

import (
	"courtsched/core/cache"
	"courtsched/core/database"
	blockrepo "courtsched/modules/block/repository"
	"courtsched/modules/booking/controller"
	"courtsched/modules/booking/repository"
	"courtsched/modules/booking/router"
	"courtsched/modules/booking/service"
	courtservice "courtsched/modules/court/service"
	slotrepo "courtsched/modules/slotconfig/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache, courtSvc courtservice.CourtServiceInterface) *service.BookingService {
	repo := repository.NewBookingRepository(db)
	svc := service.NewBookingService(
		repo,
		slotrepo.NewSlotConfigRepository(db),
		blockrepo.NewBlockRepository(db),
		courtSvc,
		cache,
	)
	ctrl := controller.NewBookingController(svc)
	router.NewBookingRouter(ctrl).Setup(e)
	return svc
}
