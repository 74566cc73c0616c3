package migration

import (
	"courtsched/core/cache"
	"courtsched/core/config"
	"courtsched/core/database"
	"courtsched/core/middleware"
	blockrepo "courtsched/modules/block/repository"
	"courtsched/modules/migration/archive"
	"courtsched/modules/migration/controller"
	"courtsched/modules/migration/router"
	"courtsched/modules/migration/service"
	"courtsched/modules/migration/worker"
	slotrepo "courtsched/modules/slotconfig/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache, mw *middleware.Middleware, cfg *config.Config) (*service.MigrationService, *worker.Client) {
	var archiver service.Archiver
	if cfg.Archive.Bucket != "" {
		archiver = archive.NewS3Archiver(cfg.Archive)
	}

	svc := service.NewMigrationService(
		blockrepo.NewBlockRepository(db),
		slotrepo.NewSlotConfigRepository(db),
		cache,
		archiver,
		cfg.Migration.DefaultCourtID,
		cfg.Migration.Workers,
	)
	client := worker.NewClient(cfg.Redis)

	ctrl := controller.NewMigrationController(svc, client)
	router.NewMigrationRouter(ctrl).Setup(e, mw)
	return svc, client
}
