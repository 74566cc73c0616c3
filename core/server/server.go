package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"courtsched/core/cache"
	"courtsched/core/config"
	"courtsched/core/database"
	"courtsched/core/logger"
	"courtsched/core/middleware"
	"courtsched/modules/availability"
	"courtsched/modules/block"
	"courtsched/modules/booking"
	"courtsched/modules/court"
	"courtsched/modules/migration"
	migrationworker "courtsched/modules/migration/worker"
	"courtsched/modules/slotconfig"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	c := cache.NewCache(cfg.Redis)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware(cfg.Auth.JWTSecret)

	courtSvc := court.Init(e, &db, mw)
	slotconfig.Init(e, &db, c, courtSvc, mw)
	block.Init(e, &db, c, courtSvc, mw)
	booking.Init(e, &db, c, courtSvc)
	availability.Init(e, &db, c, courtSvc)
	migrationSvc, migrationClient := migration.Init(e, &db, c, mw, cfg)

	worker := migrationworker.NewWorker(cfg.Redis, migrationSvc)
	if err := worker.Start(); err != nil {
		return fmt.Errorf("start migration worker: %w", err)
	}

	var scheduler *cron.Cron
	if cfg.Migration.Cron != "" {
		scheduler = cron.New()
		if _, err := scheduler.AddFunc(cfg.Migration.Cron, func() {
			if _, err := migrationClient.EnqueueMigrationRun(context.Background()); err != nil {
				logger.Error("Server:ScheduledMigration:Enqueue:Error", "error", err)
			}
		}); err != nil {
			return fmt.Errorf("invalid migration cron %q: %w", cfg.Migration.Cron, err)
		}
		scheduler.Start()
		logger.Info("Scheduled migration re-runs enabled", "cron", cfg.Migration.Cron)
	}

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Server listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("Shutting down...")
	if scheduler != nil {
		scheduler.Stop()
	}
	worker.Shutdown()
	_ = migrationClient.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
