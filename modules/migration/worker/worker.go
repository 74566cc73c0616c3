package worker

import (
	"context"

	"courtsched/core/config"
	"courtsched/core/constants"
	"courtsched/core/logger"
	"courtsched/modules/migration/service"

	"github.com/hibiken/asynq"
)

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Client enqueues migration runs for background execution.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{client: asynq.NewClient(redisOpt(cfg))}
}

func (c *Client) EnqueueMigrationRun(ctx context.Context) (*asynq.TaskInfo, error) {
	task := asynq.NewTask(constants.MigrationTaskName, nil)
	return c.client.EnqueueContext(ctx, task, asynq.MaxRetry(3))
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Worker processes queued migration runs.
type Worker struct {
	server *asynq.Server
	svc    service.MigrationServiceInterface
}

func NewWorker(cfg config.RedisConfig, svc service.MigrationServiceInterface) *Worker {
	server := asynq.NewServer(redisOpt(cfg), asynq.Config{
		// Runs are idempotent but there is no point executing two at once.
		Concurrency: 1,
	})
	return &Worker{server: server, svc: svc}
}

func (w *Worker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.MigrationTaskName, w.handleMigrationRun)
	return w.server.Start(mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleMigrationRun(ctx context.Context, t *asynq.Task) error {
	report, appErr := w.svc.RunBlockMigration(ctx)
	if appErr != nil {
		logger.Error("MigrationWorker:handleMigrationRun:Error", "error", appErr)
		return appErr
	}
	logger.Info("MigrationWorker:handleMigrationRun:Done",
		"processed", report.ProcessedCount,
		"migrated", report.MigratedCount,
		"errors", report.ErrorCount,
	)
	return nil
}
