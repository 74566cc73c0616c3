package controller

import (
	"courtsched/core/controller"
	"courtsched/core/errors"
	"courtsched/modules/migration/dto"
	"courtsched/modules/migration/service"
	"courtsched/modules/migration/worker"

	"github.com/labstack/echo/v4"
)

type MigrationController struct {
	service service.MigrationServiceInterface
	client  *worker.Client
	controller.BaseController
}

func NewMigrationController(service service.MigrationServiceInterface, client *worker.Client) *MigrationController {
	return &MigrationController{
		service:        service,
		client:         client,
		BaseController: controller.NewBaseController(),
	}
}

// Run executes the block migration batch
// @Summary Run block migration
// @Description Converts legacy blocks with recurring-pattern titles into slot configurations. Safe to re-run.
// @Tags Migration
// @Security BearerAuth
// @Produce json
// @Param async query bool false "Enqueue instead of running synchronously"
// @Success 200 {object} controller.SuccessResponse
// @Failure 500 {object} errors.AppError
// @Router /admin/migration/run [post]
func (c *MigrationController) Run(ctx echo.Context) error {
	if ctx.QueryParam("async") == "1" || ctx.QueryParam("async") == "true" {
		info, err := c.client.EnqueueMigrationRun(ctx.Request().Context())
		if err != nil {
			return c.InternalServerError(errors.ErrInternalServer, "Failed to enqueue migration run", err.Error())
		}
		resp := &dto.EnqueuedResponse{TaskID: info.ID, Queue: info.Queue}
		return c.SuccessResponse(ctx, resp, "Migration run enqueued")
	}

	report, appErr := c.service.RunBlockMigration(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, report, "Migration run completed")
}
