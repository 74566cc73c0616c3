package controller

import (
	"courtsched/core/controller"
	"courtsched/core/errors"
	"courtsched/modules/slotconfig/dto"
	"courtsched/modules/slotconfig/service"

	"github.com/labstack/echo/v4"
)

type SlotConfigController struct {
	service service.SlotConfigServiceInterface
	controller.BaseController
}

func NewSlotConfigController(service service.SlotConfigServiceInterface) *SlotConfigController {
	return &SlotConfigController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListByCourt returns every recurring template for a court
// @Summary List slot configurations
// @Tags SlotConfiguration
// @Produce json
// @Param courtId path string true "Court ID"
// @Success 200 {object} controller.SuccessResponse
// @Router /courts/{courtId}/slot-configurations [get]
func (c *SlotConfigController) ListByCourt(ctx echo.Context) error {
	configs, appErr := c.service.ListByCourt(ctx.Request().Context(), ctx.Param("courtId"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, configs, "Slot configurations retrieved successfully")
}

// Upsert creates or overwrites a template at its natural key
// @Summary Upsert slot configuration
// @Tags SlotConfiguration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpsertSlotConfigurationRequest true "Slot configuration"
// @Success 200 {object} controller.SuccessResponse
// @Failure 400 {object} errors.AppError
// @Router /admin/slot-configurations [post]
func (c *SlotConfigController) Upsert(ctx echo.Context) error {
	req := new(dto.UpsertSlotConfigurationRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error(), nil)
	}

	config, appErr := c.service.Upsert(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, config, "Slot configuration saved successfully")
}

// Deactivate soft-disables a template
// @Summary Deactivate slot configuration
// @Tags SlotConfiguration
// @Security BearerAuth
// @Produce json
// @Param id path string true "Configuration ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /admin/slot-configurations/{id}/deactivate [put]
func (c *SlotConfigController) Deactivate(ctx echo.Context) error {
	if appErr := c.service.Deactivate(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Slot configuration deactivated")
}
