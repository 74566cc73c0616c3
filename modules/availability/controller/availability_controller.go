package controller

import (
	"courtsched/core/controller"
	"courtsched/core/errors"
	"courtsched/modules/availability/service"

	"github.com/labstack/echo/v4"
)

type AvailabilityController struct {
	service service.AvailabilityServiceInterface
	controller.BaseController
}

func NewAvailabilityController(service service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetDay resolves the open/occupied calendar for a court and date
// @Summary Day availability
// @Tags Availability
// @Produce json
// @Param courtId path string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /courts/{courtId}/availability [get]
func (c *AvailabilityController) GetDay(ctx echo.Context) error {
	date := ctx.QueryParam("date")
	if date == "" {
		return c.BadRequest(errors.ErrInvalidInput, "date query parameter is required", nil)
	}

	result, appErr := c.service.ResolveDay(ctx.Request().Context(), ctx.Param("courtId"), date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Availability resolved successfully")
}
