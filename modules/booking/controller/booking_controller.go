package controller

import (
	"courtsched/core/controller"
	"courtsched/core/errors"
	"courtsched/modules/booking/dto"
	"courtsched/modules/booking/service"

	"github.com/labstack/echo/v4"
)

type BookingController struct {
	service service.BookingServiceInterface
	controller.BaseController
}

func NewBookingController(service service.BookingServiceInterface) *BookingController {
	return &BookingController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Create reserves a court interval
// @Summary Create booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 200 {object} controller.SuccessResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /bookings [post]
func (c *BookingController) Create(ctx echo.Context) error {
	req := new(dto.CreateBookingRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error(), nil)
	}

	booking, appErr := c.service.Create(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, booking, "Booking created successfully")
}

// Cancel transitions a confirmed booking to cancelled
// @Summary Cancel booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /bookings/{id}/cancel [post]
func (c *BookingController) Cancel(ctx echo.Context) error {
	booking, appErr := c.service.Cancel(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, booking, "Booking cancelled successfully")
}

// ListByCourt returns confirmed bookings for a court and date
// @Summary List confirmed bookings
// @Tags Booking
// @Produce json
// @Param courtId path string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} controller.SuccessResponse
// @Router /courts/{courtId}/bookings [get]
func (c *BookingController) ListByCourt(ctx echo.Context) error {
	date := ctx.QueryParam("date")
	if date == "" {
		return c.BadRequest(errors.ErrInvalidInput, "date query parameter is required", nil)
	}
	bookings, appErr := c.service.ListConfirmed(ctx.Request().Context(), ctx.Param("courtId"), date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, bookings, "Bookings retrieved successfully")
}
