package controller

import (
	"courtsched/core/controller"
	"courtsched/core/errors"
	"courtsched/modules/court/dto"
	"courtsched/modules/court/service"

	"github.com/labstack/echo/v4"
)

type CourtController struct {
	service service.CourtServiceInterface
	controller.BaseController
}

func NewCourtController(service service.CourtServiceInterface) *CourtController {
	return &CourtController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// List returns all registered courts
// @Summary List courts
// @Tags Court
// @Produce json
// @Success 200 {object} controller.SuccessResponse
// @Router /courts [get]
func (c *CourtController) List(ctx echo.Context) error {
	courts, appErr := c.service.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, courts, "Courts retrieved successfully")
}

// Create registers a new court
// @Summary Register a court
// @Tags Court
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCourtRequest true "Court"
// @Success 200 {object} controller.SuccessResponse
// @Failure 400 {object} errors.AppError
// @Router /admin/courts [post]
func (c *CourtController) Create(ctx echo.Context) error {
	req := new(dto.CreateCourtRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error(), nil)
	}

	court, appErr := c.service.Create(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, court, "Court created successfully")
}
