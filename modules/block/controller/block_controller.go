package controller

import (
	"courtsched/core/controller"
	"courtsched/core/errors"
	"courtsched/core/params"
	"courtsched/modules/block/dto"
	"courtsched/modules/block/service"

	"github.com/labstack/echo/v4"
)

type BlockController struct {
	service service.BlockServiceInterface
	controller.BaseController
}

func NewBlockController(service service.BlockServiceInterface) *BlockController {
	return &BlockController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// List returns blocks, paginated
// @Summary List blocks
// @Tags Block
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} controller.SuccessResponse
// @Router /blocks [get]
func (c *BlockController) List(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	result, appErr := c.service.List(ctx.Request().Context(), *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Blocks retrieved successfully")
}

// Create records an ad-hoc exclusion
// @Summary Create block
// @Tags Block
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockRequest true "Block"
// @Success 200 {object} controller.SuccessResponse
// @Failure 400 {object} errors.AppError
// @Router /admin/blocks [post]
func (c *BlockController) Create(ctx echo.Context) error {
	req := new(dto.CreateBlockRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error(), nil)
	}

	block, appErr := c.service.Create(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, block, "Block created successfully")
}

// Delete removes a block
// @Summary Delete block
// @Tags Block
// @Security BearerAuth
// @Produce json
// @Param id path string true "Block ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /admin/blocks/{id} [delete]
func (c *BlockController) Delete(ctx echo.Context) error {
	if appErr := c.service.Delete(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Block deleted successfully")
}
