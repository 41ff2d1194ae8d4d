package controller

import (
	"roadwise/core/controller"
	"roadwise/core/errors"
	"roadwise/core/params"
	"roadwise/modules/truck/dto"
	"roadwise/modules/truck/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TruckController struct {
	service service.TruckServiceInterface
	controller.BaseController
}

func NewTruckController(svc service.TruckServiceInterface) *TruckController {
	return &TruckController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

// CreateTruck creates a truck
// @Summary Create truck
// @Tags Truck
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TruckRequest true "Truck payload"
// @Success 200 {object} dto.TruckResponse
// @Failure 409 {object} errors.AppError
// @Router /private/trucks [post]
func (c *TruckController) CreateTruck(ctx echo.Context) error {
	req := new(dto.TruckRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.CreateTruck(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Truck created successfully")
}

// GetTruck returns one truck
// @Summary Get truck
// @Tags Truck
// @Security BearerAuth
// @Produce json
// @Param id path string true "Truck ID"
// @Success 200 {object} dto.TruckResponse
// @Failure 404 {object} errors.AppError
// @Router /private/trucks/{id} [get]
func (c *TruckController) GetTruck(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid truck id", nil)
	}

	result, appErr := c.service.GetTruckByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Truck retrieved successfully")
}

// ListTrucks lists trucks
// @Summary List trucks
// @Tags Truck
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Name or plate filter"
// @Success 200 {object} dto.PaginatedTruckResponse
// @Router /private/trucks [get]
func (c *TruckController) ListTrucks(ctx echo.Context) error {
	q := params.FromEcho(ctx)

	result, appErr := c.service.ListTrucks(ctx.Request().Context(), q)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Trucks retrieved successfully")
}

// UpdateTruck updates a truck
// @Summary Update truck
// @Tags Truck
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Truck ID"
// @Param request body dto.TruckRequest true "Truck payload"
// @Success 200 {object} dto.TruckResponse
// @Failure 404 {object} errors.AppError
// @Router /private/trucks/{id} [put]
func (c *TruckController) UpdateTruck(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid truck id", nil)
	}

	req := new(dto.TruckRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.UpdateTruck(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Truck updated successfully")
}

// ArchiveTruck archives a truck
// @Summary Archive truck
// @Tags Truck
// @Security BearerAuth
// @Produce json
// @Param id path string true "Truck ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/trucks/{id} [delete]
func (c *TruckController) ArchiveTruck(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid truck id", nil)
	}

	if appErr := c.service.ArchiveTruck(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Truck archived successfully")
}
