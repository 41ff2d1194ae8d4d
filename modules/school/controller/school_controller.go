package controller

import (
	"roadwise/core/controller"
	"roadwise/core/errors"
	"roadwise/core/params"
	"roadwise/modules/school/dto"
	"roadwise/modules/school/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SchoolController struct {
	service service.SchoolServiceInterface
	controller.BaseController
}

func NewSchoolController(svc service.SchoolServiceInterface) *SchoolController {
	return &SchoolController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

// CreateSchool creates a school
// @Summary Create school
// @Tags School
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SchoolRequest true "School payload"
// @Success 200 {object} dto.SchoolResponse
// @Failure 400 {object} errors.AppError
// @Router /private/schools [post]
func (c *SchoolController) CreateSchool(ctx echo.Context) error {
	req := new(dto.SchoolRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.CreateSchool(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "School created successfully")
}

// GetSchool returns one school
// @Summary Get school
// @Tags School
// @Security BearerAuth
// @Produce json
// @Param id path string true "School ID"
// @Success 200 {object} dto.SchoolResponse
// @Failure 404 {object} errors.AppError
// @Router /private/schools/{id} [get]
func (c *SchoolController) GetSchool(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid school id", nil)
	}

	result, appErr := c.service.GetSchoolByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "School retrieved successfully")
}

// GetSchoolBySlug returns one school by its slug
// @Summary Get school by slug
// @Tags School
// @Security BearerAuth
// @Produce json
// @Param slug path string true "School slug"
// @Success 200 {object} dto.SchoolResponse
// @Failure 404 {object} errors.AppError
// @Router /private/schools/slug/{slug} [get]
func (c *SchoolController) GetSchoolBySlug(ctx echo.Context) error {
	result, appErr := c.service.GetSchoolBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "School retrieved successfully")
}

// ListSchools lists schools
// @Summary List schools
// @Tags School
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Name filter"
// @Success 200 {object} dto.PaginatedSchoolResponse
// @Router /private/schools [get]
func (c *SchoolController) ListSchools(ctx echo.Context) error {
	q := params.FromEcho(ctx)

	result, appErr := c.service.ListSchools(ctx.Request().Context(), q)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Schools retrieved successfully")
}

// UpdateSchool updates a school
// @Summary Update school
// @Tags School
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "School ID"
// @Param request body dto.SchoolRequest true "School payload"
// @Success 200 {object} dto.SchoolResponse
// @Failure 404 {object} errors.AppError
// @Router /private/schools/{id} [put]
func (c *SchoolController) UpdateSchool(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid school id", nil)
	}

	req := new(dto.SchoolRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.UpdateSchool(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "School updated successfully")
}

// ArchiveSchool archives a school
// @Summary Archive school
// @Tags School
// @Security BearerAuth
// @Produce json
// @Param id path string true "School ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/schools/{id} [delete]
func (c *SchoolController) ArchiveSchool(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid school id", nil)
	}

	if appErr := c.service.ArchiveSchool(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "School archived successfully")
}
