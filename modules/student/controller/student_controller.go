package controller

import (
	"roadwise/core/controller"
	"roadwise/core/errors"
	"roadwise/core/params"
	"roadwise/modules/student/dto"
	"roadwise/modules/student/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type StudentController struct {
	service service.StudentServiceInterface
	controller.BaseController
}

func NewStudentController(svc service.StudentServiceInterface) *StudentController {
	return &StudentController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

// CreateStudent creates a student
// @Summary Create student
// @Tags Student
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student payload"
// @Success 200 {object} dto.StudentResponse
// @Failure 400 {object} errors.AppError
// @Router /private/students [post]
func (c *StudentController) CreateStudent(ctx echo.Context) error {
	req := new(dto.StudentRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.CreateStudent(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Student created successfully")
}

// GetStudent returns one student
// @Summary Get student
// @Tags Student
// @Security BearerAuth
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} errors.AppError
// @Router /private/students/{id} [get]
func (c *StudentController) GetStudent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid student id", nil)
	}

	result, appErr := c.service.GetStudentByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Student retrieved successfully")
}

// ListStudents lists students
// @Summary List students
// @Tags Student
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Name filter"
// @Param school_id query string false "Filter by school"
// @Success 200 {object} dto.PaginatedStudentResponse
// @Router /private/students [get]
func (c *StudentController) ListStudents(ctx echo.Context) error {
	q := params.FromEcho(ctx)

	var schoolID *uuid.UUID
	if raw := ctx.QueryParam("school_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid school_id", nil)
		}
		schoolID = &parsed
	}

	result, appErr := c.service.ListStudents(ctx.Request().Context(), q, schoolID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Students retrieved successfully")
}

// UpdateStudent updates a student
// @Summary Update student
// @Tags Student
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.StudentRequest true "Student payload"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} errors.AppError
// @Router /private/students/{id} [put]
func (c *StudentController) UpdateStudent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid student id", nil)
	}

	req := new(dto.StudentRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.UpdateStudent(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Student updated successfully")
}

// ArchiveStudent archives a student
// @Summary Archive student
// @Tags Student
// @Security BearerAuth
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/students/{id} [delete]
func (c *StudentController) ArchiveStudent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid student id", nil)
	}

	if appErr := c.service.ArchiveStudent(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Student archived successfully")
}
