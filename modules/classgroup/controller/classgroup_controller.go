package controller

import (
	"roadwise/core/controller"
	"roadwise/core/errors"
	"roadwise/core/params"
	"roadwise/modules/classgroup/dto"
	"roadwise/modules/classgroup/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ClassGroupController struct {
	service service.ClassGroupServiceInterface
	controller.BaseController
}

func NewClassGroupController(svc service.ClassGroupServiceInterface) *ClassGroupController {
	return &ClassGroupController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

// CreateClassGroup creates a class group
// @Summary Create class group
// @Description Creates a class group; rejected with 409 when the assigned truck is already booked, unless force is set
// @Tags ClassGroup
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ClassGroupRequest true "Class group payload"
// @Success 200 {object} dto.ClassGroupResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/class-groups [post]
func (c *ClassGroupController) CreateClassGroup(ctx echo.Context) error {
	req := new(dto.ClassGroupRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.CreateClassGroup(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Class group created successfully")
}

// GetClassGroup returns one class group
// @Summary Get class group
// @Tags ClassGroup
// @Security BearerAuth
// @Produce json
// @Param id path string true "Class group ID"
// @Success 200 {object} dto.ClassGroupResponse
// @Failure 404 {object} errors.AppError
// @Router /private/class-groups/{id} [get]
func (c *ClassGroupController) GetClassGroup(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid class group id", nil)
	}

	result, appErr := c.service.GetClassGroupByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Class group retrieved successfully")
}

// ListClassGroups lists class groups
// @Summary List class groups
// @Tags ClassGroup
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param school_id query string false "Filter by school"
// @Success 200 {object} dto.PaginatedClassGroupResponse
// @Router /private/class-groups [get]
func (c *ClassGroupController) ListClassGroups(ctx echo.Context) error {
	q := params.FromEcho(ctx)

	var schoolID *uuid.UUID
	if raw := ctx.QueryParam("school_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid school_id", nil)
		}
		schoolID = &parsed
	}

	result, appErr := c.service.ListClassGroups(ctx.Request().Context(), q, schoolID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Class groups retrieved successfully")
}

// UpdateClassGroup updates a class group
// @Summary Update class group
// @Description Updates a class group; the group's own saved slot never counts as its own conflict
// @Tags ClassGroup
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Class group ID"
// @Param request body dto.ClassGroupRequest true "Class group payload"
// @Success 200 {object} dto.ClassGroupResponse
// @Failure 404 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/class-groups/{id} [put]
func (c *ClassGroupController) UpdateClassGroup(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid class group id", nil)
	}

	req := new(dto.ClassGroupRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.UpdateClassGroup(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Class group updated successfully")
}

// ArchiveClassGroup archives a class group
// @Summary Archive class group
// @Description Archives a class group; archived groups drop out of conflict checks and the weekly grid
// @Tags ClassGroup
// @Security BearerAuth
// @Produce json
// @Param id path string true "Class group ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/class-groups/{id} [delete]
func (c *ClassGroupController) ArchiveClassGroup(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid class group id", nil)
	}

	if appErr := c.service.ArchiveClassGroup(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Class group archived successfully")
}

// CheckConflicts runs the advisory truck double-booking check
// @Summary Check schedule conflicts
// @Description Checks an in-progress slot against saved slots on the same truck and day. Incomplete candidates return checked=false
// @Tags ClassGroup
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CheckConflictsRequest true "Candidate slot"
// @Success 200 {object} dto.CheckConflictsResponse
// @Failure 400 {object} errors.AppError
// @Router /private/class-groups/check-conflicts [post]
func (c *ClassGroupController) CheckConflicts(ctx echo.Context) error {
	req := new(dto.CheckConflictsRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.CheckConflicts(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Conflict check completed")
}

// WeekGrid returns the laid-out weekly schedule
// @Summary Weekly schedule grid
// @Description Returns every active slot positioned on (day column, time row) coordinates with conflict flags
// @Tags ClassGroup
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.WeekGridResponse
// @Router /private/class-groups/week-grid [get]
func (c *ClassGroupController) WeekGrid(ctx echo.Context) error {
	result, appErr := c.service.WeekGrid(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Week grid retrieved successfully")
}

// AddStudent adds a student to the roster
// @Summary Add student to roster
// @Tags ClassGroup
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Class group ID"
// @Param request body dto.AddStudentRequest true "Student ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/class-groups/{id}/students [post]
func (c *ClassGroupController) AddStudent(ctx echo.Context) error {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid class group id", nil)
	}

	req := new(dto.AddStudentRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	if appErr := c.service.AddStudent(ctx.Request().Context(), groupID, req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Student added to class group")
}

// RemoveStudent removes a student from the roster
// @Summary Remove student from roster
// @Tags ClassGroup
// @Security BearerAuth
// @Produce json
// @Param id path string true "Class group ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} map[string]string
// @Router /private/class-groups/{id}/students/{studentId} [delete]
func (c *ClassGroupController) RemoveStudent(ctx echo.Context) error {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid class group id", nil)
	}
	studentID, err := uuid.Parse(ctx.Param("studentId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid student id", nil)
	}

	if appErr := c.service.RemoveStudent(ctx.Request().Context(), groupID, studentID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Student removed from class group")
}

// Roster lists the students of a class group
// @Summary Class group roster
// @Tags ClassGroup
// @Security BearerAuth
// @Produce json
// @Param id path string true "Class group ID"
// @Success 200 {object} dto.RosterResponse
// @Router /private/class-groups/{id}/students [get]
func (c *ClassGroupController) Roster(ctx echo.Context) error {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid class group id", nil)
	}

	result, appErr := c.service.Roster(ctx.Request().Context(), groupID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Roster retrieved successfully")
}
