package controller

import (
	"roadwise/core/controller"
	"roadwise/core/errors"
	"roadwise/modules/attendance/dto"
	"roadwise/modules/attendance/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AttendanceController struct {
	service service.AttendanceServiceInterface
	controller.BaseController
}

func NewAttendanceController(svc service.AttendanceServiceInterface) *AttendanceController {
	return &AttendanceController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

// RecordSession records or corrects one session's attendance sheet
// @Summary Record session attendance
// @Description Upserts attendance, score and remark for every listed student of a class group on one date
// @Tags Attendance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RecordSessionRequest true "Session sheet"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} errors.AppError
// @Router /private/attendance/sessions [post]
func (c *AttendanceController) RecordSession(ctx echo.Context) error {
	req := new(dto.RecordSessionRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.RecordSession(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Attendance recorded successfully")
}

// GetSession returns one recorded session sheet
// @Summary Get session attendance
// @Tags Attendance
// @Security BearerAuth
// @Produce json
// @Param class_group_id query string true "Class group ID"
// @Param session_date query string true "Session date (YYYY-MM-DD)"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} errors.AppError
// @Router /private/attendance/sessions [get]
func (c *AttendanceController) GetSession(ctx echo.Context) error {
	classGroupID, err := uuid.Parse(ctx.QueryParam("class_group_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid class_group_id", nil)
	}
	sessionDate := ctx.QueryParam("session_date")
	if sessionDate == "" {
		return c.BadRequest(errors.ErrInvalidInput, "session_date is required", nil)
	}

	result, appErr := c.service.GetSession(ctx.Request().Context(), classGroupID, sessionDate)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Session retrieved successfully")
}

// StudentSummary returns one student's aggregated attendance
// @Summary Student attendance summary
// @Tags Attendance
// @Security BearerAuth
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentSummaryResponse
// @Router /private/attendance/students/{id}/summary [get]
func (c *AttendanceController) StudentSummary(ctx echo.Context) error {
	studentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid student id", nil)
	}

	result, appErr := c.service.StudentSummary(ctx.Request().Context(), studentID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Summary retrieved successfully")
}
