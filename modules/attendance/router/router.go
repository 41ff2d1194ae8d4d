package router

import (
	"roadwise/core/middleware"
	"roadwise/modules/attendance/controller"

	"github.com/labstack/echo/v4"
)

type AttendanceRouter struct {
	controller *controller.AttendanceController
}

func NewAttendanceRouter(ctrl *controller.AttendanceController) *AttendanceRouter {
	return &AttendanceRouter{controller: ctrl}
}

func (r *AttendanceRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	group := v1.Group("/private/attendance", mw.AuthMiddleware())

	group.POST("/sessions", r.controller.RecordSession)
	group.GET("/sessions", r.controller.GetSession)
	group.GET("/students/:id/summary", r.controller.StudentSummary)
}
