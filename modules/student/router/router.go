package router

import (
	"roadwise/core/middleware"
	"roadwise/modules/student/controller"

	"github.com/labstack/echo/v4"
)

type StudentRouter struct {
	controller *controller.StudentController
}

func NewStudentRouter(ctrl *controller.StudentController) *StudentRouter {
	return &StudentRouter{controller: ctrl}
}

func (r *StudentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	group := v1.Group("/private/students", mw.AuthMiddleware())

	group.POST("", r.controller.CreateStudent)
	group.GET("", r.controller.ListStudents)
	group.GET("/:id", r.controller.GetStudent)
	group.PUT("/:id", r.controller.UpdateStudent)
	group.DELETE("/:id", r.controller.ArchiveStudent)
}
