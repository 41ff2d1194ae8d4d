package router

import (
	"roadwise/core/middleware"
	"roadwise/modules/classgroup/controller"

	"github.com/labstack/echo/v4"
)

type ClassGroupRouter struct {
	controller *controller.ClassGroupController
}

func NewClassGroupRouter(ctrl *controller.ClassGroupController) *ClassGroupRouter {
	return &ClassGroupRouter{controller: ctrl}
}

func (r *ClassGroupRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	group := v1.Group("/private/class-groups", mw.AuthMiddleware())

	group.POST("", r.controller.CreateClassGroup)
	group.GET("", r.controller.ListClassGroups)
	// Fixed paths before the :id wildcard.
	group.POST("/check-conflicts", r.controller.CheckConflicts)
	group.GET("/week-grid", r.controller.WeekGrid)
	group.GET("/:id", r.controller.GetClassGroup)
	group.PUT("/:id", r.controller.UpdateClassGroup)
	group.DELETE("/:id", r.controller.ArchiveClassGroup)

	group.GET("/:id/students", r.controller.Roster)
	group.POST("/:id/students", r.controller.AddStudent)
	group.DELETE("/:id/students/:studentId", r.controller.RemoveStudent)
}
