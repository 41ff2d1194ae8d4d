package router

import (
	"roadwise/core/middleware"
	"roadwise/modules/school/controller"

	"github.com/labstack/echo/v4"
)

type SchoolRouter struct {
	controller *controller.SchoolController
}

func NewSchoolRouter(ctrl *controller.SchoolController) *SchoolRouter {
	return &SchoolRouter{controller: ctrl}
}

func (r *SchoolRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	group := v1.Group("/private/schools", mw.AuthMiddleware())

	group.POST("", r.controller.CreateSchool)
	group.GET("", r.controller.ListSchools)
	group.GET("/slug/:slug", r.controller.GetSchoolBySlug)
	group.GET("/:id", r.controller.GetSchool)
	group.PUT("/:id", r.controller.UpdateSchool)
	group.DELETE("/:id", r.controller.ArchiveSchool)
}
