package router

import (
	"roadwise/core/middleware"
	"roadwise/modules/truck/controller"

	"github.com/labstack/echo/v4"
)

type TruckRouter struct {
	controller *controller.TruckController
}

func NewTruckRouter(ctrl *controller.TruckController) *TruckRouter {
	return &TruckRouter{controller: ctrl}
}

func (r *TruckRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	group := v1.Group("/private/trucks", mw.AuthMiddleware())

	group.POST("", r.controller.CreateTruck)
	group.GET("", r.controller.ListTrucks)
	group.GET("/:id", r.controller.GetTruck)
	group.PUT("/:id", r.controller.UpdateTruck)
	group.DELETE("/:id", r.controller.ArchiveTruck)
}
