package router

import (
	"roadwise/core/middleware"
	"roadwise/modules/billing/controller"

	"github.com/labstack/echo/v4"
)

type BillingRouter struct {
	controller *controller.BillingController
}

func NewBillingRouter(ctrl *controller.BillingController) *BillingRouter {
	return &BillingRouter{controller: ctrl}
}

func (r *BillingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	group := v1.Group("/private/invoices", mw.AuthMiddleware())

	group.POST("", r.controller.CreateInvoice)
	group.GET("", r.controller.ListInvoices)
	group.GET("/:id", r.controller.GetInvoice)
	group.POST("/:id/issue", r.controller.IssueInvoice)
	group.POST("/:id/pay", r.controller.MarkPaid)
	group.POST("/:id/void", r.controller.VoidInvoice)
	group.POST("/:id/export", r.controller.ExportInvoice)
}
