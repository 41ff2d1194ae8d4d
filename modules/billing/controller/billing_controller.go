package controller

import (
	"roadwise/core/controller"
	"roadwise/core/errors"
	"roadwise/core/params"
	"roadwise/modules/billing/dto"
	"roadwise/modules/billing/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type BillingController struct {
	service service.BillingServiceInterface
	controller.BaseController
}

func NewBillingController(svc service.BillingServiceInterface) *BillingController {
	return &BillingController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

// CreateInvoice creates a draft invoice with its lines
// @Summary Create invoice
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateInvoiceRequest true "Invoice payload"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} errors.AppError
// @Router /private/invoices [post]
func (c *BillingController) CreateInvoice(ctx echo.Context) error {
	req := new(dto.CreateInvoiceRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.CreateInvoice(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Invoice created successfully")
}

// GetInvoice returns an invoice with lines and total
// @Summary Get invoice
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} errors.AppError
// @Router /private/invoices/{id} [get]
func (c *BillingController) GetInvoice(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid invoice id", nil)
	}

	result, appErr := c.service.GetInvoice(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Invoice retrieved successfully")
}

// ListInvoices lists invoices
// @Summary List invoices
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param school_id query string false "Filter by school"
// @Success 200 {object} dto.PaginatedInvoiceResponse
// @Router /private/invoices [get]
func (c *BillingController) ListInvoices(ctx echo.Context) error {
	q := params.FromEcho(ctx)

	var schoolID *uuid.UUID
	if raw := ctx.QueryParam("school_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid school_id", nil)
		}
		schoolID = &parsed
	}

	result, appErr := c.service.ListInvoices(ctx.Request().Context(), q, schoolID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Invoices retrieved successfully")
}

// IssueInvoice moves a draft invoice to issued
// @Summary Issue invoice
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} errors.AppError
// @Router /private/invoices/{id}/issue [post]
func (c *BillingController) IssueInvoice(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid invoice id", nil)
	}

	result, appErr := c.service.IssueInvoice(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Invoice issued successfully")
}

// MarkPaid moves an issued invoice to paid
// @Summary Mark invoice paid
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} errors.AppError
// @Router /private/invoices/{id}/pay [post]
func (c *BillingController) MarkPaid(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid invoice id", nil)
	}

	result, appErr := c.service.MarkPaid(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Invoice marked as paid")
}

// VoidInvoice voids an unpaid invoice
// @Summary Void invoice
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} errors.AppError
// @Router /private/invoices/{id}/void [post]
func (c *BillingController) VoidInvoice(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid invoice id", nil)
	}

	result, appErr := c.service.VoidInvoice(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Invoice voided successfully")
}

// ExportInvoice queues a CSV export to object storage
// @Summary Export invoice
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.ExportInvoiceResponse
// @Failure 404 {object} errors.AppError
// @Router /private/invoices/{id}/export [post]
func (c *BillingController) ExportInvoice(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid invoice id", nil)
	}

	result, appErr := c.service.ExportInvoice(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Invoice export queued")
}
