package dto

import (
	"time"

	"roadwise/modules/billing/entity"
)

// ===================== Request DTOs =====================

type InvoiceLineRequest struct {
	Description string `json:"description" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required"`
	UnitCents   int64  `json:"unit_cents" validate:"required"`
}

type CreateInvoiceRequest struct {
	SchoolID string               `json:"school_id" validate:"required"`
	DueDate  string               `json:"due_date"`
	Lines    []InvoiceLineRequest `json:"lines" validate:"required"`
}

// ===================== Response DTOs =====================

type InvoiceLineResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitCents   int64  `json:"unit_cents"`
	TotalCents  int64  `json:"total_cents"`
}

type InvoiceResponse struct {
	ID         string                `json:"id"`
	SchoolID   string                `json:"school_id"`
	Number     string                `json:"number"`
	Status     string                `json:"status"`
	IssuedAt   *time.Time            `json:"issued_at,omitempty"`
	DueDate    *time.Time            `json:"due_date,omitempty"`
	TotalCents int64                 `json:"total_cents"`
	Lines      []InvoiceLineResponse `json:"lines,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

type PaginatedInvoiceResponse struct {
	Items      []InvoiceResponse `json:"items"`
	TotalItems int               `json:"total_items"`
	PageNumber int               `json:"page_number"`
	PageSize   int               `json:"page_size"`
}

type ExportInvoiceResponse struct {
	InvoiceID string `json:"invoice_id"`
	Queued    bool   `json:"queued"`
}

// InvoiceExportPayload is the task payload for the async CSV export.
type InvoiceExportPayload struct {
	InvoiceID string `json:"invoice_id"`
}

// ===================== Mapper Functions =====================

func ToInvoiceLineResponse(l entity.InvoiceLine) InvoiceLineResponse {
	return InvoiceLineResponse{
		ID:          l.ID.String(),
		Description: l.Description,
		Quantity:    l.Quantity,
		UnitCents:   l.UnitCents,
		TotalCents:  l.TotalCents(),
	}
}

func ToInvoiceResponse(inv *entity.Invoice, lines []entity.InvoiceLine) *InvoiceResponse {
	resp := &InvoiceResponse{
		ID:        inv.ID.String(),
		SchoolID:  inv.SchoolID.String(),
		Number:    inv.Number,
		Status:    string(inv.Status),
		IssuedAt:  inv.IssuedAt,
		DueDate:   inv.DueDate,
		CreatedAt: inv.CreatedAt,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, ToInvoiceLineResponse(l))
		resp.TotalCents += l.TotalCents()
	}
	return resp
}
