package entity

import (
	"time"

	coreentity "roadwise/core/entity"

	"github.com/google/uuid"
)

// InvoiceStatus tracks the billing lifecycle.
type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusVoid   InvoiceStatus = "void"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}

// Invoice bills one school. Amounts live on the lines; the invoice
// total is always derived, never stored.
type Invoice struct {
	SchoolID uuid.UUID     `db:"school_id" json:"school_id"`
	Number   string        `db:"number" json:"number"`
	Status   InvoiceStatus `db:"status" json:"status"`
	IssuedAt *time.Time    `db:"issued_at" json:"issued_at,omitempty"`
	DueDate  *time.Time    `db:"due_date" json:"due_date,omitempty"`
	coreentity.BaseEntity
}

// InvoiceLine is one billed item. UnitCents keeps money in integer
// cents; totals are quantity * unit.
type InvoiceLine struct {
	ID          uuid.UUID `db:"id" json:"id"`
	InvoiceID   uuid.UUID `db:"invoice_id" json:"invoice_id"`
	Description string    `db:"description" json:"description"`
	Quantity    int       `db:"quantity" json:"quantity"`
	UnitCents   int64     `db:"unit_cents" json:"unit_cents"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// TotalCents is the line total in cents.
func (l InvoiceLine) TotalCents() int64 {
	return int64(l.Quantity) * l.UnitCents
}

type PaginatedInvoiceEntity = coreentity.Pagination[Invoice]
