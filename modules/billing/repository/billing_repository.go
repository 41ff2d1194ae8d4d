package repository

import (
	"context"
	"database/sql"

	"roadwise/core/database"
	"roadwise/core/logger"
	"roadwise/core/params"
	"roadwise/modules/billing/entity"

	"github.com/google/uuid"
)

// BillingRepository handles invoice database operations.
type BillingRepository struct {
	DB database.Database
}

func NewBillingRepository(db database.Database) *BillingRepository {
	return &BillingRepository{DB: db}
}

type BillingRepositoryInterface interface {
	CreateInvoice(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error)
	AddLine(ctx context.Context, line *entity.InvoiceLine) (*entity.InvoiceLine, error)
	GetInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetLines(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceLine, error)
	ListInvoices(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*entity.PaginatedInvoiceEntity, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus, markIssued bool) error
	SchoolName(ctx context.Context, schoolID uuid.UUID) (string, error)
}

func (r *BillingRepository) CreateInvoice(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	query := `
		INSERT INTO invoices (school_id, number, status, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, school_id, number, status, issued_at, due_date, created_at, updated_at
	`

	var created entity.Invoice
	err := r.DB.GetContext(ctx, &created, query, inv.SchoolID, inv.Number, inv.Status, inv.DueDate)
	if err != nil {
		logger.Error("BillingRepository:CreateInvoice", err)
		return nil, err
	}
	return &created, nil
}

func (r *BillingRepository) AddLine(ctx context.Context, line *entity.InvoiceLine) (*entity.InvoiceLine, error) {
	query := `
		INSERT INTO invoice_lines (invoice_id, description, quantity, unit_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, invoice_id, description, quantity, unit_cents, created_at
	`

	var created entity.InvoiceLine
	err := r.DB.GetContext(ctx, &created, query,
		line.InvoiceID, line.Description, line.Quantity, line.UnitCents)
	if err != nil {
		logger.Error("BillingRepository:AddLine", err)
		return nil, err
	}
	return &created, nil
}

func (r *BillingRepository) GetInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	query := `
		SELECT id, school_id, number, status, issued_at, due_date, created_at, updated_at
		FROM invoices WHERE id = $1
	`

	var inv entity.Invoice
	err := r.DB.GetContext(ctx, &inv, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BillingRepository:GetInvoiceByID", err)
		return nil, err
	}
	return &inv, nil
}

func (r *BillingRepository) GetLines(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_cents, created_at
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY created_at
	`

	var lines []entity.InvoiceLine
	err := r.DB.SelectContext(ctx, &lines, query, invoiceID)
	if err != nil {
		logger.Error("BillingRepository:GetLines", err)
		return nil, err
	}
	return lines, nil
}

func (r *BillingRepository) ListInvoices(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*entity.PaginatedInvoiceEntity, error) {
	offset := (q.PageNumber - 1) * q.PageSize

	baseQuery := `FROM invoices`
	args := []any{}
	if schoolID != nil {
		baseQuery += ` WHERE school_id = $1`
		args = append(args, *schoolID)
	}

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, `SELECT COUNT(*) `+baseQuery, args...)
	if err != nil {
		logger.Error("BillingRepository:ListInvoices:Count:Error:", err)
		return nil, err
	}

	query := `
		SELECT id, school_id, number, status, issued_at, due_date, created_at, updated_at ` +
		baseQuery + ` ORDER BY created_at DESC`
	if schoolID != nil {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, q.PageSize, offset)

	var invoices []entity.Invoice
	err = r.DB.SelectContext(ctx, &invoices, query, args...)
	if err != nil {
		logger.Error("BillingRepository:ListInvoices:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedInvoiceEntity{
		Items:      invoices,
		TotalItems: totalItems,
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
	}, nil
}

func (r *BillingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus, markIssued bool) error {
	query := `UPDATE invoices SET status = $2, updated_at = NOW() WHERE id = $1`
	if markIssued {
		query = `UPDATE invoices SET status = $2, issued_at = NOW(), updated_at = NOW() WHERE id = $1`
	}
	err := r.DB.ExecContext(ctx, query, id, status)
	if err != nil {
		logger.Error("BillingRepository:UpdateStatus", err)
		return err
	}
	return nil
}

func (r *BillingRepository) SchoolName(ctx context.Context, schoolID uuid.UUID) (string, error) {
	var name string
	err := r.DB.GetContext(ctx, &name, `SELECT name FROM schools WHERE id = $1`, schoolID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		logger.Error("BillingRepository:SchoolName", err)
		return "", err
	}
	return name, nil
}
