package service

import (
	"context"
	"strings"
	"time"

	"roadwise/core/constants"
	"roadwise/core/errors"
	"roadwise/core/logger"
	"roadwise/core/params"
	"roadwise/core/tasks"
	"roadwise/core/utils"
	"roadwise/modules/billing/dto"
	"roadwise/modules/billing/entity"
	"roadwise/modules/billing/repository"

	"github.com/google/uuid"
)

const dueDateLayout = "2006-01-02"

// BillingService handles invoice business logic.
type BillingService struct {
	repo     repository.BillingRepositoryInterface
	enqueuer tasks.Enqueuer
}

type BillingServiceInterface interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, *errors.AppError)
	GetInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, *errors.AppError)
	ListInvoices(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*dto.PaginatedInvoiceResponse, *errors.AppError)
	IssueInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, *errors.AppError)
	MarkPaid(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, *errors.AppError)
	VoidInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, *errors.AppError)
	ExportInvoice(ctx context.Context, id uuid.UUID) (*dto.ExportInvoiceResponse, *errors.AppError)
}

func NewBillingService(repo repository.BillingRepositoryInterface, enqueuer tasks.Enqueuer) BillingServiceInterface {
	return &BillingService{repo: repo, enqueuer: enqueuer}
}

func (s *BillingService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, *errors.AppError) {
	schoolID, err := uuid.Parse(req.SchoolID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid school_id", err)
	}
	if len(req.Lines) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "At least one line is required", nil)
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid due_date, expected YYYY-MM-DD", err)
		}
		dueDate = &parsed
	}

	for _, l := range req.Lines {
		if strings.TrimSpace(l.Description) == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Line description is required", nil)
		}
		if l.Quantity <= 0 || l.UnitCents < 0 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Line quantity must be positive and unit non-negative", nil)
		}
	}

	invoice, err := s.repo.CreateInvoice(ctx, &entity.Invoice{
		SchoolID: schoolID,
		Number:   utils.NewInvoiceNumber(time.Now()),
		Status:   entity.InvoiceStatusDraft,
		DueDate:  dueDate,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create invoice", err)
	}

	lines := make([]entity.InvoiceLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		created, err := s.repo.AddLine(ctx, &entity.InvoiceLine{
			InvoiceID:   invoice.ID,
			Description: strings.TrimSpace(l.Description),
			Quantity:    l.Quantity,
			UnitCents:   l.UnitCents,
		})
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add invoice line", err)
		}
		lines = append(lines, *created)
	}

	logger.Info("BillingService:CreateInvoice:Success",
		"invoice_id", invoice.ID.String(),
		"number", invoice.Number,
		"lines", len(lines),
	)
	return dto.ToInvoiceResponse(invoice, lines), nil
}

func (s *BillingService) GetInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, *errors.AppError) {
	invoice, lines, appErr := s.load(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToInvoiceResponse(invoice, lines), nil
}

func (s *BillingService) ListInvoices(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*dto.PaginatedInvoiceResponse, *errors.AppError) {
	page, err := s.repo.ListInvoices(ctx, q, schoolID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list invoices", err)
	}

	items := make([]dto.InvoiceResponse, 0, len(page.Items))
	for i := range page.Items {
		// Listing omits lines; totals come from the detail endpoint.
		items = append(items, *dto.ToInvoiceResponse(&page.Items[i], nil))
	}

	return &dto.PaginatedInvoiceResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func (s *BillingService) IssueInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, *errors.AppError) {
	return s.transition(ctx, id, entity.InvoiceStatusDraft, entity.InvoiceStatusIssued, true)
}

func (s *BillingService) MarkPaid(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, *errors.AppError) {
	return s.transition(ctx, id, entity.InvoiceStatusIssued, entity.InvoiceStatusPaid, false)
}

func (s *BillingService) VoidInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, *errors.AppError) {
	invoice, lines, appErr := s.load(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	if invoice.Status == entity.InvoiceStatusPaid {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "A paid invoice cannot be voided", nil)
	}

	if err := s.repo.UpdateStatus(ctx, id, entity.InvoiceStatusVoid, false); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to void invoice", err)
	}
	invoice.Status = entity.InvoiceStatusVoid
	return dto.ToInvoiceResponse(invoice, lines), nil
}

// ExportInvoice queues the CSV export; the worker uploads it to object
// storage out of band.
func (s *BillingService) ExportInvoice(ctx context.Context, id uuid.UUID) (*dto.ExportInvoiceResponse, *errors.AppError) {
	invoice, err := s.repo.GetInvoiceByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get invoice", err)
	}
	if invoice == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Invoice not found", nil)
	}

	payload := dto.InvoiceExportPayload{InvoiceID: id.String()}
	if err := s.enqueuer.Enqueue(ctx, constants.TaskTypeInvoiceExport, payload); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to queue invoice export", err)
	}

	return &dto.ExportInvoiceResponse{InvoiceID: id.String(), Queued: true}, nil
}

func (s *BillingService) load(ctx context.Context, id uuid.UUID) (*entity.Invoice, []entity.InvoiceLine, *errors.AppError) {
	invoice, err := s.repo.GetInvoiceByID(ctx, id)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get invoice", err)
	}
	if invoice == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "Invoice not found", nil)
	}

	lines, err := s.repo.GetLines(ctx, id)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get invoice lines", err)
	}
	return invoice, lines, nil
}

func (s *BillingService) transition(ctx context.Context, id uuid.UUID, from, to entity.InvoiceStatus, markIssued bool) (*dto.InvoiceResponse, *errors.AppError) {
	invoice, lines, appErr := s.load(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	if invoice.Status != from {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			"Invoice is "+string(invoice.Status)+", expected "+string(from), nil)
	}

	if err := s.repo.UpdateStatus(ctx, id, to, markIssued); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update invoice status", err)
	}
	invoice.Status = to
	if markIssued {
		now := time.Now()
		invoice.IssuedAt = &now
	}
	return dto.ToInvoiceResponse(invoice, lines), nil
}
