package service

import (
	"context"
	"strings"
	"testing"

	"roadwise/core/constants"
	coreerrors "roadwise/core/errors"
	"roadwise/core/params"
	"roadwise/modules/billing/dto"
	"roadwise/modules/billing/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type fakeBillingRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
	lines    map[uuid.UUID][]entity.InvoiceLine
}

func newFakeBillingRepo() *fakeBillingRepo {
	return &fakeBillingRepo{
		invoices: make(map[uuid.UUID]*entity.Invoice),
		lines:    make(map[uuid.UUID][]entity.InvoiceLine),
	}
}

func (f *fakeBillingRepo) CreateInvoice(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	inv.ID = uuid.New()
	f.invoices[inv.ID] = inv
	return inv, nil
}

func (f *fakeBillingRepo) AddLine(ctx context.Context, line *entity.InvoiceLine) (*entity.InvoiceLine, error) {
	line.ID = uuid.New()
	f.lines[line.InvoiceID] = append(f.lines[line.InvoiceID], *line)
	return line, nil
}

func (f *fakeBillingRepo) GetInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeBillingRepo) GetLines(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceLine, error) {
	return f.lines[invoiceID], nil
}

func (f *fakeBillingRepo) ListInvoices(ctx context.Context, q params.QueryParams, schoolID *uuid.UUID) (*entity.PaginatedInvoiceEntity, error) {
	items := make([]entity.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		items = append(items, *inv)
	}
	return &entity.PaginatedInvoiceEntity{Items: items, TotalItems: len(items)}, nil
}

func (f *fakeBillingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus, markIssued bool) error {
	f.invoices[id].Status = status
	return nil
}

func (f *fakeBillingRepo) SchoolName(ctx context.Context, schoolID uuid.UUID) (string, error) {
	return "Hillcrest Primary", nil
}

type fakeEnqueuer struct {
	taskTypes []string
}

func (f *fakeEnqueuer) Enqueue(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error {
	f.taskTypes = append(f.taskTypes, taskType)
	return nil
}

func createTestInvoice(t *testing.T, svc BillingServiceInterface, schoolID uuid.UUID) *dto.InvoiceResponse {
	t.Helper()
	resp, appErr := svc.CreateInvoice(context.Background(), &dto.CreateInvoiceRequest{
		SchoolID: schoolID.String(),
		DueDate:  "2026-09-30",
		Lines: []dto.InvoiceLineRequest{
			{Description: "Weekly sessions", Quantity: 4, UnitCents: 12500},
			{Description: "Materials fee", Quantity: 1, UnitCents: 3000},
		},
	})
	if appErr != nil {
		t.Fatalf("CreateInvoice: %v", appErr)
	}
	return resp
}

func TestCreateInvoice(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	t.Run("derives the total from lines", func(t *testing.T) {
		svc := NewBillingService(newFakeBillingRepo(), &fakeEnqueuer{})
		resp := createTestInvoice(t, svc, schoolID)

		if resp.Status != string(entity.InvoiceStatusDraft) {
			t.Errorf("status = %s, want draft", resp.Status)
		}
		// 4*12500 + 1*3000
		if resp.TotalCents != 53000 {
			t.Errorf("total = %d, want 53000", resp.TotalCents)
		}
		if resp.Number == "" {
			t.Error("invoice number must be assigned")
		}
		if len(resp.Lines) != 2 || resp.Lines[0].TotalCents != 50000 {
			t.Errorf("lines = %+v", resp.Lines)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		svc := NewBillingService(newFakeBillingRepo(), &fakeEnqueuer{})

		cases := []*dto.CreateInvoiceRequest{
			{SchoolID: "not-a-uuid", Lines: []dto.InvoiceLineRequest{{Description: "x", Quantity: 1, UnitCents: 100}}},
			{SchoolID: schoolID.String()},
			{SchoolID: schoolID.String(), DueDate: "30/09/2026", Lines: []dto.InvoiceLineRequest{{Description: "x", Quantity: 1, UnitCents: 100}}},
			{SchoolID: schoolID.String(), Lines: []dto.InvoiceLineRequest{{Description: "  ", Quantity: 1, UnitCents: 100}}},
			{SchoolID: schoolID.String(), Lines: []dto.InvoiceLineRequest{{Description: "x", Quantity: 0, UnitCents: 100}}},
			{SchoolID: schoolID.String(), Lines: []dto.InvoiceLineRequest{{Description: "x", Quantity: 1, UnitCents: -5}}},
		}
		for i, req := range cases {
			if _, appErr := svc.CreateInvoice(ctx, req); appErr == nil || appErr.Code != coreerrors.ErrInvalidInput {
				t.Errorf("case %d: expected INVALID_INPUT, got %v", i, appErr)
			}
		}
	})
}

func TestInvoiceLifecycle(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	t.Run("draft issued paid", func(t *testing.T) {
		svc := NewBillingService(newFakeBillingRepo(), &fakeEnqueuer{})
		created := createTestInvoice(t, svc, schoolID)
		id := uuid.MustParse(created.ID)

		issued, appErr := svc.IssueInvoice(ctx, id)
		if appErr != nil {
			t.Fatalf("IssueInvoice: %v", appErr)
		}
		if issued.Status != string(entity.InvoiceStatusIssued) || issued.IssuedAt == nil {
			t.Errorf("issued = %+v", issued)
		}

		paid, appErr := svc.MarkPaid(ctx, id)
		if appErr != nil {
			t.Fatalf("MarkPaid: %v", appErr)
		}
		if paid.Status != string(entity.InvoiceStatusPaid) {
			t.Errorf("status = %s, want paid", paid.Status)
		}
	})

	t.Run("cannot pay a draft", func(t *testing.T) {
		svc := NewBillingService(newFakeBillingRepo(), &fakeEnqueuer{})
		created := createTestInvoice(t, svc, schoolID)

		if _, appErr := svc.MarkPaid(ctx, uuid.MustParse(created.ID)); appErr == nil {
			t.Error("paying a draft must be rejected")
		}
	})

	t.Run("cannot issue twice", func(t *testing.T) {
		svc := NewBillingService(newFakeBillingRepo(), &fakeEnqueuer{})
		created := createTestInvoice(t, svc, schoolID)
		id := uuid.MustParse(created.ID)

		if _, appErr := svc.IssueInvoice(ctx, id); appErr != nil {
			t.Fatalf("first issue: %v", appErr)
		}
		if _, appErr := svc.IssueInvoice(ctx, id); appErr == nil {
			t.Error("second issue must be rejected")
		}
	})

	t.Run("void rejects paid invoices", func(t *testing.T) {
		svc := NewBillingService(newFakeBillingRepo(), &fakeEnqueuer{})
		created := createTestInvoice(t, svc, schoolID)
		id := uuid.MustParse(created.ID)

		if _, appErr := svc.IssueInvoice(ctx, id); appErr != nil {
			t.Fatal(appErr)
		}
		if _, appErr := svc.MarkPaid(ctx, id); appErr != nil {
			t.Fatal(appErr)
		}

		if _, appErr := svc.VoidInvoice(ctx, id); appErr == nil {
			t.Error("voiding a paid invoice must be rejected")
		}
	})

	t.Run("void works on draft and issued", func(t *testing.T) {
		svc := NewBillingService(newFakeBillingRepo(), &fakeEnqueuer{})
		created := createTestInvoice(t, svc, schoolID)

		voided, appErr := svc.VoidInvoice(ctx, uuid.MustParse(created.ID))
		if appErr != nil {
			t.Fatalf("VoidInvoice: %v", appErr)
		}
		if voided.Status != string(entity.InvoiceStatusVoid) {
			t.Errorf("status = %s, want void", voided.Status)
		}
	})

	t.Run("unknown invoice is not found", func(t *testing.T) {
		svc := NewBillingService(newFakeBillingRepo(), &fakeEnqueuer{})
		if _, appErr := svc.GetInvoice(ctx, uuid.New()); appErr == nil || appErr.Code != coreerrors.ErrNotFound {
			t.Errorf("expected NOT_FOUND, got %v", appErr)
		}
	})
}

func TestExportInvoice(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	enq := &fakeEnqueuer{}
	svc := NewBillingService(newFakeBillingRepo(), enq)
	created := createTestInvoice(t, svc, schoolID)

	resp, appErr := svc.ExportInvoice(ctx, uuid.MustParse(created.ID))
	if appErr != nil {
		t.Fatalf("ExportInvoice: %v", appErr)
	}
	if !resp.Queued {
		t.Error("export should report queued")
	}
	if len(enq.taskTypes) != 1 || enq.taskTypes[0] != constants.TaskTypeInvoiceExport {
		t.Errorf("enqueued tasks = %v", enq.taskTypes)
	}

	if _, appErr := svc.ExportInvoice(ctx, uuid.New()); appErr == nil {
		t.Error("exporting an unknown invoice must fail")
	}
}

func TestInvoiceNumberUniquePerCall(t *testing.T) {
	ctx := context.Background()
	svc := NewBillingService(newFakeBillingRepo(), &fakeEnqueuer{})
	schoolID := uuid.New()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		resp, appErr := svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			SchoolID: schoolID.String(),
			Lines:    []dto.InvoiceLineRequest{{Description: "Session", Quantity: 1, UnitCents: 100}},
		})
		if appErr != nil {
			t.Fatalf("CreateInvoice %d: %v", i, appErr)
		}
		if seen[resp.Number] {
			t.Fatalf("duplicate invoice number %q", resp.Number)
		}
		seen[resp.Number] = true
		if !strings.HasPrefix(resp.Number, "INV-") {
			t.Errorf("number %q missing INV- prefix", resp.Number)
		}
	}
}
