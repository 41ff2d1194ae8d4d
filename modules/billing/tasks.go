package billing

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"roadwise/core/constants"
	"roadwise/core/database"
	"roadwise/core/logger"
	"roadwise/core/storage"
	"roadwise/modules/billing/dto"
	"roadwise/modules/billing/entity"
	"roadwise/modules/billing/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// RegisterTasks binds the billing task handlers onto the worker mux.
func RegisterTasks(mux *asynq.ServeMux, db database.Database, store storage.Uploader) {
	repo := repository.NewBillingRepository(db)
	mux.HandleFunc(constants.TaskTypeInvoiceExport, handleInvoiceExport(repo, store))
}

// handleInvoiceExport renders the invoice as CSV and uploads it to
// object storage under invoices/<number>.csv.
func handleInvoiceExport(repo repository.BillingRepositoryInterface, store storage.Uploader) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload dto.InvoiceExportPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal invoice export payload: %w", err)
		}

		invoiceID, err := uuid.Parse(payload.InvoiceID)
		if err != nil {
			return fmt.Errorf("parse invoice id %q: %w", payload.InvoiceID, err)
		}

		invoice, err := repo.GetInvoiceByID(ctx, invoiceID)
		if err != nil {
			return fmt.Errorf("load invoice: %w", err)
		}
		if invoice == nil {
			// The invoice vanished between enqueue and run; retrying
			// will not bring it back.
			logger.Warn("Billing:InvoiceExport:InvoiceGone", "invoice_id", payload.InvoiceID)
			return nil
		}

		lines, err := repo.GetLines(ctx, invoiceID)
		if err != nil {
			return fmt.Errorf("load invoice lines: %w", err)
		}
		schoolName, err := repo.SchoolName(ctx, invoice.SchoolID)
		if err != nil {
			return fmt.Errorf("load school name: %w", err)
		}

		body, err := renderInvoiceCSV(invoice, schoolName, lines)
		if err != nil {
			return fmt.Errorf("render invoice csv: %w", err)
		}

		key := "invoices/" + invoice.Number + ".csv"
		location, err := store.Upload(ctx, key, "text/csv", body)
		if err != nil {
			return fmt.Errorf("upload invoice csv: %w", err)
		}

		logger.Info("Billing:InvoiceExport:Uploaded",
			"invoice_id", invoice.ID.String(),
			"number", invoice.Number,
			"location", location,
		)
		return nil
	}
}

func renderInvoiceCSV(invoice *entity.Invoice, schoolName string, lines []entity.InvoiceLine) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"invoice_number", "school", "status"},
		{invoice.Number, schoolName, string(invoice.Status)},
		{},
		{"description", "quantity", "unit_cents", "total_cents"},
	}

	var totalCents int64
	for _, l := range lines {
		rows = append(rows, []string{
			l.Description,
			strconv.Itoa(l.Quantity),
			strconv.FormatInt(l.UnitCents, 10),
			strconv.FormatInt(l.TotalCents(), 10),
		})
		totalCents += l.TotalCents()
	}
	rows = append(rows, []string{"total", "", "", strconv.FormatInt(totalCents, 10)})

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
