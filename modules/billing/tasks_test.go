package billing

import (
	"bytes"
	"encoding/csv"
	"testing"

	"roadwise/modules/billing/entity"

	"github.com/google/uuid"
)

func TestRenderInvoiceCSV(t *testing.T) {
	invoice := &entity.Invoice{
		SchoolID: uuid.New(),
		Number:   "INV-2026-ABC1234",
		Status:   entity.InvoiceStatusIssued,
	}
	lines := []entity.InvoiceLine{
		{Description: "Weekly sessions", Quantity: 4, UnitCents: 12500},
		{Description: "Materials, incl. \"workbooks\"", Quantity: 1, UnitCents: 3000},
	}

	body, err := renderInvoiceCSV(invoice, "Hillcrest Primary", lines)
	if err != nil {
		t.Fatalf("renderInvoiceCSV: %v", err)
	}

	r := csv.NewReader(bytes.NewReader(body))
	// Header and line rows have different widths.
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	// Header pair, blank separator collapses on read, line header,
	// two lines, total row.
	if len(records) != 6 {
		t.Fatalf("records = %d, want 6:\n%s", len(records), body)
	}

	if records[1][0] != "INV-2026-ABC1234" || records[1][1] != "Hillcrest Primary" || records[1][2] != "issued" {
		t.Errorf("invoice header row = %v", records[1])
	}

	if records[3][0] != "Weekly sessions" || records[3][3] != "50000" {
		t.Errorf("first line row = %v", records[3])
	}
	// Quoted commas and quotes survive the round trip.
	if records[4][0] != "Materials, incl. \"workbooks\"" {
		t.Errorf("second line description = %q", records[4][0])
	}

	total := records[5]
	if total[0] != "total" || total[3] != "53000" {
		t.Errorf("total row = %v", total)
	}
}

func TestRenderInvoiceCSVNoLines(t *testing.T) {
	invoice := &entity.Invoice{Number: "INV-2026-EMPTY00", Status: entity.InvoiceStatusDraft}

	body, err := renderInvoiceCSV(invoice, "Hillcrest Primary", nil)
	if err != nil {
		t.Fatalf("renderInvoiceCSV: %v", err)
	}

	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	last := records[len(records)-1]
	if last[0] != "total" || last[3] != "0" {
		t.Errorf("total row = %v", last)
	}
}
