package document

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func sampleExport() AnnualExport {
	return AnnualExport{
		Issued: []IssuedRow{
			{
				Date:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
				TaxID:   "B12345678",
				Name:    "Acme SL",
				Number:  "2026-001",
				Concept: "Servicios",
				Base:    decimal.NewFromInt(1000),
				Rate:    decimal.NewFromInt(21),
				VAT:     decimal.NewFromInt(210),
				Total:   decimal.NewFromInt(1210),
			},
		},
		Received: []ReceivedRow{
			{
				Date:        time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
				Number:      "F-77",
				Description: "Compra",
				Base:        decimal.NewFromInt(100),
				Rate:        decimal.NewFromInt(10),
				VAT:         decimal.NewFromInt(10),
				Total:       decimal.NewFromInt(110),
			},
			{
				Date:        time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
				TaxID:       "A87654321",
				Name:        "Papelería López",
				Number:      "F-78",
				Description: "Material",
				Base:        decimal.NewFromInt(50),
				Rate:        decimal.NewFromInt(21),
				VAT:         decimal.NewFromFloat(10.5),
				Total:       decimal.NewFromFloat(60.5),
			},
		},
	}
}

func TestBuildWorkbookSheetsAndRows(t *testing.T) {
	f, err := BuildWorkbook(sampleExport())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer f.Close()

	issued, err := f.GetRows(SheetIssued)
	if err != nil {
		t.Fatalf("get %s rows: %v", SheetIssued, err)
	}
	if len(issued) != 2 { // header + 1 invoice
		t.Fatalf("%s rows = %d, want 2", SheetIssued, len(issued))
	}
	if issued[0][0] != "Fecha" || issued[0][2] != "Cliente" {
		t.Errorf("unexpected %s header: %v", SheetIssued, issued[0])
	}
	if issued[1][0] != "10/01/2026" {
		t.Errorf("date cell = %s, want 10/01/2026", issued[1][0])
	}
	if issued[1][1] != "B12345678" || issued[1][2] != "Acme SL" {
		t.Errorf("counterparty cells = %v", issued[1][1:3])
	}

	received, err := f.GetRows(SheetReceived)
	if err != nil {
		t.Fatalf("get %s rows: %v", SheetReceived, err)
	}
	if len(received) != 3 { // header + 2 expenses
		t.Fatalf("%s rows = %d, want 3", SheetReceived, len(received))
	}
	// Dangling supplier: blank tax id and name cells.
	if received[1][1] != "" || received[1][2] != "" {
		t.Errorf("expected blank counterparty cells, got %v", received[1][1:3])
	}
}

func TestWriteWorkbookOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export_AT.xlsx")

	if err := WriteWorkbook(sampleExport(), path); err != nil {
		t.Fatalf("first write: %v", err)
	}

	export := sampleExport()
	export.Received = export.Received[:1]
	if err := WriteWorkbook(export, path); err != nil {
		t.Fatalf("second write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	received, err := f.GetRows(SheetReceived)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(received) != 2 {
		t.Fatalf("rows after overwrite = %d, want 2", len(received))
	}
}
