package document

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"facturas/internal/config"
	"facturas/internal/model"

	"github.com/shopspring/decimal"
)

func testIssuer() config.Issuer {
	return config.Issuer{
		Name:    "Autónomo Ejemplo",
		TaxID:   "12345678Z",
		Address: "Calle Mayor 1, Madrid",
		Phone:   "600000000",
		Email:   "yo@example.com",
		Bank:    "Banco Ejemplo",
		IBAN:    "ES9121000418450200051332",
	}
}

func TestRenderWritesDeterministicFile(t *testing.T) {
	dir := t.TempDir()
	r, err := NewInvoiceRenderer(testIssuer(), dir)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	clientID := uint(1)
	inv := model.Invoice{
		ID:          1,
		Number:      "2026-001",
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Concept:     "Consultoría técnica",
		TaxableBase: decimal.NewFromInt(1000),
		VATRate:     decimal.NewFromInt(21),
		Total:       decimal.NewFromInt(1210),
		ClientID:    &clientID,
		Client:      &model.Client{ID: 1, Name: "Acme SL", TaxID: "B12345678", Address: "Gran Vía 2"},
	}

	path, err := r.Render(inv)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if filepath.Base(path) != "factura_2026-001.pdf" {
		t.Errorf("filename = %s, want factura_2026-001.pdf", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if len(data) == 0 || string(data[:4]) != "%PDF" {
		t.Errorf("output does not look like a PDF")
	}
}

func TestRenderWithoutClientLeavesBlankBlock(t *testing.T) {
	r, err := NewInvoiceRenderer(testIssuer(), t.TempDir())
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	inv := model.Invoice{
		ID:          2,
		Number:      "2026-002",
		Date:        time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Concept:     "Servicios",
		TaxableBase: decimal.NewFromInt(100),
		VATRate:     decimal.NewFromInt(21),
		Total:       decimal.NewFromInt(121),
	}

	if _, err := r.Render(inv); err != nil {
		t.Fatalf("render without client: %v", err)
	}
}
