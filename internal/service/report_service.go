package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"facturas/internal/document"
	"facturas/internal/repository"
	"facturas/internal/tax"

	"github.com/shopspring/decimal"
)

// ExportFileName is the fixed annual export filename, overwritten per run.
const ExportFileName = "export_AT.xlsx"

// --- DTOs ---

type SummaryResponse struct {
	TotalIncome   string `json:"total_income"`
	TotalExpenses string `json:"total_expenses"`
	Profit        string `json:"profit"`
}

// --- Interface ---

type ReportService interface {
	// Summary returns all-time income, expense, and profit totals.
	Summary(ctx context.Context) (SummaryResponse, error)
	// BuildAnnualExport joins every invoice and expense with its counterparty
	// into the two EXPEDIDAS/RECIBIDAS row-sets, date ascending. Dangling
	// counterparty references yield blank name/tax-id fields.
	BuildAnnualExport(ctx context.Context) (document.AnnualExport, error)
	// WriteAnnualExport renders the export workbook to its fixed path and
	// returns that path.
	WriteAnnualExport(ctx context.Context) (string, error)
}

type reportService struct {
	invoiceRepo repository.InvoiceRepository
	expenseRepo repository.ExpenseRepository
	exportsDir  string
}

func NewReportService(
	invoiceRepo repository.InvoiceRepository,
	expenseRepo repository.ExpenseRepository,
	exportsDir string,
) ReportService {
	return &reportService{
		invoiceRepo: invoiceRepo,
		expenseRepo: expenseRepo,
		exportsDir:  exportsDir,
	}
}

// --- Implementation ---

func (s *reportService) Summary(ctx context.Context) (SummaryResponse, error) {
	invoices, err := s.invoiceRepo.ListByDate(ctx)
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	expenses, err := s.expenseRepo.ListByDate(ctx)
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	income, spent := decimal.Zero, decimal.Zero
	for _, inv := range invoices {
		income = income.Add(inv.Total)
	}
	for _, e := range expenses {
		spent = spent.Add(e.Total)
	}

	return SummaryResponse{
		TotalIncome:   income.StringFixed(2),
		TotalExpenses: spent.StringFixed(2),
		Profit:        income.Sub(spent).StringFixed(2),
	}, nil
}

func (s *reportService) BuildAnnualExport(ctx context.Context) (document.AnnualExport, error) {
	invoices, err := s.invoiceRepo.ListByDate(ctx)
	if err != nil {
		return document.AnnualExport{}, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	expenses, err := s.expenseRepo.ListByDate(ctx)
	if err != nil {
		return document.AnnualExport{}, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	export := document.AnnualExport{
		Issued:   make([]document.IssuedRow, 0, len(invoices)),
		Received: make([]document.ReceivedRow, 0, len(expenses)),
	}

	for _, inv := range invoices {
		row := document.IssuedRow{
			Date:    inv.Date,
			Number:  inv.Number,
			Concept: inv.Concept,
			Base:    inv.TaxableBase,
			Rate:    inv.VATRate,
			VAT:     tax.VATAmount(inv.TaxableBase, inv.VATRate),
			Total:   inv.Total,
		}
		if inv.Client != nil {
			row.TaxID = inv.Client.TaxID
			row.Name = inv.Client.Name
		}
		export.Issued = append(export.Issued, row)
	}

	for _, e := range expenses {
		row := document.ReceivedRow{
			Date:        e.Date,
			Number:      e.InvoiceNumber,
			Description: e.Description,
			Base:        e.TaxableBase,
			Rate:        e.VATRate,
			VAT:         tax.VATAmount(e.TaxableBase, e.VATRate),
			Total:       e.Total,
		}
		if e.Supplier != nil {
			row.TaxID = e.Supplier.TaxID
			row.Name = e.Supplier.Name
		}
		export.Received = append(export.Received, row)
	}

	return export, nil
}

func (s *reportService) WriteAnnualExport(ctx context.Context) (string, error) {
	export, err := s.BuildAnnualExport(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.exportsDir, 0o755); err != nil {
		return "", fmt.Errorf("create exports dir: %w", err)
	}
	path := filepath.Join(s.exportsDir, ExportFileName)
	if err := document.WriteWorkbook(export, path); err != nil {
		return "", err
	}
	return path, nil
}
