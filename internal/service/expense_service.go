package service

import (
	"context"
	"fmt"
	"io"

	"facturas/internal/model"
	"facturas/internal/repository"
	"facturas/internal/storage"
	"facturas/internal/tax"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

// ReceiptUpload is an optional receipt file attached to an expense.
type ReceiptUpload struct {
	Filename string
	Data     io.Reader
}

type CreateExpenseRequest struct {
	InvoiceNumber string // number of the originating purchase invoice
	SupplierID    uint
	Date          string // YYYY-MM-DD
	TaxableBase   string
	VATRate       string
	Description   string
	Receipt       *ReceiptUpload
}

type ExpenseResponse struct {
	ID            uint   `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	Date          string `json:"date"`
	TaxableBase   string `json:"taxable_base"`
	VATRate       string `json:"vat_rate"`
	VATAmount     string `json:"vat_amount"`
	Total         string `json:"total"`
	Description   string `json:"description"`
	ReceiptFile   string `json:"receipt_file,omitempty"`
	SupplierID    *uint  `json:"supplier_id"`
	SupplierName  string `json:"supplier_name,omitempty"`
}

type ExpenseListResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	TotalBase string            `json:"total_base"`
	TotalVAT  string            `json:"total_vat"`
	Total     string            `json:"total"`
}

// --- Interface ---

type ExpenseService interface {
	// CreateExpense validates the date and supplier, derives the total, and
	// persists the expense. The receipt, when present, is written inside the
	// same transaction so record and file cannot diverge on failure.
	CreateExpense(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetExpensesWithTotals(ctx context.Context) (ExpenseListResponse, error)
	// DeleteExpense removes the record and then its stored receipt file.
	// Deleting an absent id is a no-op; a missing receipt file is tolerated.
	DeleteExpense(ctx context.Context, id uint) error
	// ReceiptPath resolves the on-disk location of an expense's receipt.
	ReceiptPath(ctx context.Context, id uint) (string, error)
}

type expenseService struct {
	expenseRepo  repository.ExpenseRepository
	supplierRepo repository.SupplierRepository
	receipts     *storage.ReceiptStore
	txManager    repository.TransactionManager
	log          zerolog.Logger
}

func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	supplierRepo repository.SupplierRepository,
	receipts *storage.ReceiptStore,
	txManager repository.TransactionManager,
	log zerolog.Logger,
) ExpenseService {
	return &expenseService{
		expenseRepo:  expenseRepo,
		supplierRepo: supplierRepo,
		receipts:     receipts,
		txManager:    txManager,
		log:          log,
	}
}

// --- Implementation ---

func (s *expenseService) CreateExpense(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return ExpenseResponse{}, err
	}

	base, err := decimal.NewFromString(req.TaxableBase)
	if err != nil {
		return ExpenseResponse{}, fmt.Errorf("invalid taxable_base: %w", err)
	}
	rate, err := decimal.NewFromString(req.VATRate)
	if err != nil {
		return ExpenseResponse{}, fmt.Errorf("invalid vat_rate: %w", err)
	}

	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		if isRecordNotFound(err) {
			return ExpenseResponse{}, fmt.Errorf("supplier %d: %w", req.SupplierID, ErrNotFound)
		}
		return ExpenseResponse{}, fmt.Errorf("failed to look up supplier: %w", err)
	}

	supplierID := req.SupplierID
	expense := model.Expense{
		InvoiceNumber: req.InvoiceNumber,
		Date:          date,
		TaxableBase:   base,
		VATRate:       rate,
		Total:         tax.Total(base, rate),
		Description:   req.Description,
		SupplierID:    &supplierID,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.expenseRepo.Create(txCtx, &expense); createErr != nil {
			return fmt.Errorf("failed to create expense: %w", createErr)
		}
		if req.Receipt == nil {
			return nil
		}

		name, saveErr := s.receipts.Save(expense.ID, req.Receipt.Filename, req.Receipt.Data)
		if saveErr != nil {
			return fmt.Errorf("failed to store receipt: %w", saveErr)
		}
		if setErr := s.expenseRepo.SetReceiptFile(txCtx, expense.ID, name); setErr != nil {
			if rmErr := s.receipts.Remove(name); rmErr != nil {
				s.log.Warn().Err(rmErr).Str("receipt", name).Msg("orphan receipt file left behind")
			}
			return fmt.Errorf("failed to record receipt file: %w", setErr)
		}
		expense.ReceiptFile = name
		return nil
	})
	if err != nil {
		return ExpenseResponse{}, err
	}

	return toExpenseResponse(expense), nil
}

func (s *expenseService) GetExpensesWithTotals(ctx context.Context) (ExpenseListResponse, error) {
	expenses, err := s.expenseRepo.ListByDate(ctx)
	if err != nil {
		return ExpenseListResponse{}, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	result := ExpenseListResponse{Expenses: make([]ExpenseResponse, 0, len(expenses))}
	totalBase, totalVAT, totalTotal := decimal.Zero, decimal.Zero, decimal.Zero
	for _, e := range expenses {
		result.Expenses = append(result.Expenses, toExpenseResponse(e))
		totalBase = totalBase.Add(e.TaxableBase)
		totalVAT = totalVAT.Add(tax.VATAmount(e.TaxableBase, e.VATRate))
		totalTotal = totalTotal.Add(e.Total)
	}
	result.TotalBase = totalBase.StringFixed(2)
	result.TotalVAT = totalVAT.StringFixed(2)
	result.Total = totalTotal.StringFixed(2)
	return result, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id uint) error {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to fetch expense: %w", err)
	}

	if _, err := s.expenseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if expense.ReceiptFile != "" {
		if err := s.receipts.Remove(expense.ReceiptFile); err != nil {
			// The record is gone but the file is not: surface the mismatch.
			s.log.Warn().Err(err).
				Uint("expense_id", id).
				Str("receipt", expense.ReceiptFile).
				Msg("expense deleted but receipt file removal failed")
		}
	}
	return nil
}

func (s *expenseService) ReceiptPath(ctx context.Context, id uint) (string, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return "", fmt.Errorf("expense %d: %w", id, ErrNotFound)
		}
		return "", fmt.Errorf("failed to fetch expense: %w", err)
	}
	if expense.ReceiptFile == "" {
		return "", fmt.Errorf("expense %d has no receipt: %w", id, ErrNotFound)
	}

	path, err := s.receipts.Path(expense.ReceiptFile)
	if err != nil {
		return "", fmt.Errorf("receipt for expense %d: %w", id, ErrNotFound)
	}
	return path, nil
}

// --- Helpers ---

func toExpenseResponse(e model.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:            e.ID,
		InvoiceNumber: e.InvoiceNumber,
		Date:          e.Date.Format(dateLayout),
		TaxableBase:   e.TaxableBase.StringFixed(2),
		VATRate:       e.VATRate.String(),
		VATAmount:     tax.VATAmount(e.TaxableBase, e.VATRate).StringFixed(2),
		Total:         e.Total.StringFixed(2),
		Description:   e.Description,
		ReceiptFile:   e.ReceiptFile,
		SupplierID:    e.SupplierID,
	}
	if e.Supplier != nil {
		resp.SupplierName = e.Supplier.Name
	}
	return resp
}
