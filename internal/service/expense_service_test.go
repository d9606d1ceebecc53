package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"facturas/internal/model"
	"facturas/internal/repository"
	"facturas/internal/storage"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func newExpenseService(t *testing.T, db *gorm.DB) (ExpenseService, *storage.ReceiptStore) {
	t.Helper()
	store, err := storage.NewReceiptStore(t.TempDir())
	if err != nil {
		t.Fatalf("receipt store: %v", err)
	}
	svc := NewExpenseService(
		repository.NewExpenseRepository(db),
		repository.NewSupplierRepository(db),
		store,
		repository.NewTransactionManager(db),
		zerolog.Nop(),
	)
	return svc, store
}

func TestCreateExpenseComputesTotalAndStoresReceipt(t *testing.T) {
	db := setupTestDB(t)
	supplier := seedSupplier(t, db, "Papelería López")
	svc, store := newExpenseService(t, db)

	exp, err := svc.CreateExpense(context.Background(), CreateExpenseRequest{
		InvoiceNumber: "F-2026-77",
		SupplierID:    supplier.ID,
		Date:          "2026-02-01",
		TaxableBase:   "200",
		VATRate:       "10",
		Description:   "Material de oficina",
		Receipt:       &ReceiptUpload{Filename: "ticket.pdf", Data: strings.NewReader("%PDF-fake")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if exp.Total != "220.00" {
		t.Errorf("total = %s, want 220.00", exp.Total)
	}
	if exp.ReceiptFile == "" {
		t.Fatalf("expected a stored receipt filename")
	}
	if !store.Exists(exp.ReceiptFile) {
		t.Errorf("receipt file %s not on disk", exp.ReceiptFile)
	}

	var stored model.Expense
	if err := db.First(&stored, exp.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.ReceiptFile != exp.ReceiptFile {
		t.Errorf("stored receipt = %q, want %q", stored.ReceiptFile, exp.ReceiptFile)
	}
}

func TestCreateExpenseMissingSupplier(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newExpenseService(t, db)

	_, err := svc.CreateExpense(context.Background(), CreateExpenseRequest{
		InvoiceNumber: "F-1",
		SupplierID:    42,
		Date:          "2026-02-01",
		TaxableBase:   "10",
		VATRate:       "21",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteExpenseRemovesRecordAndReceipt(t *testing.T) {
	db := setupTestDB(t)
	supplier := seedSupplier(t, db, "Papelería López")
	svc, store := newExpenseService(t, db)

	exp, err := svc.CreateExpense(context.Background(), CreateExpenseRequest{
		InvoiceNumber: "F-2026-78",
		SupplierID:    supplier.ID,
		Date:          "2026-02-02",
		TaxableBase:   "50",
		VATRate:       "21",
		Receipt:       &ReceiptUpload{Filename: "ticket.jpg", Data: strings.NewReader("jpeg")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteExpense(context.Background(), exp.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if store.Exists(exp.ReceiptFile) {
		t.Errorf("receipt file still present after delete")
	}
	var count int64
	if err := db.Model(&model.Expense{}).Where("id = ?", exp.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("record still present after delete")
	}
}

func TestDeleteExpenseAbsentIDIsNoop(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newExpenseService(t, db)

	if err := svc.DeleteExpense(context.Background(), 9999); err != nil {
		t.Fatalf("delete absent id: %v", err)
	}
}

func TestReceiptPathMissingReceipt(t *testing.T) {
	db := setupTestDB(t)
	supplier := seedSupplier(t, db, "Papelería López")
	svc, _ := newExpenseService(t, db)

	exp, err := svc.CreateExpense(context.Background(), CreateExpenseRequest{
		InvoiceNumber: "F-2026-79",
		SupplierID:    supplier.ID,
		Date:          "2026-02-03",
		TaxableBase:   "10",
		VATRate:       "4",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.ReceiptPath(context.Background(), exp.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for expense without receipt, got %v", err)
	}
}
