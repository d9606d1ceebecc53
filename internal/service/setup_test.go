package service

import (
	"fmt"
	"testing"

	"facturas/internal/model"
	"facturas/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.Client{}, &model.Supplier{}, &model.Invoice{}, &model.Expense{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedClient(t *testing.T, db *gorm.DB, name string) model.Client {
	t.Helper()
	c := model.Client{Name: name, TaxID: "B12345678"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) model.Supplier {
	t.Helper()
	s := model.Supplier{Name: name, TaxID: "A87654321"}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed supplier: %v", err)
	}
	return s
}

func newInvoiceService(db *gorm.DB) InvoiceService {
	return NewInvoiceService(repository.NewInvoiceRepository(db), repository.NewClientRepository(db))
}
