package repository

import (
	"context"

	"facturas/internal/model"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	FindByID(ctx context.Context, id uint) (*model.Invoice, error)
	FindByIDWithClient(ctx context.Context, id uint) (*model.Invoice, error)
	// ListByDate returns all invoices ordered by date ascending with the
	// owning client preloaded (nil for nullified references).
	ListByDate(ctx context.Context) ([]model.Invoice, error)
	Delete(ctx context.Context, id uint) (bool, error)
	// NullifyClient clears the client reference on every invoice owned by
	// clientID. Used when the client is deleted.
	NullifyClient(ctx context.Context, clientID uint) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return dbFrom(ctx, r.db).Create(invoice).Error
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uint) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := dbFrom(ctx, r.db).First(&invoice, id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindByIDWithClient(ctx context.Context, id uint) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := dbFrom(ctx, r.db).Preload("Client").First(&invoice, id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) ListByDate(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := dbFrom(ctx, r.db).Preload("Client").Order("date asc").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := dbFrom(ctx, r.db).Delete(&model.Invoice{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *invoiceRepository) NullifyClient(ctx context.Context, clientID uint) error {
	return dbFrom(ctx, r.db).
		Model(&model.Invoice{}).
		Where("client_id = ?", clientID).
		Update("client_id", nil).Error
}
