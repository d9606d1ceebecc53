package repository

import (
	"context"

	"facturas/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	FindByID(ctx context.Context, id uint) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *model.Supplier) error {
	return dbFrom(ctx, r.db).Create(supplier).Error
}

func (r *supplierRepository) FindByID(ctx context.Context, id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := dbFrom(ctx, r.db).First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := dbFrom(ctx, r.db).Order("id desc").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *supplierRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := dbFrom(ctx, r.db).Delete(&model.Supplier{}, id)
	return res.RowsAffected > 0, res.Error
}
