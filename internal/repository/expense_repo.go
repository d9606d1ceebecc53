package repository

import (
	"context"

	"facturas/internal/model"

	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	FindByID(ctx context.Context, id uint) (*model.Expense, error)
	ListByDate(ctx context.Context) ([]model.Expense, error)
	Delete(ctx context.Context, id uint) (bool, error)
	// SetReceiptFile records the stored receipt filename for an expense.
	SetReceiptFile(ctx context.Context, id uint, filename string) error
	NullifySupplier(ctx context.Context, supplierID uint) error
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	return dbFrom(ctx, r.db).Create(expense).Error
}

func (r *expenseRepository) FindByID(ctx context.Context, id uint) (*model.Expense, error) {
	var expense model.Expense
	if err := dbFrom(ctx, r.db).First(&expense, id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) ListByDate(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := dbFrom(ctx, r.db).Preload("Supplier").Order("date asc").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := dbFrom(ctx, r.db).Delete(&model.Expense{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *expenseRepository) SetReceiptFile(ctx context.Context, id uint, filename string) error {
	return dbFrom(ctx, r.db).
		Model(&model.Expense{}).
		Where("id = ?", id).
		Update("receipt_file", filename).Error
}

func (r *expenseRepository) NullifySupplier(ctx context.Context, supplierID uint) error {
	return dbFrom(ctx, r.db).
		Model(&model.Expense{}).
		Where("supplier_id = ?", supplierID).
		Update("supplier_id", nil).Error
}
