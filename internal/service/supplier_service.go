package service

import (
	"context"
	"fmt"

	"facturas/internal/model"
	"facturas/internal/repository"
)

// --- DTOs ---

type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type SupplierResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// --- Interface ---

type SupplierService interface {
	CreateSupplier(ctx context.Context, req CreateSupplierRequest) (SupplierResponse, error)
	GetSuppliers(ctx context.Context) ([]SupplierResponse, error)
	// DeleteSupplier removes a supplier and nullifies the supplier reference
	// on its expenses in the same transaction.
	DeleteSupplier(ctx context.Context, id uint) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	expenseRepo  repository.ExpenseRepository
	txManager    repository.TransactionManager
}

func NewSupplierService(
	supplierRepo repository.SupplierRepository,
	expenseRepo repository.ExpenseRepository,
	txManager repository.TransactionManager,
) SupplierService {
	return &supplierService{
		supplierRepo: supplierRepo,
		expenseRepo:  expenseRepo,
		txManager:    txManager,
	}
}

// --- Implementation ---

func (s *supplierService) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (SupplierResponse, error) {
	supplier := model.Supplier{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	}
	if err := s.supplierRepo.Create(ctx, &supplier); err != nil {
		return SupplierResponse{}, fmt.Errorf("failed to create supplier: %w", err)
	}
	return toSupplierResponse(supplier), nil
}

func (s *supplierService) GetSuppliers(ctx context.Context) ([]SupplierResponse, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suppliers: %w", err)
	}

	result := make([]SupplierResponse, 0, len(suppliers))
	for _, sup := range suppliers {
		result = append(result, toSupplierResponse(sup))
	}
	return result, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id uint) error {
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		existed, err := s.supplierRepo.Delete(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to delete supplier: %w", err)
		}
		if !existed {
			return nil
		}
		if err := s.expenseRepo.NullifySupplier(txCtx, id); err != nil {
			return fmt.Errorf("failed to detach expenses: %w", err)
		}
		return nil
	})
}

// --- Helpers ---

func toSupplierResponse(s model.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:      s.ID,
		Name:    s.Name,
		TaxID:   s.TaxID,
		Address: s.Address,
		Email:   s.Email,
		Phone:   s.Phone,
	}
}
