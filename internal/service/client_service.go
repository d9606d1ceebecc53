package service

import (
	"context"
	"errors"
	"fmt"

	"facturas/internal/model"
	"facturas/internal/repository"

	"gorm.io/gorm"
)

// --- DTOs ---

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type ClientResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// --- Interface ---

type ClientService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	GetClients(ctx context.Context) ([]ClientResponse, error)
	// DeleteClient removes a client and nullifies the client reference on its
	// invoices in the same transaction. Deleting an absent id is a no-op.
	DeleteClient(ctx context.Context, id uint) error
}

type clientService struct {
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
	txManager   repository.TransactionManager
}

func NewClientService(
	clientRepo repository.ClientRepository,
	invoiceRepo repository.InvoiceRepository,
	txManager repository.TransactionManager,
) ClientService {
	return &clientService{
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
		txManager:   txManager,
	}
}

// --- Implementation ---

func (s *clientService) CreateClient(ctx context.Context, req CreateClientRequest) (ClientResponse, error) {
	client := model.Client{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	}
	if err := s.clientRepo.Create(ctx, &client); err != nil {
		return ClientResponse{}, fmt.Errorf("failed to create client: %w", err)
	}
	return toClientResponse(client), nil
}

func (s *clientService) GetClients(ctx context.Context) ([]ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}

	result := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		result = append(result, toClientResponse(c))
	}
	return result, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id uint) error {
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		existed, err := s.clientRepo.Delete(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}
		if !existed {
			return nil
		}
		if err := s.invoiceRepo.NullifyClient(txCtx, id); err != nil {
			return fmt.Errorf("failed to detach invoices: %w", err)
		}
		return nil
	})
}

// --- Helpers ---

func toClientResponse(c model.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		TaxID:   c.TaxID,
		Address: c.Address,
		Email:   c.Email,
		Phone:   c.Phone,
	}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
