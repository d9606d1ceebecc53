package service

import (
	"context"
	"testing"

	"facturas/internal/model"
	"facturas/internal/repository"

	"gorm.io/gorm"
)

func newClientService(db *gorm.DB) ClientService {
	return NewClientService(
		repository.NewClientRepository(db),
		repository.NewInvoiceRepository(db),
		repository.NewTransactionManager(db),
	)
}

func TestCreateAndListClients(t *testing.T) {
	db := setupTestDB(t)
	svc := newClientService(db)

	first, err := svc.CreateClient(context.Background(), CreateClientRequest{Name: "Acme SL", TaxID: "B12345678"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.CreateClient(context.Background(), CreateClientRequest{Name: "Beta SA"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	clients, err := svc.GetClients(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("got %d clients, want 2", len(clients))
	}
	// Newest first.
	if clients[0].ID != second.ID || clients[1].ID != first.ID {
		t.Errorf("order = %d, %d; want newest first", clients[0].ID, clients[1].ID)
	}
}

func TestDeleteClientNullifiesInvoices(t *testing.T) {
	db := setupTestDB(t)
	client := seedClient(t, db, "Acme SL")
	invoiceSvc := newInvoiceService(db)
	if _, err := invoiceSvc.CreateInvoice(context.Background(), CreateInvoiceRequest{
		Number: "2026-001", Date: "2026-01-01", Concept: "Servicios",
		TaxableBase: "100", VATRate: "21", ClientID: client.ID,
	}); err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	svc := newClientService(db)
	if err := svc.DeleteClient(context.Background(), client.ID); err != nil {
		t.Fatalf("delete client: %v", err)
	}

	var inv model.Invoice
	if err := db.First(&inv).Error; err != nil {
		t.Fatalf("invoice gone after client delete: %v", err)
	}
	if inv.ClientID != nil {
		t.Errorf("client_id = %v, want NULL", *inv.ClientID)
	}
}

func TestDeleteClientAbsentIDIsNoop(t *testing.T) {
	db := setupTestDB(t)
	svc := newClientService(db)

	if err := svc.DeleteClient(context.Background(), 404); err != nil {
		t.Fatalf("delete absent id: %v", err)
	}
}
