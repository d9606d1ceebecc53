package service

import (
	"context"
	"fmt"
	"time"

	"facturas/internal/model"
	"facturas/internal/repository"
	"facturas/internal/tax"

	"github.com/shopspring/decimal"
)

// Dates cross the API boundary as YYYY-MM-DD.
const dateLayout = "2006-01-02"

// --- DTOs ---

type CreateInvoiceRequest struct {
	Number      string `json:"number" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Concept     string `json:"concept" binding:"required"`
	TaxableBase string `json:"taxable_base" binding:"required"`
	VATRate     string `json:"vat_rate" binding:"required"`
	ClientID    uint   `json:"client_id" binding:"required"`
}

type InvoiceResponse struct {
	ID          uint   `json:"id"`
	Number      string `json:"number"`
	Date        string `json:"date"`
	Concept     string `json:"concept"`
	TaxableBase string `json:"taxable_base"`
	VATRate     string `json:"vat_rate"`
	VATAmount   string `json:"vat_amount"`
	Total       string `json:"total"`
	ClientID    *uint  `json:"client_id"`
	ClientName  string `json:"client_name,omitempty"`
}

// InvoiceListResponse carries the full date-ascending collection plus the
// three running sums shown on the listing view.
type InvoiceListResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalBase string            `json:"total_base"`
	TotalVAT  string            `json:"total_vat"`
	Total     string            `json:"total"`
}

// --- Interface ---

type InvoiceService interface {
	// CreateInvoice validates the date and the owning client, derives the
	// total from the taxable base and VAT rate, and persists the invoice.
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetInvoicesWithTotals(ctx context.Context) (InvoiceListResponse, error)
	// GetInvoice returns the invoice with its client preloaded, for rendering.
	GetInvoice(ctx context.Context, id uint) (*model.Invoice, error)
	// DeleteInvoice removes an invoice; deleting an absent id is a no-op.
	DeleteInvoice(ctx context.Context, id uint) error
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
	}
}

// --- Implementation ---

func (s *invoiceService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return InvoiceResponse{}, err
	}

	base, err := decimal.NewFromString(req.TaxableBase)
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("invalid taxable_base: %w", err)
	}
	rate, err := decimal.NewFromString(req.VATRate)
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("invalid vat_rate: %w", err)
	}

	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		if isRecordNotFound(err) {
			return InvoiceResponse{}, fmt.Errorf("client %d: %w", req.ClientID, ErrNotFound)
		}
		return InvoiceResponse{}, fmt.Errorf("failed to look up client: %w", err)
	}

	clientID := req.ClientID
	invoice := model.Invoice{
		Number:      req.Number,
		Date:        date,
		Concept:     req.Concept,
		TaxableBase: base,
		VATRate:     rate,
		Total:       tax.Total(base, rate),
		ClientID:    &clientID,
	}
	if err := s.invoiceRepo.Create(ctx, &invoice); err != nil {
		return InvoiceResponse{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	return toInvoiceResponse(invoice), nil
}

func (s *invoiceService) GetInvoicesWithTotals(ctx context.Context) (InvoiceListResponse, error) {
	invoices, err := s.invoiceRepo.ListByDate(ctx)
	if err != nil {
		return InvoiceListResponse{}, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	result := InvoiceListResponse{Invoices: make([]InvoiceResponse, 0, len(invoices))}
	totalBase, totalVAT, totalTotal := decimal.Zero, decimal.Zero, decimal.Zero
	for _, inv := range invoices {
		result.Invoices = append(result.Invoices, toInvoiceResponse(inv))
		totalBase = totalBase.Add(inv.TaxableBase)
		totalVAT = totalVAT.Add(tax.VATAmount(inv.TaxableBase, inv.VATRate))
		totalTotal = totalTotal.Add(inv.Total)
	}
	result.TotalBase = totalBase.StringFixed(2)
	result.TotalVAT = totalVAT.StringFixed(2)
	result.Total = totalTotal.StringFixed(2)
	return result, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id uint) (*model.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByIDWithClient(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("invoice %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id uint) error {
	if _, err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

// --- Helpers ---

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return t, nil
}

func toInvoiceResponse(inv model.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		Date:        inv.Date.Format(dateLayout),
		Concept:     inv.Concept,
		TaxableBase: inv.TaxableBase.StringFixed(2),
		VATRate:     inv.VATRate.String(),
		VATAmount:   tax.VATAmount(inv.TaxableBase, inv.VATRate).StringFixed(2),
		Total:       inv.Total.StringFixed(2),
		ClientID:    inv.ClientID,
	}
	if inv.Client != nil {
		resp.ClientName = inv.Client.Name
	}
	return resp
}
