package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a received (purchase) document, optionally backed by a stored
// receipt file. Same derivation rules as Invoice.
type Expense struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceNumber string          `gorm:"type:varchar(50);not null;index" json:"invoice_number"` // number of the originating purchase invoice
	Date          time.Time       `gorm:"not null;index" json:"date"`
	TaxableBase   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"taxable_base"`
	VATRate       decimal.Decimal `gorm:"column:vat_rate;type:decimal(10,4);not null" json:"vat_rate"`
	Total         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total"`
	Description   string          `gorm:"type:text" json:"description"`

	// ReceiptFile is the stored receipt filename under the receipts directory,
	// derived from the expense id. Empty when no receipt was uploaded.
	ReceiptFile string `gorm:"type:varchar(255)" json:"receipt_file"`

	SupplierID *uint     `gorm:"index" json:"supplier_id"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
