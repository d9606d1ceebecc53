package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is an issued (sales) document. Total is derived from the taxable
// base and VAT rate at creation time and never recomputed; invoices are
// immutable once created.
type Invoice struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Number      string          `gorm:"type:varchar(50);not null;index" json:"number"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Concept     string          `gorm:"type:text;not null" json:"concept"`
	TaxableBase decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"taxable_base"`
	VATRate     decimal.Decimal `gorm:"column:vat_rate;type:decimal(10,4);not null" json:"vat_rate"` // percentage, e.g. 21
	Total       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total"`                    // taxable_base + taxable_base*vat_rate/100

	// ClientID is nullified when the owning client is deleted; exports render
	// blank counterparty fields for such invoices.
	ClientID *uint   `gorm:"index" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
