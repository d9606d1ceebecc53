package model

import "time"

// Client is a counterparty that invoices are issued to.
// Only the name is mandatory; tax id and contact fields may be empty.
type Client struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	TaxID     string    `gorm:"column:tax_id;type:varchar(50)" json:"tax_id"`
	Address   string    `gorm:"type:text" json:"address"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
