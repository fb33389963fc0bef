package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is a monetary obligation. CustomerID is nullable so an individual
// delete can detach the debt from its owner before removing the row; the
// currency reference is shared and never cascades.
type Debt struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DueDate    Date            `gorm:"type:date;not null"`
	CustomerID *uint           `gorm:"index"`
	CurrencyID uint            `gorm:"index;not null"`
	Currency   Currency        `gorm:"foreignKey:CurrencyID;references:ID"`
}
