package models

import "time"

// Customer owns its debts: deleting a customer deletes every debt that
// references it. Password holds a bcrypt hash, never the raw value.
type Customer struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"size:255;not null"`
	Surname   string `gorm:"size:255;not null"`
	Country   string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null;index"`
	Password  string `gorm:"size:255;not null"`
	Debts     []Debt `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
