package models

import "time"

// Currency is a read-mostly reference record describing a monetary unit.
// Rows are seeded at startup; codes are unique by seeding discipline, not constraint.
type Currency struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"size:64;not null"`
	Code      string `gorm:"size:3;not null;index"`
	Symbol    string `gorm:"size:8;not null"`
}
