package models

import "time"

// Customer represents a registered customer of the store.
type Customer struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"type:varchar(255);not null"`
	Email      string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone      *string `gorm:"type:varchar(11)"`
	NationalID string  `gorm:"column:national_id;type:varchar(11);not null;uniqueIndex"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Customer) TableName() string {
	return "customers"
}
