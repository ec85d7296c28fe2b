package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents an item on the menu.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description *string         `gorm:"type:varchar(255)"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  uint            `gorm:"not null;index"`
	Category    Category        `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Product) TableName() string {
	return "products"
}
