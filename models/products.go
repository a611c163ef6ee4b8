package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a single sellable item. Every product belongs to exactly
// one category; deleting a category cascades to its products at the
// database level.
type Product struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name" gorm:"size:255;not null;index"`
	CategoryID uint            `json:"category_id" gorm:"not null;index"`
	Category   Category        `json:"category" gorm:"foreignKey:CategoryID"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Active     bool            `json:"active" gorm:"not null;default:true;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (p *Product) TableName() string {
	return "products"
}
