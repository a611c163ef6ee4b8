package models

import "time"

// Category groups products. Categories are managed administratively and
// are read-only through the public API; products reference them by id.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Active    bool      `json:"active" gorm:"not null;default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) TableName() string {
	return "product_categories"
}
