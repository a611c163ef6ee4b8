package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"product-api/models"
)

// Seed wipes both tables and loads the demo dataset. Explicit opt-in
// only: it truncates.
func Seed(db *gorm.DB) error {
	if err := db.Exec("TRUNCATE products, product_categories RESTART IDENTITY CASCADE").Error; err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	categories := []models.Category{
		{Name: "Electronics", Active: true},
		{Name: "Clothing", Active: true},
		{Name: "Books", Active: true},
		{Name: "Food & Beverages", Active: true},
		{Name: "Home & Garden", Active: true},
		{Name: "Sports & Outdoors", Active: true},
		{Name: "Toys & Games", Active: true},
		{Name: "Health & Beauty", Active: true},
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	products := []models.Product{
		{Name: "iPhone 15 Pro", CategoryID: categories[0].ID, Price: price("999.99"), Active: true},
		{Name: "Samsung Galaxy S24", CategoryID: categories[0].ID, Price: price("899.99"), Active: true},
		{Name: `MacBook Pro 16"`, CategoryID: categories[0].ID, Price: price("2499.99"), Active: true},
		{Name: "Sony WH-1000XM5", CategoryID: categories[0].ID, Price: price("399.99"), Active: true},
		{Name: "Nike Air Max Sneakers", CategoryID: categories[1].ID, Price: price("129.99"), Active: true},
		{Name: "Levi's 501 Jeans", CategoryID: categories[1].ID, Price: price("89.99"), Active: true},
		{Name: "Adidas Hoodie", CategoryID: categories[1].ID, Price: price("59.99"), Active: true},
		{Name: "The Great Gatsby", CategoryID: categories[2].ID, Price: price("14.99"), Active: true},
		{Name: "Clean Code", CategoryID: categories[2].ID, Price: price("39.99"), Active: true},
		{Name: "Atomic Habits", CategoryID: categories[2].ID, Price: price("24.99"), Active: true},
		{Name: "Organic Coffee Beans", CategoryID: categories[3].ID, Price: price("19.99"), Active: true},
		{Name: "Green Tea Set", CategoryID: categories[3].ID, Price: price("29.99"), Active: true},
		{Name: "Plant Pot Set", CategoryID: categories[4].ID, Price: price("34.99"), Active: true},
		{Name: "LED Desk Lamp", CategoryID: categories[4].ID, Price: price("45.99"), Active: true},
		{Name: "Yoga Mat", CategoryID: categories[5].ID, Price: price("29.99"), Active: true},
		{Name: "Camping Tent", CategoryID: categories[5].ID, Price: price("199.99"), Active: true},
		{Name: "LEGO Star Wars Set", CategoryID: categories[6].ID, Price: price("79.99"), Active: true},
		{Name: "PlayStation 5 Controller", CategoryID: categories[6].ID, Price: price("69.99"), Active: true},
		{Name: "Vitamin D Supplements", CategoryID: categories[7].ID, Price: price("19.99"), Active: true},
		{Name: "Facial Cleanser", CategoryID: categories[7].ID, Price: price("15.99"), Active: true},
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	log.Printf("seeded %d categories and %d products", len(categories), len(products))
	return nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
