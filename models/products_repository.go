package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// Create inserts the product and reloads it so the generated id,
// timestamps and the category association are populated.
func (r *ProductsRepository) Create(p *Product) error {
	if err := r.db.Create(p).Error; err != nil {
		return err
	}
	return r.db.Preload("Category").First(p, p.ID).Error
}

// GetAll returns every product with its category, newest first.
func (r *ProductsRepository) GetAll() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("Category").
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("Category").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Update applies a partial column update and returns the refreshed row
// with its category. An empty field map leaves the row untouched.
func (r *ProductsRepository) Update(id uint, fields map[string]any) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if len(fields) > 0 {
		if err := r.db.Model(&product).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	if err := r.db.Preload("Category").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes the row and reports whether one existed.
func (r *ProductsRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&Product{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
