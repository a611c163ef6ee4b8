package models

import "gorm.io/gorm"

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// ListActive returns every active category ordered by name.
func (r *CategoriesRepository) ListActive() ([]Category, error) {
	var categories []Category
	if err := r.db.
		Where("active = ?", true).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Exists reports whether a category row with the given id is present.
// Used by the product validator for the referential check.
func (r *CategoriesRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.
		Model(&Category{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
