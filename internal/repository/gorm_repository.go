// internal/repository/gorm_repository.go
package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/soleshelf/inventory-backend/internal/models"
)

type gormShoeRepository struct {
	db *gorm.DB
}

func NewGormShoeRepository(db *gorm.DB) ShoeRepository {
	return &gormShoeRepository{db: db}
}

func (r *gormShoeRepository) ListShoes(page, limit int) ([]models.Shoe, error) {
	query := r.db.Where("is_available = ?", true).
		Preload("Variations").
		Order("name ASC")

	if limit > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	var shoes []models.Shoe
	if err := query.Find(&shoes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch shoes: %w", err)
	}

	return shoes, nil
}

func (r *gormShoeRepository) GetShoeByID(id uint) (*models.Shoe, error) {
	var shoe models.Shoe
	if err := r.db.Preload("Variations").First(&shoe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &shoe, nil
}

func (r *gormShoeRepository) FindByBrand(brand string) ([]models.Shoe, error) {
	pattern := "%" + strings.ToLower(brand) + "%"

	var shoes []models.Shoe
	if err := r.db.Where("is_available = ?", true).
		Where("LOWER(brand) LIKE ?", pattern).
		Preload("Variations").
		Order("name ASC").
		Find(&shoes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch shoes by brand: %w", err)
	}

	return shoes, nil
}

func (r *gormShoeRepository) SearchShoes(term string) ([]models.Shoe, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var shoes []models.Shoe
	if err := r.db.Where("is_available = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern).
		Preload("Variations").
		Order("name ASC").
		Find(&shoes).Error; err != nil {
		return nil, fmt.Errorf("failed to search shoes: %w", err)
	}

	return shoes, nil
}

func (r *gormShoeRepository) CreateShoe(shoe *models.Shoe) error {
	if err := r.db.Create(shoe).Error; err != nil {
		return fmt.Errorf("failed to create shoe: %w", err)
	}
	return nil
}

func (r *gormShoeRepository) UpdateShoe(shoe *models.Shoe) error {
	now := time.Now()
	shoe.UpdatedAt = &now

	if err := r.db.Save(shoe).Error; err != nil {
		return fmt.Errorf("failed to update shoe: %w", err)
	}
	return nil
}

func (r *gormShoeRepository) SoftDeleteShoe(id uint) (bool, error) {
	result := r.db.Model(&models.Shoe{}).
		Where("id = ? AND is_available = ?", id, true).
		Updates(map[string]interface{}{
			"is_available": false,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete shoe: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *gormShoeRepository) ShoeExists(name, brand string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Shoe{}).
		Where("is_available = ?", true).
		Where("LOWER(name) = ? AND LOWER(brand) = ?",
			strings.ToLower(name), strings.ToLower(brand)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check shoe existence: %w", err)
	}

	return count > 0, nil
}

func (r *gormShoeRepository) ListActiveVariations(shoeID uint) ([]models.ShoeColorVariation, error) {
	var variations []models.ShoeColorVariation
	if err := r.db.Where("shoe_id = ? AND is_active = ?", shoeID, true).
		Order("color_name ASC").
		Find(&variations).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch variations: %w", err)
	}

	return variations, nil
}

func (r *gormShoeRepository) GetVariationByID(id uint) (*models.ShoeColorVariation, error) {
	var variation models.ShoeColorVariation
	if err := r.db.First(&variation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &variation, nil
}

func (r *gormShoeRepository) CreateVariation(variation *models.ShoeColorVariation) error {
	if err := r.db.Create(variation).Error; err != nil {
		return fmt.Errorf("failed to create variation: %w", err)
	}
	return nil
}

func (r *gormShoeRepository) UpdateVariation(variation *models.ShoeColorVariation) error {
	if err := r.db.Save(variation).Error; err != nil {
		return fmt.Errorf("failed to update variation: %w", err)
	}
	return nil
}

func (r *gormShoeRepository) DeleteVariation(id uint) error {
	result := r.db.Delete(&models.ShoeColorVariation{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete variation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormShoeRepository) VariationExists(shoeID uint, colorName string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.ShoeColorVariation{}).
		Where("shoe_id = ? AND LOWER(color_name) = ?", shoeID, strings.ToLower(colorName)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check variation existence: %w", err)
	}

	return count > 0, nil
}

func (r *gormShoeRepository) ChangeCurrentColor(shoeID uint, colorName string) (string, error) {
	var variation models.ShoeColorVariation
	err := r.db.Where("shoe_id = ? AND LOWER(color_name) = ? AND is_active = ?",
		shoeID, strings.ToLower(colorName), true).
		First(&variation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("database error: %w", err)
	}

	if err := r.db.Model(&models.Shoe{}).
		Where("id = ?", shoeID).
		Updates(map[string]interface{}{
			"current_color": variation.ColorName,
			"updated_at":    time.Now(),
		}).Error; err != nil {
		return "", fmt.Errorf("failed to change current color: %w", err)
	}

	return variation.ColorName, nil
}

func (r *gormShoeRepository) ListAvailableColorNames(shoeID uint) ([]string, error) {
	var names []string
	if err := r.db.Model(&models.ShoeColorVariation{}).
		Where("shoe_id = ? AND is_active = ? AND stock_quantity > 0", shoeID, true).
		Order("color_name ASC").
		Pluck("color_name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch available colors: %w", err)
	}

	return names, nil
}
