// internal/repository/repository.go
package repository

import (
	"errors"

	"github.com/soleshelf/inventory-backend/internal/models"
)

// ErrNotFound is returned when a referenced identity does not exist in the
// store. Both backends translate their native miss into this value.
var ErrNotFound = errors.New("record not found")

// ShoeRepository is the storage-layer contract: set-based CRUD over shoes
// and their color variations, keyed by identity. One implementation per
// backend; callers depend only on this interface.
type ShoeRepository interface {
	// ListShoes returns available shoes with variations attached, ordered
	// by name ascending. limit <= 0 means no paging.
	ListShoes(page, limit int) ([]models.Shoe, error)
	GetShoeByID(id uint) (*models.Shoe, error)
	// FindByBrand matches the brand by case-insensitive substring,
	// available shoes only, name ascending.
	FindByBrand(brand string) ([]models.Shoe, error)
	// SearchShoes matches name, brand or description by case-insensitive
	// substring, available shoes only, name ascending.
	SearchShoes(term string) ([]models.Shoe, error)
	CreateShoe(shoe *models.Shoe) error
	// UpdateShoe overwrites the row and stamps the last-update time.
	UpdateShoe(shoe *models.Shoe) error
	// SoftDeleteShoe flips the availability flag and stamps the
	// last-update time. Reports whether a row was affected.
	SoftDeleteShoe(id uint) (bool, error)
	// ShoeExists reports whether an available shoe with this name exists
	// under this brand, both compared case-insensitively.
	ShoeExists(name, brand string) (bool, error)

	ListActiveVariations(shoeID uint) ([]models.ShoeColorVariation, error)
	GetVariationByID(id uint) (*models.ShoeColorVariation, error)
	CreateVariation(variation *models.ShoeColorVariation) error
	UpdateVariation(variation *models.ShoeColorVariation) error
	// DeleteVariation removes the row for good; shoe soft-delete never
	// cascades here.
	DeleteVariation(id uint) error
	// VariationExists reports whether the shoe already has a variation
	// with this color name, compared case-insensitively.
	VariationExists(shoeID uint, colorName string) (bool, error)

	// ChangeCurrentColor looks up an active variation of the shoe whose
	// color name matches case-insensitively. On a hit it sets the shoe's
	// current color to the variation's stored casing, stamps the
	// last-update time and returns that name; otherwise ErrNotFound.
	// Stock is untouched.
	ChangeCurrentColor(shoeID uint, colorName string) (string, error)
	// ListAvailableColorNames returns color names of variations that are
	// active and have stock.
	ListAvailableColorNames(shoeID uint) ([]string, error)
}
