// internal/services/shoe_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/soleshelf/inventory-backend/internal/models"
	"github.com/soleshelf/inventory-backend/internal/repository"
	"github.com/soleshelf/inventory-backend/internal/utils"
)

// defaultVariationStock is the stock assigned to the base-color variation
// materialized at shoe creation.
const defaultVariationStock = 10

var (
	ErrShoeNotFound      = errors.New("shoe not found")
	ErrVariationNotFound = errors.New("variation not found")
	ErrDuplicateShoe     = errors.New("a shoe with this name already exists for this brand")
	ErrDuplicateColor    = errors.New("a variation with this color name already exists for this shoe")
	ErrColorNotAvailable = errors.New("requested color is not available for this shoe")
)

type ShoeService struct {
	repo repository.ShoeRepository
	log  *logrus.Logger
}

type CreateShoeRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Brand       string  `json:"brand" validate:"required,max=100"`
	Size        string  `json:"size" validate:"required,max=50"`
	BaseColor   string  `json:"base_color" validate:"required,max=30"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=500"`
	ImageURL    string  `json:"image_url,omitempty" validate:"omitempty,url,max=200"`
}

type UpdateShoeRequest struct {
	ID          uint    `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required,max=100"`
	Brand       string  `json:"brand" validate:"required,max=100"`
	Size        string  `json:"size" validate:"required,max=50"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=500"`
	ImageURL    string  `json:"image_url,omitempty" validate:"omitempty,url,max=200"`
}

type CreateVariationRequest struct {
	ColorName     string `json:"color_name" validate:"required,max=30"`
	HexCode       string `json:"hex_code" validate:"omitempty,hex_color_code"`
	StockQuantity int    `json:"stock_quantity" validate:"min=0"`
}

type UpdateVariationRequest struct {
	ColorName     string `json:"color_name" validate:"required,max=30"`
	HexCode       string `json:"hex_code" validate:"required,hex_color_code"`
	StockQuantity int    `json:"stock_quantity" validate:"min=0"`
	IsActive      bool   `json:"is_active"`
}

func NewShoeService(repo repository.ShoeRepository, log *logrus.Logger) *ShoeService {
	return &ShoeService{
		repo: repo,
		log:  log,
	}
}

// CreateShoe persists a new shoe and materializes its base color as the
// first variation with default stock and a derived hex code. The current
// color starts out equal to the base color.
func (s *ShoeService) CreateShoe(req *CreateShoeRequest) (*models.Shoe, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.repo.ShoeExists(req.Name, req.Brand)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicates: %w", err)
	}
	if exists {
		return nil, ErrDuplicateShoe
	}

	currentColor := req.BaseColor
	shoe := &models.Shoe{
		Name:         req.Name,
		Brand:        req.Brand,
		Size:         req.Size,
		BaseColor:    req.BaseColor,
		CurrentColor: &currentColor,
		Price:        req.Price,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		IsAvailable:  true,
	}

	if err := s.repo.CreateShoe(shoe); err != nil {
		return nil, err
	}

	variation := &models.ShoeColorVariation{
		ShoeID:        shoe.ID,
		ColorName:     req.BaseColor,
		HexCode:       HexForColor(req.BaseColor),
		StockQuantity: defaultVariationStock,
		IsActive:      true,
	}

	if err := s.repo.CreateVariation(variation); err != nil {
		return nil, fmt.Errorf("failed to create base color variation: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"shoe_id": shoe.ID,
		"name":    shoe.Name,
		"brand":   shoe.Brand,
	}).Info("Shoe created")

	return s.loadEnriched(shoe.ID)
}

func (s *ShoeService) GetShoe(id uint) (*models.Shoe, error) {
	return s.loadEnriched(id)
}

// ListShoes returns available shoes. A search term takes precedence over a
// brand filter when both are supplied.
func (s *ShoeService) ListShoes(brand, search string, params utils.PaginationParams) ([]models.Shoe, error) {
	var (
		shoes []models.Shoe
		err   error
	)

	switch {
	case search != "":
		shoes, err = s.repo.SearchShoes(search)
	case brand != "":
		shoes, err = s.repo.FindByBrand(brand)
	default:
		shoes, err = s.repo.ListShoes(params.Page, params.Limit)
	}
	if err != nil {
		return nil, err
	}

	for i := range shoes {
		if err := s.enrich(&shoes[i]); err != nil {
			return nil, err
		}
	}

	return shoes, nil
}

// UpdateShoe overwrites the mutable fields of an existing shoe. The base
// color and current color are never touched here; the color-change
// operation owns the current-color pointer.
func (s *ShoeService) UpdateShoe(id uint, req *UpdateShoeRequest) (*models.Shoe, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	shoe, err := s.repo.GetShoeByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrShoeNotFound
		}
		return nil, err
	}

	shoe.Name = req.Name
	shoe.Brand = req.Brand
	shoe.Size = req.Size
	shoe.Price = req.Price
	shoe.Description = req.Description
	shoe.ImageURL = req.ImageURL

	shoe.Variations = nil
	if err := s.repo.UpdateShoe(shoe); err != nil {
		return nil, err
	}

	return s.loadEnriched(id)
}

// DeleteShoe soft-deletes: the availability flag flips, rows stay put and
// variations remain fetchable. Reports whether a row was affected.
func (s *ShoeService) DeleteShoe(id uint) (bool, error) {
	affected, err := s.repo.SoftDeleteShoe(id)
	if err != nil {
		return false, err
	}

	if affected {
		s.log.WithField("shoe_id", id).Info("Shoe soft-deleted")
	}

	return affected, nil
}

// ChangeColor re-validates the requested color against the shoe's available
// color names before delegating; an unavailable color fails without any
// storage write. Returns the stored casing of the new current color.
func (s *ShoeService) ChangeColor(id uint, colorName string) (string, error) {
	if _, err := s.repo.GetShoeByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrShoeNotFound
		}
		return "", err
	}

	available, err := s.repo.ListAvailableColorNames(id)
	if err != nil {
		return "", err
	}

	found := false
	for _, name := range available {
		if strings.EqualFold(name, colorName) {
			found = true
			break
		}
	}
	if !found {
		return "", ErrColorNotAvailable
	}

	newColor, err := s.repo.ChangeCurrentColor(id, colorName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrColorNotAvailable
		}
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"shoe_id": id,
		"color":   newColor,
	}).Info("Current color changed")

	return newColor, nil
}

func (s *ShoeService) GetAvailableColors(id uint) ([]string, error) {
	if _, err := s.repo.GetShoeByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrShoeNotFound
		}
		return nil, err
	}

	return s.repo.ListAvailableColorNames(id)
}

// CreateVariation adds a colorway to an existing shoe. The color name must
// be unique for the shoe; an omitted hex code is derived from the name.
func (s *ShoeService) CreateVariation(shoeID uint, req *CreateVariationRequest) (*models.ShoeColorVariation, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetShoeByID(shoeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrShoeNotFound
		}
		return nil, err
	}

	exists, err := s.repo.VariationExists(shoeID, req.ColorName)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicates: %w", err)
	}
	if exists {
		return nil, ErrDuplicateColor
	}

	hexCode := req.HexCode
	if hexCode == "" {
		hexCode = HexForColor(req.ColorName)
	}

	variation := &models.ShoeColorVariation{
		ShoeID:        shoeID,
		ColorName:     req.ColorName,
		HexCode:       hexCode,
		StockQuantity: req.StockQuantity,
		IsActive:      true,
	}

	if err := s.repo.CreateVariation(variation); err != nil {
		return nil, err
	}

	return variation, nil
}

func (s *ShoeService) GetVariation(id uint) (*models.ShoeColorVariation, error) {
	variation, err := s.repo.GetVariationByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVariationNotFound
		}
		return nil, err
	}

	return variation, nil
}

func (s *ShoeService) ListVariations(shoeID uint) ([]models.ShoeColorVariation, error) {
	if _, err := s.repo.GetShoeByID(shoeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrShoeNotFound
		}
		return nil, err
	}

	return s.repo.ListActiveVariations(shoeID)
}

func (s *ShoeService) UpdateVariation(id uint, req *UpdateVariationRequest) (*models.ShoeColorVariation, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	variation, err := s.repo.GetVariationByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVariationNotFound
		}
		return nil, err
	}

	if !strings.EqualFold(variation.ColorName, req.ColorName) {
		exists, err := s.repo.VariationExists(variation.ShoeID, req.ColorName)
		if err != nil {
			return nil, fmt.Errorf("failed to check for duplicates: %w", err)
		}
		if exists {
			return nil, ErrDuplicateColor
		}
	}

	variation.ColorName = req.ColorName
	variation.HexCode = req.HexCode
	variation.StockQuantity = req.StockQuantity
	variation.IsActive = req.IsActive

	if err := s.repo.UpdateVariation(variation); err != nil {
		return nil, err
	}

	return variation, nil
}

// DeleteVariation removes the row permanently, independent of shoe
// soft-delete.
func (s *ShoeService) DeleteVariation(id uint) error {
	if err := s.repo.DeleteVariation(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrVariationNotFound
		}
		return err
	}

	return nil
}

// loadEnriched fetches a shoe and attaches its computed available colors.
func (s *ShoeService) loadEnriched(id uint) (*models.Shoe, error) {
	shoe, err := s.repo.GetShoeByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrShoeNotFound
		}
		return nil, err
	}

	if err := s.enrich(shoe); err != nil {
		return nil, err
	}

	return shoe, nil
}

func (s *ShoeService) enrich(shoe *models.Shoe) error {
	colors, err := s.repo.ListAvailableColorNames(shoe.ID)
	if err != nil {
		return fmt.Errorf("failed to compute available colors: %w", err)
	}

	shoe.AvailableColors = colors
	return nil
}
