// internal/repository/memory_repository.go
package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/soleshelf/inventory-backend/internal/models"
)

// memoryShoeRepository keeps everything in process memory. It backs the
// "memory" storage backend and the service test suites; semantics mirror
// the gorm implementation.
type memoryShoeRepository struct {
	mtx             sync.RWMutex
	shoes           map[uint]*models.Shoe
	variations      map[uint]*models.ShoeColorVariation
	nextShoeID      uint
	nextVariationID uint
}

func NewMemoryShoeRepository() ShoeRepository {
	return &memoryShoeRepository{
		shoes:           make(map[uint]*models.Shoe),
		variations:      make(map[uint]*models.ShoeColorVariation),
		nextShoeID:      1,
		nextVariationID: 1,
	}
}

func (r *memoryShoeRepository) ListShoes(page, limit int) ([]models.Shoe, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	shoes := r.collect(func(s *models.Shoe) bool {
		return s.IsAvailable
	})

	if limit > 0 {
		if page < 1 {
			page = 1
		}
		offset := (page - 1) * limit
		if offset >= len(shoes) {
			return []models.Shoe{}, nil
		}
		end := offset + limit
		if end > len(shoes) {
			end = len(shoes)
		}
		shoes = shoes[offset:end]
	}

	return shoes, nil
}

func (r *memoryShoeRepository) GetShoeByID(id uint) (*models.Shoe, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	shoe, ok := r.shoes[id]
	if !ok {
		return nil, ErrNotFound
	}

	copied := r.withVariations(shoe)
	return &copied, nil
}

func (r *memoryShoeRepository) FindByBrand(brand string) ([]models.Shoe, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	needle := strings.ToLower(brand)
	return r.collect(func(s *models.Shoe) bool {
		return s.IsAvailable && strings.Contains(strings.ToLower(s.Brand), needle)
	}), nil
}

func (r *memoryShoeRepository) SearchShoes(term string) ([]models.Shoe, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	needle := strings.ToLower(term)
	return r.collect(func(s *models.Shoe) bool {
		return s.IsAvailable &&
			(strings.Contains(strings.ToLower(s.Name), needle) ||
				strings.Contains(strings.ToLower(s.Brand), needle) ||
				strings.Contains(strings.ToLower(s.Description), needle))
	}), nil
}

func (r *memoryShoeRepository) CreateShoe(shoe *models.Shoe) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	shoe.ID = r.nextShoeID
	r.nextShoeID++
	if shoe.CreatedAt.IsZero() {
		shoe.CreatedAt = time.Now()
	}

	stored := *shoe
	stored.Variations = nil
	stored.AvailableColors = nil
	r.shoes[shoe.ID] = &stored

	return nil
}

func (r *memoryShoeRepository) UpdateShoe(shoe *models.Shoe) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.shoes[shoe.ID]; !ok {
		return ErrNotFound
	}

	now := time.Now()
	shoe.UpdatedAt = &now

	stored := *shoe
	stored.Variations = nil
	stored.AvailableColors = nil
	r.shoes[shoe.ID] = &stored

	return nil
}

func (r *memoryShoeRepository) SoftDeleteShoe(id uint) (bool, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	shoe, ok := r.shoes[id]
	if !ok || !shoe.IsAvailable {
		return false, nil
	}

	now := time.Now()
	shoe.IsAvailable = false
	shoe.UpdatedAt = &now

	return true, nil
}

func (r *memoryShoeRepository) ShoeExists(name, brand string) (bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	for _, s := range r.shoes {
		if s.IsAvailable &&
			strings.EqualFold(s.Name, name) &&
			strings.EqualFold(s.Brand, brand) {
			return true, nil
		}
	}

	return false, nil
}

func (r *memoryShoeRepository) ListActiveVariations(shoeID uint) ([]models.ShoeColorVariation, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.collectVariations(func(v *models.ShoeColorVariation) bool {
		return v.ShoeID == shoeID && v.IsActive
	}), nil
}

func (r *memoryShoeRepository) GetVariationByID(id uint) (*models.ShoeColorVariation, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	variation, ok := r.variations[id]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *variation
	return &copied, nil
}

func (r *memoryShoeRepository) CreateVariation(variation *models.ShoeColorVariation) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	variation.ID = r.nextVariationID
	r.nextVariationID++
	if variation.CreatedAt.IsZero() {
		variation.CreatedAt = time.Now()
	}

	stored := *variation
	r.variations[variation.ID] = &stored

	return nil
}

func (r *memoryShoeRepository) UpdateVariation(variation *models.ShoeColorVariation) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.variations[variation.ID]; !ok {
		return ErrNotFound
	}

	stored := *variation
	r.variations[variation.ID] = &stored

	return nil
}

func (r *memoryShoeRepository) DeleteVariation(id uint) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.variations[id]; !ok {
		return ErrNotFound
	}
	delete(r.variations, id)

	return nil
}

func (r *memoryShoeRepository) VariationExists(shoeID uint, colorName string) (bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	for _, v := range r.variations {
		if v.ShoeID == shoeID && strings.EqualFold(v.ColorName, colorName) {
			return true, nil
		}
	}

	return false, nil
}

func (r *memoryShoeRepository) ChangeCurrentColor(shoeID uint, colorName string) (string, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	shoe, ok := r.shoes[shoeID]
	if !ok {
		return "", ErrNotFound
	}

	for _, v := range r.variations {
		if v.ShoeID == shoeID && v.IsActive && strings.EqualFold(v.ColorName, colorName) {
			now := time.Now()
			name := v.ColorName
			shoe.CurrentColor = &name
			shoe.UpdatedAt = &now
			return name, nil
		}
	}

	return "", ErrNotFound
}

func (r *memoryShoeRepository) ListAvailableColorNames(shoeID uint) ([]string, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var names []string
	for _, v := range r.collectVariations(func(v *models.ShoeColorVariation) bool {
		return v.ShoeID == shoeID && v.IsActive && v.StockQuantity > 0
	}) {
		names = append(names, v.ColorName)
	}

	return names, nil
}

// collect copies matching shoes with variations attached, name ascending.
// Callers hold at least a read lock.
func (r *memoryShoeRepository) collect(match func(*models.Shoe) bool) []models.Shoe {
	shoes := make([]models.Shoe, 0)
	for _, s := range r.shoes {
		if match(s) {
			shoes = append(shoes, r.withVariations(s))
		}
	}

	sort.Slice(shoes, func(i, j int) bool {
		return strings.ToLower(shoes[i].Name) < strings.ToLower(shoes[j].Name)
	})

	return shoes
}

func (r *memoryShoeRepository) collectVariations(match func(*models.ShoeColorVariation) bool) []models.ShoeColorVariation {
	variations := make([]models.ShoeColorVariation, 0)
	for _, v := range r.variations {
		if match(v) {
			variations = append(variations, *v)
		}
	}

	sort.Slice(variations, func(i, j int) bool {
		return strings.ToLower(variations[i].ColorName) < strings.ToLower(variations[j].ColorName)
	})

	return variations
}

func (r *memoryShoeRepository) withVariations(shoe *models.Shoe) models.Shoe {
	copied := *shoe
	copied.Variations = r.collectVariations(func(v *models.ShoeColorVariation) bool {
		return v.ShoeID == shoe.ID
	})
	return copied
}
