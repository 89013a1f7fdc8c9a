// internal/database/seed.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/soleshelf/inventory-backend/internal/models"
)

// SeedDemoData inserts a few shoes with colorways for development
// environments. It is a no-op once any shoe exists.
func SeedDemoData(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&models.Shoe{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count shoes: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Info("Seeding demo data...")

	type seedShoe struct {
		shoe       models.Shoe
		variations []models.ShoeColorVariation
	}

	seeds := []seedShoe{
		{
			shoe: models.Shoe{
				Name:         "Air Zoom Pegasus",
				Brand:        "Nike",
				Size:         "US 9",
				BaseColor:    "Blue",
				CurrentColor: strPtr("Blue"),
				Price:        129.99,
				Description:  "Daily trainer with responsive cushioning.",
				IsAvailable:  true,
			},
			variations: []models.ShoeColorVariation{
				{ColorName: "Blue", HexCode: "#0000FF", StockQuantity: 10, IsActive: true},
				{ColorName: "Black", HexCode: "#000000", StockQuantity: 4, IsActive: true},
			},
		},
		{
			shoe: models.Shoe{
				Name:         "Ultraboost Light",
				Brand:        "Adidas",
				Size:         "US 10",
				BaseColor:    "White",
				CurrentColor: strPtr("White"),
				Price:        179.99,
				Description:  "Lightweight road runner.",
				IsAvailable:  true,
			},
			variations: []models.ShoeColorVariation{
				{ColorName: "White", HexCode: "#FFFFFF", StockQuantity: 10, IsActive: true},
				{ColorName: "Silver", HexCode: "#C0C0C0", StockQuantity: 0, IsActive: true},
			},
		},
	}

	for _, seed := range seeds {
		if err := db.Create(&seed.shoe).Error; err != nil {
			return fmt.Errorf("failed to seed shoe %q: %w", seed.shoe.Name, err)
		}
		for i := range seed.variations {
			seed.variations[i].ShoeID = seed.shoe.ID
			if err := db.Create(&seed.variations[i]).Error; err != nil {
				return fmt.Errorf("failed to seed variation %q: %w", seed.variations[i].ColorName, err)
			}
		}
	}

	log.Info("Demo data seeding completed")
	return nil
}

func strPtr(s string) *string {
	return &s
}
