// internal/models/color_variation.go
package models

import (
	"time"
)

// ShoeColorVariation is a color-specific, stock-tracked sub-record of a shoe.
// (shoe_id, color_name) is unique; name matching is case-insensitive at the
// service layer, the index guards the stored casing.
type ShoeColorVariation struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ShoeID        uint      `json:"shoe_id" gorm:"not null;index;uniqueIndex:idx_shoe_color,priority:1"`
	ColorName     string    `json:"color_name" gorm:"size:30;not null;uniqueIndex:idx_shoe_color,priority:2"`
	HexCode       string    `json:"hex_code" gorm:"size:7;not null"`
	StockQuantity int       `json:"stock_quantity" gorm:"default:0"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
}

func (ShoeColorVariation) TableName() string {
	return "shoe_color_variations"
}
