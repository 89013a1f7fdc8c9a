// internal/models/shoe.go
package models

import (
	"time"
)

type Shoe struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"size:100;not null;index"`
	Brand        string     `json:"brand" gorm:"size:100;not null;index"`
	Size         string     `json:"size" gorm:"size:50;not null"`
	BaseColor    string     `json:"base_color" gorm:"size:30;not null"`
	CurrentColor *string    `json:"current_color" gorm:"size:30"`
	Price        float64    `json:"price" gorm:"type:decimal(10,2);not null"`
	Description  string     `json:"description,omitempty" gorm:"size:500"`
	ImageURL     string     `json:"image_url,omitempty" gorm:"size:200"`
	IsAvailable  bool       `json:"is_available" gorm:"default:true;index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`

	// Computed for callers, never persisted.
	AvailableColors []string `json:"available_colors,omitempty" gorm:"-"`

	// Relationships
	Variations []ShoeColorVariation `json:"variations,omitempty" gorm:"foreignKey:ShoeID;constraint:OnDelete:CASCADE"`
}

func (Shoe) TableName() string {
	return "shoes"
}
