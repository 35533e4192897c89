package model

import (
	"time"

	"github.com/google/uuid"
)

// RecyclingCenterModel mirrors the 'recycling_centers' table.
// OperatingHours and AcceptedMaterials are stored as JSON text columns;
// parsing to structured values happens at the repository boundary.
type RecyclingCenterModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key"`
	Name                string    `gorm:"type:varchar(150);not null"`
	Address             string    `gorm:"type:text;not null"`
	Latitude            float64   `gorm:"not null"`
	Longitude           float64   `gorm:"not null"`
	Phone               string    `gorm:"type:varchar(30)"`
	Email               string    `gorm:"type:varchar(255)"`
	Website             string    `gorm:"type:varchar(255)"`
	OperatingHours      string    `gorm:"type:text"`
	AcceptedMaterials   string    `gorm:"type:text"`
	SpecialInstructions string    `gorm:"type:text"`
	Rating              float64   `gorm:"not null;default:0"`
	TotalReviews        int       `gorm:"not null;default:0"`
	IsActive            bool      `gorm:"not null;default:true;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecyclingCenterModel) TableName() string {
	return "recycling_centers"
}
