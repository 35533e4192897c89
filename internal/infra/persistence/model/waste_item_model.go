package model

import (
	"time"

	"github.com/google/uuid"
)

// WasteItemModel mirrors the 'waste_items' table. Rows are append-only
// classification records; they are never updated after creation.
type WasteItemModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID              *uuid.UUID `gorm:"type:uuid;index"`
	ImagePath           string     `gorm:"type:varchar(255);not null"`
	IdentifiedType      string     `gorm:"type:varchar(100);not null"`
	ConfidenceScore     float64    `gorm:"not null"`
	MaterialCategory    string     `gorm:"type:varchar(30);not null"`
	Recyclable          bool       `gorm:"not null"`
	DisposalMethod      string     `gorm:"type:text"`
	RecommendedCenterID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt           time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (WasteItemModel) TableName() string {
	return "waste_items"
}
