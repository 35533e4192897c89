package model

import (
	"time"

	"github.com/google/uuid"
)

// PickupRequestModel mirrors the 'pickup_requests' table.
type PickupRequestModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key"`
	RequesterID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	WastepickerID       *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress       string     `gorm:"type:text;not null"`
	PickupLatitude      float64    `gorm:"not null"`
	PickupLongitude     float64    `gorm:"not null"`
	WasteDescription    string     `gorm:"type:text"`
	WasteCategory       string     `gorm:"type:varchar(30)"`
	EstimatedWeight     *float64
	PickupDate          *time.Time
	Status              string `gorm:"type:varchar(20);not null;default:pending;index"`
	SpecialInstructions string `gorm:"type:text"`
	PaymentAmount       *float64
	CreditApplied       bool `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (PickupRequestModel) TableName() string {
	return "pickup_requests"
}
