// Package model holds the GORM persistence models mirroring the database
// schema. Mapping to and from domain entities happens in the postgres package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key"`
	Username            string    `gorm:"type:varchar(80);unique;not null"`
	Email               string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	FirstName           string    `gorm:"type:varchar(100)"`
	LastName            string    `gorm:"type:varchar(100)"`
	Phone               string    `gorm:"type:varchar(30)"`
	Address             string    `gorm:"type:text"`
	Latitude            *float64
	Longitude           *float64
	Role                string `gorm:"type:varchar(20);not null;default:household"`
	IsActive            bool   `gorm:"not null;default:true"`
	ProfileImage        string `gorm:"type:varchar(255)"`
	TotalRecycledWeight float64 `gorm:"not null;default:0"`
	Points              int     `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
