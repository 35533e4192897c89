package impl

import (
	"io"
	"log/slog"
	"time"

	"ecoconnect/config"
	"ecoconnect/internal/domain/entity"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSearchConfig() *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{
			PickupRadiusKm: 25,
			PickupLimit:    50,
			CenterRadiusKm: 50,
			CenterLimit:    20,
		},
	}
}

func newTestPicker() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "picker",
		Role:     entity.RoleWastepicker,
		IsActive: true,
	}
}

func newTestPickup(status entity.PickupStatus) *entity.PickupRequest {
	return &entity.PickupRequest{
		ID:              uuid.New(),
		RequesterID:     uuid.New(),
		PickupAddress:   "221B Baker Street",
		PickupLatitude:  41.8781,
		PickupLongitude: -87.6298,
		Status:          status,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func newTestCenter(name string, lat, lng float64, materials ...entity.Category) *entity.RecyclingCenter {
	return &entity.RecyclingCenter{
		ID:                uuid.New(),
		Name:              name,
		Address:           "1 Recycling Way",
		Latitude:          lat,
		Longitude:         lng,
		AcceptedMaterials: entity.MaterialSet(materials),
		IsActive:          true,
	}
}

func ptrFloat(v float64) *float64 { return &v }

func ptrInt(v int) *int { return &v }
