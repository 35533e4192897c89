package postgres

import (
	"testing"

	"ecoconnect/internal/domain/entity"
	"ecoconnect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCenterDomain_ParsesTextColumns(t *testing.T) {
	centerM := &model.RecyclingCenterModel{
		ID:                uuid.New(),
		Name:              "Green Depot",
		OperatingHours:    `{"monday":"9:00-17:00"}`,
		AcceptedMaterials: `["plastic","glass"]`,
		IsActive:          true,
	}

	center := toCenterDomain(centerM)
	require.NotNil(t, center)
	assert.Equal(t, "9:00-17:00", center.OperatingHours["monday"])
	assert.True(t, center.Accepts(entity.CategoryPlastic))
	assert.True(t, center.Accepts(entity.CategoryGlass))
	assert.False(t, center.Accepts(entity.CategoryMetal))
}

func TestToCenterDomain_CorruptColumnsDegradeToEmpty(t *testing.T) {
	centerM := &model.RecyclingCenterModel{
		ID:                uuid.New(),
		Name:              "Corrupt Row",
		OperatingHours:    `{monday 9-17`,
		AcceptedMaterials: `["plastic",`,
		IsActive:          true,
	}

	center := toCenterDomain(centerM)
	require.NotNil(t, center)
	assert.Empty(t, center.OperatingHours)
	assert.Empty(t, center.AcceptedMaterials)
	assert.False(t, center.Accepts(entity.CategoryPlastic))
}

func TestCenterMappingRoundTrip(t *testing.T) {
	center := &entity.RecyclingCenter{
		ID:                uuid.New(),
		Name:              "Green Depot",
		OperatingHours:    entity.OperatingHours{"saturday": "10:00-14:00"},
		AcceptedMaterials: entity.MaterialSet{entity.CategoryPaper, entity.CategoryMetal},
		IsActive:          true,
	}

	back := toCenterDomain(fromCenterDomain(center))
	require.NotNil(t, back)
	assert.Equal(t, center.OperatingHours, back.OperatingHours)
	assert.Equal(t, center.AcceptedMaterials, back.AcceptedMaterials)
}
