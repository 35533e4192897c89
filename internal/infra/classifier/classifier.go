// Package classifier provides the waste classification service. The current
// implementation is a stand-in model that rotates through a fixed set of
// realistic results; the interface it fills is ready for a real model backend.
package classifier

import (
	"context"
	"log/slog"
	"sync/atomic"

	"ecoconnect/internal/domain/entity"
	"ecoconnect/internal/domain/service"
)

// mockClassifier cycles deterministically through mockResults so repeated
// calls look varied without being random under test.
type mockClassifier struct {
	logger *slog.Logger
	next   atomic.Uint64
}

// NewMockClassifier is the constructor for mockClassifier.
func NewMockClassifier(logger *slog.Logger) service.WasteClassifier {
	return &mockClassifier{logger: logger}
}

type mockResult struct {
	identifiedType  string
	confidenceScore float64
	category        entity.Category
}

var mockResults = []mockResult{
	{identifiedType: "Plastic Water Bottle", confidenceScore: 0.95, category: entity.CategoryPlastic},
	{identifiedType: "Aluminum Can", confidenceScore: 0.92, category: entity.CategoryMetal},
	{identifiedType: "Paper Cup", confidenceScore: 0.88, category: entity.CategoryPaper},
	{identifiedType: "Glass Jar", confidenceScore: 0.94, category: entity.CategoryGlass},
	{identifiedType: "Food Waste", confidenceScore: 0.85, category: entity.CategoryOrganic},
	{identifiedType: "Old Smartphone", confidenceScore: 0.91, category: entity.CategoryElectronics},
}

// Classify identifies the waste pictured at imagePath.
func (c *mockClassifier) Classify(ctx context.Context, imagePath string) (*service.Classification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := mockResults[(c.next.Add(1)-1)%uint64(len(mockResults))]
	info := result.category.Info()

	classification := &service.Classification{
		IdentifiedType:   result.identifiedType,
		ConfidenceScore:  result.confidenceScore,
		MaterialCategory: result.category,
		Recyclable:       info.Recyclable,
		DisposalMethod:   info.DisposalMethod,
		PreparationTips:  info.PreparationTips,
		CategoryColor:    info.Color,
	}

	c.logger.Debug("waste classified",
		slog.String("imagePath", imagePath),
		slog.String("identifiedType", classification.IdentifiedType),
		slog.String("category", classification.MaterialCategory.String()),
	)

	return classification, nil
}

// Recommendations derives enriched disposal guidance from a classification.
func (c *mockClassifier) Recommendations(classification *service.Classification) *service.DisposalAdvice {
	return &service.DisposalAdvice{
		PrimaryMethod:       classification.DisposalMethod,
		PreparationSteps:    classification.PreparationTips,
		Recyclable:          classification.Recyclable,
		EnvironmentalImpact: environmentalImpact(classification.MaterialCategory),
		Alternatives:        alternatives(classification.MaterialCategory),
	}
}

var impactInfo = map[entity.Category]string{
	entity.CategoryPlastic:       "Recycling plastic saves energy and reduces ocean pollution. Takes 450+ years to decompose.",
	entity.CategoryPaper:         "Recycling paper saves trees and reduces landfill waste. Decomposes in 2-6 weeks.",
	entity.CategoryGlass:         "Glass can be recycled indefinitely without quality loss. Takes 1 million years to decompose.",
	entity.CategoryMetal:         "Recycling aluminum saves 95% of energy vs. new production. Never loses quality when recycled.",
	entity.CategoryOrganic:       "Composting reduces methane emissions and creates nutrient-rich soil.",
	entity.CategoryElectronics:   "Contains valuable materials and toxic substances. Proper recycling prevents pollution.",
	entity.CategoryHazardous:     "Improper disposal can contaminate soil and water. Always use designated facilities.",
	entity.CategoryTextile:       "Textile recycling reduces water usage and chemical pollution from new production.",
	entity.CategoryNonRecyclable: "Consider reducing consumption and finding reusable alternatives.",
}

func environmentalImpact(category entity.Category) string {
	if impact, ok := impactInfo[category]; ok {
		return impact
	}

	return "Proper disposal helps protect the environment."
}

var alternativeInfo = map[entity.Category][]string{
	entity.CategoryPlastic: {
		"Reuse containers for storage",
		"Upcycle into planters or organizers",
		"Return to store take-back programs",
	},
	entity.CategoryPaper: {
		"Use as wrapping paper or craft material",
		"Shred for compost (non-glossy paper)",
		"Donate books and magazines",
	},
	entity.CategoryGlass: {
		"Reuse jars for food storage",
		"Repurpose as vases or candle holders",
		"Return bottles to deposit programs",
	},
	entity.CategoryMetal: {
		"Reuse cans as planters",
		"Sell to scrap metal dealers",
		"Donate to metal recycling drives",
	},
	entity.CategoryElectronics: {
		"Donate working devices to charities",
		"Trade in for store credit",
		"Participate in manufacturer take-back programs",
	},
	entity.CategoryTextile: {
		"Donate to clothing charities",
		"Repurpose as cleaning rags",
		"Use for craft projects",
	},
}

func alternatives(category entity.Category) []string {
	if alts, ok := alternativeInfo[category]; ok {
		return alts
	}

	return []string{"Consider reducing future consumption"}
}
