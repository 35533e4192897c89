package service

import (
	"context"

	"ecoconnect/internal/domain/entity"
)

// Classification is the result of identifying a piece of waste from an image.
type Classification struct {
	IdentifiedType   string          `json:"identified_type"`
	ConfidenceScore  float64         `json:"confidence_score"` // In [0, 1].
	MaterialCategory entity.Category `json:"material_category"`
	Recyclable       bool            `json:"recyclable"`
	DisposalMethod   string          `json:"disposal_method"`
	PreparationTips  string          `json:"preparation_tips"`
	CategoryColor    string          `json:"category_color"`
}

// DisposalAdvice is the enriched guidance derived from a classification.
type DisposalAdvice struct {
	PrimaryMethod       string   `json:"primary_method"`
	PreparationSteps    string   `json:"preparation_steps"`
	Recyclable          bool     `json:"recyclable"`
	EnvironmentalImpact string   `json:"environmental_impact"`
	Alternatives        []string `json:"alternatives"`
}

// WasteClassifier identifies waste from a stored image. From the core's
// perspective it is a pure function: implementations may call out to a model,
// but callers treat any failure as a degraded classification (confidence 0,
// category non_recyclable) rather than a request failure.
type WasteClassifier interface {
	// Classify identifies the waste pictured at imagePath.
	Classify(ctx context.Context, imagePath string) (*Classification, error)

	// Recommendations derives enriched disposal guidance from a classification.
	Recommendations(classification *Classification) *DisposalAdvice
}
