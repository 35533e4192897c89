// Package entity contains the core business objects of the project.
package entity

// Category is the canonical material classification token.
type Category string

const (
	CategoryPlastic       Category = "plastic"
	CategoryPaper         Category = "paper"
	CategoryGlass         Category = "glass"
	CategoryMetal         Category = "metal"
	CategoryOrganic       Category = "organic"
	CategoryElectronics   Category = "electronics"
	CategoryHazardous     Category = "hazardous"
	CategoryTextile       Category = "textile"
	CategoryNonRecyclable Category = "non_recyclable"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the canonical tokens.
func (c Category) IsValid() bool {
	_, ok := categoryTable[c]

	return ok
}

// CategoryInfo describes the disposal properties of a material category.
// The table is immutable configuration, injected where needed rather than
// mutated at runtime.
type CategoryInfo struct {
	Recyclable      bool   `json:"recyclable"`
	Color           string `json:"color"`
	DisposalMethod  string `json:"disposal_method"`
	PreparationTips string `json:"preparation_tips"`
}

var categoryTable = map[Category]CategoryInfo{
	CategoryPlastic: {
		Recyclable:      true,
		Color:           "green",
		DisposalMethod:  "Take to recycling center",
		PreparationTips: "Clean containers, remove labels if possible",
	},
	CategoryPaper: {
		Recyclable:      true,
		Color:           "blue",
		DisposalMethod:  "Take to recycling center",
		PreparationTips: "Keep dry, remove any plastic components",
	},
	CategoryGlass: {
		Recyclable:      true,
		Color:           "green",
		DisposalMethod:  "Take to recycling center",
		PreparationTips: "Rinse clean, remove caps and lids",
	},
	CategoryMetal: {
		Recyclable:      true,
		Color:           "silver",
		DisposalMethod:  "Take to recycling center",
		PreparationTips: "Rinse clean, crushing is optional",
	},
	CategoryOrganic: {
		Recyclable:      true,
		Color:           "brown",
		DisposalMethod:  "Compost or organic waste bin",
		PreparationTips: "Remove any non-organic materials",
	},
	CategoryElectronics: {
		Recyclable:      true,
		Color:           "purple",
		DisposalMethod:  "Take to electronics recycling center",
		PreparationTips: "Remove batteries, wipe personal data",
	},
	CategoryHazardous: {
		Recyclable:      false,
		Color:           "red",
		DisposalMethod:  "Take to hazardous waste facility",
		PreparationTips: "Do not mix with regular waste, handle with care",
	},
	CategoryTextile: {
		Recyclable:      true,
		Color:           "pink",
		DisposalMethod:  "Donate or take to textile recycling",
		PreparationTips: "Clean and dry, separate by material type",
	},
	CategoryNonRecyclable: {
		Recyclable:      false,
		Color:           "gray",
		DisposalMethod:  "Regular trash bin",
		PreparationTips: "Minimize waste by choosing reusable alternatives",
	},
}

// Info returns the disposal properties for the category. Unknown categories
// fall back to the non_recyclable entry.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryTable[c]; ok {
		return info
	}

	return categoryTable[CategoryNonRecyclable]
}

// Categories returns a copy of the full category table, keyed by token.
func Categories() map[Category]CategoryInfo {
	out := make(map[Category]CategoryInfo, len(categoryTable))
	for category, info := range categoryTable {
		out[category] = info
	}

	return out
}
