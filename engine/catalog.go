package engine

import "fmt"

// NutrientCategory is one of the seven fixed micro-nutrient groups.
type NutrientCategory string

const (
	CategoryCarbohydrates NutrientCategory = "carbohydrates"
	CategoryAminoAcids    NutrientCategory = "amino_acids"
	CategoryFats          NutrientCategory = "fats"
	CategoryMinerals      NutrientCategory = "minerals"
	CategorySterols       NutrientCategory = "sterols"
	CategoryVitamins      NutrientCategory = "vitamins"
	CategoryOther         NutrientCategory = "other"
)

// Categories lists every category in display order.
var Categories = []NutrientCategory{
	CategoryCarbohydrates,
	CategoryAminoAcids,
	CategoryFats,
	CategoryMinerals,
	CategorySterols,
	CategoryVitamins,
	CategoryOther,
}

// NutrientKey identifies a nutrient within its category.
type NutrientKey struct {
	Category NutrientCategory
	Name     string
}

// NutrientDef is a catalog entry: a nutrient name plus its default daily
// requirement. Amounts are grams for carbohydrates/amino acids/fats and
// milligrams for minerals/sterols/vitamins/other, matching how the values
// are displayed.
type NutrientDef struct {
	Name            string
	DefaultRequired float64
}

// catalog is the closed nutrient taxonomy. Category/nutrient pairs outside
// this table are rejected at the boundary instead of being discovered at
// runtime.
var catalog = map[NutrientCategory][]NutrientDef{
	CategoryCarbohydrates: {
		{"Fiber", 30},
		{"Starch", 100},
		{"Sugars", 50},
		{"Galactose", 2},
		{"Glucose", 10},
		{"Sucrose", 10},
		{"Lactose", 5},
		{"Maltose", 2},
		{"Fructose", 10},
	},
	CategoryAminoAcids: {
		{"Alanine", 3},
		{"Arginine", 4},
		{"AsparticAcid", 4},
		{"Valine", 1.8},
		{"Glycine", 3},
		{"Glutamine", 5},
		{"Isoleucine", 1.4},
		{"Leucine", 2.7},
		{"Lysine", 2.1},
		{"Methionine", 0.7},
		{"Proline", 3},
		{"Serine", 3},
		{"Tyrosine", 2.5},
		{"Threonine", 1.05},
		{"Tryptophan", 0.28},
		{"Phenylalanine", 2.5},
		{"Hydroxyproline", 0.5},
		{"Histidine", 0.7},
		{"Cystine", 0.6},
	},
	CategoryFats: {
		{"TotalFats", 70},
		{"MonounsaturatedFats", 25},
		{"PolyunsaturatedFats", 20},
		{"SaturatedFats", 20},
		{"TransFats", 2},
	},
	CategoryMinerals: {
		{"Iron", 18},
		{"Potassium", 3500},
		{"Calcium", 1000},
		{"Magnesium", 400},
		{"Manganese", 2.3},
		{"Copper", 0.9},
		{"Sodium", 2300},
		{"Selenium", 0.055},
		{"Fluoride", 4},
		{"Phosphorus", 700},
		{"Zinc", 11},
	},
	CategorySterols: {
		{"Cholesterol", 300},
		{"Phytosterols", 200},
		{"Stigmasterols", 20},
		{"Campesterol", 30},
		{"BetaSitosterols", 80},
	},
	CategoryVitamins: {
		{"Betaine", 550},
		{"VitaminA", 0.9},
		{"VitaminB1", 1.2},
		{"VitaminB2", 1.3},
		{"VitaminB3", 16},
		{"VitaminB4", 550},
		{"VitaminB5", 5},
		{"VitaminB6", 1.7},
		{"VitaminB9", 0.4},
		{"VitaminB12", 0.0024},
		{"VitaminC", 90},
		{"VitaminD", 0.02},
		{"VitaminE", 15},
		{"VitaminK1", 0.12},
		{"VitaminK2", 0.1},
	},
	CategoryOther: {
		{"Alcohol", 0},
		{"Water", 3700},
		{"Caffeine", 400},
		{"Theobromine", 250},
		{"Ash", 0},
	},
}

// ValidCategory reports whether c is one of the seven known categories.
func ValidCategory(c NutrientCategory) bool {
	_, ok := catalog[c]
	return ok
}

// CatalogNutrients returns the nutrient definitions of a category in display
// order. Fails with ErrNotFound for an unknown category.
func CatalogNutrients(c NutrientCategory) ([]NutrientDef, error) {
	defs, ok := catalog[c]
	if !ok {
		return nil, fmt.Errorf("nutrient category %q: %w", c, ErrNotFound)
	}
	out := make([]NutrientDef, len(defs))
	copy(out, defs)
	return out, nil
}

// LookupNutrient returns the catalog definition for a (category, name) pair.
func LookupNutrient(key NutrientKey) (NutrientDef, error) {
	for _, def := range catalog[key.Category] {
		if def.Name == key.Name {
			return def, nil
		}
	}
	return NutrientDef{}, fmt.Errorf("nutrient %s/%s: %w", key.Category, key.Name, ErrNotFound)
}
