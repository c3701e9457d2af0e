package engine

import (
	"fmt"
	"math"
)

// kcal per gram of each macro-nutrient. Fixed by convention.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// Canonical auto-distribution used when the user has not picked ratios.
const (
	DefaultProteinRatio = 14
	DefaultCarbsRatio   = 66
	DefaultFatRatio     = 20
)

// MacroRatios is a percentage split of total calories.
type MacroRatios struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

// DefaultRatios returns the canonical 14/66/20 distribution.
func DefaultRatios() MacroRatios {
	return MacroRatios{Protein: DefaultProteinRatio, Carbs: DefaultCarbsRatio, Fat: DefaultFatRatio}
}

// MacroSplit is the gram/kcal allocation of a daily calorie budget.
// Kcal figures are rounded half-up; gram figures keep full precision and are
// rounded only at display time.
type MacroSplit struct {
	ProteinKcal   int
	CarbsKcal     int
	FatKcal       int
	ProteinG      float64
	CarbsG        float64
	FatG          float64
	RemainingKcal int
}

// AllocateMacros converts percentage ratios into gram and calorie targets.
//
// Ratio sets are not required to sum to 100: the shortfall or excess lands in
// RemainingKcal. Negative inputs are rejected.
func AllocateMacros(totalKcal int, ratios MacroRatios) (MacroSplit, error) {
	if totalKcal < 0 {
		return MacroSplit{}, fmt.Errorf("total kcal must not be negative: %w", ErrInvalidInput)
	}
	if ratios.Protein < 0 || ratios.Carbs < 0 || ratios.Fat < 0 {
		return MacroSplit{}, fmt.Errorf("macro ratios must not be negative: %w", ErrInvalidInput)
	}

	total := float64(totalKcal)
	proteinKcal := int(math.Round(total * ratios.Protein / 100))
	carbsKcal := int(math.Round(total * ratios.Carbs / 100))
	fatKcal := int(math.Round(total * ratios.Fat / 100))

	return MacroSplit{
		ProteinKcal:   proteinKcal,
		CarbsKcal:     carbsKcal,
		FatKcal:       fatKcal,
		ProteinG:      float64(proteinKcal) / KcalPerGramProtein,
		CarbsG:        float64(carbsKcal) / KcalPerGramCarbs,
		FatG:          float64(fatKcal) / KcalPerGramFat,
		RemainingKcal: totalKcal - proteinKcal - carbsKcal - fatKcal,
	}, nil
}
