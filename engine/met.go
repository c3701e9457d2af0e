package engine

import (
	"fmt"
	"math"
	"strings"
)

// ExerciseProfile is the MET lookup data for one selectable exercise (or for
// a subcategory that carries the table itself, when no finer-grained exercise
// exists). Keys are normalized with NormalizeKey.
type ExerciseProfile struct {
	MetByEffort        map[string]float64
	TerrainMultipliers map[string]float64
}

// NormalizeKey canonicalizes a MET lookup key component. Lookups are exact
// after normalization; there is no fuzzy fallback.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveMet returns the MET value for an effort level. A missing entry is
// ErrNotFound, never a silent default.
func (p ExerciseProfile) ResolveMet(effortLevel string) (float64, error) {
	met, ok := p.MetByEffort[NormalizeKey(effortLevel)]
	if !ok {
		return 0, fmt.Errorf("no MET entry for effort %q: %w", effortLevel, ErrNotFound)
	}
	return met, nil
}

// ResolveTerrain returns the multiplier for a terrain option, or 1.0 when no
// terrain is requested. An unknown terrain on a profile that does define
// terrain options is ErrNotFound.
func (p ExerciseProfile) ResolveTerrain(terrainType string) (float64, error) {
	if strings.TrimSpace(terrainType) == "" {
		return 1.0, nil
	}
	mult, ok := p.TerrainMultipliers[NormalizeKey(terrainType)]
	if !ok {
		return 0, fmt.Errorf("no terrain option %q: %w", terrainType, ErrNotFound)
	}
	return mult, nil
}

// CaloriesPerMinute applies the standard MET conversion:
//
//	kcal/min = MET * 3.5 * weightKg / 200
func CaloriesPerMinute(met, weightKg float64) float64 {
	return met * 3.5 * weightKg / 200
}

// CalorieEstimate is the burn estimate for one exercise session. The
// half-hour and hour figures are derived from the per-minute rate, not
// independently computed.
type CalorieEstimate struct {
	CaloriesPerMinute   float64
	CaloriesPerHalfHour float64
	CaloriesPerHour     float64
	TotalCalories       float64
}

// EstimateCalories converts a MET value, body weight, and session duration
// into burned calories. terrainMultiplier scales the whole estimate; pass 1.0
// when terrain does not apply. All outputs are rounded half-up, intermediate
// math stays in full precision.
func EstimateCalories(met, weightKg, durationMinutes, terrainMultiplier float64) (CalorieEstimate, error) {
	if met <= 0 {
		return CalorieEstimate{}, fmt.Errorf("met must be positive: %w", ErrInvalidInput)
	}
	if weightKg <= 0 {
		return CalorieEstimate{}, fmt.Errorf("weight must be positive: %w", ErrInvalidInput)
	}
	if durationMinutes <= 0 {
		return CalorieEstimate{}, fmt.Errorf("duration must be positive: %w", ErrInvalidInput)
	}
	if terrainMultiplier <= 0 {
		return CalorieEstimate{}, fmt.Errorf("terrain multiplier must be positive: %w", ErrInvalidInput)
	}

	perMinute := CaloriesPerMinute(met, weightKg) * terrainMultiplier
	return CalorieEstimate{
		CaloriesPerMinute:   math.Round(perMinute*100) / 100,
		CaloriesPerHalfHour: math.Round(perMinute * 30),
		CaloriesPerHour:     math.Round(perMinute * 60),
		TotalCalories:       math.Round(perMinute * durationMinutes),
	}, nil
}
