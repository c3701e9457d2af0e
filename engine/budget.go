package engine

import (
	"fmt"
	"math"
)

// tefFraction is the thermic-effect-of-food share of consumed calories.
const tefFraction = 0.10

// daysPerMonth converts a monthly calorie goal to a daily one.
const daysPerMonth = 30

// ActivityLevel is immutable reference data: a named TDEE multiplier.
type ActivityLevel struct {
	ID         uint
	Name       string
	Multiplier float64
}

// EnergySettings is the maintenance-energy view derived from a profile.
type EnergySettings struct {
	BMR                 int
	MaintenanceCalories int
	ActivityMultiplier  float64
	TEFIncluded         bool
}

// ComputeEnergySettings combines a BMR with an activity level. Maintenance
// calories are round(BMR * multiplier), computed from the displayed (rounded)
// BMR so the two reported figures stay consistent with each other.
//
// TEF is not folded into maintenance here; it is a separate additive signal
// on the daily budget, see TEFAdjustment and ComputeEnergyBudget.
func ComputeEnergySettings(bmr float64, level ActivityLevel, includeTEF bool) (EnergySettings, error) {
	if level.Multiplier <= 0 {
		return EnergySettings{}, fmt.Errorf("activity multiplier must be positive: %w", ErrInvalidInput)
	}
	roundedBMR := math.Round(bmr)
	return EnergySettings{
		BMR:                 int(roundedBMR),
		MaintenanceCalories: int(math.Round(roundedBMR * level.Multiplier)),
		ActivityMultiplier:  level.Multiplier,
		TEFIncluded:         includeTEF,
	}, nil
}

// TEFAdjustment returns the thermic-effect-of-food calories for a day:
// 10% of consumed calories when enabled, zero otherwise.
func TEFAdjustment(consumedKcal float64, include bool) float64 {
	if !include || consumedKcal <= 0 {
		return 0
	}
	return consumedKcal * tefFraction
}

// DailyTargetKcal resolves the user's calorie goal to a per-day figure.
// A monthly goal is divided by 30 in floating point and rounded half-up once.
func DailyTargetKcal(goal int, isDailyGoal bool) int {
	if isDailyGoal {
		return goal
	}
	return int(math.Round(float64(goal) / daysPerMonth))
}

// ComputeEnergyBudget returns the remaining calories for a day:
//
//	remaining = target + exercise + tef - consumed
//
// Exercise calories and TEF widen the budget; consumption narrows it. The
// result may be negative when the user has overshot.
func ComputeEnergyBudget(targetKcal, consumedKcal, exerciseKcal, tefKcal float64) float64 {
	return targetKcal + exerciseKcal + tefKcal - consumedKcal
}
