package engine

import "time"

// NutrientAmount is a nutrient contribution per 100g of a consumable.
type NutrientAmount struct {
	Key           NutrientKey
	AmountPer100g float64
}

// MealComponent is one portion of a logged meal with the per-100g composition
// that was snapshotted at logging time. Editing the catalog item later does
// not change historic components.
type MealComponent struct {
	Grams           float64
	CaloriesPer100g float64
	ProteinPer100g  float64
	CarbsPer100g    float64
	FatPer100g      float64
	Nutrients       []NutrientAmount
}

// AdHocMacros are directly-entered meal values with no catalog backing.
type AdHocMacros struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Meal is a logged meal entry: catalog-backed components, an ad-hoc entry,
// or both.
type Meal struct {
	Components []MealComponent
	AdHoc      *AdHocMacros
}

// Activity is a logged exercise session. CaloriesBurned was produced at
// logging time (by EstimateCalories or entered manually); aggregation never
// recomputes it.
type Activity struct {
	CaloriesBurned float64
}

// DayTotals are the summed contributions of one day's meals and activities.
type DayTotals struct {
	Date             time.Time
	ConsumedCalories float64
	ConsumedProtein  float64
	ConsumedCarbs    float64
	ConsumedFat      float64
	NutrientConsumed map[NutrientKey]float64
	ExerciseCalories float64
}

// AggregateDay sums every meal and activity contribution for one day.
// Catalog-backed components contribute field_per_100g * grams / 100; ad-hoc
// values contribute as entered. Pure and idempotent over its inputs.
func AggregateDay(date time.Time, meals []Meal, activities []Activity) DayTotals {
	totals := DayTotals{
		Date:             date,
		NutrientConsumed: make(map[NutrientKey]float64),
	}

	for _, meal := range meals {
		for _, comp := range meal.Components {
			scale := comp.Grams / 100
			totals.ConsumedCalories += comp.CaloriesPer100g * scale
			totals.ConsumedProtein += comp.ProteinPer100g * scale
			totals.ConsumedCarbs += comp.CarbsPer100g * scale
			totals.ConsumedFat += comp.FatPer100g * scale
			for _, n := range comp.Nutrients {
				totals.NutrientConsumed[n.Key] += n.AmountPer100g * scale
			}
		}
		if meal.AdHoc != nil {
			totals.ConsumedCalories += meal.AdHoc.Calories
			totals.ConsumedProtein += meal.AdHoc.Protein
			totals.ConsumedCarbs += meal.AdHoc.Carbs
			totals.ConsumedFat += meal.AdHoc.Fat
		}
	}

	for _, act := range activities {
		totals.ExerciseCalories += act.CaloriesBurned
	}

	return totals
}

// RangeSummary is the per-day breakdown of a date span plus the arithmetic
// mean of the daily totals.
type RangeSummary struct {
	Days    []DayTotals
	Average DayTotals
}

// SummarizeRange averages a slice of per-day totals over the inclusive span
// they cover. The average divides by the number of days, including days with
// no entries.
func SummarizeRange(days []DayTotals) RangeSummary {
	summary := RangeSummary{Days: days}
	if len(days) == 0 {
		summary.Average.NutrientConsumed = map[NutrientKey]float64{}
		return summary
	}

	avg := DayTotals{NutrientConsumed: make(map[NutrientKey]float64)}
	for _, d := range days {
		avg.ConsumedCalories += d.ConsumedCalories
		avg.ConsumedProtein += d.ConsumedProtein
		avg.ConsumedCarbs += d.ConsumedCarbs
		avg.ConsumedFat += d.ConsumedFat
		avg.ExerciseCalories += d.ExerciseCalories
		for key, amount := range d.NutrientConsumed {
			avg.NutrientConsumed[key] += amount
		}
	}

	n := float64(len(days))
	avg.ConsumedCalories /= n
	avg.ConsumedProtein /= n
	avg.ConsumedCarbs /= n
	avg.ConsumedFat /= n
	avg.ExerciseCalories /= n
	for key := range avg.NutrientConsumed {
		avg.NutrientConsumed[key] /= n
	}

	summary.Average = avg
	return summary
}

// NutrientStatus is one row of a consumed-vs-required rollup.
type NutrientStatus struct {
	Label    string
	Consumed float64
	Required float64
}

// NutrientRollup reports every nutrient of a category with what was consumed
// on the day and what is required. overrides replaces the catalog default
// per nutrient key (user-specific daily targets).
func NutrientRollup(totals DayTotals, category NutrientCategory, overrides map[NutrientKey]float64) ([]NutrientStatus, error) {
	defs, err := CatalogNutrients(category)
	if err != nil {
		return nil, err
	}

	rollup := make([]NutrientStatus, 0, len(defs))
	for _, def := range defs {
		key := NutrientKey{Category: category, Name: def.Name}
		required := def.DefaultRequired
		if override, ok := overrides[key]; ok {
			required = override
		}
		rollup = append(rollup, NutrientStatus{
			Label:    def.Name,
			Consumed: totals.NutrientConsumed[key],
			Required: required,
		})
	}
	return rollup, nil
}
