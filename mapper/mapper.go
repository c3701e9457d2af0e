package mapper

import (
	"github.com/YourGothDaddy/fitness-tracker-sub000/engine"
	"github.com/YourGothDaddy/fitness-tracker-sub000/model"
)

// ProfileToBody converts the stored profile to the engine's body metrics.
func ProfileToBody(p *model.UserProfile) engine.BodyProfile {
	return engine.BodyProfile{
		Age:      p.Age,
		Sex:      engine.Sex(p.Sex),
		WeightKg: p.WeightKg,
		HeightCm: p.HeightCm,
	}
}

// ActivityLevelToEngine converts a stored activity level.
func ActivityLevelToEngine(l *model.ActivityLevel) engine.ActivityLevel {
	return engine.ActivityLevel{ID: l.ID, Name: l.Name, Multiplier: l.Multiplier}
}

// MealToEngine converts a stored meal entry, snapshotted components included,
// into the engine's meal shape.
func MealToEngine(m *model.MealEntry) engine.Meal {
	meal := engine.Meal{}
	for _, comp := range m.Components {
		nutrients := make([]engine.NutrientAmount, 0, len(comp.Nutrients))
		for _, n := range comp.Nutrients {
			nutrients = append(nutrients, engine.NutrientAmount{
				Key:           engine.NutrientKey{Category: engine.NutrientCategory(n.Category), Name: n.Name},
				AmountPer100g: n.AmountPer100g,
			})
		}
		meal.Components = append(meal.Components, engine.MealComponent{
			Grams:           comp.Grams,
			CaloriesPer100g: comp.CaloriesPer100g,
			ProteinPer100g:  comp.ProteinPer100g,
			CarbsPer100g:    comp.CarbsPer100g,
			FatPer100g:      comp.FatPer100g,
			Nutrients:       nutrients,
		})
	}
	if m.AdHoc {
		meal.AdHoc = &engine.AdHocMacros{
			Calories: m.AdHocCalories,
			Protein:  m.AdHocProtein,
			Carbs:    m.AdHocCarbs,
			Fat:      m.AdHocFat,
		}
	}
	return meal
}

// MealsToEngine converts a day's worth of meal entries.
func MealsToEngine(entries []model.MealEntry) []engine.Meal {
	meals := make([]engine.Meal, 0, len(entries))
	for i := range entries {
		meals = append(meals, MealToEngine(&entries[i]))
	}
	return meals
}

// ActivitiesToEngine converts activity records to the engine's activity
// shape. Only the logged calorie figure matters for aggregation.
func ActivitiesToEngine(records []model.ActivityRecord) []engine.Activity {
	activities := make([]engine.Activity, 0, len(records))
	for _, rec := range records {
		activities = append(activities, engine.Activity{CaloriesBurned: float64(rec.CaloriesBurned)})
	}
	return activities
}

// ItemToComponentSnapshot copies a catalog item's composition into a meal
// component, freezing it against later catalog edits.
func ItemToComponentSnapshot(item *model.ConsumableItem, grams float64) model.MealComponent {
	comp := model.MealComponent{
		ItemID:          &item.ID,
		ItemName:        item.Name,
		Grams:           grams,
		CaloriesPer100g: float64(item.CaloriesPer100g),
		ProteinPer100g:  item.ProteinPer100g,
		CarbsPer100g:    item.CarbsPer100g,
		FatPer100g:      item.FatPer100g,
	}
	for _, n := range item.Nutrients {
		comp.Nutrients = append(comp.Nutrients, model.ComponentNutrient{
			Category:      n.Category,
			Name:          n.Name,
			AmountPer100g: n.AmountPer100g,
		})
	}
	return comp
}

// TargetsToOverrides flattens user nutrient targets into the override map the
// engine's rollup consumes. Hidden targets are skipped.
func TargetsToOverrides(targets []model.UserNutrientTarget) map[engine.NutrientKey]float64 {
	overrides := make(map[engine.NutrientKey]float64, len(targets))
	for _, target := range targets {
		if !target.Visible {
			continue
		}
		key := engine.NutrientKey{
			Category: engine.NutrientCategory(target.Nutrient.Category),
			Name:     target.Nutrient.Name,
		}
		overrides[key] = target.RequiredAmount
	}
	return overrides
}

// ExerciseToProfile builds the engine's MET lookup profile from stored
// entries. Keys are normalized once here so lookups stay exact.
func ExerciseToProfile(exercise *model.ActivityExercise) engine.ExerciseProfile {
	profile := engine.ExerciseProfile{
		MetByEffort:        make(map[string]float64, len(exercise.MetEntries)),
		TerrainMultipliers: make(map[string]float64, len(exercise.TerrainOptions)),
	}
	for _, entry := range exercise.MetEntries {
		profile.MetByEffort[engine.NormalizeKey(entry.EffortLevel)] = entry.Met
	}
	for _, opt := range exercise.TerrainOptions {
		profile.TerrainMultipliers[engine.NormalizeKey(opt.Name)] = opt.Multiplier
	}
	return profile
}
