package seed

import (
	"github.com/YourGothDaddy/fitness-tracker-sub000/engine"
	"github.com/YourGothDaddy/fitness-tracker-sub000/logger"
	"github.com/YourGothDaddy/fitness-tracker-sub000/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run loads all reference data: activity levels, the nutrient catalog, the
// MET table, and a starter food set. Idempotent — existing rows are left
// alone.
func Run(db *gorm.DB) error {
	if err := activityLevels(db); err != nil {
		return err
	}
	if err := nutrientDefinitions(db); err != nil {
		return err
	}
	if err := metTable(db); err != nil {
		return err
	}
	if err := starterFoods(db); err != nil {
		return err
	}
	logger.Info("reference data seeded")
	return nil
}

func activityLevels(db *gorm.DB) error {
	levels := []model.ActivityLevel{
		{Name: "Sedentary", Multiplier: 1.2},
		{Name: "Lightly active", Multiplier: 1.375},
		{Name: "Moderately active", Multiplier: 1.55},
		{Name: "Very active", Multiplier: 1.725},
		{Name: "Extra active", Multiplier: 1.9},
	}
	for _, level := range levels {
		if err := db.Where("name = ?", level.Name).FirstOrCreate(&level).Error; err != nil {
			return err
		}
	}
	return nil
}

// nutrientDefinitions mirrors the engine's closed catalog into the database
// so user targets can reference nutrients by ID.
func nutrientDefinitions(db *gorm.DB) error {
	for _, category := range engine.Categories {
		defs, err := engine.CatalogNutrients(category)
		if err != nil {
			return err
		}
		for _, def := range defs {
			row := model.NutrientDefinition{
				Category:        string(category),
				Name:            def.Name,
				DefaultRequired: def.DefaultRequired,
			}
			if err := db.Where("category = ? AND name = ?", row.Category, row.Name).FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

type exerciseSeed struct {
	name       string // empty when the subcategory itself carries the table
	metEntries map[string]float64
	terrains   []model.TerrainOption
}

type activitySeed struct {
	category    string
	subcategory string
	exercises   []exerciseSeed
}

var activitySeeds = []activitySeed{
	{
		category: "Cardio", subcategory: "Running",
		exercises: []exerciseSeed{
			{name: "", metEntries: map[string]float64{"light": 6, "moderate": 8, "vigorous": 11.5}},
			{name: "Treadmill", metEntries: map[string]float64{"light": 5.5, "moderate": 7.5, "vigorous": 10.5}},
			{name: "Trail", metEntries: map[string]float64{"moderate": 8.5, "vigorous": 12}},
		},
	},
	{
		category: "Cardio", subcategory: "Cycling",
		exercises: []exerciseSeed{
			{name: "", metEntries: map[string]float64{"light": 4, "moderate": 6.8, "vigorous": 10}},
			{name: "Stationary", metEntries: map[string]float64{"light": 3.5, "moderate": 6.8, "vigorous": 8.8}},
		},
	},
	{
		category: "Cardio", subcategory: "Swimming",
		exercises: []exerciseSeed{
			{name: "", metEntries: map[string]float64{"light": 5.8, "moderate": 8.3, "vigorous": 10}},
		},
	},
	{
		category: "Cardio", subcategory: "Walking",
		exercises: []exerciseSeed{
			{name: "", metEntries: map[string]float64{"light": 2.8, "moderate": 3.5, "vigorous": 5}},
		},
	},
	{
		category: "Outdoor", subcategory: "Hiking",
		exercises: []exerciseSeed{
			{
				name:       "",
				metEntries: map[string]float64{"light": 4.3, "moderate": 5.3, "vigorous": 7.3},
				terrains: []model.TerrainOption{
					{Name: "Easy", Multiplier: 1.0, Position: 0},
					{Name: "Moderate", Multiplier: 1.1, Position: 1},
					{Name: "Steep", Multiplier: 1.3, Position: 2},
					{Name: "Rough", Multiplier: 1.2, Position: 3},
				},
			},
		},
	},
	{
		category: "Strength", subcategory: "Weightlifting",
		exercises: []exerciseSeed{
			{name: "", metEntries: map[string]float64{"light": 3, "moderate": 5, "vigorous": 6}},
			{name: "Circuit", metEntries: map[string]float64{"moderate": 4.3, "vigorous": 8}},
		},
	},
	{
		category: "Flexibility", subcategory: "Yoga",
		exercises: []exerciseSeed{
			{name: "", metEntries: map[string]float64{"light": 2.5, "moderate": 3, "vigorous": 4}},
		},
	},
}

func metTable(db *gorm.DB) error {
	for _, seed := range activitySeeds {
		activityType := model.ActivityType{Category: seed.category, Name: seed.subcategory}
		if err := db.Where("category = ? AND name = ?", seed.category, seed.subcategory).FirstOrCreate(&activityType).Error; err != nil {
			return err
		}

		for _, ex := range seed.exercises {
			exercise := model.ActivityExercise{ActivityTypeID: activityType.ID, Name: ex.name}
			if err := db.Where("activity_type_id = ? AND name = ?", activityType.ID, ex.name).FirstOrCreate(&exercise).Error; err != nil {
				return err
			}
			for effort, met := range ex.metEntries {
				entry := model.MetEntry{ActivityExerciseID: exercise.ID, EffortLevel: effort, Met: met}
				if err := db.Where("activity_exercise_id = ? AND effort_level = ?", exercise.ID, effort).FirstOrCreate(&entry).Error; err != nil {
					return err
				}
			}
			for _, terrain := range ex.terrains {
				terrain.ActivityExerciseID = exercise.ID
				if err := db.Where("activity_exercise_id = ? AND name = ?", exercise.ID, terrain.Name).FirstOrCreate(&terrain).Error; err != nil {
					return err
				}
			}
		}
		logger.Debug("seeded activity", zap.String("category", seed.category), zap.String("subcategory", seed.subcategory))
	}
	return nil
}

func starterFoods(db *gorm.DB) error {
	items := []model.ConsumableItem{
		{
			Name: "Rolled oats", CaloriesPer100g: 380, ProteinPer100g: 13, CarbsPer100g: 68, FatPer100g: 7,
			Nutrients: []model.ItemNutrient{
				{Category: string(engine.CategoryCarbohydrates), Name: "Fiber", AmountPer100g: 10},
				{Category: string(engine.CategoryMinerals), Name: "Iron", AmountPer100g: 4.3},
				{Category: string(engine.CategoryMinerals), Name: "Magnesium", AmountPer100g: 138},
			},
		},
		{
			Name: "Chicken breast", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6,
			Nutrients: []model.ItemNutrient{
				{Category: string(engine.CategoryAminoAcids), Name: "Leucine", AmountPer100g: 2.3},
				{Category: string(engine.CategoryAminoAcids), Name: "Lysine", AmountPer100g: 2.6},
				{Category: string(engine.CategorySterols), Name: "Cholesterol", AmountPer100g: 85},
				{Category: string(engine.CategoryVitamins), Name: "VitaminB6", AmountPer100g: 0.6},
			},
		},
		{
			Name: "Whole egg", CaloriesPer100g: 143, ProteinPer100g: 12.6, CarbsPer100g: 0.7, FatPer100g: 9.5,
			GramsPerPiece: floatPtr(55),
			Nutrients: []model.ItemNutrient{
				{Category: string(engine.CategorySterols), Name: "Cholesterol", AmountPer100g: 372},
				{Category: string(engine.CategoryVitamins), Name: "VitaminD", AmountPer100g: 0.002},
				{Category: string(engine.CategoryFats), Name: "SaturatedFats", AmountPer100g: 3.1},
			},
		},
		{
			Name: "Banana", CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 22.8, FatPer100g: 0.3,
			GramsPerPiece: floatPtr(118),
			Nutrients: []model.ItemNutrient{
				{Category: string(engine.CategoryCarbohydrates), Name: "Sugars", AmountPer100g: 12.2},
				{Category: string(engine.CategoryMinerals), Name: "Potassium", AmountPer100g: 358},
				{Category: string(engine.CategoryVitamins), Name: "VitaminC", AmountPer100g: 8.7},
			},
		},
		{
			Name: "Olive oil", CaloriesPer100g: 884, ProteinPer100g: 0, CarbsPer100g: 0, FatPer100g: 100,
			Nutrients: []model.ItemNutrient{
				{Category: string(engine.CategoryFats), Name: "MonounsaturatedFats", AmountPer100g: 73},
				{Category: string(engine.CategoryFats), Name: "SaturatedFats", AmountPer100g: 14},
				{Category: string(engine.CategoryVitamins), Name: "VitaminE", AmountPer100g: 14.4},
			},
		},
	}

	for _, item := range items {
		var existing model.ConsumableItem
		err := db.Where("name = ? AND owner_id IS NULL", item.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

func floatPtr(v float64) *float64 { return &v }
