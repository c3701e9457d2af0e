package model

import (
	"time"
)

// Macro allocation modes. Ratio derives gram targets from the percentage
// split; Fixed keeps the canonical auto-distribution.
const (
	MacroModeRatio = "Ratio"
	MacroModeFixed = "Fixed"
)

// User represents an application user.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  []byte    `gorm:"type:bytea;not null" json:"-"` // Hide password from JSON
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UserProfile holds the body metrics and energy settings every metric
// computation reads.
type UserProfile struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	UserID          uint    `gorm:"not null;uniqueIndex" json:"user_id"`
	Age             int     `gorm:"not null" json:"age"`
	Sex             string  `gorm:"size:10;not null" json:"sex"` // Male | Female
	WeightKg        float64 `gorm:"not null" json:"weight_kg"`
	HeightCm        float64 `gorm:"not null" json:"height_cm"`
	ActivityLevelID uint    `gorm:"not null" json:"activity_level_id"`
	IncludeTEF      bool    `gorm:"default:false" json:"include_tef"`

	// CustomBMR, when set and positive, bypasses the formula.
	CustomBMR *float64 `json:"custom_bmr,omitempty"`

	// CaloriesGoal is daily when IsDailyCaloriesGoal, otherwise monthly
	// (effective daily = monthly / 30).
	CaloriesGoal        int  `gorm:"default:0" json:"calories_goal"`
	IsDailyCaloriesGoal bool `gorm:"default:true" json:"is_daily_calories_goal"`

	MacroMode    string  `gorm:"size:20;default:'Ratio'" json:"macro_mode"`
	ProteinRatio float64 `gorm:"default:14" json:"protein_ratio"`
	CarbsRatio   float64 `gorm:"default:66" json:"carbs_ratio"`
	FatRatio     float64 `gorm:"default:20" json:"fat_ratio"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	ActivityLevel ActivityLevel `gorm:"foreignKey:ActivityLevelID" json:"activity_level,omitempty"`
}

// ActivityLevel is immutable reference data: a named TDEE multiplier.
type ActivityLevel struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Multiplier float64 `gorm:"not null" json:"multiplier"`
}

// NutrientDefinition mirrors the engine's nutrient catalog in the database so
// catalog items and user targets can reference nutrients by ID.
type NutrientDefinition struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Category        string  `gorm:"size:50;not null;uniqueIndex:idx_category_name" json:"category"`
	Name            string  `gorm:"size:100;not null;uniqueIndex:idx_category_name" json:"name"`
	DefaultRequired float64 `gorm:"not null" json:"default_required"`
}

// UserNutrientTarget overrides a nutrient's default daily requirement for one
// user.
type UserNutrientTarget struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	UserID         uint    `gorm:"not null;uniqueIndex:idx_user_nutrient" json:"user_id"`
	NutrientID     uint    `gorm:"not null;uniqueIndex:idx_user_nutrient" json:"nutrient_id"`
	RequiredAmount float64 `gorm:"not null" json:"required_amount"`
	Visible        bool    `gorm:"default:true" json:"visible"`

	Nutrient NutrientDefinition `gorm:"foreignKey:NutrientID" json:"nutrient,omitempty"`
}

// ConsumableItem is a food catalog entry with per-100g composition. OwnerID
// is nil for admin-curated public items and set for user-created custom ones.
type ConsumableItem struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	Name            string   `gorm:"size:255;not null;index" json:"name"`
	OwnerID         *uint    `gorm:"index" json:"owner_id,omitempty"`
	CaloriesPer100g int      `gorm:"not null" json:"calories_per_100g"`
	ProteinPer100g  float64  `gorm:"default:0" json:"protein_per_100g"`
	CarbsPer100g    float64  `gorm:"default:0" json:"carbs_per_100g"`
	FatPer100g      float64  `gorm:"default:0" json:"fat_per_100g"`
	GramsPerPiece   *float64 `json:"grams_per_piece,omitempty"`

	Nutrients []ItemNutrient `json:"nutrients,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ItemNutrient is one micro-nutrient amount per 100g of a catalog item.
type ItemNutrient struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	ConsumableItemID uint    `gorm:"not null;index" json:"consumable_item_id"`
	Category         string  `gorm:"size:50;not null" json:"category"`
	Name             string  `gorm:"size:100;not null" json:"name"`
	AmountPer100g    float64 `gorm:"not null" json:"amount_per_100g"`
}

// MealEntry is one logged meal. It carries either catalog-backed components,
// ad-hoc macro values, or both.
type MealEntry struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	Ref    string    `gorm:"size:36;uniqueIndex;not null" json:"ref"`
	UserID uint      `gorm:"not null;index:idx_meal_user_date" json:"user_id"`
	Date   time.Time `gorm:"not null;index:idx_meal_user_date" json:"date"`
	Name   string    `gorm:"size:255" json:"name"`

	AdHoc         bool    `gorm:"default:false" json:"ad_hoc"`
	AdHocCalories float64 `gorm:"default:0" json:"ad_hoc_calories"`
	AdHocProtein  float64 `gorm:"default:0" json:"ad_hoc_protein"`
	AdHocCarbs    float64 `gorm:"default:0" json:"ad_hoc_carbs"`
	AdHocFat      float64 `gorm:"default:0" json:"ad_hoc_fat"`

	Components []MealComponent `json:"components,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// MealComponent is one portion of a meal. The per-100g values are a snapshot
// of the catalog item taken at logging time; editing the item later does not
// rewrite history.
type MealComponent struct {
	ID          uint  `gorm:"primaryKey" json:"id"`
	MealEntryID uint  `gorm:"not null;index" json:"meal_entry_id"`
	ItemID      *uint `gorm:"index" json:"item_id,omitempty"`

	ItemName        string  `gorm:"size:255" json:"item_name"`
	Grams           float64 `gorm:"not null" json:"grams"`
	CaloriesPer100g float64 `gorm:"not null" json:"calories_per_100g"`
	ProteinPer100g  float64 `gorm:"default:0" json:"protein_per_100g"`
	CarbsPer100g    float64 `gorm:"default:0" json:"carbs_per_100g"`
	FatPer100g      float64 `gorm:"default:0" json:"fat_per_100g"`

	Nutrients []ComponentNutrient `json:"nutrients,omitempty"`
}

// ComponentNutrient is the snapshotted micro-nutrient composition of a meal
// component.
type ComponentNutrient struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	MealComponentID uint    `gorm:"not null;index" json:"meal_component_id"`
	Category        string  `gorm:"size:50;not null" json:"category"`
	Name            string  `gorm:"size:100;not null" json:"name"`
	AmountPer100g   float64 `gorm:"not null" json:"amount_per_100g"`
}

// ActivityType is a (category, subcategory) pair, e.g. (Cardio, Running).
// The subcategory is the default selectable unit; finer-grained exercises
// hang off it.
type ActivityType struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Category string `gorm:"size:100;not null;uniqueIndex:idx_cat_sub" json:"category"`
	Name     string `gorm:"size:100;not null;uniqueIndex:idx_cat_sub" json:"name"`

	Exercises []ActivityExercise `json:"exercises,omitempty"`
}

// ActivityExercise is a selectable exercise within an activity type. Name is
// empty when the subcategory itself carries the MET table.
type ActivityExercise struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ActivityTypeID uint   `gorm:"not null;index;uniqueIndex:idx_type_exercise" json:"activity_type_id"`
	Name           string `gorm:"size:100;uniqueIndex:idx_type_exercise" json:"name"`

	MetEntries     []MetEntry      `json:"met_entries,omitempty"`
	TerrainOptions []TerrainOption `json:"terrain_options,omitempty"`
}

// MetEntry maps an effort level to a MET value for one exercise.
type MetEntry struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	ActivityExerciseID uint    `gorm:"not null;index;uniqueIndex:idx_exercise_effort" json:"activity_exercise_id"`
	EffortLevel        string  `gorm:"size:50;not null;uniqueIndex:idx_exercise_effort" json:"effort_level"`
	Met                float64 `gorm:"not null" json:"met"`
}

// TerrainOption is a multiplicative terrain adjustment for one exercise.
// Position fixes the display order (Easy/Moderate/Steep/Rough style).
type TerrainOption struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	ActivityExerciseID uint    `gorm:"not null;index;uniqueIndex:idx_exercise_terrain" json:"activity_exercise_id"`
	Name               string  `gorm:"size:50;not null;uniqueIndex:idx_exercise_terrain" json:"name"`
	Multiplier         float64 `gorm:"not null" json:"multiplier"`
	Position           int     `gorm:"default:0" json:"position"`
}

// ActivityRecord is one logged exercise session. CaloriesBurned was computed
// by the engine at logging time, or entered directly for manual workouts.
type ActivityRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Ref             string    `gorm:"size:36;uniqueIndex;not null" json:"ref"`
	UserID          uint      `gorm:"not null;index:idx_activity_user_date" json:"user_id"`
	Date            time.Time `gorm:"not null;index:idx_activity_user_date" json:"date"`
	ActivityTypeID  uint      `gorm:"not null" json:"activity_type_id"`
	ExerciseID      *uint     `json:"exercise_id,omitempty"`
	DurationMinutes float64   `gorm:"not null" json:"duration_minutes"`
	CaloriesBurned  int       `gorm:"not null" json:"calories_burned"`
	EffortLevel     string    `gorm:"size:50" json:"effort_level"`
	TerrainType     string    `gorm:"size:50" json:"terrain_type"`
	Favorite        bool      `gorm:"default:false" json:"favorite"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
