package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/YourGothDaddy/fitness-tracker-sub000/engine"
	"github.com/YourGothDaddy/fitness-tracker-sub000/mapper"
	"github.com/YourGothDaddy/fitness-tracker-sub000/model"
	"github.com/YourGothDaddy/fitness-tracker-sub000/repository"
)

// MetricsService orchestrates the engine: it fetches the day's records and
// the profile, runs the pure computations, and shapes the reported figures.
// It holds no state of its own.
type MetricsService struct {
	profiles   *repository.ProfileRepository
	catalog    *repository.CatalogRepository
	meals      *repository.MealRepository
	activities *repository.ActivityRepository
	mets       *repository.MetRepository
}

// NewMetricsService creates and returns a new MetricsService.
func NewMetricsService(
	profiles *repository.ProfileRepository,
	catalog *repository.CatalogRepository,
	meals *repository.MealRepository,
	activities *repository.ActivityRepository,
	mets *repository.MetRepository,
) *MetricsService {
	return &MetricsService{
		profiles:   profiles,
		catalog:    catalog,
		meals:      meals,
		activities: activities,
		mets:       mets,
	}
}

// EnergySettingsOptions are the per-request overrides of the stored profile.
type EnergySettingsOptions struct {
	CustomBMR       *float64
	ActivityLevelID *uint
	IncludeTEF      *bool
}

// EnergySettingsResult is the maintenance-energy view. Field names are part
// of the client contract.
type EnergySettingsResult struct {
	BMR                 int     `json:"bmr"`
	MaintenanceCalories int     `json:"maintenanceCalories"`
	ActivityLevelID     uint    `json:"activityLevelId"`
	ActivityLevelName   string  `json:"activityLevelName"`
	ActivityMultiplier  float64 `json:"activityMultiplier"`
	TEFIncluded         bool    `json:"tefIncluded"`
}

// EnergySettings computes BMR and maintenance calories from the profile,
// with optional per-request overrides for custom BMR, activity level, and
// the TEF flag.
func (s *MetricsService) EnergySettings(ctx context.Context, userID uint, opts EnergySettingsOptions) (*EnergySettingsResult, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	customBMR := profile.CustomBMR
	if opts.CustomBMR != nil {
		customBMR = opts.CustomBMR
	}
	bmr, err := engine.ComputeBMR(mapper.ProfileToBody(profile), customBMR)
	if err != nil {
		return nil, err
	}

	level := profile.ActivityLevel
	if opts.ActivityLevelID != nil && *opts.ActivityLevelID != profile.ActivityLevelID {
		fetched, err := s.profiles.GetActivityLevel(ctx, *opts.ActivityLevelID)
		if err != nil {
			return nil, err
		}
		level = *fetched
	}

	includeTEF := profile.IncludeTEF
	if opts.IncludeTEF != nil {
		includeTEF = *opts.IncludeTEF
	}

	settings, err := engine.ComputeEnergySettings(bmr, mapper.ActivityLevelToEngine(&level), includeTEF)
	if err != nil {
		return nil, err
	}

	return &EnergySettingsResult{
		BMR:                 settings.BMR,
		MaintenanceCalories: settings.MaintenanceCalories,
		ActivityLevelID:     level.ID,
		ActivityLevelName:   level.Name,
		ActivityMultiplier:  settings.ActivityMultiplier,
		TEFIncluded:         settings.TEFIncluded,
	}, nil
}

// EnergyBudgetResult is the daily budget view. Field names are part of the
// client contract.
type EnergyBudgetResult struct {
	Target                int `json:"target"`
	ExerciseAboveBaseline int `json:"exerciseAboveBaseline"`
	Consumed              int `json:"consumed"`
	Remaining             int `json:"remaining"`
	TEF                   int `json:"tef"`
}

// EnergyBudget aggregates the day and combines it with the profile's calorie
// goal into a remaining-calories figure.
func (s *MetricsService) EnergyBudget(ctx context.Context, userID uint, date time.Time) (*EnergyBudgetResult, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	totals, err := s.aggregateDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	target := engine.DailyTargetKcal(profile.CaloriesGoal, profile.IsDailyCaloriesGoal)
	tef := engine.TEFAdjustment(totals.ConsumedCalories, profile.IncludeTEF)
	remaining := engine.ComputeEnergyBudget(float64(target), totals.ConsumedCalories, totals.ExerciseCalories, tef)

	return &EnergyBudgetResult{
		Target:                target,
		ExerciseAboveBaseline: int(math.Round(totals.ExerciseCalories)),
		Consumed:              int(math.Round(totals.ConsumedCalories)),
		Remaining:             int(math.Round(remaining)),
		TEF:                   int(math.Round(tef)),
	}, nil
}

// MacroResult reports the macro targets derived from ratios plus what was
// actually consumed on the requested day.
type MacroResult struct {
	ProteinRatio  float64 `json:"proteinRatio"`
	CarbsRatio    float64 `json:"carbsRatio"`
	FatRatio      float64 `json:"fatRatio"`
	TotalKcal     int     `json:"totalKcal"`
	ProteinKcal   int     `json:"proteinKcal"`
	CarbsKcal     int     `json:"carbsKcal"`
	FatKcal       int     `json:"fatKcal"`
	ProteinG      float64 `json:"proteinG"`
	CarbsG        float64 `json:"carbsG"`
	FatG          float64 `json:"fatG"`
	RemainingKcal int     `json:"remainingKcal"`

	ConsumedProteinG float64 `json:"consumedProteinG"`
	ConsumedCarbsG   float64 `json:"consumedCarbsG"`
	ConsumedFatG     float64 `json:"consumedFatG"`
}

// Macronutrients allocates the daily calorie target across protein, carbs,
// and fat. A profile not in Ratio mode gets the canonical auto-distribution.
func (s *MetricsService) Macronutrients(ctx context.Context, userID uint, date time.Time) (*MacroResult, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	ratios := engine.DefaultRatios()
	if profile.MacroMode == model.MacroModeRatio {
		ratios = engine.MacroRatios{Protein: profile.ProteinRatio, Carbs: profile.CarbsRatio, Fat: profile.FatRatio}
	}

	total := engine.DailyTargetKcal(profile.CaloriesGoal, profile.IsDailyCaloriesGoal)
	split, err := engine.AllocateMacros(total, ratios)
	if err != nil {
		return nil, err
	}

	totals, err := s.aggregateDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return &MacroResult{
		ProteinRatio:     ratios.Protein,
		CarbsRatio:       ratios.Carbs,
		FatRatio:         ratios.Fat,
		TotalKcal:        total,
		ProteinKcal:      split.ProteinKcal,
		CarbsKcal:        split.CarbsKcal,
		FatKcal:          split.FatKcal,
		ProteinG:         round2(split.ProteinG),
		CarbsG:           round2(split.CarbsG),
		FatG:             round2(split.FatG),
		RemainingKcal:    split.RemainingKcal,
		ConsumedProteinG: round2(totals.ConsumedProtein),
		ConsumedCarbsG:   round2(totals.ConsumedCarbs),
		ConsumedFatG:     round2(totals.ConsumedFat),
	}, nil
}

// UpdateMacroSettings persists new macro ratios on the profile. Each ratio
// must be in [0, 100]; the set need not sum to 100.
func (s *MetricsService) UpdateMacroSettings(ctx context.Context, userID uint, proteinRatio, carbsRatio, fatRatio float64, macroMode string) error {
	for _, ratio := range []float64{proteinRatio, carbsRatio, fatRatio} {
		if ratio < 0 || ratio > 100 {
			return fmt.Errorf("macro ratio %v out of [0,100]: %w", ratio, engine.ErrInvalidInput)
		}
	}
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	profile.ProteinRatio = proteinRatio
	profile.CarbsRatio = carbsRatio
	profile.FatRatio = fatRatio
	if macroMode != "" {
		profile.MacroMode = macroMode
	}
	return s.profiles.UpsertProfile(ctx, profile)
}

// ExerciseCaloriesRequest identifies a MET table entry plus session specifics.
type ExerciseCaloriesRequest struct {
	Category        string
	Subcategory     string
	Exercise        string
	EffortLevel     string
	DurationMinutes float64
	TerrainType     string
}

// CalculateExerciseCalories resolves the MET profile for the requested key
// and estimates the burn using the user's body weight. A missing MET or
// terrain entry is engine.ErrNotFound; it never defaults silently.
func (s *MetricsService) CalculateExerciseCalories(ctx context.Context, userID uint, req ExerciseCaloriesRequest) (*engine.CalorieEstimate, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	exerciseProfile, err := s.mets.GetExerciseProfile(ctx, req.Category, req.Subcategory, req.Exercise)
	if err != nil {
		return nil, err
	}
	met, err := exerciseProfile.ResolveMet(req.EffortLevel)
	if err != nil {
		return nil, err
	}
	terrain, err := exerciseProfile.ResolveTerrain(req.TerrainType)
	if err != nil {
		return nil, err
	}

	estimate, err := engine.EstimateCalories(met, profile.WeightKg, req.DurationMinutes, terrain)
	if err != nil {
		return nil, err
	}
	return &estimate, nil
}

// NutrientBreakdown returns the consumed-vs-required rollup for one category
// on one day, user overrides applied.
func (s *MetricsService) NutrientBreakdown(ctx context.Context, userID uint, category engine.NutrientCategory, date time.Time) ([]engine.NutrientStatus, error) {
	totals, err := s.aggregateDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	targets, err := s.catalog.GetUserTargets(ctx, userID)
	if err != nil {
		return nil, err
	}
	return engine.NutrientRollup(totals, category, mapper.TargetsToOverrides(targets))
}

// DaySummary is one day's totals in response shape.
type DaySummary struct {
	Date             string  `json:"date"`
	ConsumedCalories float64 `json:"consumedCalories"`
	ConsumedProteinG float64 `json:"consumedProteinG"`
	ConsumedCarbsG   float64 `json:"consumedCarbsG"`
	ConsumedFatG     float64 `json:"consumedFatG"`
	ExerciseCalories float64 `json:"exerciseCalories"`
}

// OverviewResult is the per-day breakdown of a date span plus the arithmetic
// mean across every day of the inclusive span, empty days included.
type OverviewResult struct {
	Days    []DaySummary `json:"days"`
	Average DaySummary   `json:"average"`
}

// maxOverviewDays caps the span an overview may cover.
const maxOverviewDays = 366

// Overview aggregates every day in [from, to] and averages the totals.
func (s *MetricsService) Overview(ctx context.Context, userID uint, from, to time.Time) (*OverviewResult, error) {
	from = truncateDay(from)
	to = truncateDay(to)
	if to.Before(from) {
		return nil, fmt.Errorf("date range end before start: %w", engine.ErrInvalidInput)
	}
	spanDays := int(to.Sub(from).Hours()/24) + 1
	if spanDays > maxOverviewDays {
		return nil, fmt.Errorf("date range longer than %d days: %w", maxOverviewDays, engine.ErrInvalidInput)
	}

	meals, err := s.meals.ListMealsByRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	records, err := s.activities.ListRecordsByRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	mealsByDay := make(map[time.Time][]model.MealEntry)
	for _, meal := range meals {
		day := truncateDay(meal.Date)
		mealsByDay[day] = append(mealsByDay[day], meal)
	}
	recordsByDay := make(map[time.Time][]model.ActivityRecord)
	for _, rec := range records {
		day := truncateDay(rec.Date)
		recordsByDay[day] = append(recordsByDay[day], rec)
	}

	days := make([]engine.DayTotals, 0, spanDays)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		days = append(days, engine.AggregateDay(day,
			mapper.MealsToEngine(mealsByDay[day]),
			mapper.ActivitiesToEngine(recordsByDay[day])))
	}
	summary := engine.SummarizeRange(days)

	result := &OverviewResult{Days: make([]DaySummary, 0, len(summary.Days))}
	for _, d := range summary.Days {
		result.Days = append(result.Days, toDaySummary(d, d.Date.Format("2006-01-02")))
	}
	result.Average = toDaySummary(summary.Average, "")
	return result, nil
}

// ConvertToGrams is the unit-conversion endpoint's computation.
func (s *MetricsService) ConvertToGrams(amount float64, unit string, gramsPerPiece *float64) (float64, error) {
	return engine.ConvertToGrams(amount, unit, gramsPerPiece)
}

// aggregateDay fetches one day's meals and activities and runs the pure
// aggregation over them.
func (s *MetricsService) aggregateDay(ctx context.Context, userID uint, date time.Time) (engine.DayTotals, error) {
	meals, err := s.meals.ListMealsByDate(ctx, userID, date)
	if err != nil {
		return engine.DayTotals{}, err
	}
	records, err := s.activities.ListRecordsByDate(ctx, userID, date)
	if err != nil {
		return engine.DayTotals{}, err
	}
	return engine.AggregateDay(truncateDay(date), mapper.MealsToEngine(meals), mapper.ActivitiesToEngine(records)), nil
}

func toDaySummary(d engine.DayTotals, date string) DaySummary {
	return DaySummary{
		Date:             date,
		ConsumedCalories: round2(d.ConsumedCalories),
		ConsumedProteinG: round2(d.ConsumedProtein),
		ConsumedCarbsG:   round2(d.ConsumedCarbs),
		ConsumedFatG:     round2(d.ConsumedFat),
		ExerciseCalories: round2(d.ExerciseCalories),
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
