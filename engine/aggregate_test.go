package engine

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

var testDay = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

func oatmealComponent() MealComponent {
	return MealComponent{
		Grams:           150,
		CaloriesPer100g: 380,
		ProteinPer100g:  13,
		CarbsPer100g:    68,
		FatPer100g:      7,
		Nutrients: []NutrientAmount{
			{Key: NutrientKey{CategoryCarbohydrates, "Fiber"}, AmountPer100g: 10},
			{Key: NutrientKey{CategoryMinerals, "Iron"}, AmountPer100g: 4.3},
		},
	}
}

func TestAggregateDay_ComponentScaling(t *testing.T) {
	meals := []Meal{{Components: []MealComponent{oatmealComponent()}}}
	totals := AggregateDay(testDay, meals, nil)

	// 150g of a 380 kcal/100g item = 570 kcal.
	if math.Abs(totals.ConsumedCalories-570) > 1e-9 {
		t.Errorf("calories = %v, want 570", totals.ConsumedCalories)
	}
	if math.Abs(totals.ConsumedProtein-19.5) > 1e-9 {
		t.Errorf("protein = %v, want 19.5", totals.ConsumedProtein)
	}
	if math.Abs(totals.ConsumedCarbs-102) > 1e-9 {
		t.Errorf("carbs = %v, want 102", totals.ConsumedCarbs)
	}
	if math.Abs(totals.ConsumedFat-10.5) > 1e-9 {
		t.Errorf("fat = %v, want 10.5", totals.ConsumedFat)
	}

	fiber := totals.NutrientConsumed[NutrientKey{CategoryCarbohydrates, "Fiber"}]
	if math.Abs(fiber-15) > 1e-9 {
		t.Errorf("fiber = %v, want 15", fiber)
	}
	iron := totals.NutrientConsumed[NutrientKey{CategoryMinerals, "Iron"}]
	if math.Abs(iron-6.45) > 1e-9 {
		t.Errorf("iron = %v, want 6.45", iron)
	}
}

func TestAggregateDay_AdHocAndActivities(t *testing.T) {
	meals := []Meal{
		{Components: []MealComponent{oatmealComponent()}},
		{AdHoc: &AdHocMacros{Calories: 430, Protein: 25, Carbs: 40, Fat: 18}},
	}
	activities := []Activity{{CaloriesBurned: 294}, {CaloriesBurned: 180}}

	totals := AggregateDay(testDay, meals, activities)
	if math.Abs(totals.ConsumedCalories-1000) > 1e-9 {
		t.Errorf("calories = %v, want 1000", totals.ConsumedCalories)
	}
	if totals.ExerciseCalories != 474 {
		t.Errorf("exercise calories = %v, want 474", totals.ExerciseCalories)
	}
}

func TestAggregateDay_Idempotent(t *testing.T) {
	meals := []Meal{
		{Components: []MealComponent{oatmealComponent(), {Grams: 80, CaloriesPer100g: 52}}},
		{AdHoc: &AdHocMacros{Calories: 120}},
	}
	first := AggregateDay(testDay, meals, []Activity{{CaloriesBurned: 100}})
	second := AggregateDay(testDay, meals, []Activity{{CaloriesBurned: 100}})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-aggregation differs:\n first %+v\nsecond %+v", first, second)
	}
}

func TestAggregateDay_Empty(t *testing.T) {
	totals := AggregateDay(testDay, nil, nil)
	if totals.ConsumedCalories != 0 || totals.ExerciseCalories != 0 {
		t.Errorf("empty day should sum to zero: %+v", totals)
	}
	if totals.NutrientConsumed == nil {
		t.Error("NutrientConsumed map should be initialized")
	}
}

func TestSummarizeRange(t *testing.T) {
	days := []DayTotals{
		{ConsumedCalories: 1800, ExerciseCalories: 200, NutrientConsumed: map[NutrientKey]float64{{CategoryMinerals, "Iron"}: 10}},
		{ConsumedCalories: 2200, ExerciseCalories: 0, NutrientConsumed: map[NutrientKey]float64{{CategoryMinerals, "Iron"}: 6}},
		{ConsumedCalories: 0, ExerciseCalories: 0, NutrientConsumed: map[NutrientKey]float64{}},
	}

	summary := SummarizeRange(days)
	if len(summary.Days) != 3 {
		t.Fatalf("days = %d, want 3", len(summary.Days))
	}
	// Empty days count toward the mean.
	if math.Abs(summary.Average.ConsumedCalories-4000.0/3) > 1e-9 {
		t.Errorf("average calories = %v, want %v", summary.Average.ConsumedCalories, 4000.0/3)
	}
	iron := summary.Average.NutrientConsumed[NutrientKey{CategoryMinerals, "Iron"}]
	if math.Abs(iron-16.0/3) > 1e-9 {
		t.Errorf("average iron = %v, want %v", iron, 16.0/3)
	}
}

func TestSummarizeRange_Empty(t *testing.T) {
	summary := SummarizeRange(nil)
	if len(summary.Days) != 0 || summary.Average.ConsumedCalories != 0 {
		t.Errorf("empty range: %+v", summary)
	}
}

func TestNutrientRollup(t *testing.T) {
	totals := DayTotals{NutrientConsumed: map[NutrientKey]float64{
		{CategoryMinerals, "Iron"}:    6.45,
		{CategoryMinerals, "Calcium"}: 400,
	}}
	overrides := map[NutrientKey]float64{
		{CategoryMinerals, "Iron"}: 25, // user raised the default 18
	}

	rollup, err := NutrientRollup(totals, CategoryMinerals, overrides)
	if err != nil {
		t.Fatalf("NutrientRollup returned error: %v", err)
	}

	byLabel := map[string]NutrientStatus{}
	for _, status := range rollup {
		byLabel[status.Label] = status
	}

	iron := byLabel["Iron"]
	if iron.Consumed != 6.45 || iron.Required != 25 {
		t.Errorf("iron = %+v, want consumed 6.45 / required 25", iron)
	}
	calcium := byLabel["Calcium"]
	if calcium.Consumed != 400 || calcium.Required != 1000 {
		t.Errorf("calcium = %+v, want consumed 400 / required 1000 (default)", calcium)
	}
	// Nutrients never consumed still appear with zero.
	if zinc, ok := byLabel["Zinc"]; !ok || zinc.Consumed != 0 {
		t.Errorf("zinc = %+v, want present with consumed 0", zinc)
	}
}

func TestNutrientRollup_UnknownCategory(t *testing.T) {
	_, err := NutrientRollup(DayTotals{}, "macros", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
