package repository

import (
	"context"
	"time"

	"github.com/YourGothDaddy/fitness-tracker-sub000/model"

	"gorm.io/gorm"
)

// MealRepository is a struct that holds the database connection.
type MealRepository struct {
	DB *gorm.DB
}

// NewMealRepository creates and returns a new MealRepository.
func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{DB: db}
}

// dayBounds returns the [start, end) window of the calendar day containing t,
// in t's location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

// CreateMeal stores a meal entry with its components and snapshotted
// nutrients in one transaction (gorm cascades the associations).
func (r *MealRepository) CreateMeal(ctx context.Context, meal *model.MealEntry) error {
	return r.DB.WithContext(ctx).Create(meal).Error
}

// ListMealsByDate returns every meal a user logged on the calendar day of
// date, components and nutrients preloaded.
func (r *MealRepository) ListMealsByDate(ctx context.Context, userID uint, date time.Time) ([]model.MealEntry, error) {
	start, end := dayBounds(date)
	var meals []model.MealEntry
	err := r.DB.WithContext(ctx).
		Preload("Components").
		Preload("Components.Nutrients").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("created_at asc").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

// ListMealsByRange returns meals over an inclusive date span.
func (r *MealRepository) ListMealsByRange(ctx context.Context, userID uint, from, to time.Time) ([]model.MealEntry, error) {
	start, _ := dayBounds(from)
	_, end := dayBounds(to)
	var meals []model.MealEntry
	err := r.DB.WithContext(ctx).
		Preload("Components").
		Preload("Components.Nutrients").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date asc").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

// DeleteMeal removes a user's meal entry and its components.
func (r *MealRepository) DeleteMeal(ctx context.Context, userID uint, ref string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal model.MealEntry
		if err := tx.Where("user_id = ? AND ref = ?", userID, ref).First(&meal).Error; err != nil {
			return err
		}
		var components []model.MealComponent
		if err := tx.Where("meal_entry_id = ?", meal.ID).Find(&components).Error; err != nil {
			return err
		}
		for _, comp := range components {
			if err := tx.Where("meal_component_id = ?", comp.ID).Delete(&model.ComponentNutrient{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("meal_entry_id = ?", meal.ID).Delete(&model.MealComponent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}
