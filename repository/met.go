package repository

import (
	"context"
	"fmt"

	"github.com/YourGothDaddy/fitness-tracker-sub000/engine"
	"github.com/YourGothDaddy/fitness-tracker-sub000/mapper"
	"github.com/YourGothDaddy/fitness-tracker-sub000/model"

	"gorm.io/gorm"
)

// MetRepository resolves MET profiles from the stored reference data.
type MetRepository struct {
	DB *gorm.DB
}

// NewMetRepository creates and returns a new MetRepository.
func NewMetRepository(db *gorm.DB) *MetRepository {
	return &MetRepository{DB: db}
}

// GetExerciseProfile loads the MET table for a (category, subcategory,
// exercise) key. An empty exercise selects the subcategory's own table (the
// exercise row with an empty name). A miss at any step is engine.ErrNotFound
// so callers can distinguish it from bad input.
func (r *MetRepository) GetExerciseProfile(ctx context.Context, category, subcategory, exercise string) (engine.ExerciseProfile, error) {
	var activityType model.ActivityType
	err := r.DB.WithContext(ctx).
		Where("LOWER(category) = ? AND LOWER(name) = ?", engine.NormalizeKey(category), engine.NormalizeKey(subcategory)).
		First(&activityType).Error
	if err == gorm.ErrRecordNotFound {
		return engine.ExerciseProfile{}, fmt.Errorf("activity %s/%s: %w", category, subcategory, engine.ErrNotFound)
	}
	if err != nil {
		return engine.ExerciseProfile{}, err
	}

	var row model.ActivityExercise
	err = r.DB.WithContext(ctx).
		Preload("MetEntries").
		Preload("TerrainOptions").
		Where("activity_type_id = ? AND LOWER(name) = ?", activityType.ID, engine.NormalizeKey(exercise)).
		First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return engine.ExerciseProfile{}, fmt.Errorf("exercise %s/%s/%s: %w", category, subcategory, exercise, engine.ErrNotFound)
	}
	if err != nil {
		return engine.ExerciseProfile{}, err
	}

	return mapper.ExerciseToProfile(&row), nil
}

// ListActivityTypes returns the activity taxonomy with exercises, MET
// entries, and terrain options preloaded, for catalog display.
func (r *MetRepository) ListActivityTypes(ctx context.Context) ([]model.ActivityType, error) {
	var types []model.ActivityType
	err := r.DB.WithContext(ctx).
		Preload("Exercises").
		Preload("Exercises.MetEntries").
		Preload("Exercises.TerrainOptions").
		Order("category asc, name asc").
		Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

// GetActivityType resolves a (category, subcategory) pair.
func (r *MetRepository) GetActivityType(ctx context.Context, category, subcategory string) (*model.ActivityType, error) {
	var activityType model.ActivityType
	err := r.DB.WithContext(ctx).
		Where("LOWER(category) = ? AND LOWER(name) = ?", engine.NormalizeKey(category), engine.NormalizeKey(subcategory)).
		First(&activityType).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("activity %s/%s: %w", category, subcategory, engine.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &activityType, nil
}
