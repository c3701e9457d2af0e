package repository

import (
	"context"

	"github.com/YourGothDaddy/fitness-tracker-sub000/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository is a struct that holds the database connection.
type ProfileRepository struct {
	DB *gorm.DB
}

// NewProfileRepository creates and returns a new ProfileRepository.
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// GetProfile fetches a user's profile with its activity level preloaded.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.DB.WithContext(ctx).
		Preload("ActivityLevel").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile creates the profile on first save and updates it afterwards.
func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile *model.UserProfile) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}

// GetActivityLevel fetches one activity level by ID.
func (r *ProfileRepository) GetActivityLevel(ctx context.Context, id uint) (*model.ActivityLevel, error) {
	var level model.ActivityLevel
	if err := r.DB.WithContext(ctx).First(&level, id).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

// ListActivityLevels returns the reference multiplier table.
func (r *ProfileRepository) ListActivityLevels(ctx context.Context) ([]model.ActivityLevel, error) {
	var levels []model.ActivityLevel
	if err := r.DB.WithContext(ctx).Order("multiplier asc").Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}
