package repository

import (
	"context"
	"time"

	"github.com/YourGothDaddy/fitness-tracker-sub000/model"

	"gorm.io/gorm"
)

// ActivityRepository is a struct that holds the database connection.
type ActivityRepository struct {
	DB *gorm.DB
}

// NewActivityRepository creates and returns a new ActivityRepository.
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// CreateRecord stores a logged exercise session.
func (r *ActivityRepository) CreateRecord(ctx context.Context, record *model.ActivityRecord) error {
	return r.DB.WithContext(ctx).Create(record).Error
}

// ListRecordsByDate returns every activity a user logged on the calendar day
// of date.
func (r *ActivityRepository) ListRecordsByDate(ctx context.Context, userID uint, date time.Time) ([]model.ActivityRecord, error) {
	start, end := dayBounds(date)
	var records []model.ActivityRecord
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("created_at asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListRecordsByRange returns activities over an inclusive date span.
func (r *ActivityRepository) ListRecordsByRange(ctx context.Context, userID uint, from, to time.Time) ([]model.ActivityRecord, error) {
	start, _ := dayBounds(from)
	_, end := dayBounds(to)
	var records []model.ActivityRecord
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteRecord removes a user's activity record.
func (r *ActivityRepository) DeleteRecord(ctx context.Context, userID uint, ref string) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND ref = ?", userID, ref).
		Delete(&model.ActivityRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetFavorite flags or unflags an activity record as a favorite.
func (r *ActivityRepository) SetFavorite(ctx context.Context, userID uint, ref string, favorite bool) error {
	res := r.DB.WithContext(ctx).
		Model(&model.ActivityRecord{}).
		Where("user_id = ? AND ref = ?", userID, ref).
		Update("favorite", favorite)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
