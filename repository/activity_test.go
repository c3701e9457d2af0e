package repository

import (
	"context"
	"testing"
	"time"

	"github.com/YourGothDaddy/fitness-tracker-sub000/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func testRecord(userID, typeID uint, date time.Time) *model.ActivityRecord {
	return &model.ActivityRecord{
		Ref:             uuid.NewString(),
		UserID:          userID,
		Date:            date,
		ActivityTypeID:  typeID,
		DurationMinutes: 30,
		CaloriesBurned:  294,
		EffortLevel:     "moderate",
	}
}

func TestActivityRecordsByDateAndRange(t *testing.T) {
	gdb := seededTestDB(t)
	repo := NewActivityRepository(gdb)
	mets := NewMetRepository(gdb)
	ctx := context.Background()
	user := createTestUser(t, gdb, "runner@example.com")

	running, err := mets.GetActivityType(ctx, "Cardio", "Running")
	if err != nil {
		t.Fatalf("GetActivityType: %v", err)
	}

	day := time.Date(2026, 4, 1, 7, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{0, 12 * time.Hour, 24 * time.Hour} {
		if err := repo.CreateRecord(ctx, testRecord(user.ID, running.ID, day.Add(offset))); err != nil {
			t.Fatalf("CreateRecord: %v", err)
		}
	}

	byDay, err := repo.ListRecordsByDate(ctx, user.ID, day)
	if err != nil {
		t.Fatalf("ListRecordsByDate: %v", err)
	}
	if len(byDay) != 2 {
		t.Fatalf("got %d records on day, want 2", len(byDay))
	}

	byRange, err := repo.ListRecordsByRange(ctx, user.ID, day, day.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("ListRecordsByRange: %v", err)
	}
	if len(byRange) != 3 {
		t.Fatalf("got %d records in range, want 3", len(byRange))
	}
}

func TestDeleteRecordNotFound(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewActivityRepository(gdb)

	if err := repo.DeleteRecord(context.Background(), 1, uuid.NewString()); err != gorm.ErrRecordNotFound {
		t.Fatalf("got %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestSetFavorite(t *testing.T) {
	gdb := seededTestDB(t)
	repo := NewActivityRepository(gdb)
	mets := NewMetRepository(gdb)
	ctx := context.Background()
	user := createTestUser(t, gdb, "fav@example.com")

	hiking, err := mets.GetActivityType(ctx, "Outdoor", "Hiking")
	if err != nil {
		t.Fatalf("GetActivityType: %v", err)
	}
	record := testRecord(user.ID, hiking.ID, time.Now().UTC())
	if err := repo.CreateRecord(ctx, record); err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}

	if err := repo.SetFavorite(ctx, user.ID, record.Ref, true); err != nil {
		t.Fatalf("SetFavorite: %v", err)
	}
	var got model.ActivityRecord
	if err := gdb.Where("ref = ?", record.Ref).First(&got).Error; err != nil {
		t.Fatalf("reload record: %v", err)
	}
	if !got.Favorite {
		t.Error("favorite flag not set")
	}

	// Another user's ref is a miss, not a silent no-op.
	if err := repo.SetFavorite(ctx, user.ID+1, record.Ref, false); err != gorm.ErrRecordNotFound {
		t.Fatalf("got %v, want gorm.ErrRecordNotFound", err)
	}
}
