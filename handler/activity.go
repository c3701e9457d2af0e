package handler

import (
	"math"
	"net/http"
	"time"

	"github.com/YourGothDaddy/fitness-tracker-sub000/cache"
	"github.com/YourGothDaddy/fitness-tracker-sub000/middleware"
	"github.com/YourGothDaddy/fitness-tracker-sub000/model"
	"github.com/YourGothDaddy/fitness-tracker-sub000/repository"
	"github.com/YourGothDaddy/fitness-tracker-sub000/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ActivityHandler interface {
	TrackExercise(c *gin.Context)
	AddWorkout(c *gin.Context)
	ListActivities(c *gin.Context)
	DeleteActivity(c *gin.Context)
	SetFavorite(c *gin.Context)
	ListActivityCatalog(c *gin.Context)
}

type activityHandler struct {
	activities *repository.ActivityRepository
	mets       *repository.MetRepository
	metrics    *service.MetricsService
	store      *cache.Store
}

func NewActivityHandler(activities *repository.ActivityRepository, mets *repository.MetRepository, metrics *service.MetricsService, store *cache.Store) ActivityHandler {
	return &activityHandler{activities: activities, mets: mets, metrics: metrics, store: store}
}

type trackExerciseRequest struct {
	Date              string  `json:"date" binding:"required"`
	Category          string  `json:"category" binding:"required"`
	Subcategory       string  `json:"subcategory" binding:"required"`
	Exercise          string  `json:"exercise"`
	EffortLevel       string  `json:"effortLevel" binding:"required"`
	DurationInMinutes float64 `json:"durationInMinutes" binding:"required,gt=0"`
	TerrainType       string  `json:"terrainType"`
}

// TrackExercise logs an exercise session. The calorie figure is computed by
// the engine at logging time and stored; later aggregation only sums it.
func (h *activityHandler) TrackExercise(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req trackExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed date, want YYYY-MM-DD"})
		return
	}

	estimate, err := h.metrics.CalculateExerciseCalories(c.Request.Context(), userID, service.ExerciseCaloriesRequest{
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Exercise:        req.Exercise,
		EffortLevel:     req.EffortLevel,
		DurationMinutes: req.DurationInMinutes,
		TerrainType:     req.TerrainType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	activityType, err := h.mets.GetActivityType(c.Request.Context(), req.Category, req.Subcategory)
	if err != nil {
		respondError(c, err)
		return
	}

	record := &model.ActivityRecord{
		Ref:             uuid.NewString(),
		UserID:          userID,
		Date:            date,
		ActivityTypeID:  activityType.ID,
		DurationMinutes: req.DurationInMinutes,
		CaloriesBurned:  int(math.Round(estimate.TotalCalories)),
		EffortLevel:     req.EffortLevel,
		TerrainType:     req.TerrainType,
	}
	if err := h.activities.CreateRecord(c.Request.Context(), record); err != nil {
		respondError(c, err)
		return
	}

	h.store.Invalidate(cache.ClassActivity)
	c.JSON(http.StatusCreated, gin.H{"activity": record, "estimate": estimate})
}

type addWorkoutRequest struct {
	Date              string  `json:"date" binding:"required"`
	Category          string  `json:"category" binding:"required"`
	Subcategory       string  `json:"subcategory" binding:"required"`
	DurationInMinutes float64 `json:"durationInMinutes" binding:"required,gt=0"`
	CaloriesBurned    int     `json:"caloriesBurned" binding:"required,gt=0"`
}

// AddWorkout logs a manually-entered workout with a user-supplied calorie
// figure; no MET lookup happens.
func (h *activityHandler) AddWorkout(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req addWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed date, want YYYY-MM-DD"})
		return
	}

	activityType, err := h.mets.GetActivityType(c.Request.Context(), req.Category, req.Subcategory)
	if err != nil {
		respondError(c, err)
		return
	}

	record := &model.ActivityRecord{
		Ref:             uuid.NewString(),
		UserID:          userID,
		Date:            date,
		ActivityTypeID:  activityType.ID,
		DurationMinutes: req.DurationInMinutes,
		CaloriesBurned:  req.CaloriesBurned,
	}
	if err := h.activities.CreateRecord(c.Request.Context(), record); err != nil {
		respondError(c, err)
		return
	}

	h.store.Invalidate(cache.ClassActivity)
	c.JSON(http.StatusCreated, gin.H{"activity": record})
}

// ListActivities returns the caller's activity records for a date.
func (h *activityHandler) ListActivities(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	date, err := parseDate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := h.activities.ListRecordsByDate(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": records})
}

// DeleteActivity removes one activity record by ref.
func (h *activityHandler) DeleteActivity(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := h.activities.DeleteRecord(c.Request.Context(), userID, c.Param("ref")); err != nil {
		respondError(c, err)
		return
	}

	h.store.Invalidate(cache.ClassActivity)
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}

type favoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// SetFavorite flags or unflags an activity as a favorite.
func (h *activityHandler) SetFavorite(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.activities.SetFavorite(c.Request.Context(), userID, c.Param("ref"), req.Favorite); err != nil {
		respondError(c, err)
		return
	}

	h.store.Invalidate(cache.ClassActivity)
	c.JSON(http.StatusOK, gin.H{"message": "Favorite updated"})
}

// ListActivityCatalog returns the activity taxonomy with MET profiles, for
// exercise pickers.
func (h *activityHandler) ListActivityCatalog(c *gin.Context) {
	types, err := h.mets.ListActivityTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activityTypes": types})
}
