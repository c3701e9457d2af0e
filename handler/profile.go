package handler

import (
	"net/http"

	"github.com/YourGothDaddy/fitness-tracker-sub000/cache"
	"github.com/YourGothDaddy/fitness-tracker-sub000/middleware"
	"github.com/YourGothDaddy/fitness-tracker-sub000/model"
	"github.com/YourGothDaddy/fitness-tracker-sub000/repository"

	"github.com/gin-gonic/gin"
)

type ProfileHandler interface {
	GetProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
	ListActivityLevels(c *gin.Context)
}

type profileHandler struct {
	profiles *repository.ProfileRepository
	store    *cache.Store
}

func NewProfileHandler(profiles *repository.ProfileRepository, store *cache.Store) ProfileHandler {
	return &profileHandler{profiles: profiles, store: store}
}

// GetProfile returns the caller's profile.
func (h *profileHandler) GetProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type updateProfileRequest struct {
	Age                 int      `json:"age" binding:"required,gt=0"`
	Sex                 string   `json:"sex" binding:"required,oneof=Male Female"`
	WeightKg            float64  `json:"weight_kg" binding:"required,gt=0"`
	HeightCm            float64  `json:"height_cm" binding:"required,gt=0"`
	ActivityLevelID     uint     `json:"activity_level_id" binding:"required"`
	IncludeTEF          bool     `json:"include_tef"`
	CustomBMR           *float64 `json:"custom_bmr"`
	CaloriesGoal        int      `json:"calories_goal" binding:"gte=0"`
	IsDailyCaloriesGoal bool     `json:"is_daily_calories_goal"`
	MacroMode           string   `json:"macro_mode" binding:"omitempty,oneof=Ratio Fixed"`
	ProteinRatio        float64  `json:"protein_ratio" binding:"gte=0,lte=100"`
	CarbsRatio          float64  `json:"carbs_ratio" binding:"gte=0,lte=100"`
	FatRatio            float64  `json:"fat_ratio" binding:"gte=0,lte=100"`
}

// UpdateProfile creates or replaces the caller's profile. Profile changes
// shift every derived metric, so both cache classes are invalidated.
func (h *profileHandler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.profiles.GetActivityLevel(c.Request.Context(), req.ActivityLevelID); err != nil {
		respondError(c, err)
		return
	}

	macroMode := req.MacroMode
	if macroMode == "" {
		macroMode = model.MacroModeRatio
	}
	profile := &model.UserProfile{
		UserID:              userID,
		Age:                 req.Age,
		Sex:                 req.Sex,
		WeightKg:            req.WeightKg,
		HeightCm:            req.HeightCm,
		ActivityLevelID:     req.ActivityLevelID,
		IncludeTEF:          req.IncludeTEF,
		CustomBMR:           req.CustomBMR,
		CaloriesGoal:        req.CaloriesGoal,
		IsDailyCaloriesGoal: req.IsDailyCaloriesGoal,
		MacroMode:           macroMode,
		ProteinRatio:        req.ProteinRatio,
		CarbsRatio:          req.CarbsRatio,
		FatRatio:            req.FatRatio,
	}
	if err := h.profiles.UpsertProfile(c.Request.Context(), profile); err != nil {
		respondError(c, err)
		return
	}

	h.store.Invalidate(cache.ClassProfile, cache.ClassNutrition, cache.ClassActivity)
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// ListActivityLevels returns the reference multiplier table.
func (h *profileHandler) ListActivityLevels(c *gin.Context) {
	levels, err := h.profiles.ListActivityLevels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activityLevels": levels})
}
