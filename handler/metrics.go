package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/YourGothDaddy/fitness-tracker-sub000/cache"
	"github.com/YourGothDaddy/fitness-tracker-sub000/engine"
	"github.com/YourGothDaddy/fitness-tracker-sub000/middleware"
	"github.com/YourGothDaddy/fitness-tracker-sub000/service"

	"github.com/gin-gonic/gin"
)

type MetricsHandler interface {
	EnergySettings(c *gin.Context)
	EnergyBudget(c *gin.Context)
	Macronutrients(c *gin.Context)
	UpdateMacroSettings(c *gin.Context)
	CalculateExerciseCalories(c *gin.Context)
	NutrientBreakdown(c *gin.Context)
	Overview(c *gin.Context)
	ConvertToGrams(c *gin.Context)
}

type metricsHandler struct {
	metrics *service.MetricsService
	store   *cache.Store
}

func NewMetricsHandler(metrics *service.MetricsService, store *cache.Store) MetricsHandler {
	return &metricsHandler{metrics: metrics, store: store}
}

type energySettingsQuery struct {
	CustomBMR       *float64 `form:"customBmr"`
	ActivityLevelID *uint    `form:"activityLevelId"`
	IncludeTEF      *bool    `form:"includeTef"`
}

// EnergySettings reports BMR and maintenance calories, with optional query
// overrides of the stored profile.
func (h *metricsHandler) EnergySettings(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var q energySettingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.metrics.EnergySettings(c.Request.Context(), userID, service.EnergySettingsOptions{
		CustomBMR:       q.CustomBMR,
		ActivityLevelID: q.ActivityLevelID,
		IncludeTEF:      q.IncludeTEF,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// EnergyBudget reports target/consumed/remaining calories for a day.
func (h *metricsHandler) EnergyBudget(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	date, err := parseDate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.metrics.EnergyBudget(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Macronutrients reports the macro targets derived from the profile's ratios
// plus the day's consumed grams.
func (h *metricsHandler) Macronutrients(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	date, err := parseDate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.metrics.Macronutrients(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type macroSettingsRequest struct {
	ProteinRatio float64 `json:"proteinRatio" binding:"gte=0,lte=100"`
	CarbsRatio   float64 `json:"carbsRatio" binding:"gte=0,lte=100"`
	FatRatio     float64 `json:"fatRatio" binding:"gte=0,lte=100"`
	MacroMode    string  `json:"macroMode" binding:"omitempty,oneof=Ratio Fixed"`
}

// UpdateMacroSettings persists new macro ratios.
func (h *metricsHandler) UpdateMacroSettings(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req macroSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.metrics.UpdateMacroSettings(c.Request.Context(), userID, req.ProteinRatio, req.CarbsRatio, req.FatRatio, req.MacroMode); err != nil {
		respondError(c, err)
		return
	}

	h.store.Invalidate(cache.ClassNutrition, cache.ClassProfile)
	c.JSON(http.StatusOK, gin.H{"message": "Macro settings updated"})
}

type exerciseCaloriesRequest struct {
	Category          string  `json:"category" binding:"required"`
	Subcategory       string  `json:"subcategory" binding:"required"`
	Exercise          string  `json:"exercise"`
	EffortLevel       string  `json:"effortLevel" binding:"required"`
	DurationInMinutes float64 `json:"durationInMinutes" binding:"required"`
	TerrainType       string  `json:"terrainType"`
}

// CalculateExerciseCalories estimates the burn for an exercise without
// logging anything.
func (h *metricsHandler) CalculateExerciseCalories(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req exerciseCaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	c.JSON(http.StatusOK, gin.H{
		"caloriesPerMinute":   estimate.CaloriesPerMinute,
		"caloriesPerHalfHour": estimate.CaloriesPerHalfHour,
		"caloriesPerHour":     estimate.CaloriesPerHour,
		"totalCalories":       estimate.TotalCalories,
	})
}

// categoryRoutes maps URL path segments to engine categories.
var categoryRoutes = map[string]engine.NutrientCategory{
	"carbohydrates": engine.CategoryCarbohydrates,
	"amino-acids":   engine.CategoryAminoAcids,
	"fats":          engine.CategoryFats,
	"minerals":      engine.CategoryMinerals,
	"sterols":       engine.CategorySterols,
	"vitamins":      engine.CategoryVitamins,
	"other":         engine.CategoryOther,
}

// NutrientBreakdown reports consumed-vs-required for every nutrient of the
// category named in the URL.
func (h *metricsHandler) NutrientBreakdown(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	category, ok := categoryRoutes[c.Param("category")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown nutrient category %q", c.Param("category"))})
		return
	}
	date, err := parseDate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	rollup, err := h.metrics.NutrientBreakdown(c.Request.Context(), userID, category, date)
	if err != nil {
		respondError(c, err)
		return
	}

	nutrients := make([]gin.H, 0, len(rollup))
	for _, status := range rollup {
		nutrients = append(nutrients, gin.H{
			"label":    status.Label,
			"consumed": status.Consumed,
			"required": status.Required,
		})
	}
	c.JSON(http.StatusOK, gin.H{"nutrients": nutrients})
}

// Overview reports per-day totals and their average over ?from..?to.
func (h *metricsHandler) Overview(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed from date, want YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed to date, want YYYY-MM-DD"})
		return
	}

	result, err := h.metrics.Overview(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type convertToGramsRequest struct {
	Amount        float64  `json:"amount" binding:"gte=0"`
	Unit          string   `json:"unit" binding:"required"`
	GramsPerPiece *float64 `json:"gramsPerPiece"`
}

// ConvertToGrams converts an amount in a serving unit to grams.
func (h *metricsHandler) ConvertToGrams(c *gin.Context) {
	var req convertToGramsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grams, err := h.metrics.ConvertToGrams(req.Amount, req.Unit, req.GramsPerPiece)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"grams": grams})
}
