package handler

import (
	"net/http"
	"strconv"

	"github.com/YourGothDaddy/fitness-tracker-sub000/cache"
	"github.com/YourGothDaddy/fitness-tracker-sub000/engine"
	"github.com/YourGothDaddy/fitness-tracker-sub000/middleware"
	"github.com/YourGothDaddy/fitness-tracker-sub000/model"
	"github.com/YourGothDaddy/fitness-tracker-sub000/repository"

	"github.com/gin-gonic/gin"
)

type CatalogHandler interface {
	CreateItem(c *gin.Context)
	GetItem(c *gin.Context)
	SearchItems(c *gin.Context)
	DeleteItem(c *gin.Context)
	SetNutrientTarget(c *gin.Context)
}

type catalogHandler struct {
	catalog *repository.CatalogRepository
	store   *cache.Store
}

func NewCatalogHandler(catalog *repository.CatalogRepository, store *cache.Store) CatalogHandler {
	return &catalogHandler{catalog: catalog, store: store}
}

type nutrientAmountRequest struct {
	Category      string  `json:"category" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	AmountPer100g float64 `json:"amount_per_100g" binding:"gte=0"`
}

type createItemRequest struct {
	Name            string                  `json:"name" binding:"required"`
	CaloriesPer100g int                     `json:"calories_per_100g" binding:"gte=0"`
	ProteinPer100g  float64                 `json:"protein_per_100g" binding:"gte=0"`
	CarbsPer100g    float64                 `json:"carbs_per_100g" binding:"gte=0"`
	FatPer100g      float64                 `json:"fat_per_100g" binding:"gte=0"`
	GramsPerPiece   *float64                `json:"grams_per_piece"`
	Nutrients       []nutrientAmountRequest `json:"nutrients"`
}

// CreateItem adds a custom (non-public) catalog item owned by the caller.
// Nutrient keys are validated against the closed catalog taxonomy before
// anything is stored.
func (h *catalogHandler) CreateItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &model.ConsumableItem{
		Name:            req.Name,
		OwnerID:         &userID,
		CaloriesPer100g: req.CaloriesPer100g,
		ProteinPer100g:  req.ProteinPer100g,
		CarbsPer100g:    req.CarbsPer100g,
		FatPer100g:      req.FatPer100g,
		GramsPerPiece:   req.GramsPerPiece,
	}
	for _, n := range req.Nutrients {
		key := engine.NutrientKey{Category: engine.NutrientCategory(n.Category), Name: n.Name}
		if _, err := engine.LookupNutrient(key); err != nil {
			respondError(c, err)
			return
		}
		item.Nutrients = append(item.Nutrients, model.ItemNutrient{
			Category:      n.Category,
			Name:          n.Name,
			AmountPer100g: n.AmountPer100g,
		})
	}

	if err := h.catalog.CreateItem(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetItem fetches one catalog item by ID.
func (h *catalogHandler) GetItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.catalog.GetItem(c.Request.Context(), uint(id), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// SearchItems runs a paginated name search over the food catalog.
func (h *catalogHandler) SearchItems(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	items, total, err := h.catalog.SearchItems(c.Request.Context(), userID, c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

// DeleteItem removes one of the caller's custom items.
func (h *catalogHandler) DeleteItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.DeleteItem(c.Request.Context(), uint(id), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

type nutrientTargetRequest struct {
	NutrientID     uint    `json:"nutrient_id" binding:"required"`
	RequiredAmount float64 `json:"required_amount" binding:"gte=0"`
	Visible        *bool   `json:"visible"`
}

// SetNutrientTarget overrides the daily requirement of one nutrient for the
// caller.
func (h *catalogHandler) SetNutrientTarget(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req nutrientTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	target := &model.UserNutrientTarget{
		UserID:         userID,
		NutrientID:     req.NutrientID,
		RequiredAmount: req.RequiredAmount,
		Visible:        visible,
	}
	if err := h.catalog.UpsertUserTarget(c.Request.Context(), target); err != nil {
		respondError(c, err)
		return
	}

	// Required amounts feed the cached nutrient breakdowns.
	h.store.Invalidate(cache.ClassNutrition)
	c.JSON(http.StatusOK, gin.H{"message": "Nutrient target updated"})
}
