package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/YourGothDaddy/fitness-tracker-sub000/cache"
	"github.com/YourGothDaddy/fitness-tracker-sub000/engine"
	"github.com/YourGothDaddy/fitness-tracker-sub000/mapper"
	"github.com/YourGothDaddy/fitness-tracker-sub000/middleware"
	"github.com/YourGothDaddy/fitness-tracker-sub000/model"
	"github.com/YourGothDaddy/fitness-tracker-sub000/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// parseDate reads a ?date=YYYY-MM-DD query parameter, defaulting to today.
func parseDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q: %w", raw, engine.ErrInvalidInput)
	}
	return date, nil
}

type MealHandler interface {
	AddMeal(c *gin.Context)
	ListMeals(c *gin.Context)
	DeleteMeal(c *gin.Context)
}

type mealHandler struct {
	meals   *repository.MealRepository
	catalog *repository.CatalogRepository
	store   *cache.Store
}

func NewMealHandler(meals *repository.MealRepository, catalog *repository.CatalogRepository, store *cache.Store) MealHandler {
	return &mealHandler{meals: meals, catalog: catalog, store: store}
}

type mealComponentRequest struct {
	ItemID uint `json:"item_id" binding:"required"`

	// Either grams directly, or amount+unit (with grams_per_piece for
	// piece-based portions).
	Grams         float64  `json:"grams" binding:"gte=0"`
	Amount        float64  `json:"amount" binding:"gte=0"`
	Unit          string   `json:"unit"`
	GramsPerPiece *float64 `json:"grams_per_piece"`
}

type adHocMealRequest struct {
	Calories float64 `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
}

type addMealRequest struct {
	Date       string                 `json:"date" binding:"required"`
	Name       string                 `json:"name"`
	Components []mealComponentRequest `json:"components"`
	AdHoc      *adHocMealRequest      `json:"ad_hoc"`
}

// AddMeal logs a meal for a date. Catalog-backed components snapshot the
// item's composition at this moment; ad-hoc values are stored as entered.
func (h *mealHandler) AddMeal(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req addMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed date, want YYYY-MM-DD"})
		return
	}
	if len(req.Components) == 0 && req.AdHoc == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal needs components or ad-hoc values"})
		return
	}

	meal := &model.MealEntry{
		Ref:    uuid.NewString(),
		UserID: userID,
		Date:   date,
		Name:   req.Name,
	}
	if req.AdHoc != nil {
		meal.AdHoc = true
		meal.AdHocCalories = req.AdHoc.Calories
		meal.AdHocProtein = req.AdHoc.Protein
		meal.AdHocCarbs = req.AdHoc.Carbs
		meal.AdHocFat = req.AdHoc.Fat
	}

	for _, compReq := range req.Components {
		item, err := h.catalog.GetItem(c.Request.Context(), compReq.ItemID, userID)
		if err != nil {
			respondError(c, err)
			return
		}

		grams := compReq.Grams
		if grams == 0 && compReq.Amount > 0 {
			perPiece := compReq.GramsPerPiece
			if perPiece == nil {
				perPiece = item.GramsPerPiece
			}
			grams, err = engine.ConvertToGrams(compReq.Amount, compReq.Unit, perPiece)
			if err != nil {
				respondError(c, err)
				return
			}
		}
		if grams <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "component portion must be positive"})
			return
		}

		meal.Components = append(meal.Components, mapper.ItemToComponentSnapshot(item, grams))
	}

	if err := h.meals.CreateMeal(c.Request.Context(), meal); err != nil {
		respondError(c, err)
		return
	}

	h.store.Invalidate(cache.ClassNutrition)
	c.JSON(http.StatusCreated, meal)
}

// ListMeals returns the caller's meals for a date.
func (h *mealHandler) ListMeals(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	date, err := parseDate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	meals, err := h.meals.ListMealsByDate(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// DeleteMeal removes one meal entry by ref.
func (h *mealHandler) DeleteMeal(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := h.meals.DeleteMeal(c.Request.Context(), userID, c.Param("ref")); err != nil {
		respondError(c, err)
		return
	}

	h.store.Invalidate(cache.ClassNutrition)
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}
