package route

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/YourGothDaddy/fitness-tracker-sub000/db"
	"github.com/YourGothDaddy/fitness-tracker-sub000/entity"
	"github.com/YourGothDaddy/fitness-tracker-sub000/logger"
	"github.com/YourGothDaddy/fitness-tracker-sub000/model"
	"github.com/YourGothDaddy/fitness-tracker-sub000/seed"
	"github.com/YourGothDaddy/fitness-tracker-sub000/util"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.InitializeLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testSecret = []byte("test-secret")

// newTestRouter wires the full route tree over a seeded sqlite database with
// one authenticated user (70 kg, moderately active, 2000 kcal daily goal)
// and returns the router plus a bearer token for that user.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seed.Run(gdb); err != nil {
		t.Fatalf("seed: %v", err)
	}
	db.DB = gdb

	user := &model.User{Name: "Test User", Email: "routes@example.com", Password: []byte("hash")}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	var level model.ActivityLevel
	if err := gdb.Where("multiplier = ?", 1.55).First(&level).Error; err != nil {
		t.Fatalf("load activity level: %v", err)
	}
	profile := &model.UserProfile{
		UserID: user.ID, Age: 30, Sex: "Male", WeightKg: 70, HeightCm: 175,
		ActivityLevelID: level.ID, CaloriesGoal: 2000, IsDailyCaloriesGoal: true,
		MacroMode: model.MacroModeRatio, ProteinRatio: 14, CarbsRatio: 66, FatRatio: 20,
	}
	if err := gdb.Create(profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}

	cfg := &entity.Config{JWTSecretKey: testSecret}
	cfg.CacheConfig.TTL = time.Minute

	r := gin.New()
	if err := SetupRoutes(r, cfg); err != nil {
		t.Fatalf("SetupRoutes: %v", err)
	}

	token, err := util.GenerateJWT(user.ID, user.Email, testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	return r, gdb, token
}

func doRequest(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestEnergyBudgetCacheInvalidatedByWorkout(t *testing.T) {
	r, _, token := newTestRouter(t)
	budgetURL := "/api/v1/metrics/energy-budget?date=2026-05-10"

	var budget struct {
		Target                int `json:"target"`
		ExerciseAboveBaseline int `json:"exerciseAboveBaseline"`
		Remaining             int `json:"remaining"`
	}

	w := doRequest(t, r, http.MethodGet, budgetURL, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first GET status = %d: %s", w.Code, w.Body.String())
	}
	decodeJSON(t, w, &budget)
	if budget.Remaining != 2000 {
		t.Fatalf("initial remaining = %d, want 2000", budget.Remaining)
	}

	w = doRequest(t, r, http.MethodGet, budgetURL, token, nil)
	if w.Header().Get("X-Cache") != "HIT" {
		t.Fatal("second GET should be served from cache")
	}

	w = doRequest(t, r, http.MethodPost, "/api/v1/activities/workout", token, map[string]interface{}{
		"date":              "2026-05-10",
		"category":          "Cardio",
		"subcategory":       "Running",
		"durationInMinutes": 30,
		"caloriesBurned":    300,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("workout POST status = %d: %s", w.Code, w.Body.String())
	}

	// The workout changes the budget, so the cached entry must be gone.
	w = doRequest(t, r, http.MethodGet, budgetURL, token, nil)
	if w.Header().Get("X-Cache") == "HIT" {
		t.Fatal("budget served from cache after a workout mutation")
	}
	decodeJSON(t, w, &budget)
	if budget.ExerciseAboveBaseline != 300 {
		t.Errorf("exerciseAboveBaseline = %d, want 300", budget.ExerciseAboveBaseline)
	}
	if budget.Remaining != 2300 {
		t.Errorf("remaining = %d, want 2300", budget.Remaining)
	}
}

func TestNutrientBreakdownCacheInvalidatedByTargetUpdate(t *testing.T) {
	r, gdb, token := newTestRouter(t)
	breakdownURL := "/api/v1/metrics/nutrients/minerals?date=2026-05-10"

	var nutrient model.NutrientDefinition
	if err := gdb.Where("category = ?", "minerals").First(&nutrient).Error; err != nil {
		t.Fatalf("load nutrient definition: %v", err)
	}

	type row struct {
		Label    string  `json:"label"`
		Required float64 `json:"required"`
	}
	var breakdown struct {
		Nutrients []row `json:"nutrients"`
	}
	requiredFor := func(label string) (float64, bool) {
		for _, n := range breakdown.Nutrients {
			if n.Label == label {
				return n.Required, true
			}
		}
		return 0, false
	}

	w := doRequest(t, r, http.MethodGet, breakdownURL, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first GET status = %d: %s", w.Code, w.Body.String())
	}
	decodeJSON(t, w, &breakdown)
	if _, ok := requiredFor(nutrient.Name); !ok {
		t.Fatalf("nutrient %q missing from breakdown", nutrient.Name)
	}

	w = doRequest(t, r, http.MethodGet, breakdownURL, token, nil)
	if w.Header().Get("X-Cache") != "HIT" {
		t.Fatal("second GET should be served from cache")
	}

	w = doRequest(t, r, http.MethodPost, "/api/v1/nutrient-targets", token, map[string]interface{}{
		"nutrient_id":     nutrient.ID,
		"required_amount": 999,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("target POST status = %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodGet, breakdownURL, token, nil)
	if w.Header().Get("X-Cache") == "HIT" {
		t.Fatal("breakdown served from cache after a target update")
	}
	decodeJSON(t, w, &breakdown)
	if required, _ := requiredFor(nutrient.Name); required != 999 {
		t.Errorf("required for %q = %v, want 999", nutrient.Name, required)
	}
}

func TestOverviewCacheInvalidatedByActivityDelete(t *testing.T) {
	r, _, token := newTestRouter(t)
	overviewURL := "/api/v1/metrics/overview?from=2026-05-10&to=2026-05-10"

	w := doRequest(t, r, http.MethodPost, "/api/v1/activities/workout", token, map[string]interface{}{
		"date":              "2026-05-10",
		"category":          "Cardio",
		"subcategory":       "Cycling",
		"durationInMinutes": 45,
		"caloriesBurned":    400,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("workout POST status = %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Activity struct {
			Ref string `json:"ref"`
		} `json:"activity"`
	}
	decodeJSON(t, w, &created)

	var overview struct {
		Days []struct {
			ExerciseCalories float64 `json:"exerciseCalories"`
		} `json:"days"`
	}
	w = doRequest(t, r, http.MethodGet, overviewURL, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("overview GET status = %d: %s", w.Code, w.Body.String())
	}
	decodeJSON(t, w, &overview)
	if len(overview.Days) != 1 || overview.Days[0].ExerciseCalories != 400 {
		t.Fatalf("overview before delete = %+v, want one day at 400", overview.Days)
	}

	w = doRequest(t, r, http.MethodDelete, "/api/v1/activities/"+created.Activity.Ref, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("activity DELETE status = %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodGet, overviewURL, token, nil)
	if w.Header().Get("X-Cache") == "HIT" {
		t.Fatal("overview served from cache after an activity delete")
	}
	decodeJSON(t, w, &overview)
	if overview.Days[0].ExerciseCalories != 0 {
		t.Errorf("exerciseCalories after delete = %v, want 0", overview.Days[0].ExerciseCalories)
	}
}
