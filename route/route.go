package route

import (
	"github.com/YourGothDaddy/fitness-tracker-sub000/cache"
	"github.com/YourGothDaddy/fitness-tracker-sub000/db"
	"github.com/YourGothDaddy/fitness-tracker-sub000/entity"
	"github.com/YourGothDaddy/fitness-tracker-sub000/handler"
	"github.com/YourGothDaddy/fitness-tracker-sub000/middleware"
	"github.com/YourGothDaddy/fitness-tracker-sub000/repository"
	"github.com/YourGothDaddy/fitness-tracker-sub000/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires repositories, services, and handlers onto the router.
func SetupRoutes(r *gin.Engine, config *entity.Config) error {
	gormDB := db.GetDBInstance()

	userRepository := repository.NewUserRepository(gormDB)
	profileRepository := repository.NewProfileRepository(gormDB)
	catalogRepository := repository.NewCatalogRepository(gormDB)
	mealRepository := repository.NewMealRepository(gormDB)
	activityRepository := repository.NewActivityRepository(gormDB)
	metRepository := repository.NewMetRepository(gormDB)

	store := cache.NewStore(config.CacheConfig.TTL)

	authService := service.NewAuthService(userRepository, config)
	metricsService := service.NewMetricsService(profileRepository, catalogRepository, mealRepository, activityRepository, metRepository)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileRepository, store)
	catalogHandler := handler.NewCatalogHandler(catalogRepository, store)
	mealHandler := handler.NewMealHandler(mealRepository, catalogRepository, store)
	activityHandler := handler.NewActivityHandler(activityRepository, metRepository, metricsService, store)
	metricsHandler := handler.NewMetricsHandler(metricsService, store)

	r.Use(middleware.RequestLogger())

	api := r.Group("/api/v1")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("/")
	protected.Use(middleware.AuthenticateJWT(config))

	protected.GET("/profile", profileHandler.GetProfile)
	protected.PUT("/profile", profileHandler.UpdateProfile)
	protected.GET("/activity-levels", profileHandler.ListActivityLevels)

	protected.POST("/items", catalogHandler.CreateItem)
	protected.GET("/items", catalogHandler.SearchItems)
	protected.GET("/items/:id", catalogHandler.GetItem)
	protected.DELETE("/items/:id", catalogHandler.DeleteItem)
	protected.POST("/nutrient-targets", catalogHandler.SetNutrientTarget)

	protected.POST("/meals", mealHandler.AddMeal)
	protected.GET("/meals", mealHandler.ListMeals)
	protected.DELETE("/meals/:ref", mealHandler.DeleteMeal)

	protected.POST("/activities/track", activityHandler.TrackExercise)
	protected.POST("/activities/workout", activityHandler.AddWorkout)
	protected.GET("/activities", activityHandler.ListActivities)
	protected.GET("/activities/catalog", activityHandler.ListActivityCatalog)
	protected.DELETE("/activities/:ref", activityHandler.DeleteActivity)
	protected.PUT("/activities/:ref/favorite", activityHandler.SetFavorite)

	// Metric reads are memoized per (user, URL) for the cache TTL; the
	// classes on each route name every resource type the response depends
	// on, and mutations of any of them invalidate it. The budget and
	// overview fold in exercise calories, so they carry the activity
	// class too.
	metrics := protected.Group("/metrics")
	metrics.GET("/energy-settings", middleware.CacheResponse(store, cache.ClassProfile), metricsHandler.EnergySettings)
	metrics.GET("/energy-budget", middleware.CacheResponse(store, cache.ClassNutrition, cache.ClassActivity), metricsHandler.EnergyBudget)
	metrics.GET("/macronutrients", middleware.CacheResponse(store, cache.ClassNutrition), metricsHandler.Macronutrients)
	metrics.PUT("/macro-settings", metricsHandler.UpdateMacroSettings)
	metrics.POST("/calculate-exercise-calories", metricsHandler.CalculateExerciseCalories)
	metrics.GET("/nutrients/:category", middleware.CacheResponse(store, cache.ClassNutrition), metricsHandler.NutrientBreakdown)
	metrics.GET("/overview", middleware.CacheResponse(store, cache.ClassNutrition, cache.ClassActivity), metricsHandler.Overview)
	metrics.POST("/convert-to-grams", metricsHandler.ConvertToGrams)

	return nil
}
