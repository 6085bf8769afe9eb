package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aselzhanova/FitJourneyBackend/cache"
	"github.com/aselzhanova/FitJourneyBackend/db"
	"github.com/aselzhanova/FitJourneyBackend/handlers"
	"github.com/aselzhanova/FitJourneyBackend/middleware"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/routes"
	"github.com/aselzhanova/FitJourneyBackend/services"
	"github.com/aselzhanova/FitJourneyBackend/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	utils.InitLogger()
	defer utils.Logger.Sync()
	utils.InitMetrics()

	utils.Logger.Info("starting_application")

	db.Connect()
	if err := db.DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.WeightRecord{},
		&models.CalorieEntry{},
		&models.BurnedCalorieEntry{},
		&models.BodyMeasurements{},
		&models.MoodEnergyLog{},
		&models.MotivationalMessage{},
		&models.MotivationalSaying{},
		&models.ProgressPhoto{},
		&models.ProgressSummary{},
		&models.FileReference{},
		&models.WeeklyExercisePlan{},
		&models.DailyChecklist{},
		&models.StreakRecord{},
	); err != nil {
		utils.Logger.Fatal("migration_failed", zap.Error(err))
	}

	if err := services.SeedMotivationalSayings(); err != nil {
		utils.Logger.Fatal("seed_failed", zap.Error(err))
	}

	if err := cache.InitRedis(utils.Logger); err != nil {
		utils.Logger.Fatal("redis_init_failed", zap.Error(err))
	}
	defer cache.Close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	if key := os.Getenv("CSRF_KEY"); key != "" {
		r.Use(middleware.CSRFProtection([]byte(key)))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now(),
			"database":  "connected",
		})
	})

	authLimit := middleware.RateLimitMiddleware(20, time.Minute)
	r.POST("/api/register", authLimit, routes.Register)
	r.POST("/api/login", authLimit, routes.Login)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	api.Use(middleware.CacheMiddleware(5 * time.Minute))
	{
		api.GET("/me", routes.Profile)

		// Access control
		api.POST("/access/initialize", handlers.InitializeAccessControl)
		api.GET("/access/role", handlers.GetCallerUserRole)
		api.GET("/access/is-admin", handlers.IsCallerAdmin)
		api.POST("/access/assign-role", middleware.RoleMiddleware(models.RoleAdmin), handlers.AssignUserRole)

		// Profiles
		api.GET("/profile", handlers.GetCallerUserProfile)
		api.PUT("/profile", handlers.SaveCallerUserProfile)
		api.GET("/users/:id/profile", handlers.GetUserProfile)

		// Value records
		api.GET("/weight-records", handlers.GetWeightRecords)
		api.POST("/weight-records", handlers.AddWeightRecord)
		api.PUT("/weight-records/:index", handlers.UpdateWeightRecord)

		api.GET("/calorie-entries", handlers.GetCalorieEntries)
		api.POST("/calorie-entries", handlers.AddCalorieEntry)
		api.PUT("/calorie-entries/:index", handlers.UpdateCalorieEntry)

		api.GET("/burned-calories", handlers.GetBurnedCalorieEntries)
		api.POST("/burned-calories", handlers.AddBurnedCalorieEntry)
		api.PUT("/burned-calories/:index", handlers.UpdateBurnedCalorieEntry)
		api.GET("/burned-calories/summary", handlers.GetBurnedCalorieSummary)

		api.GET("/measurements", handlers.GetBodyMeasurements)
		api.POST("/measurements", handlers.AddBodyMeasurement)
		api.PUT("/measurements/:index", handlers.UpdateBodyMeasurement)

		api.GET("/mood-logs", handlers.GetMoodEnergyLogs)
		api.POST("/mood-logs", handlers.AddMoodEnergyLog)

		// Motivation
		api.GET("/motivational-messages", handlers.GetMotivationalMessages)
		api.POST("/motivational-messages", handlers.AddMotivationalMessage)
		api.GET("/motivation/daily-saying", handlers.GetDailyMotivationalSaying)

		// Progress photos and file references
		api.GET("/progress-photos", handlers.GetProgressPhotos)
		api.POST("/progress-photos", handlers.AddProgressPhoto)
		api.DELETE("/progress-photos", handlers.DeleteProgressPhoto)

		api.GET("/file-references", handlers.ListFileReferences)
		api.POST("/file-references", handlers.RegisterFileReference)
		api.GET("/file-references/lookup", handlers.GetFileReference)
		api.DELETE("/file-references", handlers.DropFileReference)

		// Exercise planner and checklists
		api.GET("/exercise-plans", handlers.GetWeeklyExercisePlans)
		api.POST("/exercise-plans", handlers.AddWeeklyExercisePlan)
		api.DELETE("/exercise-plans/current", handlers.DeleteCurrentWeek)
		api.DELETE("/exercise-plans/:weekStart", handlers.DeleteWeeklyExercisePlan)
		api.GET("/daily-checklists", handlers.GetDailyChecklists)
		api.POST("/checklist/toggle", handlers.ToggleExerciseCompletion)
		api.POST("/checklist/delete-exercise", handlers.DeleteExerciseFromChecklist)
		api.POST("/planner/delete-exercise", handlers.DeleteExerciseFromPlanner)

		// Derived views
		api.GET("/progress", handlers.GetProgressData)
		api.GET("/streak", handlers.GetStreakData)
		api.GET("/day-info", handlers.GetCurrentDayInfo)
		api.GET("/progress-summaries", handlers.GetProgressSummaries)
		api.POST("/progress-summaries", handlers.AddProgressSummary)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	startServer(r)
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	utils.Logger.Info("starting_http_server", zap.String("port", port))

	fmt.Println("\n🚀 ================================")
	fmt.Println("   FitJourney Backend Started")
	fmt.Println("   ================================")
	fmt.Printf("   🌐 Server:  http://localhost:%s\n", port)
	fmt.Printf("   📊 Metrics: http://localhost:%s/metrics\n", port)
	fmt.Printf("   ❤️  Health: http://localhost:%s/health\n", port)
	fmt.Println("   ================================")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal("http_server_failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("shutting_down_server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal("server_forced_shutdown", zap.Error(err))
	}

	utils.Logger.Info("server_stopped")
}
