package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitlog-dev/fitlog/internal/handlers"
	"github.com/fitlog-dev/fitlog/internal/lifecycle"
	"github.com/fitlog-dev/fitlog/internal/middleware"
	"github.com/fitlog-dev/fitlog/internal/types"
)

func NewRouter(db *gorm.DB, events *lifecycle.Publisher) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(db)
	workoutHandler := handlers.NewWorkoutHandler(db, events)
	exerciseHandler := handlers.NewExerciseHandler(db, events)
	workoutTypeHandler := handlers.NewWorkoutTypeHandler(db, events)
	exerciseTypeHandler := handlers.NewExerciseTypeHandler(db, events)
	eventsHandler := handlers.NewEventsHandler(events)

	authRequired := middleware.AuthMiddleware(db)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/token", authHandler.Token)
		api.GET("/events/ws", authRequired, eventsHandler.Feed)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		workouts := api.Group("/workouts", authRequired)
		{
			workouts.GET("", workoutHandler.List)
			workouts.POST("", workoutHandler.Create)
			workouts.PUT("", workoutHandler.Overwrite)
			workouts.PATCH("", workoutHandler.Patch)
			workouts.DELETE("", workoutHandler.Delete)
		}

		exercises := api.Group("/exercises", authRequired)
		{
			exercises.GET("", exerciseHandler.List)
			exercises.POST("", exerciseHandler.Create)
			exercises.PUT("", exerciseHandler.Overwrite)
			exercises.PATCH("", exerciseHandler.Patch)
			exercises.DELETE("", exerciseHandler.Delete)
		}

		workoutTypes := api.Group("/workout_types", authRequired)
		{
			workoutTypes.GET("", workoutTypeHandler.List)
			workoutTypes.POST("", workoutTypeHandler.Create)
			workoutTypes.PUT("", workoutTypeHandler.Overwrite)
			workoutTypes.PATCH("", workoutTypeHandler.Patch)
			workoutTypes.DELETE("", workoutTypeHandler.Delete)
		}

		exerciseTypes := api.Group("/exercise_types", authRequired)
		{
			exerciseTypes.GET("", exerciseTypeHandler.List)
			exerciseTypes.POST("", exerciseTypeHandler.Create)
			exerciseTypes.PUT("", exerciseTypeHandler.Overwrite)
			exerciseTypes.PATCH("", exerciseTypeHandler.Patch)
			exerciseTypes.DELETE("", exerciseTypeHandler.Delete)
		}
	}

	return r
}
