package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workoutlog/internal/service"
)

// SetupRoutes wires every handler under /api/v1. Auth routes are public;
// everything else sits behind the JWT middleware.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	workoutService service.WorkoutService,
	exerciseService service.ExerciseService,
	biometricsService service.BiometricsService,
) {
	authHandler := NewAuthHandler(authService)
	workoutHandler := NewWorkoutHandler(workoutService)
	exerciseHandler := NewExerciseHandler(workoutService, exerciseService)
	setHandler := NewSetHandler(workoutService)
	biometricsHandler := NewBiometricsHandler(biometricsService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		workouts := protected.Group("/workouts")
		{
			workouts.POST("", workoutHandler.CreateWorkout)
			workouts.GET("", workoutHandler.ListWorkouts)
			workouts.GET("/:workoutId", workoutHandler.GetWorkout)
			workouts.GET("/:workoutId/overview", workoutHandler.GetWorkoutOverview)
			workouts.PATCH("/:workoutId", workoutHandler.UpdateWorkout)
			workouts.DELETE("/:workoutId", workoutHandler.DeleteWorkout)

			workouts.POST("/:workoutId/exercises", exerciseHandler.AddExerciseToWorkout)
			workouts.GET("/:workoutId/exercises", exerciseHandler.ListWorkoutExercises)
			workouts.DELETE("/:workoutId/exercises/:exerciseId", exerciseHandler.RemoveExerciseFromWorkout)

			workouts.POST("/:workoutId/exercises/:exerciseId/sets", setHandler.AddSet)
			workouts.GET("/:workoutId/exercises/:exerciseId/sets", setHandler.ListSets)
		}

		exercises := protected.Group("/exercises")
		{
			exercises.GET("", exerciseHandler.ListExercises)
			exercises.PATCH("/:exerciseId", exerciseHandler.UpdateExercise)
			exercises.DELETE("/:exerciseId", exerciseHandler.DeleteExercise)
		}

		sets := protected.Group("/sets")
		{
			sets.PATCH("/:setId", setHandler.UpdateSet)
			sets.DELETE("/:setId", setHandler.DeleteSet)
		}

		biometrics := protected.Group("/biometrics")
		{
			biometrics.GET("", biometricsHandler.GetBiometrics)
			biometrics.POST("", biometricsHandler.CreateBiometrics)
			biometrics.PATCH("", biometricsHandler.UpdateBiometrics)
		}
	}
}
