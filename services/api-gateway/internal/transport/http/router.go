package handlers

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"courseplatform/services/api-gateway/internal/client"
	"courseplatform/services/api-gateway/internal/middleware"
)

func NewRouter(
	authHandler *AuthHandler,
	courseHandler *CourseHandler,
	enrollHandler *EnrollHandler,
	limiter *middleware.RateLimiter,
	authClient *client.AuthClient,
	allowedOrigins string,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = strings.Split(allowedOrigins, ",")
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
		}

		// Каталог открыт: его читает и веб, и телеграм-бот без JWT.
		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.List)
			courses.GET("/available", courseHandler.Available)
			courses.GET("/:id", courseHandler.GetOne)
			courses.GET("/:id/schedule", courseHandler.ScheduleDates)
			courses.GET("/:id/schedule/full", courseHandler.FullSchedule)
			courses.GET("/:id/times", courseHandler.TimesForDate)
		}
		api.GET("/schedules/:schedule_id", courseHandler.ScheduleDetails)

		// Управление курсами — только авторизованные операторы.
		operator := api.Group("", middleware.AuthMiddleware(authClient), middleware.RequireOperator())
		{
			operator.POST("/courses", courseHandler.Create)
			operator.PUT("/courses/:id", courseHandler.Update)
			operator.DELETE("/courses/:id", courseHandler.Delete)
			operator.GET("/operator/courses", courseHandler.OperatorCourses)
		}

		enroll := api.Group("/enroll")
		enroll.Use(limiter.Limit("enroll", 30, 1*time.Minute))
		{
			enroll.POST("", enrollHandler.Enroll)
			enroll.GET("", enrollHandler.ListByUser)
			enroll.DELETE("/:id", enrollHandler.Unenroll)
		}
	}

	return r
}
