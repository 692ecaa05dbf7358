package handlers

import (
	"github.com/gin-gonic/gin"
)

func NewRouter(courseHandler *CourseHandler) *gin.Engine {
	r := gin.Default()

	courses := r.Group("/courses")
	{
		courses.GET("", courseHandler.ListUpcoming)
		courses.POST("", courseHandler.Create)
		courses.GET("/operator/:operator_id", courseHandler.ListByOperator)
		courses.GET("/:id", courseHandler.GetOne)
		courses.PUT("/:id", courseHandler.Update)
		courses.DELETE("/:id", courseHandler.Delete)
		courses.GET("/:id/schedule", courseHandler.ScheduleDates)
		courses.GET("/:id/schedule/full", courseHandler.OperatorSchedule)
		courses.GET("/:id/times", courseHandler.TimesForDate)
	}

	r.GET("/schedules/:schedule_id", courseHandler.ScheduleDetails)

	return r
}
