package handlers

import "github.com/gin-gonic/gin"

func NewRouter(h *EnrollmentHandler) *gin.Engine {
	r := gin.Default()

	r.POST("/enroll", h.Enroll)
	r.GET("/enroll", h.ListByUser)
	r.DELETE("/enroll/:id", h.Unenroll)
	r.GET("/schedules/:schedule_id/users", h.ScheduleUsers)

	return r
}
