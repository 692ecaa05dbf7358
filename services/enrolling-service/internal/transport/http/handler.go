package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"courseplatform/services/enrolling-service/internal/application/usecase"
	"courseplatform/services/enrolling-service/internal/domain"
)

type EnrollmentHandler struct {
	uc *usecase.EnrollmentUseCase
}

func NewEnrollmentHandler(uc *usecase.EnrollmentUseCase) *EnrollmentHandler {
	return &EnrollmentHandler{uc: uc}
}

type enrollRequest struct {
	UserID     int64     `json:"user_id" binding:"required"`
	CourseID   uuid.UUID `json:"course_id" binding:"required"`
	ScheduleID uuid.UUID `json:"schedule_id" binding:"required"`
}

type enrollmentResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     int64     `json:"user_id"`
	CourseID   uuid.UUID `json:"course_id"`
	ScheduleID uuid.UUID `json:"schedule_id"`
	EnrollTime string    `json:"enroll_time"`
}

func toResponse(e *domain.Enrollment) enrollmentResponse {
	return enrollmentResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		CourseID:   e.CourseID,
		ScheduleID: e.ScheduleID,
		EnrollTime: e.EnrollTime.Format("2006-01-02 15:04:05"),
	}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.uc.Enroll(c.Request.Context(), req.UserID, req.CourseID, req.ScheduleID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyEnrolled) {
			c.JSON(http.StatusConflict, gin.H{"error": "User is already enrolled in this schedule"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Enrolled successfully",
		"enrollment": toResponse(e),
	})
}

func (h *EnrollmentHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	enrollments, err := h.uc.UserEnrollments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]enrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, toResponse(&enrollments[i]))
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": out})
}

func (h *EnrollmentHandler) ScheduleUsers(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Param("schedule_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule id"})
		return
	}

	ids, err := h.uc.ScheduleUserIDs(c.Request.Context(), scheduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, gin.H{"user_ids": ids})
}

func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enrollment id"})
		return
	}

	if err := h.uc.Unenroll(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Enrollment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enrollment deleted"})
}
