package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courseplatform/services/notification-service/internal/queue"
	"courseplatform/services/notification-service/internal/worker"
)

type NotificationHandler struct {
	queue *queue.Queue
}

func NewNotificationHandler(q *queue.Queue) *NotificationHandler {
	return &NotificationHandler{queue: q}
}

type reminderItem struct {
	ScheduleID string    `json:"schedule_id" binding:"required"`
	FireAt     time.Time `json:"fire_at" binding:"required"`
}

type scheduleRemindersRequest struct {
	CourseID  string         `json:"course_id" binding:"required"`
	Reminders []reminderItem `json:"reminders"`
}

type rejectedReminder struct {
	ScheduleID string `json:"schedule_id"`
	Error      string `json:"error"`
}

// POST /reminders — планировщик напоминаний: одно отложенное задание на пару
// (schedule_id, fire_at). Постановки независимы: отказ одной не мешает остальным.
func (h *NotificationHandler) ScheduleReminders(c *gin.Context) {
	var req scheduleRemindersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Reminders) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No reminders scheduled"})
		return
	}

	jobIDs := make([]string, 0, len(req.Reminders))
	failed := make([]rejectedReminder, 0)

	for _, r := range req.Reminders {
		payload := worker.ReminderPayload{ScheduleID: r.ScheduleID, CourseID: req.CourseID}
		jobID, err := h.queue.Enqueue(c.Request.Context(), worker.JobTypeReminder, payload, r.FireAt)
		if err != nil {
			log.Printf("failed to enqueue reminder for schedule %s: %v", r.ScheduleID, err)
			failed = append(failed, rejectedReminder{ScheduleID: r.ScheduleID, Error: err.Error()})
			continue
		}
		jobIDs = append(jobIDs, jobID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Reminders scheduled",
		"scheduled": len(jobIDs),
		"job_ids":   jobIDs,
		"failed":    failed,
	})
}

type notifyRequest struct {
	Message string `json:"message" binding:"required"`
}

// POST /notify — прямая отправка без очереди, осталась от старого контракта.
func (h *NotificationHandler) Notify(c *gin.Context) {
	var req notifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Уведомление: %s", req.Message)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Уведомление отправлено."})
}

// GET /jobs/:id — статус отложенного задания.
func (h *NotificationHandler) JobStatus(c *gin.Context) {
	status, errText, err := h.queue.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queue.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"id": c.Param("id"), "status": status}
	if errText != "" {
		resp["error"] = errText
	}
	c.JSON(http.StatusOK, resp)
}

func NewRouter(h *NotificationHandler) *gin.Engine {
	r := gin.Default()

	r.POST("/reminders", h.ScheduleReminders)
	r.POST("/notify", h.Notify)
	r.GET("/jobs/:id", h.JobStatus)

	return r
}
