package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"courseplatform/services/management-service/internal/application/usecase"
	"courseplatform/services/management-service/internal/dbtime"
	"courseplatform/services/management-service/internal/domain"
)

type CourseHandler struct {
	uc *usecase.CourseUseCase
}

func NewCourseHandler(uc *usecase.CourseUseCase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

type courseData struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" binding:"gte=0"`
	OperatorID  string `json:"operator_id" binding:"required,uuid"`
}

type createCourseRequest struct {
	CourseData   courseData                 `json:"course_data" binding:"required"`
	ScheduleData []domain.ScheduleCandidate `json:"schedule_data"`
}

// POST /courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	operatorID, err := uuid.Parse(req.CourseData.OperatorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid operator_id"})
		return
	}

	res, err := h.uc.CreateCourse(c.Request.Context(), usecase.CreateCourseInput{
		Name:        req.CourseData.Name,
		Description: req.CourseData.Description,
		Price:       req.CourseData.Price,
		OperatorID:  operatorID,
		Schedules:   req.ScheduleData,
	})
	if err != nil {
		// Ошибки целостности исправимы на стороне вызывающего, остальное — 500.
		switch {
		case errors.Is(err, domain.ErrDuplicateCourse), errors.Is(err, domain.ErrEmptyCourseName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, res)
}

// GET /courses
func (h *CourseHandler) ListUpcoming(c *gin.Context) {
	courses, err := h.uc.ListUpcoming(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toCourseResponses(courses))
}

// GET /courses/:id
func (h *CourseHandler) GetOne(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	course, err := h.uc.GetCourse(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toCourseResponse(course))
}

type updateCourseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
}

// PUT /courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	var req updateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price != nil && *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
		return
	}

	err = h.uc.UpdateCourse(c.Request.Context(), id, domain.CourseUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case errors.Is(err, domain.ErrDuplicateCourse):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	if err := h.uc.DeleteCourse(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /courses/operator/:operator_id
func (h *CourseHandler) ListByOperator(c *gin.Context) {
	operatorID, err := uuid.Parse(c.Param("operator_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid operator id"})
		return
	}

	courses, err := h.uc.ListByOperator(c.Request.Context(), operatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toCourseResponses(courses))
}

// GET /courses/:id/schedule — уникальные даты начала занятий.
func (h *CourseHandler) ScheduleDates(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	dates, err := h.uc.ScheduleDates(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"start_date": dates})
}

// GET /courses/:id/times?date=YYYY-MM-DD
func (h *CourseHandler) TimesForDate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	date, err := dbtime.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	times, err := h.uc.TimesForDate(c.Request.Context(), id, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(times) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No available times found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"times": times})
}

// GET /schedules/:schedule_id
func (h *CourseHandler) ScheduleDetails(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Param("schedule_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule id"})
		return
	}

	details, err := h.uc.ScheduleDetails(c.Request.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, details)
}

// GET /courses/:id/schedule/full — расписание курса для кабинета оператора.
func (h *CourseHandler) OperatorSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	rows, err := h.uc.OperatorSchedule(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found for this course"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": rows})
}

type courseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	OperatorID  string `json:"operator_id"`
}

func toCourseResponse(c *domain.Course) courseResponse {
	return courseResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		OperatorID:  c.OperatorID.String(),
	}
}

func toCourseResponses(courses []domain.Course) []courseResponse {
	out := make([]courseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseResponse(&courses[i]))
	}
	return out
}
