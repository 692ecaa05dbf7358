package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courseplatform/services/api-gateway/internal/client"
)

type CourseHandler struct {
	management *client.Proxy
	enrolling  *client.Proxy
}

func NewCourseHandler(management, enrolling *client.Proxy) *CourseHandler {
	return &CourseHandler{management: management, enrolling: enrolling}
}

// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	h.management.Forward(c, "/courses")
}

type courseView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	OperatorID  string `json:"operator_id"`
}

// GET /api/v1/courses/available?user_id=<chat_id>
// Каталог будущих курсов за вычетом тех, куда пользователь уже записан.
func (h *CourseHandler) Available(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	var courses []courseView
	status, err := h.management.GetJSON(c.Request.Context(), "/courses", &courses)
	if err != nil || status != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Management service unavailable"})
		return
	}

	var enrollments struct {
		Enrollments []struct {
			CourseID string `json:"course_id"`
		} `json:"enrollments"`
	}
	status, err = h.enrolling.GetJSON(c.Request.Context(), "/enroll?user_id="+strconv.FormatInt(userID, 10), &enrollments)
	if err != nil || status != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Enrolling service unavailable"})
		return
	}

	enrolled := make(map[string]struct{}, len(enrollments.Enrollments))
	for _, e := range enrollments.Enrollments {
		enrolled[e.CourseID] = struct{}{}
	}

	available := make([]courseView, 0, len(courses))
	for _, course := range courses {
		if _, ok := enrolled[course.ID]; !ok {
			available = append(available, course)
		}
	}
	c.JSON(http.StatusOK, available)
}

// GET /api/v1/courses/:id
func (h *CourseHandler) GetOne(c *gin.Context) {
	h.management.Forward(c, "/courses/"+c.Param("id"))
}

// POST /api/v1/courses — только оператор; владельцем курса становится он сам.
func (h *CourseHandler) Create(c *gin.Context) {
	var body struct {
		CourseData   map[string]any   `json:"course_data" binding:"required"`
		ScheduleData []map[string]any `json:"schedule_data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.CourseData["operator_id"] = c.GetString("userId")

	status, respBody, err := h.management.PostJSON(c.Request.Context(), "/courses", body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Management service unavailable"})
		return
	}
	c.Data(status, "application/json", respBody)
}

// PUT /api/v1/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	h.management.Forward(c, "/courses/"+c.Param("id"))
}

// DELETE /api/v1/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	h.management.Forward(c, "/courses/"+c.Param("id"))
}

// GET /api/v1/courses/:id/schedule
func (h *CourseHandler) ScheduleDates(c *gin.Context) {
	h.management.Forward(c, "/courses/"+c.Param("id")+"/schedule")
}

// GET /api/v1/courses/:id/times?date=YYYY-MM-DD
func (h *CourseHandler) TimesForDate(c *gin.Context) {
	h.management.Forward(c, "/courses/"+c.Param("id")+"/times")
}

// GET /api/v1/courses/:id/schedule/full
func (h *CourseHandler) FullSchedule(c *gin.Context) {
	h.management.Forward(c, "/courses/"+c.Param("id")+"/schedule/full")
}

// GET /api/v1/operator/courses — курсы текущего оператора.
func (h *CourseHandler) OperatorCourses(c *gin.Context) {
	h.management.Forward(c, "/courses/operator/"+c.GetString("userId"))
}

// GET /api/v1/schedules/:schedule_id
func (h *CourseHandler) ScheduleDetails(c *gin.Context) {
	h.management.Forward(c, "/schedules/"+c.Param("schedule_id"))
}
