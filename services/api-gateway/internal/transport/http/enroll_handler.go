package handlers

import (
	"github.com/gin-gonic/gin"

	"courseplatform/services/api-gateway/internal/client"
)

type EnrollHandler struct {
	enrolling *client.Proxy
}

func NewEnrollHandler(enrolling *client.Proxy) *EnrollHandler {
	return &EnrollHandler{enrolling: enrolling}
}

// POST /api/v1/enroll
func (h *EnrollHandler) Enroll(c *gin.Context) {
	h.enrolling.Forward(c, "/enroll")
}

// GET /api/v1/enroll?user_id=<chat_id>
func (h *EnrollHandler) ListByUser(c *gin.Context) {
	h.enrolling.Forward(c, "/enroll")
}

// DELETE /api/v1/enroll/:id
func (h *EnrollHandler) Unenroll(c *gin.Context) {
	h.enrolling.Forward(c, "/enroll/"+c.Param("id"))
}
