package handlers

import (
	"github.com/gin-gonic/gin"

	"courseplatform/services/api-gateway/internal/client"
)

type AuthHandler struct {
	auth *client.Proxy
}

func NewAuthHandler(auth *client.Proxy) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	h.auth.Forward(c, "/auth/register")
}

func (h *AuthHandler) Login(c *gin.Context) {
	h.auth.Forward(c, "/auth/login")
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	h.auth.Forward(c, "/auth/refresh")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Forward(c, "/auth/logout")
}
