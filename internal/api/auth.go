package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog/internal/service"
	"github.com/cinelog/cinelog/pkg/middleware"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failJSON("Invalid request parameters"))
		return
	}

	if _, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failJSON("Invalid request parameters"))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, failJSON("Invalid Credentials"))
			return
		}
		c.JSON(http.StatusInternalServerError, failJSON(genericErrorMessage))
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Data: result})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		// The account behind a still-valid token is gone.
		c.JSON(http.StatusUnauthorized, failJSON("Unauthorized!"))
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data: gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}
