package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ouss-AGC/oama-plateform/internal/model"
	"github.com/ouss-AGC/oama-plateform/internal/response"
	"github.com/ouss-AGC/oama-plateform/internal/service"
	"github.com/ouss-AGC/oama-plateform/internal/validator"
)

// AuthHandler handles the admin login endpoint.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AdminLogin godoc
// POST /api/admin/login
// Validates the shared admin password and returns a JWT.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.authService.CheckPassword(req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateAdminToken()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
