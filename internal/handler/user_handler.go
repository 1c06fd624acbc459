package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synapse/synapse-backend/internal/common"
	"github.com/synapse/synapse-backend/internal/domain"
	"github.com/synapse/synapse-backend/internal/middleware"
	"github.com/synapse/synapse-backend/internal/service"
)

// UserHandler handles profile and account lifecycle requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.service.GetProfile(middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, profile)
}

// UpdateMe handles PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req domain.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ValidationErrorResponse(c, err)
		return
	}

	profile, err := h.service.UpdateProfile(middleware.GetUserID(c), &req)
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, profile)
}

// ChangePassword handles POST /api/v1/users/me/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req domain.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ValidationErrorResponse(c, err)
		return
	}

	if err := h.service.ChangePassword(middleware.GetUserID(c), &req); err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, gin.H{"message": "Password changed"})
}

// Deactivate handles PATCH /api/v1/users/me/deactivate
func (h *UserHandler) Deactivate(c *gin.Context) {
	if err := h.service.Deactivate(middleware.GetUserID(c)); err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, gin.H{"message": "Account deactivated"})
}

// Reactivate handles PATCH /api/v1/users/me/reactivate
func (h *UserHandler) Reactivate(c *gin.Context) {
	if err := h.service.Reactivate(middleware.GetUserID(c)); err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, gin.H{"message": "Account reactivated"})
}

// DeleteMe handles DELETE /api/v1/users/me
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.service.DeleteAccount(middleware.GetUserID(c)); err != nil {
		common.ErrorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
