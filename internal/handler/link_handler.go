package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synapse/synapse-backend/internal/common"
	"github.com/synapse/synapse-backend/internal/domain"
	"github.com/synapse/synapse-backend/internal/middleware"
	"github.com/synapse/synapse-backend/internal/service"
)

// LinkHandler handles link HTTP requests
type LinkHandler struct {
	service service.LinkService
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(service service.LinkService) *LinkHandler {
	return &LinkHandler{service: service}
}

// List handles GET /api/v1/boards/:board_id/links
func (h *LinkHandler) List(c *gin.Context) {
	links, err := h.service.List(c.Param("board_id"), middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, links)
}

// Create handles POST /api/v1/boards/:board_id/links
func (h *LinkHandler) Create(c *gin.Context) {
	var req domain.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ValidationErrorResponse(c, err)
		return
	}

	link, err := h.service.Create(c.Param("board_id"), middleware.GetUserID(c), &req)
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusCreated, link)
}

// Get handles GET /api/v1/boards/:board_id/links/:link_id
func (h *LinkHandler) Get(c *gin.Context) {
	link, err := h.service.GetByID(c.Param("board_id"), c.Param("link_id"), middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, link)
}

// Patch handles PATCH /api/v1/boards/:board_id/links/:link_id
func (h *LinkHandler) Patch(c *gin.Context) {
	var req domain.LinkPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ValidationErrorResponse(c, err)
		return
	}

	link, err := h.service.Patch(c.Param("board_id"), c.Param("link_id"), middleware.GetUserID(c), &req)
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, link)
}

// Delete handles DELETE /api/v1/boards/:board_id/links/:link_id
func (h *LinkHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("board_id"), c.Param("link_id"), middleware.GetUserID(c)); err != nil {
		common.ErrorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
