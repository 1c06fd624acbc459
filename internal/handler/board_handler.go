package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synapse/synapse-backend/internal/common"
	"github.com/synapse/synapse-backend/internal/domain"
	"github.com/synapse/synapse-backend/internal/middleware"
	"github.com/synapse/synapse-backend/internal/service"
)

// BoardHandler handles board HTTP requests
type BoardHandler struct {
	service service.BoardService
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(service service.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

// List handles GET /api/v1/boards
func (h *BoardHandler) List(c *gin.Context) {
	boards, err := h.service.List(middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, boards)
}

// Create handles POST /api/v1/boards
func (h *BoardHandler) Create(c *gin.Context) {
	var req domain.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ValidationErrorResponse(c, err)
		return
	}

	board, err := h.service.Create(middleware.GetUserID(c), &req)
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusCreated, board)
}

// Get handles GET /api/v1/boards/:board_id
func (h *BoardHandler) Get(c *gin.Context) {
	board, err := h.service.GetByID(c.Param("board_id"), middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, board)
}

// Update handles PUT /api/v1/boards/:board_id
func (h *BoardHandler) Update(c *gin.Context) {
	var req domain.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ValidationErrorResponse(c, err)
		return
	}

	board, err := h.service.Update(c.Param("board_id"), middleware.GetUserID(c), &req)
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, board)
}

// Patch handles PATCH /api/v1/boards/:board_id
func (h *BoardHandler) Patch(c *gin.Context) {
	var req domain.BoardPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ValidationErrorResponse(c, err)
		return
	}

	board, err := h.service.Patch(c.Param("board_id"), middleware.GetUserID(c), &req)
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, board)
}

// Delete handles DELETE /api/v1/boards/:board_id (archive)
func (h *BoardHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("board_id"), middleware.GetUserID(c)); err != nil {
		common.ErrorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
