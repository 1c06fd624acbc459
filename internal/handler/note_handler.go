package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/synapse/synapse-backend/internal/common"
	"github.com/synapse/synapse-backend/internal/domain"
	"github.com/synapse/synapse-backend/internal/middleware"
	"github.com/synapse/synapse-backend/internal/service"
)

// NoteHandler handles note HTTP requests
type NoteHandler struct {
	service service.NoteService
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(service service.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List handles GET /api/v1/boards/:board_id/notes
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.service.List(c.Request.Context(), c.Param("board_id"), middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, notes)
}

// Create handles POST /api/v1/boards/:board_id/notes
func (h *NoteHandler) Create(c *gin.Context) {
	var req domain.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ValidationErrorResponse(c, err)
		return
	}

	note, err := h.service.Create(c.Request.Context(), c.Param("board_id"), middleware.GetUserID(c), &req)
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusCreated, note)
}

// Get handles GET /api/v1/boards/:board_id/notes/:note_id
func (h *NoteHandler) Get(c *gin.Context) {
	note, err := h.service.GetByID(c.Request.Context(),
		c.Param("board_id"), c.Param("note_id"), middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, note)
}

// Update handles PUT /api/v1/boards/:board_id/notes/:note_id
func (h *NoteHandler) Update(c *gin.Context) {
	var req domain.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ValidationErrorResponse(c, err)
		return
	}

	note, err := h.service.Update(c.Request.Context(),
		c.Param("board_id"), c.Param("note_id"), middleware.GetUserID(c), &req)
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, note)
}

// Patch handles PATCH /api/v1/boards/:board_id/notes/:note_id
func (h *NoteHandler) Patch(c *gin.Context) {
	var req domain.NotePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ValidationErrorResponse(c, err)
		return
	}

	note, err := h.service.Patch(c.Request.Context(),
		c.Param("board_id"), c.Param("note_id"), middleware.GetUserID(c), &req)
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, note)
}

// Delete handles DELETE /api/v1/boards/:board_id/notes/:note_id
func (h *NoteHandler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(),
		c.Param("board_id"), c.Param("note_id"), middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /api/v1/boards/:board_id/notes/:note_id/image
func (h *NoteHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || file.Size == 0 {
		common.ErrorResponse(c, common.ErrFileEmpty)
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		common.ErrorResponse(c, common.ErrInvalidFileType)
		return
	}

	note, err := h.service.UploadImage(c.Request.Context(),
		c.Param("board_id"), c.Param("note_id"), middleware.GetUserID(c), file)
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, http.StatusOK, note)
}

// DeleteImage handles DELETE /api/v1/boards/:board_id/notes/:note_id/image
func (h *NoteHandler) DeleteImage(c *gin.Context) {
	err := h.service.DeleteImage(c.Request.Context(),
		c.Param("board_id"), c.Param("note_id"), middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
