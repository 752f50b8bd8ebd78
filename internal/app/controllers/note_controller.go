package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/services"
	"github.com/freemodule/backend/internal/middleware"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/helpers"
)

// NoteController handles note upload, listing and lifecycle endpoints.
type NoteController struct {
	noteService *services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService *services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

// CreateNote handles POST /notes/upload. The form must carry a "file" part
// plus the note fields.
func (c *NoteController) CreateNote(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidation, "Invalid note data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrFileRequired)
		return
	}

	resp, err := c.noteService.CreateNote(ctx, userID, &req, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListNotes handles GET /notes, filterable by subject_id and user_id.
func (c *NoteController) ListNotes(ctx *gin.Context) {
	subjectID, ok := parseOptionalInt64Query(ctx, "subject_id")
	if !ok {
		return
	}
	userID, ok := parseOptionalInt64Query(ctx, "user_id")
	if !ok {
		return
	}
	limit, offset := helpers.ParseLimitOffset(ctx)

	notes, err := c.noteService.ListNotes(ctx, subjectID, userID, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(notes, limit, offset))
}

// GetNote handles GET /notes/:id.
func (c *NoteController) GetNote(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.noteService.GetNote(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateNote handles PUT /notes/:id. The file part is optional; when present
// it replaces the stored document.
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidation, "Invalid note data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// The file part is optional on update.
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		fileHeader = nil
	}

	resp, err := c.noteService.UpdateNote(ctx, id, userID, &req, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteNote handles DELETE /notes/:id.
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.noteService.DeleteNote(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Note deleted"})
}
