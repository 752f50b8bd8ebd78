package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/services"
	"github.com/freemodule/backend/internal/middleware"
	"github.com/freemodule/backend/internal/pkg/helpers"
)

// CommentController handles comments nested under notes.
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// AddComment handles POST /notes/:id/comments.
func (c *CommentController) AddComment(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	noteID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidation, "Invalid comment data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.commentService.AddComment(ctx, noteID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListComments handles GET /notes/:id/comments.
func (c *CommentController) ListComments(ctx *gin.Context) {
	noteID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	limit, offset := helpers.ParseLimitOffset(ctx)

	comments, err := c.commentService.ListComments(ctx, noteID, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(comments, limit, offset))
}

// DeleteComment handles DELETE /notes/:id/comments/:commentId.
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	if _, ok := parseIDParam(ctx, "id"); !ok {
		return
	}
	commentID, ok := parseIDParam(ctx, "commentId")
	if !ok {
		return
	}

	if err := c.commentService.DeleteComment(ctx, commentID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted"})
}
