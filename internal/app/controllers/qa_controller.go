package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/services"
	"github.com/freemodule/backend/internal/middleware"
	"github.com/freemodule/backend/internal/pkg/helpers"
)

// QAController handles question and answer endpoints.
type QAController struct {
	qaService *services.QAService
}

// NewQAController creates a new QAController
func NewQAController(qaService *services.QAService) *QAController {
	return &QAController{qaService: qaService}
}

// CreateQAPost handles POST /qa.
func (c *QAController) CreateQAPost(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateQAPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidation, "Invalid question data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.qaService.CreateQAPost(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListQAPosts handles GET /qa.
func (c *QAController) ListQAPosts(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)

	posts, err := c.qaService.ListQAPosts(ctx, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(posts, limit, offset))
}

// GetQAPost handles GET /qa/:postId.
func (c *QAController) GetQAPost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "postId")
	if !ok {
		return
	}

	resp, err := c.qaService.GetQAPost(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateQAPost handles PUT /qa/:postId.
func (c *QAController) UpdateQAPost(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "postId")
	if !ok {
		return
	}

	var req dto.UpdateQAPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidation, "Invalid question data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.qaService.UpdateQAPost(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQAPost handles DELETE /qa/:postId.
func (c *QAController) DeleteQAPost(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "postId")
	if !ok {
		return
	}

	if err := c.qaService.DeleteQAPost(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted"})
}

// AddAnswer handles POST /qa/:postId/answers.
func (c *QAController) AddAnswer(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	postID, ok := parseIDParam(ctx, "postId")
	if !ok {
		return
	}

	var req dto.CreateQAAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidation, "Invalid answer data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.qaService.AddAnswer(ctx, postID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListAnswers handles GET /qa/:postId/answers.
func (c *QAController) ListAnswers(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "postId")
	if !ok {
		return
	}
	limit, offset := helpers.ParseLimitOffset(ctx)

	answers, err := c.qaService.ListAnswers(ctx, postID, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(answers, limit, offset))
}
