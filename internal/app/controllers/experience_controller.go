package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/services"
	"github.com/freemodule/backend/internal/middleware"
	"github.com/freemodule/backend/internal/pkg/helpers"
)

// ExperienceController handles experience post endpoints.
type ExperienceController struct {
	experienceService *services.ExperienceService
}

// NewExperienceController creates a new ExperienceController
func NewExperienceController(experienceService *services.ExperienceService) *ExperienceController {
	return &ExperienceController{experienceService: experienceService}
}

// CreateExperience handles POST /experience.
func (c *ExperienceController) CreateExperience(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateExperienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidation, "Invalid experience data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.experienceService.CreateExperience(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListExperiences handles GET /experience.
func (c *ExperienceController) ListExperiences(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)

	posts, err := c.experienceService.ListExperiences(ctx, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(posts, limit, offset))
}

// GetExperience handles GET /experience/:id.
func (c *ExperienceController) GetExperience(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.experienceService.GetExperience(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateExperience handles PUT /experience/:id.
func (c *ExperienceController) UpdateExperience(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateExperienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidation, "Invalid experience data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.experienceService.UpdateExperience(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteExperience handles DELETE /experience/:id.
func (c *ExperienceController) DeleteExperience(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.experienceService.DeleteExperience(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Experience post deleted"})
}
