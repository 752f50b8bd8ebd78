package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/services"
	"github.com/freemodule/backend/internal/middleware"
	"github.com/freemodule/backend/internal/pkg/helpers"
)

// GuideController handles survival guide endpoints.
type GuideController struct {
	guideService *services.GuideService
}

// NewGuideController creates a new GuideController
func NewGuideController(guideService *services.GuideService) *GuideController {
	return &GuideController{guideService: guideService}
}

// CreateGuide handles POST /survival.
func (c *GuideController) CreateGuide(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateGuideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidation, "Invalid guide data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.guideService.CreateGuide(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListGuides handles GET /survival.
func (c *GuideController) ListGuides(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)

	guides, err := c.guideService.ListGuides(ctx, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(guides, limit, offset))
}

// GetGuide handles GET /survival/:id.
func (c *GuideController) GetGuide(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.guideService.GetGuide(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateGuide handles PUT /survival/:id.
func (c *GuideController) UpdateGuide(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGuideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidation, "Invalid guide data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.guideService.UpdateGuide(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteGuide handles DELETE /survival/:id.
func (c *GuideController) DeleteGuide(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.guideService.DeleteGuide(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Survival guide deleted"})
}
