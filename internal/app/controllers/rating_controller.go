package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/app/services"
	"github.com/freemodule/backend/internal/middleware"
	"github.com/freemodule/backend/internal/pkg/helpers"
)

// RatingController handles like toggles and likers listings on notes.
type RatingController struct {
	ratingService *services.RatingService
}

// NewRatingController creates a new RatingController
func NewRatingController(ratingService *services.RatingService) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// ToggleRating handles POST /notes/:id/rate. A fresh like is a 201, removing
// one is a 200.
func (c *RatingController) ToggleRating(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	noteID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.ratingService.ToggleRating(ctx, noteID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if resp.Action == repositories.RatingActionLiked {
		status = http.StatusCreated
	}
	ctx.JSON(status, resp)
}

// ListRatings handles GET /notes/:id/ratings.
func (c *RatingController) ListRatings(ctx *gin.Context) {
	noteID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	limit, offset := helpers.ParseLimitOffset(ctx)

	resp, err := c.ratingService.ListRatings(ctx, noteID, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
