package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/app/models/dto"
	"github.com/mkaraca/careergate/internal/app/services"
	"github.com/mkaraca/careergate/internal/middleware"
)

// FacultyController handles the faculty pages' data and actions.
type FacultyController struct {
	profiles *services.ProfileService
	logger   zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(profiles *services.ProfileService, logger zerolog.Logger) *FacultyController {
	return &FacultyController{profiles: profiles, logger: logger}
}

// Profile returns the faculty member's profile
// @Summary Faculty profile
// @Router /faculty/{id}/profile [get]
func (c *FacultyController) Profile(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}

	profile, err := c.profiles.FacultyProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// UpdateProfile patches the faculty member's profile
// @Summary Update faculty profile
// @Router /faculty/{id}/profile [patch]
func (c *FacultyController) UpdateProfile(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	sess, ok := requireSelf(ctx, id)
	if !ok {
		return
	}

	var req dto.UpdateFacultyProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	patch := models.FacultyProfile{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
		Title:      req.Title,
	}

	updated, err := c.profiles.UpdateFacultyProfile(ctx.Request.Context(), sess, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: updated})
}

// Dashboard returns the faculty member's dashboard
// @Summary Faculty dashboard
// @Router /faculty/{id}/dashboard [get]
func (c *FacultyController) Dashboard(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}

	dashboard, err := c.profiles.FacultyDashboard(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dashboard})
}
