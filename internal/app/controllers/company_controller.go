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

// CompanyController handles the company pages' data and actions.
type CompanyController struct {
	profiles *services.ProfileService
	logger   zerolog.Logger
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(profiles *services.ProfileService, logger zerolog.Logger) *CompanyController {
	return &CompanyController{profiles: profiles, logger: logger}
}

// Profile returns the company's profile
// @Summary Company profile
// @Router /company/{id}/profile [get]
func (c *CompanyController) Profile(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}

	profile, err := c.profiles.CompanyProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// UpdateProfile patches the company's profile
// @Summary Update company profile
// @Router /company/{id}/profile [patch]
func (c *CompanyController) UpdateProfile(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	sess, ok := requireSelf(ctx, id)
	if !ok {
		return
	}

	var req dto.UpdateCompanyProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	patch := models.CompanyProfile{
		Name:        req.Name,
		Email:       req.Email,
		Website:     req.Website,
		Location:    req.Location,
		Description: req.Description,
	}

	updated, err := c.profiles.UpdateCompanyProfile(ctx.Request.Context(), sess, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: updated})
}

// Dashboard returns the company's dashboard
// @Summary Company dashboard
// @Router /company/{id}/dashboard [get]
func (c *CompanyController) Dashboard(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}

	dashboard, err := c.profiles.CompanyDashboard(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dashboard})
}

// CreatePosition posts a new position owned by the company
// @Summary Create position
// @Router /company/{id}/positions [post]
func (c *CompanyController) CreatePosition(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}

	var req dto.PositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	created, err := c.profiles.CreatePosition(ctx.Request.Context(), id, positionFromRequest(req, id))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("companyId", id).Int64("positionId", created.PositionID).Msg("Position created")

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: created})
}

// UpdatePosition patches an existing position
// @Summary Update position
// @Router /company/{id}/positions/{posId} [patch]
func (c *CompanyController) UpdatePosition(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}
	posID, ok := pathID(ctx, "posId")
	if !ok {
		return
	}

	var req dto.PositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	updated, err := c.profiles.UpdatePosition(ctx.Request.Context(), id, posID, positionFromRequest(req, id))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: updated})
}

func positionFromRequest(req dto.PositionRequest, companyID int64) models.Position {
	return models.Position{
		Name:        req.Name,
		Salary:      req.Salary,
		Location:    req.Location,
		Description: req.Description,
		CompanyID:   companyID,
		NewGrad:     req.NewGrad,
		Intern:      req.Intern,
		Sponsor:     req.Sponsor,
	}
}
