package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkaraca/careergate/internal/app/models/dto"
	"github.com/mkaraca/careergate/internal/app/services"
	"github.com/mkaraca/careergate/internal/middleware"
)

// AdminController handles admin announcement management.
type AdminController struct {
	announcements *services.AnnouncementService
	logger        zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(announcements *services.AnnouncementService, logger zerolog.Logger) *AdminController {
	return &AdminController{announcements: announcements, logger: logger}
}

// Announcements lists announcements newest-first
// @Summary List announcements
// @Router /admin/{id}/announcements [get]
func (c *AdminController) Announcements(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}

	announcements, err := c.announcements.List(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: announcements})
}

// CreateAnnouncement posts a new announcement
// @Summary Create announcement
// @Router /admin/{id}/announcements [post]
func (c *AdminController) CreateAnnouncement(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}

	var req dto.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	created, err := c.announcements.Create(ctx.Request.Context(), id, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("adminId", id).Int64("announcementId", created.ID).Msg("Announcement created")

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: created})
}

// UpdateAnnouncement changes an announcement's message
// @Summary Update announcement
// @Router /admin/{id}/announcements/{annId} [patch]
func (c *AdminController) UpdateAnnouncement(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}
	annID, ok := pathID(ctx, "annId")
	if !ok {
		return
	}

	var req dto.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	updated, err := c.announcements.Update(ctx.Request.Context(), id, annID, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: updated})
}

// DeleteAnnouncement removes an announcement
// @Summary Delete announcement
// @Router /admin/{id}/announcements/{annId} [delete]
func (c *AdminController) DeleteAnnouncement(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}
	annID, ok := pathID(ctx, "annId")
	if !ok {
		return
	}

	if err := c.announcements.Delete(ctx.Request.Context(), id, annID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Announcement deleted"},
	})
}
