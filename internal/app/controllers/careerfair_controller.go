package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkaraca/careergate/internal/app/models/dto"
	"github.com/mkaraca/careergate/internal/app/services"
	"github.com/mkaraca/careergate/internal/middleware"
)

// CareerFairController handles fair browsing, registration and position
// applications.
type CareerFairController struct {
	fairs  *services.FairService
	apply  *services.ApplyService
	logger zerolog.Logger
}

// NewCareerFairController creates a new CareerFairController
func NewCareerFairController(fairs *services.FairService, apply *services.ApplyService, logger zerolog.Logger) *CareerFairController {
	return &CareerFairController{fairs: fairs, apply: apply, logger: logger}
}

// Positions lists open positions across all fairs
// @Summary List open positions
// @Router /careerFair/positions [get]
func (c *CareerFairController) Positions(ctx *gin.Context) {
	positions, err := c.fairs.ListPositions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: positions})
}

// Apply submits a position application for the current session
// @Summary Apply to a position
// @Router /careerFair/positions/apply [post]
func (c *CareerFairController) Apply(ctx *gin.Context) {
	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	sess := middleware.SessionFromContext(ctx)
	outcome := c.apply.Apply(ctx.Request.Context(), sess, req.PositionID)
	if outcome.Err != nil {
		middleware.HandleAPIError(ctx, outcome.Err)
		return
	}

	trace := make([]string, 0, len(outcome.Trace))
	for _, state := range outcome.Trace {
		trace = append(trace, state.String())
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ApplyResponse{State: outcome.State.String(), Trace: trace},
	})
}

// Register registers the current user for a fair
// @Summary Register for a fair
// @Router /careerFair/{fairId}/register [post]
func (c *CareerFairController) Register(ctx *gin.Context) {
	fairID, ok := pathID(ctx, "fairId")
	if !ok {
		return
	}

	sess := middleware.SessionFromContext(ctx)
	if err := c.fairs.Register(ctx.Request.Context(), sess, fairID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("fairId", fairID).Int64("userId", sess.UserID).Msg("Fair registration confirmed")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Registered for fair"},
	})
}

// Attend marks the current user as attending a fair
// @Summary Attend a fair
// @Router /careerFair/{fairId}/attend [post]
func (c *CareerFairController) Attend(ctx *gin.Context) {
	fairID, ok := pathID(ctx, "fairId")
	if !ok {
		return
	}

	sess := middleware.SessionFromContext(ctx)
	if err := c.fairs.Attend(ctx.Request.Context(), sess, fairID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Attendance recorded"},
	})
}

// CancelRegistration cancels the current user's fair registration
// @Summary Cancel a fair registration
// @Router /careerFair/{fairId}/register [delete]
func (c *CareerFairController) CancelRegistration(ctx *gin.Context) {
	fairID, ok := pathID(ctx, "fairId")
	if !ok {
		return
	}

	sess := middleware.SessionFromContext(ctx)
	if err := c.fairs.Cancel(ctx.Request.Context(), sess, fairID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Registration cancelled"},
	})
}
