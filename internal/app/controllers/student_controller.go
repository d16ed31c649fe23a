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

// maxResumeSize bounds resume uploads at 10 MB.
const maxResumeSize = 10 << 20

// StudentController handles the student pages' data and actions.
type StudentController struct {
	profiles *services.ProfileService
	logger   zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(profiles *services.ProfileService, logger zerolog.Logger) *StudentController {
	return &StudentController{profiles: profiles, logger: logger}
}

// Profile returns the student's profile
// @Summary Student profile
// @Router /student/{id}/profile [get]
func (c *StudentController) Profile(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}

	profile, err := c.profiles.StudentProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// UpdateProfile patches the student's profile
// @Summary Update student profile
// @Router /student/{id}/profile [patch]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	sess, ok := requireSelf(ctx, id)
	if !ok {
		return
	}

	var req dto.UpdateStudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	patch := models.StudentProfile{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Major:          req.Major,
		GraduationYear: req.GraduationYear,
	}

	updated, err := c.profiles.UpdateStudentProfile(ctx.Request.Context(), sess, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: updated})
}

// Dashboard returns the student's dashboard
// @Summary Student dashboard
// @Router /student/{id}/dashboard [get]
func (c *StudentController) Dashboard(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}

	dashboard, err := c.profiles.StudentDashboard(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dashboard})
}

// AppliedPositions lists the student's applications
// @Summary Positions the student applied to
// @Router /student/{id}/appliedPositions [get]
func (c *StudentController) AppliedPositions(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}

	positions, err := c.profiles.AppliedPositions(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: positions})
}

// UploadResume forwards a resume upload to the backend
// @Summary Upload resume
// @Accept multipart/form-data
// @Router /student/{id}/resume [post]
func (c *StudentController) UploadResume(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok := requireSelf(ctx, id); !ok {
		return
	}

	header, err := ctx.FormFile("resume")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A resume file is required").WithField("resume")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if header.Size > maxResumeSize {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Resume exceeds the 10 MB limit").WithField("resume")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := header.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	var lastPct float64
	progress := func(pct float64) {
		lastPct = pct
		c.logger.Debug().Float64("percent", pct).Int64("studentId", id).Msg("Resume upload progress")
	}

	if err := c.profiles.UploadResume(ctx.Request.Context(), id, header.Filename, file, progress); err != nil {
		c.logger.Warn().Err(err).Int64("studentId", id).Msg("Resume upload failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentId", id).Str("file", header.Filename).Float64("final", lastPct).Msg("Resume uploaded")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.UploadResponse{FileName: header.Filename, Size: header.Size},
	})
}
