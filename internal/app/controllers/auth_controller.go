// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/app/models/dto"
	"github.com/mkaraca/careergate/internal/middleware"
	"github.com/mkaraca/careergate/internal/session"
	"github.com/mkaraca/careergate/internal/upstream"
)

// AuthController handles login, registration and session lifecycle.
type AuthController struct {
	sessions *session.Service
	logger   zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(sessions *session.Service, logger zerolog.Logger) *AuthController {
	return &AuthController{sessions: sessions, logger: logger}
}

// Login handles user login
// @Summary Log in as student, company or faculty
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or unknown role"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	role, ok := models.ParseRole(req.UserType)
	if !ok || role == models.RoleAdmin {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user type")
		errorDetail = errorDetail.WithField("userType").WithDetails("User type must be student, company or faculty")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sid := middleware.SIDFromContext(ctx)
	creds := models.Credentials{Email: req.Email, Password: req.Password, UserType: role}

	sess, redirect, err := c.sessions.Login(ctx.Request.Context(), sid, creds)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Int64("userId", sess.UserID).Str("userType", string(role)).Msg("User logged in")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.LoginResponse{UserID: sess.UserID, UserType: sess.UserType, RedirectURL: redirect},
	})
}

// Register handles account creation
// @Summary Register a new student, company or faculty account
// @Accept json
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format, mismatched passwords or unknown role"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	// Confirmation mismatch blocks submission before anything goes upstream.
	if req.Password != req.ConfirmPassword {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Passwords do not match")
		errorDetail = errorDetail.WithField("confirmPassword")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	role, ok := models.ParseRole(req.UserType)
	if !ok || role == models.RoleAdmin {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user type")
		errorDetail = errorDetail.WithField("userType").WithDetails("User type must be student, company or faculty")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	payload := upstream.RegisterPayload{
		Email:       req.Email,
		Password:    req.Password,
		UserType:    req.UserType,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
	}

	sid := middleware.SIDFromContext(ctx)
	sess, redirect, err := c.sessions.Register(ctx.Request.Context(), sid, payload, role)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Int64("userId", sess.UserID).Msg("Account registered")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.LoginResponse{UserID: sess.UserID, UserType: sess.UserType, RedirectURL: redirect},
	})
}

// AdminLogin handles admin login
// @Summary Log in as admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid admin login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	sid := middleware.SIDFromContext(ctx)
	sess, redirect, err := c.sessions.AdminLogin(ctx.Request.Context(), sid, req.Email, req.Password)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Admin login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Int64("adminId", sess.UserID).Msg("Admin logged in")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.LoginResponse{UserID: sess.UserID, UserType: sess.UserType, RedirectURL: redirect},
	})
}

// Logout clears the caller's session
// @Summary Log out
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	sid := middleware.SIDFromContext(ctx)
	if err := c.sessions.Logout(ctx.Request.Context(), sid); err != nil {
		c.logger.Error().Err(err).Str("sid", sid).Msg("Logout failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Logged out"},
	})
}

// Session reports the rehydrated session at page load
// @Summary Current session
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Failure 401 {object} dto.ErrorResponse "Admin token verification failed"
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	sid := middleware.SIDFromContext(ctx)
	sess, err := c.sessions.Initialize(ctx.Request.Context(), sid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SessionResponse{Session: sess},
	})
}
