package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkaraca/careergate/internal/app/models/dto"
	"github.com/mkaraca/careergate/internal/pkg/apperrors"
)

// HandleAPIError translates errors into the standard error envelope. Every
// controller funnels failures through here so the browser always sees one
// presentable message and the prior UI state stays untouched.
func HandleAPIError(c *gin.Context, err error) {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		code := dto.ErrorCodeUpstreamUnavailable
		switch apiErr.Status {
		case http.StatusBadRequest:
			code = dto.ErrorCodeValidationFailed
		case http.StatusUnauthorized:
			code = dto.ErrorCodeInvalidCredentials
		case http.StatusForbidden:
			code = dto.ErrorCodeForbidden
		case http.StatusNotFound:
			code = dto.ErrorCodeResourceNotFound
		}
		c.JSON(apiErr.Status, dto.APIResponse{
			Error: dto.NewErrorDetail(code, apiErr.Message),
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
	case errors.Is(err, apperrors.ErrSessionInvalid):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeSessionInvalid, "Session is no longer valid"),
		})
	case errors.Is(err, apperrors.ErrWrongRole), errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrUpstreamUnreachable):
		c.JSON(http.StatusBadGateway, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUpstreamUnavailable, "Service is temporarily unavailable"),
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
