package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/app/models/dto"
	"github.com/mkaraca/careergate/internal/middleware"
)

// pathID parses a numeric path parameter, writing the 400 response itself
// when the value is not a positive integer.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// requireSelf ensures the authenticated session owns the addressed resource.
// The browser only ever navigates users to their own pages; anything else is
// a crafted request.
func requireSelf(ctx *gin.Context, id int64) (models.Session, bool) {
	sess := middleware.SessionFromContext(ctx)
	if sess.UserID != id {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return sess, false
	}
	return sess, true
}
