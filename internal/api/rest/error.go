package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/artfolio/artfolio-api/internal/api/shared/dto"
	apierrors "github.com/artfolio/artfolio-api/internal/api/shared/errors"
	"github.com/artfolio/artfolio-api/internal/logger"
)

// respondData sends a 200 response with the payload in the data envelope
func respondData(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, dto.DataEnvelope{Data: payload})
}

// respondBadRequest sends a 400 response in the error envelope
func respondBadRequest(c *gin.Context, message string) {
	apiErr := apierrors.NewValidationError(message)
	c.JSON(apiErr.Code, dto.ErrorEnvelope{Error: apiErr})
}

// respondNotFound sends a 404 response in the error envelope
func respondNotFound(c *gin.Context, message string) {
	apiErr := apierrors.NewNotFoundError(message)
	c.JSON(apiErr.Code, dto.ErrorEnvelope{Error: apiErr})
}

// respondError sends the error in the error envelope, using the error's own
// status code when it is an APIError and 500 otherwise. Upstream failures
// keep the upstream status code this way.
func respondError(c *gin.Context, err error, fallback string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code >= http.StatusInternalServerError {
			logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		}
		c.JSON(apiErr.Code, dto.ErrorEnvelope{Error: apiErr})
		return
	}

	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, dto.ErrorEnvelope{Error: apierrors.NewInternalError(fallback)})
}
