// Package httputil translates business errors into the HTTP error
// body: {"error": message, "errors": [field errors]?}. Not-found maps
// to 404; validation and conflict both surface as 400.
package httputil

import (
	"errors"
	"net/http"

	"github.com/elite-commerce/catalog-service/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RespondError(c *gin.Context, log *zap.Logger, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		body := gin.H{"error": appErr.Message}
		if len(appErr.Fields) > 0 {
			body["errors"] = appErr.Fields
		}
		switch appErr.Kind {
		case apperrors.KindNotFound:
			c.JSON(http.StatusNotFound, body)
		default:
			c.JSON(http.StatusBadRequest, body)
		}
		return
	}

	log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// RespondBindError wraps gin binding failures as a validation body.
func RespondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}
