package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/logger"
)

// ErrorHandler renders the last error attached to the context with c.Error.
// Anything that is not an AppError is reported as INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.Named("http")

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			log.Errorw("unhandled error",
				"request_id", RequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err.Error(),
			)
			abortWithError(c, apperrors.ErrInternalServer)
			return
		}

		if appErr.Internal != nil {
			log.Errorw("request failed",
				"request_id", RequestID(c),
				"code", appErr.Code,
				"path", c.Request.URL.Path,
				"internal", appErr.Internal.Error(),
			)
		}
		abortWithError(c, appErr)
	}
}
