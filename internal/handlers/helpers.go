package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/logger"
	"depotlens/internal/middleware"
	"depotlens/internal/services"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// actorOf returns who is calling, as set by the auth middleware.
func actorOf(c *gin.Context) string {
	if actor := c.GetString(middleware.ActorKey); actor != "" {
		return actor
	}
	return services.ActorOwner
}

// parseFlexibleTime accepts an RFC3339 timestamp or a YYYY-MM-DD date.
func parseFlexibleTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

// parseDateRange reads from_date and to_date. Missing bounds default to the
// span before now; a date-only to_date covers the whole day.
func parseDateRange(c *gin.Context, span time.Duration) (time.Time, time.Time, error) {
	to := time.Now().UTC()
	if s := c.Query("to_date"); s != "" {
		t, err := parseFlexibleTime(s)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		if len(s) == len(time.DateOnly) {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		to = t
	}

	from := to.Add(-span)
	if s := c.Query("from_date"); s != "" {
		t, err := parseFlexibleTime(s)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		from = t
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "from_date must not be after to_date")
	}
	return from, to, nil
}

// queryInt parses an optional integer query parameter within [minVal, maxVal].
func queryInt(c *gin.Context, name string, def, minVal, maxVal int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < minVal || n > maxVal {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("%s must be an integer between %d and %d", name, minVal, maxVal))
	}
	return n, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unexpected error",
			"request_id", middleware.RequestID(c),
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"request_id", middleware.RequestID(c),
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
}
