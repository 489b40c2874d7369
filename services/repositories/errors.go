package repositories

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HandleError classifies a gorm/driver error, logs it and wraps it with the
// classification prefix. Callers still see the original error through %w.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var statusCode int
	var errorType string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		statusCode = http.StatusNotFound
		errorType = "NOT_FOUND"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		statusCode = http.StatusConflict
		errorType = "CONFLICT"
	case errors.Is(err, gorm.ErrInvalidTransaction):
		statusCode = http.StatusInternalServerError
		errorType = "TRANSACTION_ERROR"
	default:
		msg := err.Error()
		switch {
		case strings.Contains(msg, "UNIQUE constraint failed"),
			strings.Contains(msg, "duplicate key value violates unique constraint"):
			statusCode = http.StatusConflict
			errorType = "UNIQUE_CONSTRAINT"
		case strings.Contains(msg, "no such table"),
			strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist"):
			statusCode = http.StatusInternalServerError
			errorType = "SCHEMA_ERROR"
		case strings.Contains(msg, "connection refused"),
			strings.Contains(msg, "database is closed"):
			statusCode = http.StatusServiceUnavailable
			errorType = "DATABASE_CONNECTION_ERROR"
		default:
			statusCode = http.StatusInternalServerError
			errorType = "INTERNAL_ERROR"
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": statusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if statusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return fmt.Errorf("%s: %w", errorType, err)
}
