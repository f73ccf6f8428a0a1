package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/mizuki-dev/project-management-api/internal/apperrors"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

// mapping describes how one error category is rendered: HTTP status, the
// response body, and the severity it is logged at.
type mapping struct {
	status int
	body   func(err *apperrors.Error) string
	level  slog.Level
}

func staticBody(s string) func(*apperrors.Error) string {
	return func(*apperrors.Error) string { return s }
}

func detailBody(err *apperrors.Error) string {
	return err.Message
}

// Categories with security-sensitive detail (bad request, forbidden,
// integrity conflicts) get fixed generic bodies; 401/404/500 pass the
// originating message through. The asymmetry is deliberate.
var mappings = map[apperrors.Kind]mapping{
	apperrors.KindBadRequest:   {http.StatusBadRequest, staticBody("Invalid request body."), slog.LevelWarn},
	apperrors.KindUnauthorized: {http.StatusUnauthorized, detailBody, slog.LevelWarn},
	apperrors.KindForbidden:    {http.StatusForbidden, staticBody("You do not have permission to perform this action."), slog.LevelWarn},
	apperrors.KindNotFound:     {http.StatusNotFound, detailBody, slog.LevelInfo},
	apperrors.KindConflict:     {http.StatusConflict, staticBody("Current user can not be deleted."), slog.LevelWarn},
	apperrors.KindInternal:     {http.StatusInternalServerError, detailBody, slog.LevelError},
}

// ErrorHandler is the single place where errors become HTTP responses. It is
// installed once at startup, before any route; handlers and services attach
// errors with c.Error and never format responses themselves.
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		if isDuplicateKey(err) {
			log.Warn("integrity violation",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err.Error(),
			)
			c.String(http.StatusConflict, "Email already in use.")
			return
		}

		var appErr *apperrors.Error
		if !errors.As(err, &appErr) {
			appErr = apperrors.Internal(err.Error())
		}

		m := mappings[appErr.Kind]

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", m.status,
			"error", appErr.Message,
		}
		if m.status == http.StatusInternalServerError {
			attrs = append(attrs, "stack", string(debug.Stack()))
		}
		log.Log(c.Request.Context(), m.level, "request failed", attrs...)

		c.String(m.status, m.body(appErr))
	}
}

// isDuplicateKey reports whether err is a store-level uniqueness violation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return true
	}

	// sqlite (in tests) reports unique violations as plain errors.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
