package logger

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Context keys shared with the auth and middleware packages
const (
	UserIDKey    = "user_id"
	RequestIDKey = "request_id"
)

// Logger wraps logrus for structured logging with request context
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the user id stored in ctx, if any
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if userID, ok := ctx.Value(UserIDKey).(string); ok && userID != "" {
		logger.Entry = logger.Entry.WithField("user", userID)
	} else {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// FromGin creates a logger with the request id and resolved user of a gin request
func FromGin(c *gin.Context) *Logger {
	logger := New()
	if c == nil {
		return logger
	}

	if requestID := c.GetString(RequestIDKey); requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}
	if userID := c.GetString(UserIDKey); userID != "" {
		logger.Entry = logger.Entry.WithField("user", userID)
	}
	if c.Request != nil {
		logger.Entry = logger.Entry.WithField("path", c.Request.URL.Path)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches err to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
