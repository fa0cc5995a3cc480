// Package observability provides structured logging for the application.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// LogContextKey is a type for context keys used by the logging package.
type LogContextKey string

// CorrelationID keys a request-scoped identifier carried through contexts.
const CorrelationID LogContextKey = "correlation_id"

// WithCorrelationID returns a new context with the given correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationID, id)
}

// ExtractCorrelationID retrieves the correlation ID from the context.
func ExtractCorrelationID(ctx context.Context) string {
	if id := ctx.Value(CorrelationID); id != nil {
		return id.(string)
	}
	return ""
}

// RepoLogger provides structured logging for repository operations
// against a single storage slot.
type RepoLogger struct {
	slot   string
	logger *Logger
}

// NewRepoLogger creates a new RepoLogger for the given storage slot.
func NewRepoLogger(slot string) *RepoLogger {
	return &RepoLogger{
		slot:   slot,
		logger: GlobalLogger,
	}
}

// LogWrite logs a repository mutation (create, update or delete).
func (l *RepoLogger) LogWrite(ctx context.Context, operation, entityID string) {
	l.logger.InfoContext(ctx, "repository write",
		slog.String("slot", l.slot),
		slog.String("operation", operation),
		slog.String("entity_id", entityID),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
	)
}

// LogError logs a repository error.
func (l *RepoLogger) LogError(ctx context.Context, err error, operation string) {
	l.logger.ErrorContext(ctx, "repository error",
		slog.String("slot", l.slot),
		slog.String("operation", operation),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
		slog.String("error", err.Error()),
	)
}
