package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
)

// ContextKey is the key type for context values set by this package.
type ContextKey string

const (
	// SubjectContextKey is the context key under which the authenticated
	// user's login (the JWT subject) is stored.
	SubjectContextKey ContextKey = "subject"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of random bytes in a trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a freshly generated trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" if absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithSubject stores the authenticated login in the context.
func WithSubject(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, SubjectContextKey, login)
}

// SubjectFromContext retrieves the authenticated login from the context.
func SubjectFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(SubjectContextKey).(string)
	if !ok || login == "" {
		return "", false
	}
	return login, true
}

// generateTraceID creates a random hex trace ID for request correlation.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		slog.Error("failed to generate trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
