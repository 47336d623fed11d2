// Package requestid carries a per-request correlation id across transports.
package requestid

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	MetadataKey = "x-request-id"
)

type ctxKey struct{}

// Ensure returns the trimmed incoming id, or a fresh uuid when it is blank.
func Ensure(incoming string) string {
	if id := strings.TrimSpace(incoming); id != "" {
		return id
	}
	return uuid.NewString()
}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Logger returns log tagged with the request id carried by ctx, if any.
func Logger(ctx context.Context, log *slog.Logger) *slog.Logger {
	if log == nil {
		log = slog.Default()
	}
	if id := FromContext(ctx); id != "" {
		return log.With(slog.String("request_id", id))
	}
	return log
}
