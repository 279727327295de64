package instrument

import "context"

type correlationIDKey struct{}

// SetCorrelationID stores the request correlation id on the context.
func SetCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID returns the correlation id stored on the context, or the
// empty string when none is set.
func GetCorrelationID(ctx context.Context) string {
	if v, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return v
	}
	return ""
}
