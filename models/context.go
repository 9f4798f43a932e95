package models

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID stores the fetch cycle's correlation id in the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID retrieves the correlation id from the context
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
