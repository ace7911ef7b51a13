// internal/service/context.go
package service

import "context"

type requestMetaKey string

const (
	requestIDKey requestMetaKey = "request_id"
	clientIPKey  requestMetaKey = "client_ip"
)

// WithRequestMeta attaches request metadata used by the audit trail. Called
// by the HTTP middleware; absent values audit as empty strings.
func WithRequestMeta(ctx context.Context, requestID, clientIP string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	return context.WithValue(ctx, clientIPKey, clientIP)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func ClientIPFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(clientIPKey).(string); ok {
		return v
	}
	return ""
}
