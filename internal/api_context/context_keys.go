package api_context

import (
	"context"
)

type ctxKey string

const (
	RequestIDKey   ctxKey = "requestID"
	AuthSubjectKey ctxKey = "authSubject"
)

func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok && id != ""
}

func AuthSubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(AuthSubjectKey).(string)
	return sub, ok && sub != ""
}
