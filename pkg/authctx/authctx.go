package authctx

import "context"

type contextKey string

const tokenKey contextKey = "bearer_token"

// WithToken stores the caller's bearer token in the context.
// The gateway never mints tokens itself, it only forwards them upstream.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// Token returns the bearer token carried by the context, if any.
func Token(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}
