// Package identity carries the per-request authenticated user id through
// context.Context. The value is set once by the identity middleware and is
// read-only for the rest of the request.
package identity

import "context"

type contextKey struct{}

var userIDKey contextKey

// WithUserID returns a child context carrying the verified user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// FromContext returns the verified user id for this request, if any.
// The second return is false for anonymous requests.
func FromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
