// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
)

// contextKey is an unexported type for context value keys defined in this
// package, preventing collisions with keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey carries the authenticated user ID inside the test API.
	UserIDCtxKey = contextKey("userID")

	// RequestIDCtxKey carries a caller-chosen X-Request-ID for the next
	// outbound request.
	RequestIDCtxKey = contextKey("requestID")
)

// GetUserIDFromContext retrieves the user ID stored under [UserIDCtxKey].
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithRequestID returns a copy of ctx that pins the request ID used by the
// transport. Without it every request gets a fresh id; callers pin one when
// they need to match a request with an id they already hold, such as one
// shown to the user or written to their own log.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext returns the request ID pinned by WithRequestID.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
