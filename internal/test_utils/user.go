package test_utils

import (
	"context"

	"github.com/daysoff/daysoff/pkg/user"
)

// ContextWithTestUser returns a context carrying a fixed user, the way the
// user middleware would populate it for a real request.
func ContextWithTestUser(ctx context.Context) context.Context {
	return user.WithUser(ctx, user.User{
		Id:          123,
		Uid:         "6b9f81f2-0000-4000-8000-000000000123",
		Username:    "test_user",
		DisplayName: "Test User",
	})
}
