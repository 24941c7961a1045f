// Package usercontext carries the authenticated user id through a request.
// The auth middleware is the only writer; services trust the value as
// already verified and scope every query by it.
package usercontext

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type keyType string

const userIDKey keyType = "user_id"

func WithUserID(ctx context.Context, id snowflake.ID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

func UserID(ctx context.Context) (snowflake.ID, bool) {
	id, ok := ctx.Value(userIDKey).(snowflake.ID)
	return id, ok
}
