package api

import (
	"context"

	"github.com/snsihub/showcase-portal-backend/models"
)

type keyType string

const sessionKey keyType = "session"

// ctxWithSession attaches the authenticated user's session to the context.
func ctxWithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// sessionFromCtx retrieves the session placed by the auth middleware.
func sessionFromCtx(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(sessionKey).(models.Session)
	return session, ok
}
