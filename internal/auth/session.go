package auth

import "context"

// Session is the authenticated caller resolved from an identity provider token.
type Session struct {
	UserID string
	Email  string
}

type contextKey string

const sessionContextKey contextKey = "github.com/parcelbroker/shipdesk/internal/auth/session"

// WithSession stores the session within the context for downstream handlers.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext retrieves the session previously stored in context.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*Session)
	if !ok || session == nil || session.UserID == "" {
		return nil, false
	}
	return session, true
}
