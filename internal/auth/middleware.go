package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// AccessTokenCookie is the cookie the dashboard stores the provider access token in.
const AccessTokenCookie = "sb-access-token"

// Middleware attaches a Session to the request context when a valid token is
// presented. Requests without a valid token pass through unchanged; handlers
// decide whether a session is required.
func Middleware(verifier *Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	logger = logger.With(zap.String("component", "auth"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := tokenFromRequest(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			session, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("ignoring unverifiable token", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

func tokenFromRequest(r *http.Request) (string, bool) {
	if token, ok := extractBearerToken(r.Header.Get("Authorization")); ok {
		return token, true
	}
	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		if token := strings.TrimSpace(c.Value); token != "" {
			return token, true
		}
	}
	return "", false
}

func extractBearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
