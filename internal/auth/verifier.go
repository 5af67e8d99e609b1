package auth

import (
	"errors"
	"fmt"
	"strings"

	jwt "github.com/golang-jwt/jwt/v4"
)

var (
	// ErrTokenInvalid signals a token that failed signature, expiry or audience checks.
	ErrTokenInvalid = errors.New("auth: token invalid")
	// ErrVerifierDisabled is returned when no signing secret is configured.
	ErrVerifierDisabled = errors.New("auth: verifier not configured")
)

type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 access tokens issued by the hosted identity provider.
type Verifier struct {
	secret   []byte
	audience string
	parser   *jwt.Parser
}

// NewVerifier constructs a Verifier. An empty secret yields a verifier that rejects every token.
func NewVerifier(secret, audience string) *Verifier {
	return &Verifier{
		secret:   []byte(secret),
		audience: strings.TrimSpace(audience),
		parser:   jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Verify parses the token and returns the session it grants.
func (v *Verifier) Verify(token string) (*Session, error) {
	if len(v.secret) == 0 {
		return nil, ErrVerifierDisabled
	}

	var c claims
	if _, err := v.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if v.audience != "" && !c.VerifyAudience(v.audience, true) {
		return nil, fmt.Errorf("%w: audience mismatch", ErrTokenInvalid)
	}
	if strings.TrimSpace(c.Subject) == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	return &Session{UserID: c.Subject, Email: c.Email}, nil
}
