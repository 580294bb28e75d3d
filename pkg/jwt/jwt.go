package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken marks every verification failure caused by the token
// itself (malformed, tampered, signed with an unknown secret, expired,
// missing subject). Anything else returned by ValidateToken is a verifier fault.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the token payload: { "authorId": "<id>" }
type Claims struct {
	AuthorID string `json:"authorId"`
	jwt.RegisteredClaims
}

// Manager signs tokens with the current secret and verifies them against the
// current secret followed by any previous secrets.
//
// Rotation: deploy the new secret as JWT_SECRET and move the old one into
// JWT_PREVIOUS_SECRETS. Tokens signed with the old secret keep verifying until
// it is removed from the previous list; new tokens always use the current one.
type Manager struct {
	secret   string
	previous []string
	ttl      time.Duration
	now      func() time.Time
}

// Option customizes a Manager
type Option func(*Manager)

// WithPreviousSecrets accepts tokens signed with retired secrets
func WithPreviousSecrets(secrets ...string) Option {
	return func(m *Manager) {
		for _, s := range secrets {
			if s != "" {
				m.previous = append(m.previous, s)
			}
		}
	}
}

// WithTTL sets an expiry on issued tokens. Zero issues non-expiring tokens.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.ttl = ttl
	}
}

// WithClock overrides time.Now, used by tests
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates new JWT manager
func NewManager(secret string, opts ...Option) *Manager {
	m := &Manager{secret: secret, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GenerateToken issues a token whose subject is authorID
func (m *Manager) GenerateToken(authorID string) (string, error) {
	if authorID == "" {
		return "", fmt.Errorf("generate token: empty author id")
	}

	now := m.now()
	claims := Claims{
		AuthorID: authorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateToken validates and parses token
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	var lastErr error
	for _, secret := range m.secrets() {
		claims, err := m.parse(tokenString, secret)
		if err == nil {
			return claims, nil
		}
		lastErr = err
		// Only a bad signature is worth retrying with another secret
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			break
		}
	}
	return nil, classify(lastErr)
}

// SubjectOf verifies tokenString and returns the embedded author id
func (m *Manager) SubjectOf(tokenString string) (string, error) {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.AuthorID, nil
}

func (m *Manager) secrets() []string {
	return append([]string{m.secret}, m.previous...)
}

func (m *Manager) parse(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.AuthorID == "" {
		return nil, fmt.Errorf("%w: missing authorId claim", ErrInvalidToken)
	}

	return claims, nil
}

// classify folds every jwt validation error into ErrInvalidToken so callers
// can tell a bad token from a verifier fault.
func classify(err error) error {
	if err == nil || errors.Is(err, ErrInvalidToken) {
		return err
	}

	tokenErrors := []error{
		jwt.ErrTokenMalformed,
		jwt.ErrTokenUnverifiable,
		jwt.ErrTokenSignatureInvalid,
		jwt.ErrTokenExpired,
		jwt.ErrTokenNotValidYet,
		jwt.ErrTokenUsedBeforeIssued,
		jwt.ErrTokenInvalidClaims,
		jwt.ErrTokenRequiredClaimMissing,
	}
	for _, target := range tokenErrors {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}
	return err
}
