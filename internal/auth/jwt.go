package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// ErrInvalidToken is returned for any token that fails parsing or validation.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager issues and validates HS256 session tokens.
type JWTManager struct {
	secret []byte
	issuer string
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Claims is what a session token asserts about its bearer.
type Claims struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	Username  string
	Role      domain.Role
	ExpiresAt time.Time
}

// sessionClaims extends standard JWT claims with the session role.
// The JWT ID is the session ID; the subject is the user ID.
type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
	OrgCode  string `json:"org,omitempty"`
}

// GenerateToken signs a token for the session. It expires with the session.
func (m *JWTManager) GenerateToken(s domain.Session) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID.String(),
			Subject:   s.UserID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
		Username: s.Username,
		Role:     s.Role.Kind.String(),
		OrgCode:  s.Role.OrgCode,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and validates a session token.
// All failures wrap ErrInvalidToken.
func (m *JWTManager) ValidateToken(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: invalid session id: %v", ErrInvalidToken, err)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: invalid subject: %v", ErrInvalidToken, err)
	}

	var role domain.Role
	switch domain.RoleKind(claims.Role) {
	case domain.RoleAdmin:
		role = domain.AdminRole()
	case domain.RoleMember:
		role = domain.MemberRole(claims.OrgCode)
	default:
		return Claims{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return Claims{
		SessionID: sessionID,
		UserID:    userID,
		Username:  claims.Username,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
