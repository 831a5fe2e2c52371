package auth

import "github.com/heartmarshall/joinrss-backend/internal/domain"

// AuthResult is returned by Login.
type AuthResult struct {
	Token   string
	Session domain.Session
	User    *domain.User
}
