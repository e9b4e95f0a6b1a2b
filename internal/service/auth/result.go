package auth

import "github.com/heartmarshall/studydocs-backend/internal/domain"

// Result is returned by Register and Login.
type Result struct {
	Token string
	User  domain.PublicUser
}
