package auth

import "time"

// Claims is the payload carried inside an encrypted access token.
type Claims struct {
	UserID    string    `json:"user_id"`
	Handle    string    `json:"handle"`
	Subject   string    `json:"sub"`
	Issuer    string    `json:"iss"`
	TokenID   string    `json:"jti"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// Principal returns the user the token was issued to.
func (c *Claims) Principal() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}
