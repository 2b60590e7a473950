// Package models defines the request and response shapes exchanged with
// the auth API.
package models

// LoginRequest is posted to /api/login. The API expects capitalised keys.
type LoginRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// RegisterRequest is posted to /api/register. The API expects lower-case keys.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo is returned by /api/authenticate for a valid token. Only
// Username is required; other fields the server adds are ignored.
type UserInfo struct {
	UserID   string `json:"UserID,omitempty"`
	Username string `json:"Username"`
}
