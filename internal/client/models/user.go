// Package models defines the data shapes exchanged with the blog backend.
package models

// User is the cached profile of the authenticated user. It mirrors server
// truth at the time of the last login or refresh and may be stale until the
// next fetch.
type User struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Nickname      string `json:"nickname"`
	Email         string `json:"email,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	Role          string `json:"role"`
	LastLoginTime string `json:"lastLoginTime,omitempty"`
}

// LoginForm carries the credentials submitted to the login endpoint.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the payload of a successful login call.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
	UserInfo  User   `json:"userInfo"`
}
