// Package entity defines the core business entities for the domain layer.
package entity

// User represents the authenticated account as reported by the remote service.
type User struct {
	ID       string
	Email    string
	Name     string
	DarkMode bool
}

// Session carries the caller identity through the gateway.
// The access token is forwarded to the remote service untouched.
type Session struct {
	UserID      string
	Email       string
	AccessToken string
}

// AuthResult is returned by login and registration.
type AuthResult struct {
	AccessToken string
	User        *User
}
