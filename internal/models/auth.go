package models

// LoginData are the credentials posted to /auth/login
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the payload posted to /auth/register
type RegisterData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// AuthResponse is the token envelope returned by login and register. The
// expiration is kept as the raw string the server sent.
type AuthResponse struct {
	Token      string `json:"token"`
	Expiration string `json:"expiration"`
}
