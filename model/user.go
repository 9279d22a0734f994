package model

// User is the identity record the auth service returns alongside tokens and
// on verification.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// LoginForm is the login page's draft buffer. Retained across failed
// attempts, cleared on success.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterForm is the registration page's draft buffer.
type RegisterForm struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=7"`
}

// AuthResponse is the success payload of login and register.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}

// VerifyResponse is the success payload of token verification.
type VerifyResponse struct {
	Valid bool  `json:"valid"`
	User  *User `json:"user"`
}

// ErrorResponse is the body shape of any non-2xx backend reply. The error
// field is optional; absent means fall back to generic text.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the minimal acknowledgment some mutations return.
type MessageResponse struct {
	Message string `json:"message"`
}
