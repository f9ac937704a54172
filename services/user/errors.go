package user

import "fmt"

// AuthError is the fixed taxonomy of sign-in/sign-up failures. Code is
// stable for clients; Message is the user-facing text.
type AuthError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrUserNotFound = &AuthError{Code: "not-found", Message: "No account found with this email."}

	ErrWrongCredential = &AuthError{Code: "wrong-credential", Message: "Incorrect email or password."}

	ErrMalformedEmail = &AuthError{Code: "malformed-email", Message: "Please enter a valid email address."}

	ErrRateLimited = &AuthError{Code: "rate-limited", Message: "Too many attempts. Please try again later."}

	ErrEmailTaken = &AuthError{Code: "email-taken", Message: "An account with this email already exists."}
)
