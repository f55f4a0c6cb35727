package session

import "errors"

// AuthError is the only error kind login, signup and logout surface. The
// message is user-facing; provider codes are already translated away.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// Generic fallbacks, one per operation.
const (
	MsgLoginFailed  = "Login failed"
	MsgSignupFailed = "Signup failed"
	MsgLogoutFailed = "Logout failed"
)

// providerMessages maps identity-provider codes to the fixed strings shown
// to users. Codes not listed here fall back to the operation's generic
// message.
var providerMessages = map[string]string{
	CodeInvalidEmail:    "Invalid email address",
	CodeUserNotFound:    "No account found with this email",
	CodeWrongPassword:   "Incorrect password",
	CodeTooManyRequests: "Too many failed attempts. Please try again later",
	CodeEmailInUse:      "An account with this email already exists",
	CodeWeakPassword:    "Password should be at least 6 characters",
}

// Translate converts a provider failure into an AuthError, using fallback
// when the code has no fixed message. A nil err yields nil.
func Translate(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		if msg, ok := providerMessages[pe.Code]; ok {
			return &AuthError{Message: msg}
		}
	}
	return &AuthError{Message: fallback}
}
