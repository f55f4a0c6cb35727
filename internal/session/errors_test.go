package session

import (
	"errors"
	"fmt"
	"testing"
)

func TestTranslate_KnownCodes(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{CodeInvalidEmail, "Invalid email address"},
		{CodeUserNotFound, "No account found with this email"},
		{CodeWrongPassword, "Incorrect password"},
		{CodeTooManyRequests, "Too many failed attempts. Please try again later"},
		{CodeEmailInUse, "An account with this email already exists"},
		{CodeWeakPassword, "Password should be at least 6 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			err := Translate(&ProviderError{Code: tc.code}, MsgLoginFailed)
			var authErr *AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("type = %T, want *AuthError", err)
			}
			if authErr.Message != tc.want {
				t.Errorf("message = %q, want %q", authErr.Message, tc.want)
			}
		})
	}
}

func TestTranslate_UnknownCodeUsesFallback(t *testing.T) {
	err := Translate(&ProviderError{Code: "internal-error"}, MsgSignupFailed)
	if err.Error() != MsgSignupFailed {
		t.Errorf("message = %q, want %q", err.Error(), MsgSignupFailed)
	}
}

func TestTranslate_WrappedProviderError(t *testing.T) {
	wrapped := fmt.Errorf("sign in: %w", &ProviderError{Code: CodeWrongPassword})
	if got := Translate(wrapped, MsgLoginFailed).Error(); got != "Incorrect password" {
		t.Errorf("message = %q, want translated code from wrapped error", got)
	}
}

func TestTranslate_NonProviderErrorUsesFallback(t *testing.T) {
	if got := Translate(errors.New("boom"), MsgLogoutFailed).Error(); got != MsgLogoutFailed {
		t.Errorf("message = %q, want %q", got, MsgLogoutFailed)
	}
}

func TestTranslate_NilIsNil(t *testing.T) {
	if err := Translate(nil, MsgLoginFailed); err != nil {
		t.Errorf("Translate(nil) = %v, want nil", err)
	}
}
