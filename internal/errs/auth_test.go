package errs

import "testing"

func TestAuthMessageKnownCodes(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{AuthInvalidCredentials, "Invalid email or password. Please check your credentials and try again."},
		{AuthUserNotFound, "No account found with this email address. Please sign up first."},
		{AuthWeakPassword, "Password should be at least 6 characters."},
	}
	for _, tc := range cases {
		if got := AuthMessage(tc.code); got != tc.want {
			t.Errorf("AuthMessage(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestAuthMessageUnknownCodeFallsBack(t *testing.T) {
	if got := AuthMessage("auth/too-many-requests"); got != "Authentication failed. Please try again." {
		t.Errorf("AuthMessage fallback = %q", got)
	}
}

func TestNewAuthErrorCarriesCodeAndMessage(t *testing.T) {
	err := NewAuthError(AuthUserDisabled)
	if err.Code != AuthUserDisabled {
		t.Errorf("code = %q", err.Code)
	}
	if err.Error() != "This account has been disabled. Please contact support." {
		t.Errorf("message = %q", err.Error())
	}
}
