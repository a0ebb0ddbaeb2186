package errs

// Firebase Auth error codes surfaced to users. The messages mirror what the
// dashboard shows next to the login/signup forms.
const (
	AuthInvalidCredentials = "auth/invalid-login-credentials"
	AuthUserNotFound       = "auth/user-not-found"
	AuthWrongPassword      = "auth/wrong-password"
	AuthInvalidEmail       = "auth/invalid-email"
	AuthUserDisabled       = "auth/user-disabled"
	AuthEmailInUse         = "auth/email-already-in-use"
	AuthWeakPassword       = "auth/weak-password"
)

var authMessages = map[string]string{
	AuthInvalidCredentials: "Invalid email or password. Please check your credentials and try again.",
	AuthUserNotFound:       "No account found with this email address. Please sign up first.",
	AuthWrongPassword:      "Incorrect password. Please try again.",
	AuthInvalidEmail:       "Please enter a valid email address.",
	AuthUserDisabled:       "This account has been disabled. Please contact support.",
	AuthEmailInUse:         "An account with this email already exists.",
	AuthWeakPassword:       "Password should be at least 6 characters.",
}

// AuthMessage resolves a provider error code to its user-facing message.
func AuthMessage(code string) string {
	if msg, ok := authMessages[code]; ok {
		return msg
	}
	return "Authentication failed. Please try again."
}
