package auth

import "fmt"

// Identity error codes. The set is fixed; unknown codes fall back to a
// generic display message, so callers must not assume every backend code
// is covered.
const (
	CodeEmailInUse          = "auth/email-already-in-use"
	CodeInvalidEmail        = "auth/invalid-email"
	CodeOperationNotAllowed = "auth/operation-not-allowed"
	CodeWeakPassword        = "auth/weak-password"
	CodeUserDisabled        = "auth/user-disabled"
	CodeUserNotFound        = "auth/user-not-found"
	CodeWrongPassword       = "auth/wrong-password"
	CodeTooManyRequests     = "auth/too-many-requests"
	CodeNetworkFailed       = "auth/network-request-failed"
)

// genericMessage is shown for any code outside the table.
const genericMessage = "An error occurred. Please try again."

var displayMessages = map[string]string{
	CodeEmailInUse:          "Email already in use",
	CodeInvalidEmail:        "Invalid email address",
	CodeOperationNotAllowed: "Operation not allowed",
	CodeWeakPassword:        "Password is too weak (min 6 characters)",
	CodeUserDisabled:        "User account has been disabled",
	CodeUserNotFound:        "User not found",
	CodeWrongPassword:       "Incorrect password",
	CodeTooManyRequests:     "Too many requests. Try again later",
	CodeNetworkFailed:       "Network error. Check your connection",
}

// DisplayMessage maps an identity error code to its human-readable text.
func DisplayMessage(code string) string {
	if msg, ok := displayMessages[code]; ok {
		return msg
	}
	return genericMessage
}

// Error is an identity operation failure carrying a fixed code.
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.Err }

// Message returns the user-facing text for this error.
func (e *Error) Message() string { return DisplayMessage(e.Code) }

func authErr(code string, err error) *Error {
	return &Error{Code: code, Err: err}
}
