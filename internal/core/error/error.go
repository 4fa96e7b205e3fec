package errx

import (
	"errors"
	"fmt"
)

// Kind classifies failures from external services into the categories the bot
// reports differently to users.
type Kind int

const (
	// KindUnavailable covers transient/network failures and anything unclassified.
	KindUnavailable Kind = iota
	// KindAuth means the upstream rejected our credential.
	KindAuth
	// KindRateLimit means the upstream throttled us.
	KindRateLimit
	// KindInvalidArgument means the upstream rejected the request content itself.
	KindInvalidArgument
)

// Fixed user-facing messages, one per Kind. Handlers never leak raw vendor
// errors into chat; they reply with one of these instead.
const (
	AuthMessage        = "The Gemini API key is invalid or missing. Ask the bot owner to check it."
	RateLimitMessage   = "The AI service is rate-limiting us right now. Try again in a bit."
	InvalidArgMessage  = "The request was rejected (unsupported content or format)."
	UnavailableMessage = "Sorry, something went wrong while handling your message."
)

// AppError wraps an underlying error with a Kind and a safe message.
type AppError struct {
	Err     error
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, kind Kind, message string) *AppError {
	return &AppError{
		Err:     err,
		Kind:    kind,
		Message: message,
	}
}

// KindOf extracts the Kind from an error chain, defaulting to KindUnavailable.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnavailable
}

// UserMessage maps an error chain to the fixed user-facing string for its Kind.
func UserMessage(err error) string {
	switch KindOf(err) {
	case KindAuth:
		return AuthMessage
	case KindRateLimit:
		return RateLimitMessage
	case KindInvalidArgument:
		return InvalidArgMessage
	default:
		return UnavailableMessage
	}
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}
