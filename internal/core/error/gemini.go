package errx

import (
	"errors"
	"net/http"

	"google.golang.org/genai"
)

const GeminiErrorMessage = "gemini request failed"

// WrapGemini maps Gemini API errors to the unified AppError with the Kind the
// bot's reply messages are keyed on. Non-API errors (timeouts, connection
// resets) stay KindUnavailable.
func WrapGemini(err error) *AppError {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return New(err, KindAuth, GeminiErrorMessage)
		case http.StatusTooManyRequests:
			return New(err, KindRateLimit, GeminiErrorMessage)
		case http.StatusBadRequest:
			return New(err, KindInvalidArgument, GeminiErrorMessage)
		}
	}

	return New(err, KindUnavailable, GeminiErrorMessage)
}
