package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestWrapGeminiKinds(t *testing.T) {
	tests := []struct {
		code int
		want Kind
	}{
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindAuth},
		{http.StatusTooManyRequests, KindRateLimit},
		{http.StatusBadRequest, KindInvalidArgument},
		{http.StatusInternalServerError, KindUnavailable},
		{http.StatusServiceUnavailable, KindUnavailable},
	}

	for _, tt := range tests {
		err := WrapGemini(genai.APIError{Code: tt.code, Message: "x"})
		require.Error(t, err)
		assert.Equal(t, tt.want, err.Kind, "code %d", tt.code)
	}
}

func TestWrapGeminiWrappedChain(t *testing.T) {
	// classification must survive %w wrapping by intermediate layers
	inner := fmt.Errorf("call model: %w", genai.APIError{Code: http.StatusTooManyRequests})
	err := WrapGemini(inner)
	assert.Equal(t, KindRateLimit, err.Kind)
}

func TestWrapGeminiNonAPI(t *testing.T) {
	err := WrapGemini(errors.New("connection reset"))
	assert.Equal(t, KindUnavailable, err.Kind)
	assert.Nil(t, WrapGemini(nil))
}

func TestUserMessageDistinctPerKind(t *testing.T) {
	msgs := map[string]bool{}
	for _, kind := range []Kind{KindAuth, KindRateLimit, KindInvalidArgument, KindUnavailable} {
		msg := UserMessage(New(errors.New("x"), kind, "boom"))
		assert.NotEmpty(t, msg)
		msgs[msg] = true
	}
	assert.Len(t, msgs, 4, "every kind maps to a distinct user message")
}

func TestUserMessagePlainError(t *testing.T) {
	assert.Equal(t, UnavailableMessage, UserMessage(errors.New("anything")))
}

func TestAppErrorUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := New(fmt.Errorf("wrap: %w", sentinel), KindAuth, "auth failed")
	assert.True(t, errors.Is(err, sentinel))

	var ae *AppError
	require.True(t, errors.As(fmt.Errorf("outer: %w", err), &ae))
	assert.Equal(t, KindAuth, ae.Kind)
}
