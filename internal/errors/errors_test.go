package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = stderrors.New("sentinel")

func TestWrap_KeepsCodeAndChain(t *testing.T) {
	inner := DataUnavailable(errSentinel)
	wrapped := Wrap(inner, "render dashboard")

	assert.Equal(t, CodeDataUnavailable, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, errSentinel))
	assert.Equal(t, "render dashboard: dataset unavailable: sentinel", wrapped.Error())
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrapf(errSentinel, "read %s", "file.csv")

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, errSentinel))
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestGetCode_ThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", InvalidInput("bad gender"))

	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.Equal(t, "UNKNOWN", GetCode(errSentinel))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"data unavailable", DataUnavailable(errSentinel), http.StatusServiceUnavailable},
		{"invalid input", InvalidInputf(errSentinel, "age_min %q", "x"), http.StatusBadRequest},
		{"not found", NotFound("route"), http.StatusNotFound},
		{"config", ConfigInvalid("PORT"), http.StatusInternalServerError},
		{"internal", InternalError("template"), http.StatusInternalServerError},
		{"plain", errSentinel, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
