package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Success(t *testing.T) {
	err := Classify(http.StatusOK, &Envelope{Code: CodeOK})
	assert.NoError(t, err)
}

func TestClassify_SuccessOnAny2xx(t *testing.T) {
	err := Classify(http.StatusCreated, &Envelope{Code: CodeOK})
	assert.NoError(t, err)
}

func TestClassify_DomainFailure(t *testing.T) {
	err := Classify(http.StatusOK, &Envelope{Code: 400, Message: "bad input"})

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 400, reqErr.Code)
	assert.Equal(t, "bad input", reqErr.Message)
}

func TestClassify_DomainFailureFallbackMessage(t *testing.T) {
	err := Classify(http.StatusOK, &Envelope{Code: 500})

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, MsgRequestFailed, reqErr.Message)
}

func TestClassify_Unauthorized(t *testing.T) {
	err := Classify(http.StatusUnauthorized, &Envelope{})
	assert.True(t, errors.Is(err, ErrSessionExpired))
}

// The transport status wins: a domain-success envelope on a 401 is still a
// session expiry.
func TestClassify_TransportStatusTakesPrecedence(t *testing.T) {
	err := Classify(http.StatusUnauthorized, &Envelope{Code: CodeOK})
	assert.True(t, errors.Is(err, ErrSessionExpired))
}

func TestClassify_HTTPStatuses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		env         Envelope
		wantMessage string
	}{
		{
			name:        "forbidden with server message",
			status:      http.StatusForbidden,
			env:         Envelope{Message: "admins only"},
			wantMessage: "admins only",
		},
		{
			name:        "forbidden fallback",
			status:      http.StatusForbidden,
			wantMessage: MsgForbidden,
		},
		{
			name:        "not found fallback",
			status:      http.StatusNotFound,
			wantMessage: MsgNotFound,
		},
		{
			name:        "server error fallback",
			status:      http.StatusInternalServerError,
			wantMessage: MsgServerError,
		},
		{
			name:        "unmapped status fallback",
			status:      http.StatusBadGateway,
			wantMessage: MsgRequestFailed,
		},
		{
			name:        "unmapped status with server message",
			status:      http.StatusTooManyRequests,
			env:         Envelope{Message: "slow down"},
			wantMessage: "slow down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify(tt.status, &tt.env)

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.wantMessage, httpErr.Message)
		})
	}
}
