package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonConfig_DurationAsString(t *testing.T) {
	var jc JsonConfig
	err := json.Unmarshal([]byte(`{"api_base_url":"http://api.local","request_timeout":"30s","session_db_path":"s.db"}`), &jc)

	require.NoError(t, err)
	assert.Equal(t, "http://api.local", jc.APIBaseURL)
	assert.Equal(t, 30*time.Second, jc.RequestTimeout.Duration)
	assert.Equal(t, "s.db", jc.SessionDBPath)
}

func TestJsonConfig_DurationAsNanoseconds(t *testing.T) {
	var jc JsonConfig
	err := json.Unmarshal([]byte(`{"request_timeout":15000000000}`), &jc)

	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, jc.RequestTimeout.Duration)
}

func TestJsonConfig_InvalidDuration(t *testing.T) {
	var jc JsonConfig
	err := json.Unmarshal([]byte(`{"request_timeout":"soon"}`), &jc)

	assert.Error(t, err)
}
