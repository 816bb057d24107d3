package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_DiscardsOutput verifies that the no-op logger emits nothing.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestFromRequest_RoundTrip verifies that a logger attached to a request
// context is recoverable via FromRequest.
func TestFromRequest_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger("request-role")
	base.Logger = base.Output(&buf)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	got := FromRequest(r)
	got.Info().Msg("from request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request-role", entry["role"])
}

// TestGetChildLogger_Independent verifies that enriching a child logger does
// not leak fields into the parent.
func TestGetChildLogger_Independent(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := NewLogger("parent")
	parent.Logger = parent.Output(&parentBuf)

	child := parent.GetChildLogger()
	child.Logger = child.Output(&childBuf)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("extra", "child-only")
	})

	parent.Info().Msg("parent entry")
	child.Info().Msg("child entry")

	var parentEntry, childEntry map[string]any
	require.NoError(t, json.Unmarshal(parentBuf.Bytes(), &parentEntry))
	require.NoError(t, json.Unmarshal(childBuf.Bytes(), &childEntry))

	assert.NotContains(t, parentEntry, "extra")
	assert.Equal(t, "child-only", childEntry["extra"])
}
