package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfigLoad, "could not load configuration")
	assert.Equal(t, ErrConfigLoad, err.Code)
	assert.Equal(t, "[CONFIG_LOAD] could not load configuration", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrFileNotFound, "no such file: %s", "/tmp/config.ini")
	assert.Equal(t, "[FILE_NOT_FOUND] no such file: /tmp/config.ini", err.Error())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		inner    error
		code     ErrorCode
		message  string
		expected string
		isNil    bool
	}{
		{
			name:     "wraps an error",
			inner:    fmt.Errorf("permission denied"),
			code:     ErrLinkCreate,
			message:  "could not create symlink",
			expected: "[LINK_CREATE] could not create symlink: permission denied",
		},
		{
			name:  "nil error returns nil",
			inner: nil,
			code:  ErrLinkCreate,
			isNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.inner, tt.code, tt.message)
			if tt.isNil {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.expected, err.Error())
			assert.Equal(t, tt.inner, err.Unwrap())
		})
	}
}

func TestIsErrorCode(t *testing.T) {
	inner := New(ErrCommandRun, "comfy exited 1")
	wrapped := fmt.Errorf("restore failed: %w", inner)

	assert.True(t, IsErrorCode(wrapped, ErrCommandRun))
	assert.False(t, IsErrorCode(wrapped, ErrCommandNotFound))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrCommandRun))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrLinkConflict, GetErrorCode(New(ErrLinkConflict, "dup target")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrLinkCreate, "boom").WithDetail("target", "/ws/models")
	assert.Equal(t, "/ws/models", err.Details["target"])
}
