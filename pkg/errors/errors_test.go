package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cause := stderrors.New("boom")
	err := New(CodeCaptureFailed, "screen", "capture failed", cause)

	assert.Equal(t, CodeCaptureFailed, err.Code)
	assert.Equal(t, "screen", err.Domain)
	assert.Equal(t, "capture failed", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.True(t, err.Retryable)
	assert.Equal(t, SeverityMedium, err.Severity)
	assert.NotEmpty(t, err.Location)
	assert.Equal(t, "CAPTURE_FAILED: capture failed", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeOutOfBounds, "tools", nil, "(%d, %d) is off screen", 5000, 5000)
	assert.Equal(t, "(5000, 5000) is off screen", err.Message)
	assert.False(t, err.Retryable)
	assert.Equal(t, SeverityLow, err.Severity)
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := New(CodeInternal, "tools", "wrapper", cause)
	assert.True(t, stderrors.Is(err, cause))
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "rich error",
			err:  New(CodeUnknownKey, "keyboard", "unknown key", nil),
			want: CodeUnknownKey,
		},
		{
			name: "wrapped rich error",
			err:  fmt.Errorf("dispatch: %w", New(CodeInvalidButton, "mouse", "bad button", nil)),
			want: CodeInvalidButton,
		},
		{
			name: "plain error",
			err:  stderrors.New("something else"),
			want: CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	err := New(CodeFailsafeTriggered, "tools", "cursor in corner", nil)
	assert.True(t, Is(err, CodeFailsafeTriggered))
	assert.False(t, Is(err, CodeOutOfBounds))
}

func TestWith(t *testing.T) {
	err := New(CodeNotFound, "screen", "template not found", nil).
		With("image_path", "button.png").
		With("confidence", 0.9)

	require.NotNil(t, err.Fields)
	assert.Equal(t, "button.png", err.Fields["image_path"])
	assert.Equal(t, 0.9, err.Fields["confidence"])
}

func TestJSON(t *testing.T) {
	err := New(CodeDriverUnavailable, "automation", "no display", nil)
	out := err.JSON()
	assert.Contains(t, out, `"code":"DRIVER_UNAVAILABLE"`)
	assert.Contains(t, out, `"message":"no display"`)
}

func TestCodeMetadata(t *testing.T) {
	tests := []struct {
		code      Code
		severity  Severity
		retryable bool
	}{
		{CodeOutOfBounds, SeverityLow, false},
		{CodeInvalidButton, SeverityLow, false},
		{CodeUnknownKey, SeverityLow, false},
		{CodeInvalidArgument, SeverityLow, false},
		{CodeNotFound, SeverityLow, true},
		{CodeCaptureFailed, SeverityMedium, true},
		{CodeDialogFailed, SeverityMedium, true},
		{CodeFailsafeTriggered, SeverityHigh, false},
		{CodeDriverUnavailable, SeverityCritical, false},
		{CodeInternal, SeverityMedium, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			severity, retryable := codeMetadata(tt.code)
			assert.Equal(t, tt.severity, severity)
			assert.Equal(t, tt.retryable, retryable)
		})
	}
}
