package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/errors"
)

func TestHandleAlert(t *testing.T) {
	deps, _, prompter := newTestDeps()

	result := handleAlert(context.Background(), map[string]any{
		"message": "Build finished",
	}, deps)

	res := requireSuccess(t, result)
	require.Equal(t, []string{"Build finished"}, prompter.AlertCalls)
	assert.Equal(t, "Alert", res.Data["title"])
}

func TestHandleAlertFailure(t *testing.T) {
	deps, _, prompter := newTestDeps()
	prompter.AlertErr = errors.New(errors.CodeDialogFailed, "dialogs", "no display", nil)

	result := handleAlert(context.Background(), map[string]any{"message": "hi"}, deps)
	requireError(t, result, "DIALOG_FAILED")
}

func TestHandleConfirm(t *testing.T) {
	deps, _, prompter := newTestDeps()
	prompter.ConfirmAnswer = "OK"

	result := handleConfirm(context.Background(), map[string]any{
		"message": "Proceed?",
	}, deps)

	res := requireSuccess(t, result)
	assert.Equal(t, "OK", res.Data["result"])
	// The default option set is reported back.
	assert.Equal(t, []any{"OK", "Cancel"}, res.Data["options"])
}

func TestHandleConfirmCustomOptions(t *testing.T) {
	deps, _, prompter := newTestDeps()
	prompter.ConfirmAnswer = "Retry"

	result := handleConfirm(context.Background(), map[string]any{
		"message": "Upload failed",
		"options": []any{"Retry", "Skip", "Abort"},
	}, deps)

	res := requireSuccess(t, result)
	assert.Equal(t, "Retry", res.Data["result"])
	assert.Equal(t, []any{"Retry", "Skip", "Abort"}, res.Data["options"])
}

func TestHandlePromptAnswered(t *testing.T) {
	deps, _, prompter := newTestDeps()
	prompter.PromptAnswer = "hello"
	prompter.PromptOK = true

	result := handlePrompt(context.Background(), map[string]any{
		"message": "Enter a value",
		"default": "placeholder",
	}, deps)

	res := requireSuccess(t, result)
	assert.Equal(t, true, res.Data["answered"])
	assert.Equal(t, "hello", res.Data["result"])
	assert.Equal(t, "placeholder", res.Data["default"])
}

func TestHandlePromptCancelled(t *testing.T) {
	deps, _, prompter := newTestDeps()
	prompter.PromptOK = false

	result := handlePrompt(context.Background(), map[string]any{
		"message": "Enter a value",
	}, deps)

	res := requireSuccess(t, result)
	assert.Equal(t, false, res.Data["answered"])
	// No result key on cancel.
	_, hasResult := res.Data["result"]
	assert.False(t, hasResult)
}

func TestHandlePasswordNeverReturnsSecret(t *testing.T) {
	deps, _, prompter := newTestDeps()
	prompter.PasswordSet = true

	result := handlePassword(context.Background(), map[string]any{
		"message": "Sudo password",
	}, deps)

	res := requireSuccess(t, result)
	assert.Equal(t, "[REDACTED]", res.Data["result"])
}

func TestHandlePasswordCancelled(t *testing.T) {
	deps, _, prompter := newTestDeps()
	prompter.PasswordSet = false

	result := handlePassword(context.Background(), map[string]any{
		"message": "Sudo password",
	}, deps)

	res := requireSuccess(t, result)
	assert.Nil(t, res.Data["result"])
}

func TestDialogsRequireMessage(t *testing.T) {
	deps, _, _ := newTestDeps()

	handlers := map[string]handlerFunc{
		"alert":    handleAlert,
		"confirm":  handleConfirm,
		"prompt":   handlePrompt,
		"password": handlePassword,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			result := handler(context.Background(), map[string]any{}, deps)
			requireError(t, result, "INVALID_ARGUMENT")
		})
	}
}
