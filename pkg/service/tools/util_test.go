package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/automation"
)

func TestHandleCountdownZeroSeconds(t *testing.T) {
	deps, _, _ := newTestDeps()

	result := handleCountdown(context.Background(), map[string]any{"seconds": float64(0)}, deps)

	res := requireSuccess(t, result)
	assert.EqualValues(t, 0, res.Data["seconds"])
}

func TestHandleCountdownNegative(t *testing.T) {
	deps, _, _ := newTestDeps()

	result := handleCountdown(context.Background(), map[string]any{"seconds": float64(-3)}, deps)
	requireError(t, result, "INVALID_ARGUMENT")
}

func TestHandleCountdownMissingSeconds(t *testing.T) {
	deps, _, _ := newTestDeps()

	result := handleCountdown(context.Background(), map[string]any{}, deps)
	requireError(t, result, "INVALID_ARGUMENT")
}

func TestHandleDisplayMousePosition(t *testing.T) {
	deps, driver, _ := newTestDeps()
	driver.Cursor = automation.Point{X: 321, Y: 654}

	result := handleDisplayMousePosition(context.Background(), map[string]any{
		"seconds": float64(1),
	}, deps)

	res := requireSuccess(t, result)
	assert.EqualValues(t, 1, res.Data["seconds"])
	assert.EqualValues(t, 321, res.Data["x"])
	assert.EqualValues(t, 654, res.Data["y"])

	samples, ok := res.Data["samples"].([]any)
	require.True(t, ok)
	require.Len(t, samples, 1)
	first := samples[0].(map[string]any)
	assert.EqualValues(t, 321, first["x"])
	assert.EqualValues(t, 654, first["y"])
}

func TestHandleDisplayMousePositionZeroSeconds(t *testing.T) {
	deps, driver, _ := newTestDeps()
	driver.Cursor = automation.Point{X: 10, Y: 20}

	result := handleDisplayMousePosition(context.Background(), map[string]any{
		"seconds": float64(0),
	}, deps)

	res := requireSuccess(t, result)
	assert.EqualValues(t, 10, res.Data["x"])
	assert.EqualValues(t, 20, res.Data["y"])
	assert.Empty(t, res.Data["samples"])
}

func TestHandleDisplayMousePositionNegative(t *testing.T) {
	deps, _, _ := newTestDeps()

	result := handleDisplayMousePosition(context.Background(), map[string]any{
		"seconds": float64(-1),
	}, deps)
	requireError(t, result, "INVALID_ARGUMENT")
}

func TestHandleFailSafeCheck(t *testing.T) {
	deps, _, _ := newTestDeps()

	result := handleFailSafeCheck(context.Background(), map[string]any{}, deps)
	res := requireSuccess(t, result)
	assert.Equal(t, true, res.Data["enabled"])

	deps.Config.FailSafe = false
	result = handleFailSafeCheck(context.Background(), map[string]any{}, deps)
	res = requireSuccess(t, result)
	assert.Equal(t, false, res.Data["enabled"])
}
