// Package tools implements the gateway's tool surface: a flat table of tool
// configurations, one handler per tool, and the serialized dispatch wrapper
// that funnels every invocation through the shared input device.
package tools

import (
	"context"
	"log/slog"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/automation"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/config"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/dialogs"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToolCategory groups tools by the subsystem they drive.
type ToolCategory string

const (
	CategoryMouse    ToolCategory = "mouse"
	CategoryKeyboard ToolCategory = "keyboard"
	CategoryScreen   ToolCategory = "screen"
	CategoryWindow   ToolCategory = "window"
	CategoryDialog   ToolCategory = "dialog"
	CategoryUtility  ToolCategory = "utility"
)

// handlerFunc is the internal handler shape. Handlers never return a Go
// error: every failure is folded into the result so nothing escapes to the
// transport layer uncaught.
type handlerFunc func(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult

// ToolConfig defines the configuration for a tool.
type ToolConfig struct {
	Name        string
	Description string
	Category    ToolCategory

	// Input schema parameters; types and descriptions come from the
	// shared parameter tables.
	RequiredParams []string
	OptionalParams []string

	// Mutating tools inject input or otherwise change ambient screen state;
	// they get the failsafe check and the post-action settle pause.
	Mutating bool

	Handler handlerFunc
}

// ToolDependencies holds everything a handler might need.
type ToolDependencies struct {
	Driver   automation.Driver
	Prompter dialogs.Prompter
	Logger   *slog.Logger
	Config   *config.Config

	// gate serializes all tool dispatch; the screen and input devices are a
	// single shared physical resource.
	gate *sync.Mutex
}

// ToolResult is the JSON payload embedded in every response.
type ToolResult struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Code    errors.Code    `json:"code,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// createToolResult creates a standardized success result.
func createToolResult(data map[string]any) mcp.CallToolResult {
	return mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: marshalResult(ToolResult{Success: true, Data: data}),
			},
		},
	}
}

// createErrorResult creates a standardized error result carrying the
// taxonomy code.
func createErrorResult(err error) mcp.CallToolResult {
	return mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: marshalResult(ToolResult{Success: false, Error: err.Error(), Code: errors.CodeOf(err)}),
			},
		},
	}
}

// createImageResult creates a success result with an attached PNG payload.
func createImageResult(data map[string]any, pngBase64 string) mcp.CallToolResult {
	return mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: marshalResult(ToolResult{Success: true, Data: data}),
			},
			mcp.ImageContent{
				Type:     "image",
				Data:     pngBase64,
				MIMEType: "image/png",
			},
		},
	}
}

func marshalResult(result ToolResult) string {
	out, err := json.MarshalToString(result)
	if err != nil {
		return `{"success":false,"error":"result serialization failed","code":"INTERNAL"}`
	}
	return out
}

// All tool configurations in a single table.
var toolConfigs = []ToolConfig{
	// Mouse control
	{
		Name:           "move_mouse",
		Description:    "Move the mouse cursor to absolute screen coordinates, optionally taking a duration for human-like motion",
		Category:       CategoryMouse,
		RequiredParams: []string{"x", "y"},
		OptionalParams: []string{"duration"},
		Mutating:       true,
		Handler:        handleMoveMouse,
	},
	{
		Name:           "move_mouse_relative",
		Description:    "Move the mouse cursor by a relative offset from its current position",
		Category:       CategoryMouse,
		RequiredParams: []string{"dx", "dy"},
		OptionalParams: []string{"duration"},
		Mutating:       true,
		Handler:        handleMoveMouseRelative,
	},
	{
		Name:           "click",
		Description:    "Click at the current position or at explicit coordinates",
		Category:       CategoryMouse,
		OptionalParams: []string{"x", "y", "clicks", "interval", "button"},
		Mutating:       true,
		Handler:        handleClick,
	},
	{
		Name:           "double_click",
		Description:    "Double-click at the current position or at explicit coordinates",
		Category:       CategoryMouse,
		OptionalParams: []string{"x", "y", "button"},
		Mutating:       true,
		Handler:        handleDoubleClick,
	},
	{
		Name:           "right_click",
		Description:    "Right-click at the current position or at explicit coordinates",
		Category:       CategoryMouse,
		OptionalParams: []string{"x", "y"},
		Mutating:       true,
		Handler:        handleRightClick,
	},
	{
		Name:           "drag_to",
		Description:    "Drag from the current position to absolute coordinates while holding a button",
		Category:       CategoryMouse,
		RequiredParams: []string{"x", "y"},
		OptionalParams: []string{"duration", "button"},
		Mutating:       true,
		Handler:        handleDragTo,
	},
	{
		Name:           "drag_relative",
		Description:    "Drag by a relative offset from the current position while holding a button",
		Category:       CategoryMouse,
		RequiredParams: []string{"dx", "dy"},
		OptionalParams: []string{"duration", "button"},
		Mutating:       true,
		Handler:        handleDragRelative,
	},
	{
		Name:           "scroll",
		Description:    "Scroll the mouse wheel, positive clicks up and negative down, optionally at given coordinates",
		Category:       CategoryMouse,
		RequiredParams: []string{"clicks"},
		OptionalParams: []string{"x", "y"},
		Mutating:       true,
		Handler:        handleScroll,
	},
	{
		Name:        "get_mouse_position",
		Description: "Get the current mouse cursor position",
		Category:    CategoryMouse,
		Handler:     handleGetMousePosition,
	},

	// Keyboard input
	{
		Name:           "type_text",
		Description:    "Type literal text, optionally pausing between keystrokes",
		Category:       CategoryKeyboard,
		RequiredParams: []string{"text"},
		OptionalParams: []string{"interval"},
		Mutating:       true,
		Handler:        handleTypeText,
	},
	{
		Name:           "press_key",
		Description:    "Press and release a single key, e.g. 'enter', 'esc', 'f1', 'a'",
		Category:       CategoryKeyboard,
		RequiredParams: []string{"key"},
		Mutating:       true,
		Handler:        handlePressKey,
	},
	{
		Name:           "key_down",
		Description:    "Hold a key down until a matching key_up",
		Category:       CategoryKeyboard,
		RequiredParams: []string{"key"},
		Mutating:       true,
		Handler:        handleKeyDown,
	},
	{
		Name:           "key_up",
		Description:    "Release a held key",
		Category:       CategoryKeyboard,
		RequiredParams: []string{"key"},
		Mutating:       true,
		Handler:        handleKeyUp,
	},
	{
		Name:           "hotkey",
		Description:    "Press a key combination, e.g. ['ctrl', 'c']",
		Category:       CategoryKeyboard,
		RequiredParams: []string{"keys"},
		Mutating:       true,
		Handler:        handleHotkey,
	},

	// Screen capture
	{
		Name:           "screenshot",
		Description:    "Capture the screen or a region; returns an inline PNG unless a filename is given",
		Category:       CategoryScreen,
		OptionalParams: []string{"filename", "region"},
		Handler:        handleScreenshot,
	},
	{
		Name:           "locate_on_screen",
		Description:    "Find a template image on the screen and return its bounding box",
		Category:       CategoryScreen,
		RequiredParams: []string{"image_path"},
		OptionalParams: []string{"region", "confidence"},
		Handler:        handleLocateOnScreen,
	},
	{
		Name:           "locate_center_on_screen",
		Description:    "Find a template image on the screen and return its center point",
		Category:       CategoryScreen,
		RequiredParams: []string{"image_path"},
		OptionalParams: []string{"region", "confidence"},
		Handler:        handleLocateCenterOnScreen,
	},
	{
		Name:           "get_pixel_color",
		Description:    "Read the RGB color of a single screen pixel",
		Category:       CategoryScreen,
		RequiredParams: []string{"x", "y"},
		Handler:        handleGetPixelColor,
	},
	{
		Name:           "pixel_matches_color",
		Description:    "Check whether a screen pixel matches an expected color within a tolerance",
		Category:       CategoryScreen,
		RequiredParams: []string{"x", "y", "color"},
		OptionalParams: []string{"tolerance"},
		Handler:        handlePixelMatchesColor,
	},

	// Window queries
	{
		Name:        "get_screen_size",
		Description: "Get the primary screen dimensions in pixels",
		Category:    CategoryWindow,
		Handler:     handleGetScreenSize,
	},
	{
		Name:        "get_active_window_title",
		Description: "Get the title of the currently focused window",
		Category:    CategoryWindow,
		Handler:     handleGetActiveWindowTitle,
	},
	{
		Name:        "get_all_window_titles",
		Description: "List the titles of all visible windows",
		Category:    CategoryWindow,
		Handler:     handleGetAllWindowTitles,
	},
	{
		Name:           "get_windows_with_title",
		Description:    "Find windows whose titles contain the given text",
		Category:       CategoryWindow,
		RequiredParams: []string{"title_fragment"},
		Handler:        handleGetWindowsWithTitle,
	},

	// User dialogs
	{
		Name:           "alert",
		Description:    "Show a blocking alert dialog",
		Category:       CategoryDialog,
		RequiredParams: []string{"message"},
		OptionalParams: []string{"title"},
		Handler:        handleAlert,
	},
	{
		Name:           "confirm",
		Description:    "Show a confirmation dialog with OK/Cancel or custom options",
		Category:       CategoryDialog,
		RequiredParams: []string{"message"},
		OptionalParams: []string{"title", "options"},
		Handler:        handleConfirm,
	},
	{
		Name:           "prompt",
		Description:    "Show a text input dialog",
		Category:       CategoryDialog,
		RequiredParams: []string{"message"},
		OptionalParams: []string{"title", "default"},
		Handler:        handlePrompt,
	},
	{
		Name:           "password",
		Description:    "Show a masked input dialog; the entered secret is never returned",
		Category:       CategoryDialog,
		RequiredParams: []string{"message"},
		OptionalParams: []string{"title"},
		Handler:        handlePassword,
	},

	// Utilities
	{
		Name:           "countdown",
		Description:    "Block for the given number of seconds before answering",
		Category:       CategoryUtility,
		RequiredParams: []string{"seconds"},
		Handler:        handleCountdown,
	},
	{
		Name:           "display_mouse_position",
		Description:    "Sample and report the mouse cursor position once per second for the given duration",
		Category:       CategoryUtility,
		OptionalParams: []string{"seconds"},
		Handler:        handleDisplayMousePosition,
	},
	{
		Name:        "fail_safe_check",
		Description: "Report whether the move-to-corner failsafe is enabled",
		Category:    CategoryUtility,
		Handler:     handleFailSafeCheck,
	},
}

// GetToolConfigs returns all tool configurations.
func GetToolConfigs() []ToolConfig {
	return toolConfigs
}

// GetToolConfig returns a specific tool configuration by name.
func GetToolConfig(name string) (*ToolConfig, bool) {
	for i := range toolConfigs {
		if toolConfigs[i].Name == name {
			return &toolConfigs[i], true
		}
	}
	return nil, false
}
