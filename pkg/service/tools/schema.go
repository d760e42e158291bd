package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// paramTypes maps parameter names to their JSON-schema types. Parameters
// missing from the table default to string.
var paramTypes = map[string]string{
	"x":              "integer",
	"y":              "integer",
	"dx":             "integer",
	"dy":             "integer",
	"clicks":         "integer",
	"tolerance":      "integer",
	"seconds":        "integer",
	"duration":       "number",
	"interval":       "number",
	"confidence":     "number",
	"region":         "array:integer",
	"keys":           "array:string",
	"options":        "array:string",
	"button":         "string",
	"key":            "string",
	"text":           "string",
	"image_path":     "string",
	"filename":       "string",
	"color":          "string",
	"message":        "string",
	"title":          "string",
	"default":        "string",
	"title_fragment": "string",
}

// paramDescriptions provides human-readable descriptions for parameters.
var paramDescriptions = map[string]string{
	"x":              "X coordinate in pixels from the left screen edge",
	"y":              "Y coordinate in pixels from the top screen edge",
	"dx":             "Horizontal offset in pixels, positive is right",
	"dy":             "Vertical offset in pixels, positive is down",
	"duration":       "Seconds the motion should take, 0 for instant",
	"interval":       "Seconds to pause between repeated inputs",
	"clicks":         "Number of clicks, or scroll clicks where positive scrolls up",
	"button":         "Mouse button: 'left', 'right' or 'middle'",
	"text":           "Text to type literally",
	"key":            "Key name, e.g. 'enter', 'esc', 'space', 'a', 'f1'",
	"keys":           "Keys to press together, e.g. ['ctrl', 'c']",
	"filename":       "File name to save the screenshot under; omit for an inline image",
	"region":         "Screen region as [left, top, width, height]",
	"image_path":     "Path to the template image file to find",
	"confidence":     "Match confidence in (0, 1], default 0.9",
	"color":          "Expected color as '#RRGGBB' or '(R, G, B)'",
	"tolerance":      "Per-channel color tolerance 0-255, default 0",
	"message":        "Message to display",
	"title":          "Dialog title",
	"default":        "Default text for the input field",
	"title_fragment": "Text to search for in window titles",
	"seconds":        "Number of seconds",
}

// BuildToolSchema creates the MCP input schema for a tool.
func BuildToolSchema(config ToolConfig) mcp.ToolInputSchema {
	properties := make(map[string]any)

	for _, param := range config.RequiredParams {
		properties[param] = paramSchema(param)
	}
	for _, param := range config.OptionalParams {
		properties[param] = paramSchema(param)
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   config.RequiredParams,
	}
}

func paramSchema(param string) map[string]any {
	schema := map[string]any{
		"description": paramDescription(param),
	}

	switch paramTypes[param] {
	case "integer":
		schema["type"] = "integer"
	case "number":
		schema["type"] = "number"
	case "boolean":
		schema["type"] = "boolean"
	case "array:integer":
		schema["type"] = "array"
		schema["items"] = map[string]any{"type": "integer"}
	case "array:string":
		schema["type"] = "array"
		schema["items"] = map[string]any{"type": "string"}
	default:
		schema["type"] = "string"
	}

	return schema
}

func paramDescription(param string) string {
	if desc, exists := paramDescriptions[param]; exists {
		return desc
	}
	return fmt.Sprintf("The %s parameter", param)
}
