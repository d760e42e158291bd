package errors

// Taxonomy codes surfaced to tool callers.
const (
	// CodeOutOfBounds: a coordinate fell outside [0,w) x [0,h).
	CodeOutOfBounds Code = "OUT_OF_BOUNDS"
	// CodeInvalidButton: a mouse button name outside {left, right, middle}.
	CodeInvalidButton Code = "INVALID_BUTTON"
	// CodeUnknownKey: a key name missing from the key table.
	CodeUnknownKey Code = "UNKNOWN_KEY"
	// CodeCaptureFailed: the screen capture backend errored.
	CodeCaptureFailed Code = "CAPTURE_FAILED"
	// CodeNotFound: a template image was not located on screen.
	CodeNotFound Code = "NOT_FOUND"
	// CodeDriverUnavailable: the automation backend could not initialize,
	// e.g. no display attached.
	CodeDriverUnavailable Code = "DRIVER_UNAVAILABLE"
	// CodeInvalidArgument: a request parameter failed validation before any
	// driver call was made.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeFailsafeTriggered: the cursor sat in the abort corner while the
	// failsafe was enabled.
	CodeFailsafeTriggered Code = "FAILSAFE_TRIGGERED"
	// CodeDialogFailed: the native dialog backend errored.
	CodeDialogFailed Code = "DIALOG_FAILED"
	// CodeInternal: anything that escaped classification.
	CodeInternal Code = "INTERNAL"
)

// codeMetadata maps a code to its default severity and retryability.
func codeMetadata(code Code) (Severity, bool) {
	switch code {
	case CodeOutOfBounds, CodeInvalidButton, CodeUnknownKey, CodeInvalidArgument:
		return SeverityLow, false
	case CodeNotFound:
		return SeverityLow, true
	case CodeCaptureFailed, CodeDialogFailed:
		return SeverityMedium, true
	case CodeFailsafeTriggered:
		return SeverityHigh, false
	case CodeDriverUnavailable:
		return SeverityCritical, false
	default:
		return SeverityMedium, false
	}
}
