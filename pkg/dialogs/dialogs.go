// Package dialogs wraps native message boxes behind an injectable interface
// so the dialog tools can run against a fake in tests.
package dialogs

import (
	stderrors "errors"

	"github.com/ncruces/zenity"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/errors"
)

// Prompter shows blocking user dialogs. Every call suspends the handling
// goroutine until the user answers or dismisses the dialog.
type Prompter interface {
	// Alert shows a message with a single acknowledge button.
	Alert(message, title string) error
	// Confirm asks a question; options, when non-empty, replace the default
	// OK/Cancel pair. Returns the chosen option, or "" on dismissal.
	Confirm(message, title string, options []string) (string, error)
	// Prompt asks for a line of text, pre-filled with defaultText.
	Prompt(message, title, defaultText string) (string, bool, error)
	// Password asks for a masked secret. Returns whether one was entered;
	// callers must never log or return the secret itself.
	Password(message, title string) (bool, error)
}

// ZenityPrompter renders dialogs with the platform's native toolkit.
type ZenityPrompter struct{}

func NewZenityPrompter() *ZenityPrompter { return &ZenityPrompter{} }

func (z *ZenityPrompter) Alert(message, title string) error {
	if err := zenity.Info(message, zenity.Title(title)); err != nil {
		return errors.New(errors.CodeDialogFailed, "dialogs", "alert dialog failed", err)
	}
	return nil
}

func (z *ZenityPrompter) Confirm(message, title string, options []string) (string, error) {
	if len(options) > 0 {
		choice, err := zenity.List(message, options, zenity.Title(title))
		if stderrors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		if err != nil {
			return "", errors.New(errors.CodeDialogFailed, "dialogs", "confirm dialog failed", err)
		}
		return choice, nil
	}

	err := zenity.Question(message, zenity.Title(title), zenity.OKLabel("OK"), zenity.CancelLabel("Cancel"))
	if stderrors.Is(err, zenity.ErrCanceled) {
		return "Cancel", nil
	}
	if err != nil {
		return "", errors.New(errors.CodeDialogFailed, "dialogs", "confirm dialog failed", err)
	}
	return "OK", nil
}

func (z *ZenityPrompter) Prompt(message, title, defaultText string) (string, bool, error) {
	text, err := zenity.Entry(message, zenity.Title(title), zenity.EntryText(defaultText))
	if stderrors.Is(err, zenity.ErrCanceled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.New(errors.CodeDialogFailed, "dialogs", "prompt dialog failed", err)
	}
	return text, true, nil
}

func (z *ZenityPrompter) Password(message, title string) (bool, error) {
	secret, err := zenity.Entry(message, zenity.Title(title), zenity.HideText())
	if stderrors.Is(err, zenity.ErrCanceled) {
		return false, nil
	}
	if err != nil {
		return false, errors.New(errors.CodeDialogFailed, "dialogs", "password dialog failed", err)
	}
	return secret != "", nil
}
