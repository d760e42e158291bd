package dialogs

// FakePrompter answers dialogs from canned values, for tests.
type FakePrompter struct {
	AlertErr      error
	ConfirmAnswer string
	PromptAnswer  string
	PromptOK      bool
	PasswordSet   bool
	Err           error

	AlertCalls   []string
	ConfirmCalls []string
	PromptCalls  []string
}

func (f *FakePrompter) Alert(message, title string) error {
	f.AlertCalls = append(f.AlertCalls, message)
	if f.AlertErr != nil {
		return f.AlertErr
	}
	return f.Err
}

func (f *FakePrompter) Confirm(message, title string, options []string) (string, error) {
	f.ConfirmCalls = append(f.ConfirmCalls, message)
	return f.ConfirmAnswer, f.Err
}

func (f *FakePrompter) Prompt(message, title, defaultText string) (string, bool, error) {
	f.PromptCalls = append(f.PromptCalls, message)
	return f.PromptAnswer, f.PromptOK, f.Err
}

func (f *FakePrompter) Password(message, title string) (bool, error) {
	return f.PasswordSet, f.Err
}
