// Package dialog implements the operator wizard on top of the prompt
// abstraction: consent gates, migration overrides and secret resolution.
package dialog

import (
	"fmt"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/prompt"
)

type Dialogs struct {
	prompt.Prompt
}

func New(prompt prompt.Prompt) *Dialogs {
	return &Dialogs{Prompt: prompt}
}

// ValidationError means an operator-supplied value failed local
// validation and no interactive retry is possible.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, a ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, a...)}
}
