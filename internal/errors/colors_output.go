package errors

import "github.com/cristianoliveira/tabstrip/internal/colors"

// NewDefaultCLIHandler creates a CLI handler printing through the colors
// package.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(&ColorsOutput{})
}

// ColorsOutput implements ColorOutput on top of the colors package, so
// the console handler honors the global debug and quiet modes.
type ColorsOutput struct{}

var _ ColorOutput = (*ColorsOutput)(nil)

func (o *ColorsOutput) Error(msgs ...string) {
	colors.Error(msgs...)
}

func (o *ColorsOutput) Warning(msgs ...string) {
	colors.Warning(msgs...)
}

func (o *ColorsOutput) Info(msgs ...string) {
	colors.Info(msgs...)
}

func (o *ColorsOutput) Success(msgs ...string) {
	colors.Success(msgs...)
}
