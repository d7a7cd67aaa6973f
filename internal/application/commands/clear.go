package commands

import (
	"context"

	"crossprobe/internal/application"
)

// ClearCommand drops any active canvas highlight and returns the
// feedback token to its default style.
type ClearCommand struct {
	highlighter *application.Highlighter
	feedback    *application.Feedback
}

// NewClearCommand creates a new ClearCommand
func NewClearCommand(highlighter *application.Highlighter, feedback *application.Feedback) *ClearCommand {
	return &ClearCommand{highlighter: highlighter, feedback: feedback}
}

// Execute clears canvas and feedback state. Idempotent.
func (c *ClearCommand) Execute(ctx context.Context) error {
	c.highlighter.Clear()
	if c.feedback != nil {
		c.feedback.Reset()
	}
	return nil
}
