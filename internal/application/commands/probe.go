package commands

import (
	"context"

	"crossprobe/internal/application"
	"crossprobe/internal/domain"
)

// ProbeResult is the outcome of one click: the token under the offset
// (nil on a scan miss), its resolution, and what the canvas did.
type ProbeResult struct {
	Token      *domain.Token
	Resolution domain.Resolution
	Outcome    domain.HighlightOutcome
	State      domain.FeedbackState
}

// ProbeCommand runs the full click pipeline for one text offset:
// scan, resolve, highlight, feedback. One uninterruptible unit of work
// per click; a scan miss is a normal outcome, not an error.
type ProbeCommand struct {
	scanCfg     domain.ScanConfig
	resolver    *application.Resolver
	highlighter *application.Highlighter
	feedback    *application.Feedback

	Text   string
	Offset int
}

// NewProbeCommand creates a new ProbeCommand
func NewProbeCommand(
	scanCfg domain.ScanConfig,
	resolver *application.Resolver,
	highlighter *application.Highlighter,
	feedback *application.Feedback,
	text string,
	offset int,
) *ProbeCommand {
	return &ProbeCommand{
		scanCfg:     scanCfg,
		resolver:    resolver,
		highlighter: highlighter,
		feedback:    feedback,
		Text:        text,
		Offset:      offset,
	}
}

// Execute runs the probe and returns its result.
func (c *ProbeCommand) Execute(ctx context.Context) (*ProbeResult, error) {
	token, ok := domain.Scan(c.scanCfg, c.Text, c.Offset)
	if !ok {
		// Clicking outside any token still dismisses the previous one.
		c.feedback.Reset()
		return &ProbeResult{State: c.feedback.State()}, nil
	}

	c.feedback.Begin(token.Span)

	res := c.resolver.Resolve(token)

	outcome := domain.HighlightUnavailable
	if res.Found {
		outcome = c.highlighter.Highlight(res.Record)
	}

	// A found entity the canvas cannot show reads as not-found to the
	// user; only styling ever reports failures here.
	c.feedback.Resolve(res.Found && outcome != domain.HighlightUnavailable)

	return &ProbeResult{
		Token:      &token,
		Resolution: res,
		Outcome:    outcome,
		State:      c.feedback.State(),
	}, nil
}
