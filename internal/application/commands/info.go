package commands

import (
	"context"
	"fmt"
	"strings"

	"crossprobe/internal/application"
	"crossprobe/internal/domain"
	"crossprobe/internal/ports"
)

// InfoCommand builds a markdown report for a component by designator.
// Requires a board that implements ports.ComponentDetailer.
type InfoCommand struct {
	board ports.Board
	cache *application.EntityCache

	Designator string
}

// NewInfoCommand creates a new InfoCommand
func NewInfoCommand(board ports.Board, cache *application.EntityCache, designator string) *InfoCommand {
	return &InfoCommand{board: board, cache: cache, Designator: designator}
}

// Execute resolves the designator and formats its details.
func (c *InfoCommand) Execute(ctx context.Context) (string, error) {
	detailer, ok := c.board.(ports.ComponentDetailer)
	if !ok {
		return "", fmt.Errorf("component details: %w", ports.ErrUnsupported)
	}

	rec, ok := c.cache.Lookup(domain.KindComponent, c.Designator)
	if !ok {
		return "", fmt.Errorf("component %s: %w", c.Designator, application.ErrNotFound)
	}

	info, err := detailer.ComponentInfo(rec.Handle)
	if err != nil {
		return "", fmt.Errorf("component details for %s: %w", c.Designator, err)
	}

	return FormatComponentInfo(info), nil
}

// FormatComponentInfo renders component details as markdown.
func FormatComponentInfo(info *domain.ComponentInfo) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "### %s\n", info.Reference)
	fmt.Fprintf(&sb, "- **Value:** %s\n", info.Value)
	fmt.Fprintf(&sb, "- **Footprint:** %s\n", info.Footprint)
	fmt.Fprintf(&sb, "- **Layer:** %s\n", info.Layer)
	fmt.Fprintf(&sb, "- **Position:** (%.2fmm, %.2fmm)\n", info.X, info.Y)
	fmt.Fprintf(&sb, "- **Rotation:** %.1f°\n", info.Rotation)

	if len(info.Nets) > 0 {
		shown := info.Nets
		if len(shown) > 5 {
			shown = shown[:5]
		}
		fmt.Fprintf(&sb, "- **Nets:** %s\n", strings.Join(shown, ", "))
		if extra := len(info.Nets) - len(shown); extra > 0 {
			fmt.Fprintf(&sb, "  *(+%d more)*\n", extra)
		}
	}

	return sb.String()
}
