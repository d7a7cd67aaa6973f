package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"crossprobe/internal/application"
	"crossprobe/internal/application/commands"
	"crossprobe/internal/domain"
)

// RegisterProbeTools adds the cross-probing action tools to the MCP server.
func RegisterProbeTools(s *server.MCPServer, session *application.Session) {
	s.AddTool(probeTool(), probeHandler(session))
	s.AddTool(highlightTool(), highlightHandler(session))
	s.AddTool(refreshTool(), refreshHandler(session))
	s.AddTool(clearTool(), clearHandler(session))
}

// --- probe ---

func probeTool() mcp.Tool {
	return mcp.NewTool("probe",
		mcp.WithDescription("Cross-probe the design reference at an offset in note text: scan the token, resolve it, and highlight it on the canvas."),
		mcp.WithString("text",
			mcp.Description("Note text containing the reference"),
			mcp.Required(),
		),
		mcp.WithNumber("offset",
			mcp.Description("Zero-based byte offset of the click position"),
			mcp.Required(),
		),
	)
}

func probeHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := req.GetString("text", "")
		if text == "" {
			return toolError(fmt.Errorf("text is required"))
		}
		offset := req.GetInt("offset", -1)
		if offset < 0 {
			return toolError(fmt.Errorf("offset is required"))
		}

		cmd := commands.NewProbeCommand(
			session.ScanCfg, session.Resolver, session.Highlighter, session.Feedback,
			text, offset)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatProbeResult(result)), nil
	}
}

func formatProbeResult(r *commands.ProbeResult) string {
	if r.Token == nil {
		return "No reference at that offset."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "token: %s (%s)\n", r.Token.Name, r.Token.Kind)
	if r.Resolution.Found {
		fmt.Fprintf(&sb, "resolved: %s %s\n", r.Resolution.Kind, r.Resolution.Record.Name)
		fmt.Fprintf(&sb, "highlight: %s\n", r.Outcome)
	} else {
		fmt.Fprintf(&sb, "resolved: %s not found\n", r.Resolution.Kind)
	}
	return sb.String()
}

// --- highlight ---

func highlightTool() mcp.Tool {
	return mcp.NewTool("highlight",
		mcp.WithDescription("Highlight a design entity by name (component or net)."),
		mcp.WithString("name",
			mcp.Description("Canonical entity name (case-sensitive)"),
			mcp.Required(),
		),
		mcp.WithString("kind",
			mcp.Description("Entity kind: component or net. Omit to try component first, then net."),
		),
	)
}

func highlightHandler(session *application.Session) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if name == "" {
			return toolError(fmt.Errorf("name is required"))
		}

		kind := domain.KindUnknown
		switch req.GetString("kind", "") {
		case "component":
			kind = domain.KindComponent
		case "net":
			kind = domain.KindNet
		case "":
		default:
			return toolError(fmt.Errorf("kind must be component or net"))
		}

		res := session.Resolver.Resolve(domain.Token{Name: name, Kind: kind})
		if !res.Found {
			return mcp.NewToolResultText(fmt.Sprintf("%s %s not found", res.Kind, name)), nil
		}

		outcome := session.Highlighter.Highlight(res.Record)
		return mcp.NewToolResultText(fmt.Sprintf("%s %s: %s", res.Kind, name, outcome)), nil
	}
}

// --- refresh ---

func refreshTool() mcp.Tool {
	return mcp.NewTool("refresh",
		mcp.WithDescription("Rebuild the entity cache from the design database."),
	)
}

func refreshHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := commands.NewRefreshCommand(session.Cache).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"generation %d: %d components, %d nets (%s)",
			stats.Generation, stats.Components, stats.Nets, stats.Duration.Round(time.Microsecond))), nil
	}
}

// --- clear ---

func clearTool() mcp.Tool {
	return mcp.NewTool("clear",
		mcp.WithDescription("Clear any active highlight or selection on the canvas."),
	)
}

func clearHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := commands.NewClearCommand(session.Highlighter, session.Feedback).Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText("cleared"), nil
	}
}
