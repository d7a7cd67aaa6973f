package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"crossprobe/internal/application"
	"crossprobe/internal/application/commands"
	"crossprobe/internal/domain"
)

// RegisterQueryTools adds the read-only probing tools to the MCP server.
func RegisterQueryTools(s *server.MCPServer, session *application.Session) {
	s.AddTool(scanTool(), scanHandler(session))
	s.AddTool(componentsTool(), entitiesHandler(session, domain.KindComponent))
	s.AddTool(netsTool(), entitiesHandler(session, domain.KindNet))
	s.AddTool(infoTool(), infoHandler(session))
}

// --- scan ---

func scanTool() mcp.Tool {
	return mcp.NewTool("scan",
		mcp.WithDescription("Scan note text for design references: [[NET:NAME]]/[[NAME]] brackets, @NAME shorthand, and bare designators like R1 or U3."),
		mcp.WithString("text",
			mcp.Description("Note text to scan"),
			mcp.Required(),
		),
	)
}

func scanHandler(session *application.Session) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := req.GetString("text", "")
		if text == "" {
			return toolError(fmt.Errorf("text is required"))
		}

		tokens := domain.ScanAll(session.ScanCfg, text)
		if len(tokens) == 0 {
			return mcp.NewToolResultText("No references found."), nil
		}

		var sb strings.Builder
		for _, t := range tokens {
			fmt.Fprintf(&sb, "%d-%d  %-9s  %s\n", t.Span.Start, t.Span.End, t.Kind, t.Name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- components / nets ---

func componentsTool() mcp.Tool {
	return mcp.NewTool("components",
		mcp.WithDescription("List all component designators known to the design database."),
	)
}

func netsTool() mcp.Tool {
	return mcp.NewTool("nets",
		mcp.WithDescription("List all net names known to the design database."),
	)
}

func entitiesHandler(session *application.Session, kind domain.EntityKind) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var refs []domain.EntityRef
		var err error
		if kind == domain.KindComponent {
			refs, err = session.Board.ListComponents()
		} else {
			refs, err = session.Board.ListNets()
		}
		if err != nil {
			return toolError(err)
		}
		if len(refs) == 0 {
			return mcp.NewToolResultText("No results."), nil
		}

		var sb strings.Builder
		for _, ref := range refs {
			sb.WriteString(ref.Name)
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- info ---

func infoTool() mcp.Tool {
	return mcp.NewTool("info",
		mcp.WithDescription("Describe a component by designator: value, footprint, layer, position, connected nets."),
		mcp.WithString("designator",
			mcp.Description("Component designator (e.g. R1, U3)"),
			mcp.Required(),
		),
	)
}

func infoHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		designator := req.GetString("designator", "")
		if designator == "" {
			return toolError(fmt.Errorf("designator is required"))
		}

		report, err := commands.NewInfoCommand(session.Board, session.Cache, designator).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(report), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
