package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"crossprobe/internal/adapters/board"
	mcpadapter "crossprobe/internal/adapters/mcp"
	"crossprobe/internal/adapters/snapshot"
	"crossprobe/internal/application"
	"crossprobe/internal/config"
)

func main() {
	boardFlag := flag.String("board", config.BoardPath(), "path to the design snapshot")
	flag.Parse()

	snap, err := snapshot.Open(*boardFlag)
	if err != nil {
		log.Fatalf("crossprobe-mcp: %v", err)
	}
	defer snap.Close()

	session := application.NewSession(
		board.Wrap(snap), config.ScanConfig(), config.Capabilities(), nil, config.SettleDelay())
	defer session.Close()

	if _, err := session.Cache.Refresh(); err != nil {
		// Tools still work against an empty cache; report and serve.
		log.Printf("crossprobe-mcp: initial refresh: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"crossprobe-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterQueryTools(mcpServer, session)
	mcpadapter.RegisterProbeTools(mcpServer, session)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("crossprobe-mcp: %v", err)
	}
}
