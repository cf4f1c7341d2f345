package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"roadmapio/internal/adapters/memory"
	mcpadapter "roadmapio/internal/adapters/mcp"
	"roadmapio/internal/adapters/sqlite"
	"roadmapio/internal/config"
)

func main() {
	dataFlag := flag.String("data", config.DataPath(), "path to the roadmap database")
	flag.Parse()

	snapshots, err := sqlite.Open(*dataFlag)
	if err != nil {
		log.Fatalf("roadmapio-mcp: %v", err)
	}
	defer snapshots.Close()

	store := memory.NewStore(memory.WithSnapshotStore(snapshots))

	mcpServer := server.NewMCPServer(
		"roadmapio-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("roadmapio-mcp: %v", err)
	}
}
