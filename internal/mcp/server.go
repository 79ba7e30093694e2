// Package mcp provides a Model Context Protocol server for Scorch.
//
// It exposes the extraction engine as MCP tools (extract, detect,
// normalize) and the run catalog as MCP resources, over stdio transport
// for editor and agent integrations.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/content"
	"github.com/Cortezjohannes/scorch-ai-sub008/internal/extract"
	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
	"github.com/Cortezjohannes/scorch-ai-sub008/internal/store"
)

// ServerConfig holds configuration for the MCP server.
type ServerConfig struct {
	Engine   *extract.Engine
	Governor *extract.Governor
	Store    *store.Store // optional; nil disables the run catalog
	Version  string
}

// dbMu serializes tool calls that touch the database. The mcp-go
// library dispatches handlers concurrently via goroutines, and SQLite
// supports only one writer at a time.
var dbMu sync.Mutex

// NewServer creates a configured MCP server with all Scorch tools and
// resources.
func NewServer(cfg ServerConfig) *server.MCPServer {
	ver := cfg.Version
	if ver == "" {
		ver = "dev"
	}
	engine := cfg.Engine
	if engine == nil {
		engine = extract.NewEngine()
	}
	governor := cfg.Governor
	if governor == nil {
		governor = extract.NewGovernor(extract.DefaultGovernorConfig())
	}

	s := server.NewMCPServer(
		"Scorch",
		ver,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(true, false),
	)

	registerExtractTool(s, engine, governor, cfg.Store)
	registerDetectTool(s)
	registerNormalizeTool(s)

	if cfg.Store != nil {
		registerRecentRunsResource(s, cfg.Store)
		registerStatsResource(s, cfg.Store)
	}

	return s
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func registerExtractTool(s *server.MCPServer, engine *extract.Engine, governor *extract.Governor, st *store.Store) {
	tool := mcp.NewTool("scorch_extract",
		mcp.WithDescription("Extract typed production records (script elements, storyboard shots, locations, props, wardrobe) from raw generated text. Never fails on malformed input; empty input yields an empty result."),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Content domain to extract"),
			mcp.Enum("script", "storyboard", "location", "props"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Raw text to extract records from"),
		),
		mcp.WithBoolean("save",
			mcp.Description("Catalog this run in the database (default: true when a database is configured)"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		domainStr, err := req.RequireString("domain")
		if err != nil {
			return mcp.NewToolResultError("domain is required"), nil
		}
		domain, err := records.ParseDomain(domainStr)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := req.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError("text is required"), nil
		}

		res := governor.Apply(engine.Extract(domain, text))

		payload := map[string]any{
			"result": res,
			"count":  res.Count(),
		}

		if st != nil && req.GetBool("save", true) {
			dbMu.Lock()
			run, err := st.SaveRun(ctx, text, res)
			dbMu.Unlock()
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("cataloging run: %v", err)), nil
			}
			payload["run_id"] = run.ID
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})
}

func registerDetectTool(s *server.MCPServer) {
	tool := mcp.NewTool("scorch_detect",
		mcp.WithDescription("Normalize text and report its structure signature: embedded JSON, markdown, numbered or bulleted items, headers, screenplay headings, character cues."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Raw text to analyze"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := req.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError("text is required"), nil
		}

		sig := content.Detect(content.Normalize(text))
		data, err := json.MarshalIndent(sig, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding signature: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})
}

func registerNormalizeTool(s *server.MCPServer) {
	tool := mcp.NewTool("scorch_normalize",
		mcp.WithDescription("Strip conversational preambles, markdown emphasis, and code-fence delimiters from raw generated text. Idempotent."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Raw text to normalize"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := req.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError("text is required"), nil
		}
		return mcp.NewToolResultText(content.Normalize(text)), nil
	})
}
