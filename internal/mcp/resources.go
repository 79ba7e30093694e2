package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/store"
)

const recentRunsLimit = 20

func registerRecentRunsResource(s *server.MCPServer, st *store.Store) {
	resource := mcp.NewResource(
		"scorch://runs/recent",
		"Recent Extraction Runs",
		mcp.WithResourceDescription("The most recent extraction runs with domains, record counts, and source excerpts."),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dbMu.Lock()
		defer dbMu.Unlock()

		runs, err := st.ListRuns(ctx, "", recentRunsLimit)
		if err != nil {
			return nil, fmt.Errorf("listing runs: %w", err)
		}

		type runSummary struct {
			ID          string `json:"id"`
			Domain      string `json:"domain"`
			RecordCount int    `json:"record_count"`
			SourceChars int    `json:"source_chars"`
			CreatedAt   string `json:"created_at"`
		}
		summaries := make([]runSummary, 0, len(runs))
		for _, r := range runs {
			summaries = append(summaries, runSummary{
				ID:          r.ID,
				Domain:      string(r.Domain),
				RecordCount: r.RecordCount,
				SourceChars: r.SourceChars,
				CreatedAt:   r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}

		payload := map[string]any{
			"runs":  summaries,
			"count": len(summaries),
		}
		data, _ := json.MarshalIndent(payload, "", "  ")
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: req.Params.URI, MIMEType: "application/json", Text: string(data)},
		}, nil
	})
}

func registerStatsResource(s *server.MCPServer, st *store.Store) {
	resource := mcp.NewResource(
		"scorch://stats",
		"Catalog Statistics",
		mcp.WithResourceDescription("Run and record totals per domain."),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dbMu.Lock()
		defer dbMu.Unlock()

		stats, err := st.Stats(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading stats: %w", err)
		}
		data, _ := json.MarshalIndent(stats, "", "  ")
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: req.Params.URI, MIMEType: "application/json", Text: string(data)},
		}, nil
	})
}
