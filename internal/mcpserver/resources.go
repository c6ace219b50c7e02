package mcpserver

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

const statsURI = "elements://stats"

type statsResource struct {
	stats service.StatsService
}

func newStatsResource(stats service.StatsService) *statsResource {
	return &statsResource{stats: stats}
}

func (r *statsResource) Definition() mcp.Resource {
	return mcp.NewResource(statsURI, "元素库统计",
		mcp.WithResourceDescription("元素库总数与各领域元素分布"),
		mcp.WithMIMEType("application/json"),
	)
}

func (r *statsResource) Handle(ctx context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	stats, err := r.stats.LibraryStats(ctx, "")
	if err != nil {
		return nil, err
	}
	text, err := domain.MarshalPretty(stats)
	if err != nil {
		return nil, fmt.Errorf("encoding stats: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: statsURI, MIMEType: "application/json", Text: text},
	}, nil
}
