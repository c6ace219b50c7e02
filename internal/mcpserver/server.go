// Package mcpserver exposes the pipeline as MCP tools, workflow prompts and a
// stats resource. Wiring only; behaviour lives in the service layer.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/alexanderramin/skillprompt/internal/prompts"
	"github.com/alexanderramin/skillprompt/internal/service"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName   = "SkillPromptGenerator"
	instructions = "智能AI图像提示词生成器 - 基于1140+元素的专业提示词生成系统"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Deps are the services the server delegates to.
type Deps struct {
	Pipeline      service.PipelineService
	Stats         service.StatsService
	Prompts       *prompts.Builder
	KeywordsLimit int
}

// New creates the MCP server with every tool, prompt and resource registered.
func New(deps Deps) (*server.MCPServer, error) {
	if deps.Pipeline == nil || deps.Stats == nil {
		return nil, fmt.Errorf("mcp server: pipeline and stats services are required")
	}
	if deps.Prompts == nil {
		b, err := prompts.NewBuilder()
		if err != nil {
			return nil, fmt.Errorf("creating prompt builder: %w", err)
		}
		deps.Prompts = b
	}

	s := server.NewMCPServer(
		serverName,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	for _, t := range newTools(deps) {
		s.AddTool(t.Definition(), t.Handle)
	}

	for _, sop := range prompts.SOPs {
		p := newSOPPrompt(sop, deps.Prompts)
		s.AddPrompt(p.Definition(), p.Handle)
	}

	stats := newStatsResource(deps.Stats)
	s.AddResource(stats.Definition(), stats.Handle)

	return s, nil
}

// ServeStdio runs s over in/out until the client disconnects or ctx is
// cancelled. errLog receives transport errors; stdout must stay clean.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, errLog *log.Logger) error {
	stdio := server.NewStdioServer(s)
	if errLog != nil {
		stdio.SetErrorLogger(errLog)
	}
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
