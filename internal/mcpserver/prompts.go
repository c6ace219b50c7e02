package mcpserver

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/prompts"
	"github.com/mark3labs/mcp-go/mcp"
)

type sopPrompt struct {
	sop     prompts.SOP
	builder *prompts.Builder
}

func newSOPPrompt(sop prompts.SOP, builder *prompts.Builder) *sopPrompt {
	return &sopPrompt{sop: sop, builder: builder}
}

func (p *sopPrompt) Definition() mcp.Prompt {
	opts := []mcp.PromptOption{mcp.WithPromptDescription(p.sop.Description)}
	for _, arg := range p.sop.Arguments {
		argOpts := []mcp.ArgumentOption{mcp.ArgumentDescription(arg.Description)}
		if arg.Required {
			argOpts = append(argOpts, mcp.RequiredArgument())
		}
		opts = append(opts, mcp.WithArgument(arg.Name, argOpts...))
	}
	return mcp.NewPrompt(p.sop.Name, opts...)
}

func (p *sopPrompt) Handle(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	text, err := p.builder.Render(p.sop.Name, prompts.Data{
		Description: req.Params.Arguments["description"],
		Director:    req.Params.Arguments["director"],
	})
	if err != nil {
		return nil, fmt.Errorf("prompt %s: %w", p.sop.Name, err)
	}
	return mcp.NewGetPromptResult(p.sop.Description, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	}), nil
}
