package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/skillprompt/internal/compose"
	"github.com/alexanderramin/skillprompt/internal/consistency"
	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/retrieval"
	"github.com/alexanderramin/skillprompt/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// tool pairs a definition with its handler.
type tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

func newTools(deps Deps) []tool {
	return []tool{
		&parseIntentTool{pipeline: deps.Pipeline},
		&queryElementsTool{pipeline: deps.Pipeline},
		&checkConsistencyTool{pipeline: deps.Pipeline},
		&composePromptTool{pipeline: deps.Pipeline, keywordsLimit: deps.KeywordsLimit},
		&libraryStatsTool{stats: deps.Stats},
		&queryByFieldTool{pipeline: deps.Pipeline},
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := domain.MarshalPretty(v)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}

func parseError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("JSON parse error: " + err.Error())
}

// --- parse_user_intent ---

type parseIntentTool struct {
	pipeline service.PipelineService
}

func (t *parseIntentTool) Definition() mcp.Tool {
	return mcp.NewTool("parse_user_intent",
		mcp.WithDescription("解析用户的自然语言描述，提取结构化的生成意图（主体、风格、光影、时代等）。工作流第一步。"),
		mcp.WithString("user_request",
			mcp.Required(),
			mcp.Description("用户的描述，如\"电影级的亚洲女性，张艺谋风格\""),
		),
		mcp.WithString("domain",
			mcp.Description("领域提示 (portrait/art/design/product/video/auto)"),
			mcp.DefaultString(string(domain.DomainAuto)),
		),
	)
}

func (t *parseIntentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("user_request", "")
	hint := req.GetString("domain", string(domain.DomainAuto))
	return jsonResult(t.pipeline.ParseIntent(ctx, text, domain.Domain(hint)))
}

// --- query_prompt_elements ---

type queryElementsTool struct {
	pipeline service.PipelineService
}

func (t *queryElementsTool) Definition() mcp.Tool {
	return mcp.NewTool("query_prompt_elements",
		mcp.WithDescription("从元素库查询匹配的候选元素，按关键词相关度排序。工作流第二步。"),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("领域 (portrait/art/design/product/video/common)"),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("类别，如 makeup_styles、lighting_techniques、clothing_styles"),
		),
		mcp.WithString("keywords",
			mcp.Description("搜索关键词，用逗号分隔，如\"traditional,chinese\""),
			mcp.DefaultString(""),
		),
		mcp.WithNumber("limit",
			mcp.Description("返回数量上限"),
			mcp.DefaultNumber(retrieval.DefaultLimit),
		),
	)
}

func (t *queryElementsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	candidates, err := t.pipeline.QueryElements(ctx, service.QueryRequest{
		Domain:   domain.Domain(strings.TrimSpace(req.GetString("domain", ""))),
		Category: strings.TrimSpace(req.GetString("category", "")),
		Keywords: retrieval.SplitKeywords(req.GetString("keywords", "")),
		Limit:    req.GetInt("limit", retrieval.DefaultLimit),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(candidates)
}

// --- query_elements_by_field ---

type queryByFieldTool struct {
	pipeline service.PipelineService
}

func (t *queryByFieldTool) Definition() mcp.Tool {
	return mcp.NewTool("query_elements_by_field",
		mcp.WithDescription("按框架字段名查询候选元素，如 lighting.lighting_type 或 styling.makeup。"),
		mcp.WithString("field_name",
			mcp.Required(),
			mcp.Description("框架字段名，如 \"styling.makeup\""),
		),
		mcp.WithString("keywords",
			mcp.Description("搜索关键词，用逗号分隔"),
			mcp.DefaultString(""),
		),
		mcp.WithString("domain",
			mcp.Description("领域，默认 portrait"),
			mcp.DefaultString(string(domain.DomainPortrait)),
		),
		mcp.WithNumber("limit",
			mcp.Description("返回数量上限"),
			mcp.DefaultNumber(retrieval.DefaultLimit),
		),
	)
}

func (t *queryByFieldTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	candidates, err := t.pipeline.QueryByField(ctx, service.FieldQueryRequest{
		Field:    strings.TrimSpace(req.GetString("field_name", "")),
		Keywords: retrieval.SplitKeywords(req.GetString("keywords", "")),
		Domain:   domain.Domain(strings.TrimSpace(req.GetString("domain", string(domain.DomainPortrait)))),
		Limit:    req.GetInt("limit", retrieval.DefaultLimit),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(candidates)
}

// --- check_element_consistency ---

type checkConsistencyTool struct {
	pipeline service.PipelineService
}

func (t *checkConsistencyTool) Definition() mcp.Tool {
	return mcp.NewTool("check_element_consistency",
		mcp.WithDescription("检查元素组合与意图的一致性，识别人种、时代等冲突并给出修正建议。工作流第三步。"),
		mcp.WithString("elements_json",
			mcp.Required(),
			mcp.Description("已选择的元素列表，JSON 数组"),
		),
		mcp.WithString("intent_json",
			mcp.Required(),
			mcp.Description("parse_user_intent 返回的意图，JSON 对象"),
		),
	)
}

func (t *checkConsistencyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	elements, err := domain.ParseSelectedElements(req.GetString("elements_json", ""))
	if err != nil {
		return parseError(err), nil
	}
	in, err := domain.ParseIntent(req.GetString("intent_json", ""))
	if err != nil {
		return parseError(err), nil
	}
	report := t.pipeline.CheckConsistency(ctx, elements, in)
	return mcp.NewToolResultText(consistency.FormatReport(report)), nil
}

// --- compose_final_prompt ---

type composePromptTool struct {
	pipeline      service.PipelineService
	keywordsLimit int
}

func (t *composePromptTool) Definition() mcp.Tool {
	return mcp.NewTool("compose_final_prompt",
		mcp.WithDescription("将选中的元素组合成完整的英文图像提示词。工作流最后一步。"),
		mcp.WithString("elements_json",
			mcp.Required(),
			mcp.Description("元素列表，JSON 数组"),
		),
		mcp.WithString("mode",
			mcp.Description("组合模式 (simple/auto/detailed)"),
			mcp.DefaultString(string(domain.ModeAuto)),
		),
		mcp.WithString("subject_desc",
			mcp.Description("可选的主体描述覆盖，如\"A young woman\""),
			mcp.DefaultString(""),
		),
	)
}

func (t *composePromptTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	elements, err := domain.ParseSelectedElements(req.GetString("elements_json", ""))
	if err != nil {
		return parseError(err), nil
	}
	prompt := t.pipeline.ComposePrompt(ctx, service.ComposeRequest{
		Elements: elements,
		Options: compose.Options{
			Mode:          domain.ParseComposeMode(req.GetString("mode", string(domain.ModeAuto))),
			KeywordsLimit: t.keywordsLimit,
			SubjectDesc:   req.GetString("subject_desc", ""),
		},
	})
	return mcp.NewToolResultText(compose.FormatPromptOutput(prompt, len(elements))), nil
}

// --- get_library_stats ---

type libraryStatsTool struct {
	stats service.StatsService
}

func (t *libraryStatsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_library_stats",
		mcp.WithDescription("获取元素库统计信息：总元素数和各领域分布。"),
		mcp.WithString("domain",
			mcp.Description("特定领域，留空返回全部统计"),
			mcp.DefaultString(""),
		),
	)
}

func (t *libraryStatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := t.stats.LibraryStats(ctx, strings.TrimSpace(req.GetString("domain", "")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(stats)
}
