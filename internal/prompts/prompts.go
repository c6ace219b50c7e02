// Package prompts renders the step-by-step workflow instructions (SOPs) that
// the tool server offers as MCP prompts. Each SOP walks an agent through the
// intent, query, check and compose tools for one kind of image.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templateFS embed.FS

// Argument describes one prompt argument.
type Argument struct {
	Name        string
	Description string
	Required    bool
}

// SOP is a named workflow prompt backed by one embedded template.
type SOP struct {
	Name        string
	Description string
	Template    string
	Arguments   []Argument
}

var descriptionArg = Argument{Name: "description", Description: "图像需求描述", Required: true}

// SOPs lists every workflow prompt in registration order.
var SOPs = []SOP{
	{
		Name:        "portrait_prompt_generator",
		Description: "人像摄影提示词生成工作流：意图解析、元素查询、一致性检查、提示词组合",
		Template:    "portrait.md",
		Arguments:   []Argument{descriptionArg},
	},
	{
		Name:        "cinematic_portrait_generator",
		Description: "电影级人像提示词生成工作流，支持张艺谋、徐克、王家卫等导演风格",
		Template:    "cinematic.md",
		Arguments: []Argument{
			descriptionArg,
			{Name: "director", Description: "导演风格 (zhang_yimou/tsui_hark/wong_kar_wai)"},
		},
	},
	{
		Name:        "art_prompt_generator",
		Description: "艺术风格提示词生成工作流，支持水墨画、油画、水彩等",
		Template:    "art.md",
		Arguments:   []Argument{descriptionArg},
	},
	{
		Name:        "ink_wash_generator",
		Description: "中国水墨画提示词生成工作流，包含笔触、墨法、留白等专业术语",
		Template:    "ink_wash.md",
		Arguments:   []Argument{descriptionArg},
	},
	{
		Name:        "design_prompt_generator",
		Description: "平面设计提示词生成工作流，支持海报、UI、Bento Grid等",
		Template:    "design.md",
		Arguments:   []Argument{descriptionArg},
	},
	{
		Name:        "bento_grid_generator",
		Description: "Bento Grid 布局设计提示词生成工作流",
		Template:    "bento_grid.md",
		Arguments:   []Argument{descriptionArg},
	},
	{
		Name:        "glassmorphism_generator",
		Description: "玻璃态（Glassmorphism）UI 设计提示词生成工作流",
		Template:    "glassmorphism.md",
		Arguments:   []Argument{descriptionArg},
	},
}

// directorNotes keys match the director argument of the cinematic SOP.
var directorNotes = map[string]string{
	"zhang_yimou":  "张艺谋风格特点：戏剧性光影、红金色调、高对比度、rim lighting、chiaroscuro效果",
	"tsui_hark":    "徐克风格特点：武侠飘逸、动感、流畅的动作姿态、飞扬的衣袂",
	"wong_kar_wai": "王家卫风格特点：怀旧氛围、浓郁色彩、暧昧光影、胶片质感",
}

// DirectorNote returns the style note for a director key, or "" when unknown.
func DirectorNote(director string) string {
	return directorNotes[strings.ToLower(strings.TrimSpace(director))]
}

// Data is the input for rendering an SOP.
type Data struct {
	Description string
	Director    string
}

type templateData struct {
	Description  string
	DirectorNote string
}

// Builder renders SOPs from the embedded templates.
type Builder struct {
	tmpl  *template.Template
	byKey map[string]SOP
}

// NewBuilder parses all embedded templates.
func NewBuilder() (*Builder, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.md")
	if err != nil {
		return nil, fmt.Errorf("parsing prompt templates: %w", err)
	}
	byKey := make(map[string]SOP, len(SOPs))
	for _, sop := range SOPs {
		if tmpl.Lookup(sop.Template) == nil {
			return nil, fmt.Errorf("prompt %q: template %q not embedded", sop.Name, sop.Template)
		}
		byKey[sop.Name] = sop
	}
	return &Builder{tmpl: tmpl, byKey: byKey}, nil
}

// Render executes the named SOP. The description must be non-blank.
func (b *Builder) Render(name string, data Data) (string, error) {
	sop, ok := b.byKey[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt %q", name)
	}
	desc := strings.TrimSpace(data.Description)
	if desc == "" {
		return "", fmt.Errorf("prompt %q: description is required", name)
	}

	var sb strings.Builder
	err := b.tmpl.ExecuteTemplate(&sb, sop.Template, templateData{
		Description:  desc,
		DirectorNote: DirectorNote(data.Director),
	})
	if err != nil {
		return "", fmt.Errorf("rendering prompt %q: %w", name, err)
	}
	return sb.String(), nil
}
