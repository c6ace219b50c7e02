// Package compose assembles chosen elements into a single comma-separated
// prompt for an image model.
package compose

import (
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/rules"
)

const (
	// DefaultKeywordsLimit caps the phrases taken from each template.
	DefaultKeywordsLimit = 3
	// QualityTags is appended in auto and detailed modes.
	QualityTags = "high quality, detailed, professional"
)

// Options tune a single composition.
type Options struct {
	Mode          domain.ComposeMode
	KeywordsLimit int
	// SubjectDesc replaces the subject section when set.
	SubjectDesc string
}

// Strategy turns grouped elements into ordered prompt sections. Empty
// sections are dropped by the Composer.
type Strategy interface {
	Sections(g *Groups, opts Options) []string
}

// Groups holds selected elements keyed by canonical category, keeping both
// the input order within a category and the order categories first appeared.
type Groups struct {
	order []string
	byCat map[string][]domain.SelectedElement
}

// Get returns the elements filed under category.
func (g *Groups) Get(category string) []domain.SelectedElement {
	return g.byCat[category]
}

// Categories lists categories in first-seen order.
func (g *Groups) Categories() []string {
	return g.order
}

// Composer builds prompts with a fixed Strategy.
type Composer struct {
	tables   *rules.Tables
	strategy Strategy
}

// NewComposer creates a Composer. Nil arguments select the embedded rule
// tables and the SectionStrategy.
func NewComposer(tables *rules.Tables, strategy Strategy) *Composer {
	if tables == nil {
		tables = rules.Default()
	}
	if strategy == nil {
		strategy = SectionStrategy{}
	}
	return &Composer{tables: tables, strategy: strategy}
}

// Compose never fails; an empty selection in simple mode yields "".
func (c *Composer) Compose(elements []domain.SelectedElement, opts Options) string {
	opts.Mode = domain.ParseComposeMode(string(opts.Mode))
	if opts.KeywordsLimit <= 0 {
		opts.KeywordsLimit = DefaultKeywordsLimit
	}

	var parts []string
	for _, s := range c.strategy.Sections(c.group(elements), opts) {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if opts.Mode.AppendsQualityTags() {
		parts = append(parts, QualityTags)
	}

	return CleanPrompt(strings.Join(parts, ", "))
}

func (c *Composer) group(elements []domain.SelectedElement) *Groups {
	g := &Groups{byCat: make(map[string][]domain.SelectedElement)}
	for _, e := range elements {
		cat := c.tables.CanonicalCategory(domain.Coalesce(e.RawCategory(), "other"))
		if _, ok := g.byCat[cat]; !ok {
			g.order = append(g.order, cat)
		}
		g.byCat[cat] = append(g.byCat[cat], e)
	}
	return g
}
