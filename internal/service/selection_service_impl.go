package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/retrieval"
	"golang.org/x/sync/errgroup"
)

type selectionService struct {
	retriever *retrieval.Retriever
	observer  UseCaseObserver
}

func NewSelectionService(retriever *retrieval.Retriever, observers ...UseCaseObserver) SelectionService {
	return &selectionService{
		retriever: retriever,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *selectionService) SelectForIntent(ctx context.Context, in domain.Intent) (results []SlotResult, err error) {
	startedAt := time.Now().UTC()
	slots := PlanSlots(in)
	defer func() {
		filled := 0
		for _, r := range results {
			if r.Candidate != nil {
				filled++
			}
		}
		observeStep(ctx, s.observer, "select-for-intent", startedAt, err, map[string]any{
			"domain": string(in.Domain),
			"slots":  len(slots),
			"filled": filled,
		})
	}()

	results = make([]SlotResult, len(slots))
	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range slots {
		results[i].Slot = slot
		g.Go(func() error {
			found, err := s.retriever.Retrieve(gctx, in.Domain, slot.Category, slot.Keywords, 1)
			if err != nil {
				return fmt.Errorf("selecting %s: %w", slot.Field, err)
			}
			if len(found) > 0 {
				results[i].Candidate = &found[0]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// PlanSlots lists the categories worth filling for an intent, in prompt
// section order. Only portrait and art intents carry enough structure to plan.
func PlanSlots(in domain.Intent) []Slot {
	var slots []Slot
	add := func(field, category string, values ...string) {
		var kw []string
		for _, v := range values {
			kw = append(kw, valueWords(v)...)
		}
		if len(kw) > 0 {
			slots = append(slots, Slot{Field: field, Category: category, Keywords: kw})
		}
	}

	switch in.Domain {
	case domain.DomainPortrait:
		if in.Subject != nil {
			add("subject.ethnicity", "ethnicities", in.Subject.Ethnicity)
		}
		if in.Styling != nil {
			add("styling.makeup", "makeup_styles", in.Styling.Makeup)
			add("styling.clothing", "clothing_styles", in.Styling.Clothing)
			add("styling.hairstyle", "hairstyles", in.Styling.Hairstyle)
		}
		if in.Lighting != nil {
			add("lighting.lighting_type", "lighting_techniques", in.Lighting.LightingType)
		}
		if in.Technical != nil {
			add("technical.art_style", "art_styles", in.Technical.ArtStyle)
		}
	case domain.DomainArt:
		add("technical.art_style", "art_styles", in.ArtType, in.SubjectType)
	}
	return slots
}

// SelectedElements converts filled slots into checker/composer input.
func SelectedElements(results []SlotResult) []domain.SelectedElement {
	var out []domain.SelectedElement
	for _, r := range results {
		if r.Candidate == nil {
			continue
		}
		out = append(out, domain.SelectedElement{
			ElementID: domain.ElementID(r.Candidate.ElementID),
			Category:  r.Slot.Category,
			FieldName: r.Slot.Field,
			Name:      r.Candidate.Name,
			Template:  r.Candidate.Template,
		})
	}
	return out
}

// valueWords splits an enum value like "traditional_chinese" into search words.
func valueWords(v string) []string {
	return strings.Fields(strings.ReplaceAll(v, "_", " "))
}
