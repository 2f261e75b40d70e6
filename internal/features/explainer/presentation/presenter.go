// Package presentation maps validated explainer output onto display
// sections, and pipeline failures onto headline-plus-detail error views.
package presentation

import (
	"errors"
	"fmt"

	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/domain"
)

// Section is one titled block of the rendered result.
type Section struct {
	Key   string   `json:"key"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// sectionSpec declares how one output field becomes a section. Rendering
// iterates this list once; a field that renders no items is omitted.
type sectionSpec struct {
	key    string
	title  string
	render func(out domain.ExplainerOutput) []string
}

var sectionSpecs = []sectionSpec{
	{
		key:   "summary",
		title: "Summary (3 sentences)",
		render: func(out domain.ExplainerOutput) []string {
			return out.SummarySentences
		},
	},
	{
		key:   "bullets",
		title: "Key points (5 bullets)",
		render: func(out domain.ExplainerOutput) []string {
			return out.Bullets
		},
	},
	{
		key:   "vocab",
		title: "Vocabulary (3 terms)",
		render: func(out domain.ExplainerOutput) []string {
			items := make([]string, 0, len(out.Vocab))
			for _, v := range out.Vocab {
				items = append(items, fmt.Sprintf("%s: %s", v.Term, v.Definition))
			}
			return items
		},
	},
	{
		key:   "evidence",
		title: "Evidence lines (optional)",
		render: func(out domain.ExplainerOutput) []string {
			items := make([]string, 0, len(out.EvidenceLines))
			for i, row := range out.EvidenceLines {
				items = append(items, fmt.Sprintf("%d. %s", i+1, row.Evidence))
			}
			return items
		},
	},
}

// Render maps each present field of out to a titled section, in display
// order. Absent or empty fields are simply omitted.
func Render(out domain.ExplainerOutput) []Section {
	sections := make([]Section, 0, len(sectionSpecs))
	for _, spec := range sectionSpecs {
		items := spec.render(out)
		if len(items) == 0 {
			continue
		}
		sections = append(sections, Section{Key: spec.key, Title: spec.title, Items: items})
	}
	return sections
}

// ErrorView is the failure surface: a short headline for immediate
// display and the full technical error for a collapsed detail block.
type ErrorView struct {
	Kind     string `json:"kind"`
	Headline string `json:"headline"`
	Detail   string `json:"detail"`
}

// RenderError maps a pipeline failure onto its view. Unclassified errors
// get a generic headline.
func RenderError(err error) ErrorView {
	var pe *domain.PipelineError
	if errors.As(err, &pe) {
		return ErrorView{
			Kind:     string(pe.Kind),
			Headline: pe.Headline(),
			Detail:   pe.Error(),
		}
	}
	return ErrorView{
		Kind:     "internal",
		Headline: "Something went wrong.",
		Detail:   err.Error(),
	}
}
