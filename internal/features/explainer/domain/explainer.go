package domain

// ExplainRequest is the request structure for explaining a paragraph.
type ExplainRequest struct {
	Paragraph string `json:"paragraph"`
}

// VocabItem is a term/definition pair taken from the paragraph.
type VocabItem struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// EvidenceLine ties a supporting quote back to one of the bullets.
type EvidenceLine struct {
	BulletIndex int    `json:"bullet_index"`
	Evidence    string `json:"evidence"`
}

// ExplainerOutput is the validated result of one explain request.
// It is read-only display data: created by the schema validator,
// consumed by the presenter, discarded after rendering.
type ExplainerOutput struct {
	SummarySentences []string       `json:"summary_sentences"`
	Bullets          []string       `json:"bullets"`
	Vocab            []VocabItem    `json:"vocab"`
	EvidenceLines    []EvidenceLine `json:"evidence_lines,omitempty"`
}
