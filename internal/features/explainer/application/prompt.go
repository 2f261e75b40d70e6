package application

import (
	"fmt"

	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/schema"
)

// SystemInstruction constrains the model to emit JSON only.
const SystemInstruction = "You are a careful rewriting model. " +
	"Output ONLY a single JSON object that follows the provided JSON Schema. " +
	"Do not include any text before or after the JSON."

// userMessageTemplate embeds the task description, the formatting rules,
// the literal schema text and the paragraph. The schema placeholder is
// filled with schema.Text so the prompt and the validator can never drift.
const userMessageTemplate = `TASK
Rewrite the following dense paragraph into plain English without adding outside facts or opinions.

OUTPUT
Return ONE JSON object with:
- summary_sentences: exactly 3 sentences in plain English.
- bullets: exactly 5 short points, each drawn directly from the paragraph.
- vocab: exactly 3 items, each with "term" and "definition" taken from the paragraph.
- evidence_lines: OPTIONAL array of { bullet_index, evidence } pairs (only include if helpful).

RULES
- Neutral tone. No advice. No opinions.
- Keep sentences short and clear.
- Do not output anything outside the JSON object.
- Follow the JSON Schema exactly.

JSON SCHEMA
%s

PARAGRAPH
%s`

// BuildUserMessage composes the user message for one explain request.
// The paragraph must already be trimmed and non-empty.
func BuildUserMessage(paragraph string) string {
	return fmt.Sprintf(userMessageTemplate, schema.Text, paragraph)
}
