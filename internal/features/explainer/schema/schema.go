// Package schema holds the JSON Schema contract for the explainer output.
//
// Text is the single source of truth: the same bytes are embedded in the
// model prompt and compiled into the local validator, so the contract the
// model is shown is exactly the contract its reply is checked against.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/domain"
)

// Text is the literal JSON Schema (draft 2020-12) for ExplainerOutput.
const Text = `{
  "title": "ExplainerOutput",
  "type": "object",
  "required": ["summary_sentences", "bullets", "vocab"],
  "properties": {
    "summary_sentences": {
      "type": "array",
      "minItems": 3,
      "maxItems": 3,
      "items": { "type": "string" }
    },
    "bullets": {
      "type": "array",
      "minItems": 5,
      "maxItems": 5,
      "items": { "type": "string" }
    },
    "vocab": {
      "type": "array",
      "minItems": 3,
      "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["term", "definition"],
        "properties": {
          "term": { "type": "string" },
          "definition": { "type": "string" }
        }
      }
    },
    "evidence_lines": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["bullet_index", "evidence"],
        "properties": {
          "bullet_index": { "type": "integer", "minimum": 0, "maximum": 4 },
          "evidence": { "type": "string" }
        }
      }
    }
  }
}`

// compiled is built once at startup; an invalid Text is a programming
// error, so MustCompileString panicking is the right failure mode.
var compiled = jsonschema.MustCompileString("explainer_output.schema.json", Text)

// declaredProperties are the top-level keys the schema declares, used
// only by strict mode. Derived from Text so the two cannot drift.
var declaredProperties = func() map[string]bool {
	var doc struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal([]byte(Text), &doc); err != nil {
		panic(fmt.Sprintf("embedded schema text is invalid JSON: %v", err))
	}
	declared := make(map[string]bool, len(doc.Properties))
	for name := range doc.Properties {
		declared[name] = true
	}
	return declared
}()

// Validate parses candidate as JSON and checks it against the schema,
// returning the validated output value.
//
// A malformed candidate yields a parse-kind error; a conforming-JSON but
// non-conforming object yields a schema-kind error naming the violated
// constraint. The schema itself tolerates undeclared properties; when
// strict is true, unknown top-level keys are rejected as well.
func Validate(candidate string, strict bool) (domain.ExplainerOutput, error) {
	var raw any
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		return domain.ExplainerOutput{}, domain.NewPipelineError(domain.ErrorKindParse,
			fmt.Errorf("model output is not valid JSON: %w", err))
	}

	if err := compiled.Validate(raw); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return domain.ExplainerOutput{}, domain.NewPipelineError(domain.ErrorKindSchema,
				fmt.Errorf("model output violates schema: %s", violatedConstraint(ve)))
		}
		return domain.ExplainerOutput{}, domain.NewPipelineError(domain.ErrorKindSchema, err)
	}

	if strict {
		obj, ok := raw.(map[string]any)
		if !ok {
			return domain.ExplainerOutput{}, domain.NewPipelineError(domain.ErrorKindSchema,
				fmt.Errorf("model output violates schema: expected an object, got %T", raw))
		}
		for key := range obj {
			if !declaredProperties[key] {
				return domain.ExplainerOutput{}, domain.NewPipelineError(domain.ErrorKindSchema,
					fmt.Errorf("model output violates schema: undeclared property %q", key))
			}
		}
	}

	var out domain.ExplainerOutput
	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		return domain.ExplainerOutput{}, domain.NewPipelineError(domain.ErrorKindParse,
			fmt.Errorf("failed to decode validated output: %w", err))
	}
	return out, nil
}

// violatedConstraint walks to the deepest cause of a validation error
// and reports it with its instance location, so "summary_sentences has
// 2 items, wants 3" surfaces instead of the generic root message.
func violatedConstraint(ve *jsonschema.ValidationError) string {
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	location := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if location == "" {
		return leaf.Message
	}
	return fmt.Sprintf("%s: %s", location, leaf.Message)
}
