package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/schema"
)

func TestBuildUserMessage(t *testing.T) {
	paragraph := "The mitochondria is the powerhouse of the cell."
	message := BuildUserMessage(paragraph)

	// The literal schema text must appear unmodified: prompt and validator
	// share one source of truth.
	assert.Contains(t, message, schema.Text)
	assert.Contains(t, message, paragraph)
	assert.Contains(t, message, "TASK")
	assert.Contains(t, message, "RULES")
	assert.True(t, strings.HasSuffix(message, paragraph))
}

func TestSystemInstruction(t *testing.T) {
	assert.Contains(t, SystemInstruction, "ONLY a single JSON object")
}
