package domain

// DefaultModel is the fine-tuned explainer model used when no app config
// overrides it.
const DefaultModel = "ft:gpt-4.1-mini-2025-04-14:personal:plain-explainer-json-v1:CWoHgyO5"

// ModelParams defines the parameters for the AI model.
type ModelParams struct {
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Model       string      `json:"model"`
	ModelParams ModelParams `json:"model_params"`
	// StrictSchema rejects undeclared top-level properties in the model's
	// response. The schema itself tolerates them, so this defaults to off.
	StrictSchema bool `json:"strict_schema"`
}

// DefaultAppConfig returns the compiled-in configuration, used when no
// config file is present.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Model: DefaultModel,
		ModelParams: ModelParams{
			Temperature: 0.2,
		},
	}
}
