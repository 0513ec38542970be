package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type Prompts struct {
	System      string `toml:"system"`
	Explanation string `toml:"explanation"`
}

type ConcurrencyConfig struct {
	ExplainBatch int `toml:"explain_batch"`
}

type ServerConfig struct {
	MaxUploadBytes int64 `toml:"max_upload_bytes"`
}

type Config struct {
	LLM         LLMConfig         `toml:"llm"`
	Prompts     Prompts           `toml:"prompts"`
	Concurrency ConcurrencyConfig `toml:"concurrency"`
	Server      ServerConfig      `toml:"server"`
}

const defaultSystemPrompt = "You are a financial analyst explaining loan agreement changes to banking professionals. " +
	"Be concise, clear, and focus on economic and risk implications. Respond in JSON format."

// Three %s verbs: change type, clause categories, clause detail block.
const defaultExplanationPrompt = `Analyze this loan agreement change:

Change Type: %s
Clause Categories: %s

%s
Provide a JSON response with:
- explanation: 2-3 sentences explaining the change in plain English
- impactSummary: One sentence on commercial impact
- riskLevel: "Low", "Medium", or "High"
- beneficiary: "Borrower", "Lender", or "Neutral"
`

// Default returns the built-in configuration: no LLM provider (deterministic
// fallback only), batch size and timeout matching the explanation engine
// defaults, 10MB upload limit.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			TimeoutSeconds: 8,
		},
		Prompts: Prompts{
			System:      defaultSystemPrompt,
			Explanation: defaultExplanationPrompt,
		},
		Concurrency: ConcurrencyConfig{
			ExplainBatch: 5,
		},
		Server: ServerConfig{
			MaxUploadBytes: 10 * 1024 * 1024,
		},
	}
}

// Load reads a TOML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnvOverrides lets deployment environment variables win over file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
}
