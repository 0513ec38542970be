package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Explanation string `json:"explanation"`
	RiskLevel   string `json:"riskLevel"`
}

func TestParseJSONPlainObject(t *testing.T) {
	result, err := ParseJSON[payload](`{"explanation": "rate increased", "riskLevel": "High"}`)

	require.NoError(t, err)
	assert.Equal(t, "rate increased", result.Explanation)
	assert.Equal(t, "High", result.RiskLevel)
}

func TestParseJSONStripsMarkdownFences(t *testing.T) {
	response := "Here is the analysis:\n```json\n{\"riskLevel\": \"Low\"}\n```\nLet me know if you need more."

	result, err := ParseJSON[payload](response)

	require.NoError(t, err)
	assert.Equal(t, "Low", result.RiskLevel)
}

func TestParseJSONNoObject(t *testing.T) {
	_, err := ParseJSON[payload]("I cannot answer that.")
	assert.Error(t, err)
}

func TestParseJSONMalformedObject(t *testing.T) {
	_, err := ParseJSON[payload](`{"riskLevel": }`)
	assert.Error(t, err)
}
