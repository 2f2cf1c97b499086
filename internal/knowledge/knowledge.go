// Package knowledge holds the BRF terminology dataset that is injected
// into user prompts. The default dataset is embedded in the binary and
// can be replaced by a YAML file of the same shape.
package knowledge

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var embeddedKnowledge []byte

// Feature maps a prompt keyword to a one-line explanation.
type Feature struct {
	Keyword string `yaml:"keyword"`
	Context string `yaml:"context"`
}

// Base is the terminology dataset.
type Base struct {
	// Indicators are lowercase keywords that mark a prompt as domain related.
	Indicators []string `yaml:"indicators"`
	// Reference is the static terminology/compliance/integration block.
	Reference string `yaml:"reference"`
	// Features are evaluated in order.
	Features []Feature `yaml:"features"`
	// Project names the work in the provenance line.
	Project string `yaml:"project"`
	// Timezone is an IANA location name used for the provenance timestamp.
	Timezone string `yaml:"timezone"`
}

// Default returns the embedded dataset.
func Default() (*Base, error) {
	return Parse(embeddedKnowledge)
}

// Load reads a dataset from a YAML file.
func Load(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (*Base, error) {
	var base Base
	if err := yaml.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("failed to decode knowledge: %w", err)
	}

	if strings.TrimSpace(base.Reference) == "" {
		return nil, fmt.Errorf("knowledge reference cannot be empty")
	}
	if len(base.Indicators) == 0 {
		return nil, fmt.Errorf("knowledge needs at least one indicator")
	}

	for i, indicator := range base.Indicators {
		base.Indicators[i] = strings.ToLower(strings.TrimSpace(indicator))
		if base.Indicators[i] == "" {
			return nil, fmt.Errorf("indicator %d is empty", i)
		}
	}
	for i, feature := range base.Features {
		if feature.Keyword == "" || feature.Context == "" {
			return nil, fmt.Errorf("feature %d needs both keyword and context", i)
		}
		base.Features[i].Keyword = strings.ToLower(feature.Keyword)
	}

	return &base, nil
}
