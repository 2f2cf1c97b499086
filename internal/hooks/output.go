package hooks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

// decisionSchemaJSON is the output contract the runtime accepts.
const decisionSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "oneOf": [
    {
      "type": "object",
      "properties": {
        "continue": {"const": true},
        "hookSpecificOutput": {
          "type": "object",
          "properties": {
            "hookEventName": {"type": "string", "minLength": 1},
            "additionalContext": {"type": "string", "minLength": 1}
          },
          "required": ["hookEventName", "additionalContext"],
          "additionalProperties": false
        }
      },
      "required": ["continue"],
      "additionalProperties": false
    },
    {
      "type": "object",
      "properties": {
        "decision": {"const": "block"},
        "reason": {"type": "string", "minLength": 1}
      },
      "required": ["decision", "reason"],
      "additionalProperties": false
    }
  ]
}`

var decisionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(decisionSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to decode decision schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("decision.json", doc); err != nil {
		return nil, fmt.Errorf("failed to add decision schema: %w", err)
	}
	return c.Compile("decision.json")
})

// ValidateDecision checks an encoded decision against the output contract.
func ValidateDecision(data []byte) error {
	schema, err := decisionSchema()
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decision is not valid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("decision violates output contract: %w", err)
	}
	return nil
}

// encodeDecision renders d as indented JSON without HTML escaping.
func encodeDecision(d *Decision) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode decision: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDecision writes d to w. A decision that cannot be encoded or that
// violates the output contract is replaced by a plain pass-through, so
// the runtime always receives a well-formed document.
func WriteDecision(w io.Writer, d *Decision, logger *zap.Logger) error {
	data, err := encodeDecision(d)
	if err == nil {
		err = ValidateDecision(data)
	}
	if err != nil {
		logger.Error("replacing invalid decision with pass-through", zap.Error(err))
		data, err = encodeDecision(NewContinueDecision())
		if err != nil {
			return err
		}
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write decision: %w", err)
	}
	return nil
}
