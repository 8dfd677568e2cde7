package invocation

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadEvent reads a TestRequest fixture. YAML and JSON files are both accepted
func LoadEvent(filePath string) (TestRequest, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return TestRequest{}, fmt.Errorf("reading event file: %w", err)
	}
	return ParseEvent(data)
}

// ParseEvent decodes a TestRequest from YAML or JSON
func ParseEvent(data []byte) (TestRequest, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return TestRequest{}, fmt.Errorf("parsing event YAML: %w", err)
	}
	if doc == nil {
		return TestRequest{}, fmt.Errorf("event file is empty")
	}

	// Re-encode so the resource model goes through its JSON property mapping
	normalized, err := json.Marshal(doc)
	if err != nil {
		return TestRequest{}, fmt.Errorf("normalizing event: %w", err)
	}

	var req TestRequest
	if err := json.Unmarshal(normalized, &req); err != nil {
		return TestRequest{}, fmt.Errorf("decoding event: %w", err)
	}
	if req.Action == "" {
		return TestRequest{}, fmt.Errorf("action is required")
	}
	return req, nil
}
