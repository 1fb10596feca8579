package insight

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFromFile reads a design brief from a JSON file.
func LoadFromFile(path string) (*Insight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read insight file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a design brief from raw JSON bytes. Only malformed
// JSON is an error; semantic problems are left to Validate so that partial
// briefs still generate a token tree.
func LoadFromBytes(data []byte) (*Insight, error) {
	var in Insight
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse insight JSON: %w", err)
	}
	return &in, nil
}
