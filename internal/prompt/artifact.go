package prompt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Instructions is the artifact produced by the offline optimizer: one
// optimized instruction per stage. Empty fields keep the baseline
// instruction from the signature.
type Instructions struct {
	Classify string `json:"classify,omitempty"`
	Retrieve string `json:"retrieve,omitempty"`
	Respond  string `json:"respond,omitempty"`
	Evaluate string `json:"evaluate,omitempty"`
}

// LoadInstructions reads an instruction artifact. A missing file is not an
// error: the pipeline runs on baseline instructions.
func LoadInstructions(path string) (*Instructions, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read instruction artifact: %w", err)
	}

	var instr Instructions
	if err := json.Unmarshal(data, &instr); err != nil {
		return nil, fmt.Errorf("failed to parse instruction artifact %s: %w", path, err)
	}

	return &instr, nil
}

// Save writes the artifact as indented JSON.
func (i *Instructions) Save(path string) error {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal instruction artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write instruction artifact: %w", err)
	}
	return nil
}
