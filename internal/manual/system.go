// Package manual is the hand-written-prompt baseline the benchmark
// contrasts against the declarative pipeline: free-form prompts and
// line-oriented parsing of whatever the model returns.
package manual

import (
	"context"
	"fmt"
	"strings"

	"github.com/supportloop/triage/internal/ports"
	"github.com/supportloop/triage/internal/prompt/baselines"
)

// System classifies tickets and generates responses with manually crafted
// prompt strings.
type System struct {
	llm ports.LLMService
}

func New(llm ports.LLMService) *System {
	return &System{llm: llm}
}

// ClassifyTicket prompts for a classification and parses "Key: value" lines
// out of the reply. Keys are lowercased with spaces folded to underscores;
// lines that don't match are dropped.
func (s *System) ClassifyTicket(ctx context.Context, subject, message string) (map[string]string, error) {
	content := fmt.Sprintf(baselines.ClassificationPrompt, subject, message)

	resp, err := s.llm.Chat(ctx, []ports.LLMMessage{{Role: "user", Content: content}})
	if err != nil {
		return nil, fmt.Errorf("manual classification failed: %w", err)
	}

	return parseKeyValues(resp.Content), nil
}

// GenerateResponse prompts for a support reply using the classification the
// caller extracted (or guessed, when parsing came up empty).
func (s *System) GenerateResponse(ctx context.Context, subject, message, category, priority string) (string, error) {
	content := fmt.Sprintf(baselines.ResponsePrompt, subject, message, category, priority)

	resp, err := s.llm.Chat(ctx, []ports.LLMMessage{{Role: "user", Content: content}})
	if err != nil {
		return "", fmt.Errorf("manual response generation failed: %w", err)
	}

	return strings.TrimSpace(resp.Content), nil
}

func parseKeyValues(raw string) map[string]string {
	parsed := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
		if key == "" {
			continue
		}
		parsed[key] = strings.TrimSpace(value)
	}
	return parsed
}
