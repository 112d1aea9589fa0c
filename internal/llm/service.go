package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/supportloop/triage/internal/adapters/circuitbreaker"
	"github.com/supportloop/triage/internal/ports"
)

// DefaultCallTimeout bounds a single remote call so a stuck completion
// cannot hold a pipeline slot indefinitely.
const DefaultCallTimeout = 2 * time.Minute

// Service implements ports.LLMService over the chat client, adding a
// per-call timeout and a circuit breaker.
type Service struct {
	client      *Client
	breaker     *circuitbreaker.Breaker
	callTimeout time.Duration
}

// NewService creates an LLM service. callTimeout <= 0 selects the default.
func NewService(client *Client, callTimeout time.Duration) *Service {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	return &Service{
		client:      client,
		breaker:     circuitbreaker.New(5, 30*time.Second),
		callTimeout: callTimeout,
	}
}

// Chat sends a chat request. Timeouts surface as ordinary errors here; the
// pipeline wraps them into its upstream error kind.
func (s *Service) Chat(ctx context.Context, messages []ports.LLMMessage) (*ports.LLMResponse, error) {
	var result *ports.LLMResponse
	err := s.breaker.Execute(func() error {
		var err error
		result, err = s.doChat(ctx, messages)
		return err
	})
	return result, err
}

func (s *Service) doChat(ctx context.Context, messages []ports.LLMMessage) (*ports.LLMResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	chatMessages := make([]ChatMessage, len(messages))
	for i, msg := range messages {
		chatMessages[i] = ChatMessage{Role: msg.Role, Content: msg.Content}
	}

	response, err := s.client.Chat(ctx, chatMessages)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &ports.LLMResponse{
		Content: response.Choices[0].Message.Content,
	}, nil
}
