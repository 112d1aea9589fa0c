package manual

import (
	"context"
	"errors"
	"testing"

	"github.com/supportloop/triage/internal/ports"
)

type stubLLM struct {
	content string
	err     error
	calls   int
}

func (s *stubLLM) Chat(ctx context.Context, messages []ports.LLMMessage) (*ports.LLMResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &ports.LLMResponse{Content: s.content}, nil
}

func TestClassifyTicketParsesWellFormedReply(t *testing.T) {
	llm := &stubLLM{content: "Category: Technical\nPriority: High\nResponse Type: Account_Recovery"}
	sys := New(llm)

	got, err := sys.ClassifyTicket(context.Background(), "Locked out", "Cannot log in")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got["category"] != "Technical" {
		t.Errorf("category = %q, want Technical", got["category"])
	}
	if got["priority"] != "High" {
		t.Errorf("priority = %q, want High", got["priority"])
	}
	if got["response_type"] != "Account_Recovery" {
		t.Errorf("response_type = %q, want Account_Recovery", got["response_type"])
	}
}

func TestClassifyTicketToleratesNoise(t *testing.T) {
	// This is the brittleness the declarative pipeline avoids: prose around
	// the expected lines silently becomes missing keys.
	llm := &stubLLM{content: "Sure! Here is my analysis.\n\nCategory: Billing\nSome trailing remark without a separator"}
	sys := New(llm)

	got, err := sys.ClassifyTicket(context.Background(), "Refund", "Charge me back")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got["category"] != "Billing" {
		t.Errorf("category = %q, want Billing", got["category"])
	}
	if _, ok := got["priority"]; ok {
		t.Error("priority should be absent when the model omitted it")
	}
}

func TestClassifyTicketPropagatesError(t *testing.T) {
	llm := &stubLLM{err: errors.New("upstream down")}
	sys := New(llm)

	if _, err := sys.ClassifyTicket(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateResponseTrims(t *testing.T) {
	llm := &stubLLM{content: "\n  Thanks for reaching out!  \n"}
	sys := New(llm)

	got, err := sys.GenerateResponse(context.Background(), "a", "b", "Technical", "High")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Thanks for reaching out!" {
		t.Errorf("unexpected response: %q", got)
	}
}
