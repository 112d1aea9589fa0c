package id

import (
	"strings"
	"sync"
	"testing"
)

func TestGeneratorPrefix(t *testing.T) {
	g := New()
	id := g.GenerateTicketID()
	if !strings.HasPrefix(id, "tk_") {
		t.Errorf("expected tk_ prefix, got %q", id)
	}
	if id == g.GenerateTicketID() {
		t.Error("consecutive ids should differ")
	}
}

func TestSequentialFormat(t *testing.T) {
	s := NewSequential("API")
	if got := s.GenerateTicketID(); got != "API000001" {
		t.Errorf("expected API000001, got %q", got)
	}
	if got := s.GenerateTicketID(); got != "API000002" {
		t.Errorf("expected API000002, got %q", got)
	}
}

func TestSequentialNoDuplicatesUnderConcurrency(t *testing.T) {
	s := NewSequential("API")

	const workers = 16
	const perWorker = 100

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := s.GenerateTicketID()
				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate id %q", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("expected %d unique ids, got %d", workers*perWorker, len(seen))
	}
}
