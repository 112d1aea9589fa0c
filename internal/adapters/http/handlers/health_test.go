package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/supportloop/triage/internal/domain/models"
)

type staticKB struct {
	size int
}

func (s *staticKB) Lookup(category models.Category) []models.KnowledgeEntry { return nil }
func (s *staticKB) Size() int                                               { return s.size }

type countingIDGen struct {
	issued uint64
}

func (g *countingIDGen) GenerateTicketID() string { g.issued++; return "tk_x" }
func (g *countingIDGen) Count() uint64            { return g.issued }

func TestHealthHandler(t *testing.T) {
	gen := &countingIDGen{}
	gen.GenerateTicketID()
	gen.GenerateTicketID()

	h := NewHealthHandler(&staticKB{size: 7}, gen, "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("version = %q", resp.Version)
	}
	if resp.KnowledgeBaseEntries != 7 {
		t.Errorf("knowledge_base_entries = %d", resp.KnowledgeBaseEntries)
	}
	if resp.TicketsProcessed != 2 {
		t.Errorf("tickets_processed = %d", resp.TicketsProcessed)
	}
}

func TestInfoHandler(t *testing.T) {
	h := NewInfoHandler("1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp InfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Service != "triage" {
		t.Errorf("service = %q", resp.Service)
	}
	if len(resp.Endpoints) != 5 {
		t.Errorf("endpoints = %d, want 5", len(resp.Endpoints))
	}
	if len(resp.SupportedCategories) != 4 {
		t.Errorf("supported_categories = %v", resp.SupportedCategories)
	}
	if len(resp.SupportedPriorities) != 4 {
		t.Errorf("supported_priorities = %v", resp.SupportedPriorities)
	}
}
