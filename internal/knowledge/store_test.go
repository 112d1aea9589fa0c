package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/supportloop/triage/internal/domain/models"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solutions.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadIndexesByCategory(t *testing.T) {
	path := writeFile(t, `[
		{"category": "Technical", "topic": "Login", "solution": "Reset your password.", "escalation_required": false},
		{"category": "Technical", "topic": "Crash", "solution": "Update to the latest version.", "escalation_required": true},
		{"category": "Billing", "topic": "Refunds", "solution": "Refunds are processed within 5 business days.", "escalation_required": false}
	]`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Size() != 3 {
		t.Errorf("Size() = %d, want 3", store.Size())
	}

	technical := store.Lookup(models.CategoryTechnical)
	if len(technical) != 2 {
		t.Fatalf("expected 2 technical entries, got %d", len(technical))
	}
	if technical[0].Topic != "Login" {
		t.Errorf("unexpected first entry: %+v", technical[0])
	}

	if got := store.Lookup(models.CategorySales); len(got) != 0 {
		t.Errorf("expected no sales entries, got %d", len(got))
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	store, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Size() != 1 {
		t.Fatalf("expected the single fallback entry, got %d", store.Size())
	}
	if got := store.Lookup(models.CategoryTechnical); len(got) != 1 {
		t.Error("fallback entry should be technical")
	}
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	path := writeFile(t, `[{"category": "Gossip", "topic": "x", "solution": "y"}]`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeFile(t, `{not json`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
