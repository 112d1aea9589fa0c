package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestSubmitFeedback(t *testing.T) {
	h := NewFeedbackHandler()

	rec := postJSON(t, h.SubmitFeedback, `{"ticket_id": "tk_1", "response_quality": 0.9, "was_helpful": true}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "received" || resp["ticket_id"] != "tk_1" {
		t.Errorf("unexpected response: %v", resp)
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing ticket_id", `{"response_quality": 0.5}`},
		{"quality above range", `{"ticket_id": "tk_1", "response_quality": 1.5}`},
		{"quality below range", `{"ticket_id": "tk_1", "response_quality": -0.1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewFeedbackHandler()

			rec := postJSON(t, h.SubmitFeedback, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}
