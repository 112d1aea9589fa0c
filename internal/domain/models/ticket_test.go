package models

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
		ok       bool
	}{
		{name: "exact", input: "Technical", expected: CategoryTechnical, ok: true},
		{name: "lowercase", input: "billing", expected: CategoryBilling, ok: true},
		{name: "whitespace", input: "  Sales \n", expected: CategorySales, ok: true},
		{name: "space separator", input: "Feature Request", expected: CategoryFeatureRequest, ok: true},
		{name: "hyphen separator", input: "feature-request", expected: CategoryFeatureRequest, ok: true},
		{name: "outside enum", input: "Complaints", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseCategory(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	for _, p := range Priorities() {
		got, ok := ParsePriority(string(p))
		if !ok || got != p {
			t.Errorf("ParsePriority(%q) = %q, %v", p, got, ok)
		}
	}

	if _, ok := ParsePriority("Urgent"); ok {
		t.Error("ParsePriority should reject values outside the enum")
	}
}

func TestPriorityIsHigh(t *testing.T) {
	if !PriorityCritical.IsHigh() || !PriorityHigh.IsHigh() {
		t.Error("Critical and High should count as high priority")
	}
	if PriorityMedium.IsHigh() || PriorityLow.IsHigh() {
		t.Error("Medium and Low should not count as high priority")
	}
}

func TestParseResponseType(t *testing.T) {
	got, ok := ParseResponseType("account recovery")
	if !ok || got != ResponseAccountRecovery {
		t.Errorf("ParseResponseType(\"account recovery\") = %q, %v", got, ok)
	}

	if _, ok := ParseResponseType("Escalation"); ok {
		t.Error("ParseResponseType should reject values outside the enum")
	}
}

func TestUpstreamErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &UpstreamError{Stage: "classify", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("UpstreamError should unwrap to its cause")
	}

	var ue *UpstreamError
	if !errors.As(error(err), &ue) || ue.Stage != "classify" {
		t.Error("errors.As should recover the UpstreamError")
	}
}

func TestBatchTooLargeError(t *testing.T) {
	err := &BatchTooLargeError{Size: 51, Limit: 50}
	if err.Error() == "" {
		t.Error("error message should not be empty")
	}
}
