package models

import "strings"

// Category is the primary area a support ticket belongs to.
type Category string

const (
	CategoryTechnical      Category = "Technical"
	CategoryBilling        Category = "Billing"
	CategorySales          Category = "Sales"
	CategoryFeatureRequest Category = "Feature_Request"
)

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{CategoryTechnical, CategoryBilling, CategorySales, CategoryFeatureRequest}
}

// ParseCategory maps raw LLM output onto a Category. Matching is
// case-insensitive and tolerates surrounding whitespace, since models echo
// labels with inconsistent casing.
func ParseCategory(s string) (Category, bool) {
	normalized := normalizeLabel(s)
	for _, c := range Categories() {
		if normalized == normalizeLabel(string(c)) {
			return c, true
		}
	}
	return "", false
}

func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

// Priority is the urgency level assigned during classification.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

func Priorities() []Priority {
	return []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}
}

func ParsePriority(s string) (Priority, bool) {
	normalized := normalizeLabel(s)
	for _, p := range Priorities() {
		if normalized == normalizeLabel(string(p)) {
			return p, true
		}
	}
	return "", false
}

func (p Priority) Valid() bool {
	_, ok := ParsePriority(string(p))
	return ok
}

// IsHigh reports whether the priority counts toward the high-priority
// bucket in batch summaries.
func (p Priority) IsHigh() bool {
	return p == PriorityCritical || p == PriorityHigh
}

// ResponseType is the kind of response the ticket calls for.
type ResponseType string

const (
	ResponseTroubleshooting ResponseType = "Troubleshooting"
	ResponseAccountReview   ResponseType = "Account_Review"
	ResponseInformation     ResponseType = "Information"
	ResponseProductFeedback ResponseType = "Product_Feedback"
	ResponseAccountRecovery ResponseType = "Account_Recovery"
)

func ResponseTypes() []ResponseType {
	return []ResponseType{
		ResponseTroubleshooting,
		ResponseAccountReview,
		ResponseInformation,
		ResponseProductFeedback,
		ResponseAccountRecovery,
	}
}

func ParseResponseType(s string) (ResponseType, bool) {
	normalized := normalizeLabel(s)
	for _, rt := range ResponseTypes() {
		if normalized == normalizeLabel(string(rt)) {
			return rt, true
		}
	}
	return "", false
}

func (rt ResponseType) Valid() bool {
	_, ok := ParseResponseType(string(rt))
	return ok
}

// normalizeLabel collapses the separator variants models produce
// ("Feature Request", "feature_request") onto one comparable form.
func normalizeLabel(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Ticket is a customer support request. Immutable once created by intake.
type Ticket struct {
	ID            string `json:"id"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	CustomerEmail string `json:"customer_email"`
}

// KnowledgeEntry is one solution record in the knowledge base.
type KnowledgeEntry struct {
	Category           Category `json:"category"`
	Topic              string   `json:"topic"`
	Solution           string   `json:"solution"`
	EscalationRequired bool     `json:"escalation_required"`
}
