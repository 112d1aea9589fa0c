package handlers

import (
	"net/http"

	"github.com/supportloop/triage/internal/domain/models"
)

// InfoHandler describes the service and its endpoints at the root path.
type InfoHandler struct {
	version string
}

func NewInfoHandler(version string) *InfoHandler {
	return &InfoHandler{version: version}
}

type InfoResponse struct {
	Service             string            `json:"service"`
	Version             string            `json:"version"`
	Endpoints           map[string]string `json:"endpoints"`
	SupportedCategories []string          `json:"supported_categories"`
	SupportedPriorities []string          `json:"supported_priorities"`
}

// Handle handles GET /
func (h *InfoHandler) Handle(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, InfoResponse{
		Service: "triage",
		Version: h.version,
		Endpoints: map[string]string{
			"POST /process-ticket": "process a single support ticket",
			"POST /process-batch":  "process up to 50 tickets concurrently",
			"POST /feedback":       "submit feedback for a processed ticket",
			"GET /health":          "health check",
			"GET /metrics":         "prometheus metrics",
		},
		SupportedCategories: categoryNames(),
		SupportedPriorities: priorityNames(),
	}, http.StatusOK)
}

func categoryNames() []string {
	cats := models.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

func priorityNames() []string {
	prios := models.Priorities()
	names := make([]string, len(prios))
	for i, p := range prios {
		names[i] = string(p)
	}
	return names
}
