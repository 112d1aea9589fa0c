package handlers

import (
	"net/http"

	"github.com/supportloop/triage/internal/ports"
)

type HealthHandler struct {
	kb      ports.KnowledgeBase
	idGen   ports.IDGenerator
	version string
}

func NewHealthHandler(kb ports.KnowledgeBase, idGen ports.IDGenerator, version string) *HealthHandler {
	return &HealthHandler{kb: kb, idGen: idGen, version: version}
}

type HealthResponse struct {
	Status               string `json:"status"`
	Version              string `json:"version,omitempty"`
	KnowledgeBaseEntries int    `json:"knowledge_base_entries"`
	TicketsProcessed     uint64 `json:"tickets_processed"`
}

// ticketCounter is implemented by id generators that track how many ids
// they have issued.
type ticketCounter interface {
	Count() uint64
}

// Handle provides a basic health check endpoint
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "ok",
		Version: h.version,
	}
	if h.kb != nil {
		response.KnowledgeBaseEntries = h.kb.Size()
	}
	if c, ok := h.idGen.(ticketCounter); ok {
		response.TicketsProcessed = c.Count()
	}

	respondJSON(w, response, http.StatusOK)
}
