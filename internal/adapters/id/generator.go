package id

import (
	"fmt"
	"sync/atomic"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generator issues random ticket ids.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateTicketID() string {
	id, err := gonanoid.New(21)
	if err != nil {
		return "tk_fallback"
	}
	return "tk_" + id
}

// Sequential issues API-style ids like "API000001". The counter is atomic,
// so concurrent requests never see duplicate ids.
type Sequential struct {
	prefix string
	n      atomic.Uint64
}

func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

func (s *Sequential) GenerateTicketID() string {
	return fmt.Sprintf("%s%06d", s.prefix, s.n.Add(1))
}

// Count returns how many ids have been issued.
func (s *Sequential) Count() uint64 {
	return s.n.Load()
}
