// Package usecases holds the application use cases: the four-stage ticket
// pipeline and the bounded-concurrency batch fan-out built on top of it.
package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/supportloop/triage/internal/domain/models"
	"github.com/supportloop/triage/internal/ports"
	"github.com/supportloop/triage/internal/prompt"
)

// stageModule is what the pipeline needs from one stage: a typed-map predict
// call plus a stable stage name for error attribution.
type stageModule interface {
	Process(ctx context.Context, inputs map[string]any) (map[string]any, error)
	Stage() string
}

// ProcessTicket runs a ticket through classify, retrieve, respond and
// evaluate, strictly in that order. Each stage consumes typed outputs of the
// previous ones; a failure at any stage aborts the run and no later stage is
// invoked.
type ProcessTicket struct {
	classify stageModule
	retrieve stageModule
	respond  stageModule
	evaluate stageModule
	kb       ports.KnowledgeBase
}

// NewProcessTicket builds the pipeline from the stage signatures, applying
// optimized instructions from the artifact when one is provided.
func NewProcessTicket(kb ports.KnowledgeBase, instructions *prompt.Instructions) *ProcessTicket {
	classifySig := prompt.ClassifyTicket
	retrieveSig := prompt.RetrieveKnowledge
	respondSig := prompt.GenerateResponse
	evaluateSig := prompt.EvaluateQuality

	if instructions != nil {
		classifySig = classifySig.WithInstruction(instructions.Classify)
		retrieveSig = retrieveSig.WithInstruction(instructions.Retrieve)
		respondSig = respondSig.WithInstruction(instructions.Respond)
		evaluateSig = evaluateSig.WithInstruction(instructions.Evaluate)
	}

	return newProcessTicket(
		prompt.NewStagePredict(classifySig),
		prompt.NewStagePredict(retrieveSig),
		prompt.NewStagePredict(respondSig),
		prompt.NewStagePredict(evaluateSig),
		kb,
	)
}

func newProcessTicket(classify, retrieve, respond, evaluate stageModule, kb ports.KnowledgeBase) *ProcessTicket {
	return &ProcessTicket{
		classify: classify,
		retrieve: retrieve,
		respond:  respond,
		evaluate: evaluate,
		kb:       kb,
	}
}

// Run executes the pipeline for one ticket. It returns either a complete
// TicketResult or an UpstreamError/SchemaError naming the failing stage.
func (uc *ProcessTicket) Run(ctx context.Context, ticket *models.Ticket) (*models.TicketResult, error) {
	start := time.Now()

	out, err := uc.classify.Process(ctx, map[string]any{
		"subject": ticket.Subject,
		"message": ticket.Message,
	})
	if err != nil {
		return nil, &models.UpstreamError{Stage: uc.classify.Stage(), Err: err}
	}
	classification, err := coerceClassification(uc.classify.Stage(), out)
	if err != nil {
		return nil, err
	}

	out, err = uc.retrieve.Process(ctx, map[string]any{
		"category":          string(classification.Category),
		"issue_description": ticket.Subject + "\n" + ticket.Message,
		"knowledge_entries": formatEntries(uc.kb.Lookup(classification.Category)),
	})
	if err != nil {
		return nil, &models.UpstreamError{Stage: uc.retrieve.Stage(), Err: err}
	}
	knowledge, err := coerceKnowledge(uc.retrieve.Stage(), out)
	if err != nil {
		return nil, err
	}

	out, err = uc.respond.Process(ctx, map[string]any{
		"customer_message":  ticket.Message,
		"issue_category":    string(classification.Category),
		"priority_level":    string(classification.Priority),
		"solution_info":     knowledge.RelevantSolution,
		"escalation_needed": strconv.FormatBool(knowledge.EscalationNeeded),
	})
	if err != nil {
		return nil, &models.UpstreamError{Stage: uc.respond.Stage(), Err: err}
	}
	response, err := coerceResponse(uc.respond.Stage(), out)
	if err != nil {
		return nil, err
	}

	out, err = uc.evaluate.Process(ctx, map[string]any{
		"original_message":   ticket.Message,
		"generated_response": response.Response,
	})
	if err != nil {
		return nil, &models.UpstreamError{Stage: uc.evaluate.Stage(), Err: err}
	}
	quality, err := coerceQuality(uc.evaluate.Stage(), out)
	if err != nil {
		return nil, err
	}

	return &models.TicketResult{
		TicketID:       ticket.ID,
		Classification: classification,
		Knowledge:      knowledge,
		Response:       response,
		Quality:        quality,
		ProcessingTime: time.Since(start),
	}, nil
}

// formatEntries renders knowledge entries into the plain-text block the
// retrieve stage consumes.
func formatEntries(entries []models.KnowledgeEntry) string {
	if len(entries) == 0 {
		return "No knowledge base entries available for this category."
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Topic: %s\nSolution: %s\nEscalation required: %t\n", e.Topic, e.Solution, e.EscalationRequired)
	}
	return b.String()
}
