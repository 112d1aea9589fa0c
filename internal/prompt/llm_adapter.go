package prompt

import (
	"context"
	"fmt"

	"github.com/XiaoConstantine/dspy-go/pkg/core"

	"github.com/supportloop/triage/internal/ports"
)

// ConfigureLLM registers the service as the process-wide default LLM for
// all dspy-go modules. Call once at startup, before building the pipeline.
func ConfigureLLM(service ports.LLMService, modelID string) {
	core.SetDefaultLLM(NewLLMServiceAdapter(service, modelID))
}

// LLMServiceAdapter adapts ports.LLMService to dspy-go's core.LLM
// interface. Only plain generation is implemented; the triage modules never
// use JSON mode, function calling, embeddings, streaming or multimodal
// content.
type LLMServiceAdapter struct {
	service ports.LLMService
	modelID string
}

func NewLLMServiceAdapter(service ports.LLMService, modelID string) *LLMServiceAdapter {
	return &LLMServiceAdapter{service: service, modelID: modelID}
}

// Generate implements the dspy-go LLM interface.
func (a *LLMServiceAdapter) Generate(ctx context.Context, prompt string, opts ...core.GenerateOption) (*core.LLMResponse, error) {
	messages := []ports.LLMMessage{
		{Role: "user", Content: prompt},
	}

	resp, err := a.service.Chat(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("llm service chat failed: %w", err)
	}

	return &core.LLMResponse{
		Content: resp.Content,
	}, nil
}

func (a *LLMServiceAdapter) GenerateWithJSON(ctx context.Context, prompt string, opts ...core.GenerateOption) (map[string]interface{}, error) {
	return nil, fmt.Errorf("GenerateWithJSON not implemented: triage modules use plain generation")
}

func (a *LLMServiceAdapter) GenerateWithFunctions(ctx context.Context, prompt string, functions []map[string]interface{}, opts ...core.GenerateOption) (map[string]interface{}, error) {
	return nil, fmt.Errorf("GenerateWithFunctions not implemented: triage modules do not call tools")
}

func (a *LLMServiceAdapter) CreateEmbedding(ctx context.Context, input string, opts ...core.EmbeddingOption) (*core.EmbeddingResult, error) {
	return nil, fmt.Errorf("CreateEmbedding not implemented: knowledge lookup is keyed by category, not vectors")
}

func (a *LLMServiceAdapter) CreateEmbeddings(ctx context.Context, inputs []string, opts ...core.EmbeddingOption) (*core.BatchEmbeddingResult, error) {
	return nil, fmt.Errorf("CreateEmbeddings not implemented: knowledge lookup is keyed by category, not vectors")
}

func (a *LLMServiceAdapter) StreamGenerate(ctx context.Context, prompt string, opts ...core.GenerateOption) (*core.StreamResponse, error) {
	return nil, fmt.Errorf("StreamGenerate not implemented: pipeline stages are synchronous")
}

func (a *LLMServiceAdapter) GenerateWithContent(ctx context.Context, content []core.ContentBlock, opts ...core.GenerateOption) (*core.LLMResponse, error) {
	return nil, fmt.Errorf("GenerateWithContent not implemented: tickets are text only")
}

func (a *LLMServiceAdapter) StreamGenerateWithContent(ctx context.Context, content []core.ContentBlock, opts ...core.GenerateOption) (*core.StreamResponse, error) {
	return nil, fmt.Errorf("StreamGenerateWithContent not implemented: tickets are text only")
}

func (a *LLMServiceAdapter) ProviderName() string {
	return "triage"
}

func (a *LLMServiceAdapter) ModelID() string {
	return a.modelID
}

func (a *LLMServiceAdapter) Capabilities() []core.Capability {
	return []core.Capability{core.CapabilityChat, core.CapabilityCompletion}
}

// Dataset adapts a slice of examples to dspy-go's core.Dataset interface.
type Dataset struct {
	examples []core.Example
	index    int
}

func NewDataset(examples []core.Example) *Dataset {
	return &Dataset{examples: examples}
}

func (d *Dataset) Next() (core.Example, bool) {
	if d.index >= len(d.examples) {
		return core.Example{}, false
	}
	ex := d.examples[d.index]
	d.index++
	return ex, true
}

func (d *Dataset) Reset() {
	d.index = 0
}
