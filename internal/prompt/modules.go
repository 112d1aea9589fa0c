package prompt

import (
	"context"
	"fmt"
	"time"

	"github.com/XiaoConstantine/dspy-go/pkg/core"
	"github.com/XiaoConstantine/dspy-go/pkg/modules"

	"github.com/supportloop/triage/internal/adapters/metrics"
)

// StagePredict wraps a dspy-go Predict module for one pipeline stage,
// recording per-stage timing and failure metrics.
type StagePredict struct {
	*modules.Predict
	stage string
}

// NewStagePredict creates a Predict module for the given stage signature.
// The module uses the process-wide default LLM registered via ConfigureLLM.
func NewStagePredict(sig Signature) *StagePredict {
	return &StagePredict{
		Predict: modules.NewPredict(sig.Signature),
		stage:   sig.Name,
	}
}

// Stage returns the stage name the module serves.
func (p *StagePredict) Stage() string {
	return p.stage
}

// Process executes the prediction and records stage metrics.
func (p *StagePredict) Process(ctx context.Context, inputs map[string]any) (map[string]any, error) {
	start := time.Now()
	outputs, err := p.Predict.Process(ctx, inputs)
	metrics.StageDuration.WithLabelValues(p.stage).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.StageErrorsTotal.WithLabelValues(p.stage, "upstream").Inc()
		return nil, fmt.Errorf("stage %s predict failed: %w", p.stage, err)
	}

	return outputs, nil
}

// ToProgram wraps the module in a core.Program for use with dspy-go
// optimizers.
func (p *StagePredict) ToProgram() core.Program {
	moduleMap := map[string]core.Module{
		p.stage: p.Predict,
	}

	forward := func(ctx context.Context, inputs map[string]interface{}) (map[string]interface{}, error) {
		return p.Process(ctx, inputs)
	}

	return core.NewProgram(moduleMap, forward)
}
