package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/XiaoConstantine/dspy-go/pkg/core"
	"github.com/XiaoConstantine/dspy-go/pkg/optimizers"

	"github.com/supportloop/triage/internal/prompt"
)

// OptimizationConfig configures the offline GEPA run for the classify
// stage.
type OptimizationConfig struct {
	// MaxGenerations bounds GEPA's evolutionary loop.
	MaxGenerations int

	// PopulationSize is the number of instruction candidates per generation.
	PopulationSize int

	// EvaluationBatchSize is the minibatch used when scoring candidates.
	EvaluationBatchSize int

	// ConcurrencyLevel bounds concurrent candidate evaluations.
	ConcurrencyLevel int
}

// DefaultOptimizationConfig returns settings sized for the small training
// sets support teams typically label.
func DefaultOptimizationConfig() OptimizationConfig {
	return OptimizationConfig{
		MaxGenerations:      10,
		PopulationSize:      20,
		EvaluationBatchSize: 5,
		ConcurrencyLevel:    3,
	}
}

// TrainingExample is one labeled classification example.
type TrainingExample struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}

// LoadTrainingExamples reads labeled examples from a JSON file.
func LoadTrainingExamples(path string) ([]TrainingExample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read training examples: %w", err)
	}

	var examples []TrainingExample
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("failed to parse training examples %s: %w", path, err)
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("training examples file %s is empty", path)
	}
	return examples, nil
}

// Optimizer evolves the classify stage instruction with GEPA against
// labeled examples. The default LLM must already be registered via
// prompt.ConfigureLLM.
type Optimizer struct {
	config OptimizationConfig
}

func NewOptimizer(config OptimizationConfig) *Optimizer {
	return &Optimizer{config: config}
}

// OptimizeClassify runs GEPA over the classify signature and returns an
// Instructions artifact carrying the best instruction found. The other
// stage instructions are left empty so the pipeline keeps its baselines.
func (o *Optimizer) OptimizeClassify(ctx context.Context, examples []TrainingExample) (*prompt.Instructions, error) {
	if len(examples) == 0 {
		return nil, fmt.Errorf("training set cannot be empty")
	}

	module := prompt.NewStagePredict(prompt.ClassifyTicket)
	program := module.ToProgram()
	dataset := prompt.NewDataset(toCoreExamples(examples))

	gepa, err := optimizers.NewGEPA(&optimizers.GEPAConfig{
		MaxGenerations:       o.config.MaxGenerations,
		PopulationSize:       o.config.PopulationSize,
		MutationRate:         0.3,
		CrossoverRate:        0.7,
		ElitismRate:          0.1,
		ReflectionFreq:       2,
		SelectionStrategy:    "adaptive_pareto",
		ConvergenceThreshold: 0.01,
		StagnationLimit:      3,
		EvaluationBatchSize:  o.config.EvaluationBatchSize,
		ConcurrencyLevel:     o.config.ConcurrencyLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GEPA optimizer: %w", err)
	}

	if _, err := gepa.Compile(ctx, program, dataset, classificationMetric); err != nil {
		return nil, fmt.Errorf("GEPA optimization failed: %w", err)
	}

	state := gepa.GetOptimizationState()
	if state == nil || state.BestCandidate == nil || state.BestCandidate.Instruction == "" {
		return nil, fmt.Errorf("optimization produced no candidate instruction")
	}

	return &prompt.Instructions{Classify: state.BestCandidate.Instruction}, nil
}

func toCoreExamples(examples []TrainingExample) []core.Example {
	out := make([]core.Example, len(examples))
	for i, ex := range examples {
		out[i] = core.Example{
			Inputs: map[string]interface{}{
				"subject": ex.Subject,
				"message": ex.Message,
			},
			Outputs: map[string]interface{}{
				"category": ex.Category,
				"priority": ex.Priority,
			},
		}
	}
	return out
}

// classificationMetric scores a prediction 1.0 when both category and
// priority match the label, 0.5 when one matches, 0 otherwise.
func classificationMetric(expected, actual map[string]interface{}) float64 {
	score := 0.0
	if labelEqual(expected["category"], actual["category"]) {
		score += 0.5
	}
	if labelEqual(expected["priority"], actual["priority"]) {
		score += 0.5
	}
	return score
}

func labelEqual(expected, actual interface{}) bool {
	e, okE := expected.(string)
	a, okA := actual.(string)
	if !okE || !okA {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(e), strings.TrimSpace(a))
}
