package prompt

import (
	"fmt"
	"strings"

	"github.com/XiaoConstantine/dspy-go/pkg/core"
)

// Signature wraps dspy-go's signature with a stable name used for metrics
// and instruction artifacts.
type Signature struct {
	core.Signature
	Name string
}

// MustParseSignature creates a signature from a string or panics.
func MustParseSignature(name, sig string) Signature {
	s, err := ParseSignature(name, sig)
	if err != nil {
		panic(fmt.Sprintf("failed to parse signature: %v", err))
	}
	return s
}

// ParseSignature creates a signature from a string like
// "input1, input2 -> output1, output2".
func ParseSignature(name, sig string) (Signature, error) {
	parts := strings.Split(sig, "->")
	if len(parts) != 2 {
		return Signature{}, fmt.Errorf("invalid signature format: %s", sig)
	}

	inputFields := parseFields(strings.TrimSpace(parts[0]))
	outputFields := parseFields(strings.TrimSpace(parts[1]))

	inputs := make([]core.InputField, len(inputFields))
	for i, f := range inputFields {
		inputs[i] = core.InputField{Field: f}
	}

	outputs := make([]core.OutputField, len(outputFields))
	for i, f := range outputFields {
		outputs[i] = core.OutputField{Field: f}
	}

	return Signature{
		Signature: core.NewSignature(inputs, outputs),
		Name:      name,
	}, nil
}

// WithInstruction returns a copy of the signature carrying an optimized
// instruction, e.g. one produced by the offline optimizer.
func (s Signature) WithInstruction(instruction string) Signature {
	if instruction == "" {
		return s
	}
	s.Signature = s.Signature.WithInstruction(instruction)
	return s
}

func parseFields(fieldStr string) []core.Field {
	if fieldStr == "" {
		return nil
	}

	parts := strings.Split(fieldStr, ",")
	fields := make([]core.Field, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields = append(fields, core.NewField(part))
	}

	return fields
}

// Stage signatures for the triage pipeline. Field names are part of the
// module contract: the schema layer coerces outputs by these names.
var (
	ClassifyTicket = MustParseSignature("classify",
		"subject, message -> category, priority, response_type, reasoning",
	).WithInstruction("Classify customer support tickets by category (Technical, Billing, Sales, Feature_Request), priority (Critical, High, Medium, Low) and response type (Troubleshooting, Account_Review, Information, Product_Feedback, Account_Recovery).")

	RetrieveKnowledge = MustParseSignature("retrieve",
		"category, issue_description, knowledge_entries -> relevant_solution, escalation_needed",
	).WithInstruction("Find the most relevant solution information for the issue. escalation_needed is true or false.")

	GenerateResponse = MustParseSignature("respond",
		"customer_message, issue_category, priority_level, solution_info, escalation_needed -> response, confidence",
	).WithInstruction("Generate a professional, helpful customer support response. confidence is a number between 0.0 and 1.0.")

	EvaluateQuality = MustParseSignature("evaluate",
		"original_message, generated_response -> quality_score, is_helpful, is_professional, suggestions",
	).WithInstruction("Evaluate response quality. quality_score is a number between 0.0 and 1.0; is_helpful and is_professional are true or false.")
)
