package usecases

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/supportloop/triage/internal/domain/models"
)

// The schema boundary: raw module outputs are maps of loosely typed values.
// Everything crossing into the domain is coerced here; anything that does
// not fit its declared type or enum becomes a SchemaError and aborts the
// ticket.

func coerceClassification(stage string, out map[string]any) (models.Classification, error) {
	var cls models.Classification

	raw, err := fieldString(stage, out, "category")
	if err != nil {
		return cls, err
	}
	category, ok := models.ParseCategory(raw)
	if !ok {
		return cls, &models.SchemaError{Stage: stage, Field: "category", Value: raw, Reason: "not in the allowed category set"}
	}

	raw, err = fieldString(stage, out, "priority")
	if err != nil {
		return cls, err
	}
	priority, ok := models.ParsePriority(raw)
	if !ok {
		return cls, &models.SchemaError{Stage: stage, Field: "priority", Value: raw, Reason: "not in the allowed priority set"}
	}

	raw, err = fieldString(stage, out, "response_type")
	if err != nil {
		return cls, err
	}
	responseType, ok := models.ParseResponseType(raw)
	if !ok {
		return cls, &models.SchemaError{Stage: stage, Field: "response_type", Value: raw, Reason: "not in the allowed response type set"}
	}

	cls.Category = category
	cls.Priority = priority
	cls.ResponseType = responseType
	cls.Reasoning = optionalString(out, "reasoning")
	return cls, nil
}

func coerceKnowledge(stage string, out map[string]any) (models.KnowledgeResult, error) {
	var kr models.KnowledgeResult

	solution, err := fieldString(stage, out, "relevant_solution")
	if err != nil {
		return kr, err
	}

	escalation, err := fieldBool(stage, out, "escalation_needed")
	if err != nil {
		return kr, err
	}

	kr.RelevantSolution = solution
	kr.EscalationNeeded = escalation
	return kr, nil
}

func coerceResponse(stage string, out map[string]any) (models.GeneratedResponse, error) {
	var gr models.GeneratedResponse

	response, err := fieldString(stage, out, "response")
	if err != nil {
		return gr, err
	}

	confidence, err := fieldUnitFloat(stage, out, "confidence")
	if err != nil {
		return gr, err
	}

	gr.Response = response
	gr.Confidence = confidence
	return gr, nil
}

func coerceQuality(stage string, out map[string]any) (models.QualityAssessment, error) {
	var qa models.QualityAssessment

	score, err := fieldUnitFloat(stage, out, "quality_score")
	if err != nil {
		return qa, err
	}

	helpful, err := fieldBool(stage, out, "is_helpful")
	if err != nil {
		return qa, err
	}

	professional, err := fieldBool(stage, out, "is_professional")
	if err != nil {
		return qa, err
	}

	qa.QualityScore = score
	qa.IsHelpful = helpful
	qa.IsProfessional = professional
	qa.Suggestions = optionalString(out, "suggestions")
	return qa, nil
}

func fieldString(stage string, out map[string]any, field string) (string, error) {
	v, ok := out[field]
	if !ok || v == nil {
		return "", &models.SchemaError{Stage: stage, Field: field, Value: "", Reason: "missing output field"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &models.SchemaError{Stage: stage, Field: field, Value: fmt.Sprintf("%v", v), Reason: "expected a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &models.SchemaError{Stage: stage, Field: field, Value: "", Reason: "empty output field"}
	}
	return s, nil
}

func optionalString(out map[string]any, field string) string {
	if s, ok := out[field].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func fieldBool(stage string, out map[string]any, field string) (bool, error) {
	v, ok := out[field]
	if !ok || v == nil {
		return false, &models.SchemaError{Stage: stage, Field: field, Value: "", Reason: "missing output field"}
	}

	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes":
			return true, nil
		case "false", "no":
			return false, nil
		}
		return false, &models.SchemaError{Stage: stage, Field: field, Value: b, Reason: "expected a boolean"}
	default:
		return false, &models.SchemaError{Stage: stage, Field: field, Value: fmt.Sprintf("%v", v), Reason: "expected a boolean"}
	}
}

// fieldUnitFloat coerces a float constrained to [0, 1].
func fieldUnitFloat(stage string, out map[string]any, field string) (float64, error) {
	v, ok := out[field]
	if !ok || v == nil {
		return 0, &models.SchemaError{Stage: stage, Field: field, Value: "", Reason: "missing output field"}
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, &models.SchemaError{Stage: stage, Field: field, Value: n, Reason: "expected a number"}
		}
		f = parsed
	default:
		return 0, &models.SchemaError{Stage: stage, Field: field, Value: fmt.Sprintf("%v", v), Reason: "expected a number"}
	}

	if f < 0 || f > 1 {
		return 0, &models.SchemaError{Stage: stage, Field: field, Value: fmt.Sprintf("%v", f), Reason: "outside [0, 1]"}
	}
	return f, nil
}
