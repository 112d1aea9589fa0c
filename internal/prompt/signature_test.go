package prompt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignature(t *testing.T) {
	sig, err := ParseSignature("classify", "subject, message -> category, priority")
	require.NoError(t, err)

	assert.Equal(t, "classify", sig.Name)
	require.Len(t, sig.Inputs, 2)
	require.Len(t, sig.Outputs, 2)
	assert.Equal(t, "subject", sig.Inputs[0].Name)
	assert.Equal(t, "priority", sig.Outputs[1].Name)
}

func TestParseSignatureRejectsMalformed(t *testing.T) {
	_, err := ParseSignature("bad", "no arrow here")
	assert.Error(t, err)

	_, err = ParseSignature("bad", "a -> b -> c")
	assert.Error(t, err)
}

func TestStageSignatureFieldNames(t *testing.T) {
	// The schema layer coerces by these names; renaming a field breaks the
	// boundary contract.
	assert.Equal(t, "category", ClassifyTicket.Outputs[0].Name)
	assert.Equal(t, "priority", ClassifyTicket.Outputs[1].Name)
	assert.Equal(t, "response_type", ClassifyTicket.Outputs[2].Name)
	assert.Equal(t, "escalation_needed", RetrieveKnowledge.Outputs[1].Name)
	assert.Equal(t, "confidence", GenerateResponse.Outputs[1].Name)
	assert.Equal(t, "quality_score", EvaluateQuality.Outputs[0].Name)
}

func TestLoadInstructionsMissingFile(t *testing.T) {
	instr, err := LoadInstructions(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Nil(t, instr)
}

func TestInstructionsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instructions.json")

	in := &Instructions{Classify: "Be precise about priority."}
	require.NoError(t, in.Save(path))

	out, err := LoadInstructions(path)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Classify, out.Classify)
	assert.Empty(t, out.Respond)
}
