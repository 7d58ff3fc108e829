package services

import (
	"errors"
	"github.com/Tejasai37/papercast/domain"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestRepairInsights_TrailingComma(t *testing.T) {
	insights, err := repairInsights(`{"script": "a", "summary": "b", "key_points": ["c"], "tldr": "d",}`)

	assert.Equal(t, nil, err)
	assert.Equal(t, "a", insights.Script)
	assert.Equal(t, "b", insights.Summary)
	assert.Equal(t, []string{"c"}, insights.KeyPoints)
	assert.Equal(t, "d", insights.TLDR)
}

func TestRepairInsights_TrailingCommaInArray(t *testing.T) {
	insights, err := repairInsights(`{"script": "a", "summary": "b", "key_points": ["c", "e",], "tldr": "d"}`)

	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"c", "e"}, insights.KeyPoints)
}

func TestRepairInsights_InvalidBackslashIsKeptLiteral(t *testing.T) {
	raw := `{"script": "She said \it is fine\"", "summary": "s", "key_points": [], "tldr": "t"}`

	insights, err := repairInsights(raw)

	assert.Equal(t, nil, err)
	assert.Equal(t, `She said \it is fine"`, insights.Script)
}

func TestRepairInsights_ValidEscapesUntouched(t *testing.T) {
	raw := `{"script": "line\nnext \\ path\/x é", "summary": "s", "key_points": [], "tldr": "t"}`

	insights, err := repairInsights(raw)

	assert.Equal(t, nil, err)
	assert.Equal(t, "line\nnext \\ path/x é", insights.Script)
}

func TestRepairInsights_ProseAroundObject(t *testing.T) {
	raw := "Sure! Here is your podcast:\n```json\n{\"script\": \"[HOST] Hi\", \"summary\": \"s\", \"key_points\": [\"k\"], \"tldr\": \"t\"}\n```\nEnjoy."

	insights, err := repairInsights(raw)

	assert.Equal(t, nil, err)
	assert.Equal(t, "[HOST] Hi", insights.Script)
}

func TestRepairInsights_ScriptArrayIsJoined(t *testing.T) {
	raw := `{"script": ["[HOST] Welcome.", "[EXPERT] Thanks."], "summary": "s", "key_points": ["k"], "tldr": "t"}`

	insights, err := repairInsights(raw)

	assert.Equal(t, nil, err)
	assert.Equal(t, "[HOST] Welcome. [EXPERT] Thanks.", insights.Script)
}

func TestRepairInsights_SingleKeyPointString(t *testing.T) {
	insights, err := repairInsights(`{"script": "a", "summary": "b", "key_points": "only one", "tldr": "d"}`)

	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"only one"}, insights.KeyPoints)
}

func TestRepairInsights_NoObject(t *testing.T) {
	_, err := repairInsights("I cannot help with that.")

	assert.Equal(t, true, errors.Is(err, domain.ErrMalformedResponse))
}

func TestRepairInsights_BracesOutOfOrder(t *testing.T) {
	_, err := repairInsights("} nothing here {")

	assert.Equal(t, true, errors.Is(err, domain.ErrMalformedResponse))
}

func TestRepairInsights_MissingScript(t *testing.T) {
	_, err := repairInsights(`{"summary": "b", "key_points": [], "tldr": "d"}`)

	assert.Equal(t, true, errors.Is(err, domain.ErrMalformedResponse))
}

func TestRepairInsights_Garbage(t *testing.T) {
	_, err := repairInsights(`{script: a, summary}`)

	assert.Equal(t, true, errors.Is(err, domain.ErrMalformedResponse))
}

func TestEscapeInvalidBackslashes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "invalid escape doubled", input: `a\qb`, want: `a\\qb`},
		{name: "valid quote escape kept", input: `a\"b`, want: `a\"b`},
		{name: "escaped backslash kept as pair", input: `a\\qb`, want: `a\\qb`},
		{name: "trailing backslash doubled", input: `ab\`, want: `ab\\`},
		{name: "unicode escape kept", input: `\u0041`, want: `\u0041`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeInvalidBackslashes(tt.input))
		})
	}
}
