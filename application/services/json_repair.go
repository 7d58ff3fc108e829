package services

import (
	"encoding/json"
	"fmt"
	"github.com/Tejasai37/papercast/domain"
	"regexp"
	"strings"
)

var trailingCommaRegexp = regexp.MustCompile(`,\s*([}\]])`)

// extractJSONSpan returns the text between the first '{' and the last '}'.
func extractJSONSpan(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < 0 || end < start {
		return "", fmt.Errorf("no JSON object in response: %w", domain.ErrMalformedResponse)
	}
	return raw[start : end+1], nil
}

func removeTrailingCommas(s string) string {
	return trailingCommaRegexp.ReplaceAllString(s, "$1")
}

func isJSONEscapeChar(c byte) bool {
	switch c {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	}
	return false
}

// escapeInvalidBackslashes doubles every backslash that does not start a
// valid JSON escape. Valid pairs are copied as a unit so `\\` stays intact.
func escapeInvalidBackslashes(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			builder.WriteByte(c)
			continue
		}
		if i+1 < len(s) && isJSONEscapeChar(s[i+1]) {
			builder.WriteByte(c)
			builder.WriteByte(s[i+1])
			i++
			continue
		}
		builder.WriteString(`\\`)
	}
	return builder.String()
}

// decodeInsights reads the first JSON value in s and ignores anything after it.
func decodeInsights(s string) (domain.Insights, error) {
	var fields map[string]json.RawMessage
	decoder := json.NewDecoder(strings.NewReader(s))
	if err := decoder.Decode(&fields); err != nil {
		return domain.Insights{}, fmt.Errorf("decode insights: %v: %w", err, domain.ErrMalformedResponse)
	}

	insights := domain.Insights{
		Script:    rawText(fields["script"], " "),
		Summary:   rawText(fields["summary"], " "),
		KeyPoints: rawList(fields["key_points"]),
		TLDR:      rawText(fields["tldr"], " "),
	}
	if strings.TrimSpace(insights.Script) == "" {
		return domain.Insights{}, fmt.Errorf("insights without script: %w", domain.ErrMalformedResponse)
	}
	return insights, nil
}

// rawText accepts a JSON string or an array of strings, joined by sep.
func rawText(raw json.RawMessage, sep string) string {
	if len(raw) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	var parts []string
	if err := json.Unmarshal(raw, &parts); err == nil {
		return strings.Join(parts, sep)
	}
	return strings.TrimSpace(string(raw))
}

func rawList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var parts []string
	if err := json.Unmarshal(raw, &parts); err == nil {
		return parts
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return []string{}
}

// repairInsights runs the sanitizing chain and then one bare reparse of the
// untouched span. The chain is heuristic and knowingly lossy.
func repairInsights(raw string) (domain.Insights, error) {
	span, err := extractJSONSpan(raw)
	if err != nil {
		return domain.Insights{}, err
	}

	sanitized := escapeInvalidBackslashes(removeTrailingCommas(span))
	insights, err := decodeInsights(sanitized)
	if err == nil {
		return insights, nil
	}

	return decodeInsights(span)
}
