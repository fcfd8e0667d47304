package enrichment

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

// Fields is the parsed model answer. Every key is optional: a nil pointer or
// nil Topics means the key was absent.
type Fields struct {
	Summary         *string
	Sentiment       *string
	Topics          json.RawMessage
	Recommendations *string
}

// Empty reports whether no key was extracted.
func (f Fields) Empty() bool {
	return f.Summary == nil && f.Sentiment == nil && f.Topics == nil && f.Recommendations == nil
}

// Analysis fills absent keys with defaults: "" for text fields, NULL topics.
func (f Fields) Analysis() domain.Analysis {
	a := domain.Analysis{
		Summary:         deref(f.Summary),
		Sentiment:       deref(f.Sentiment),
		Recommendations: deref(f.Recommendations),
		Topics:          f.Topics,
	}
	return a.Normalized()
}

// fenceRe matches a JSON object inside a triple-backtick block, with an
// optional language tag after the opening fence.
var fenceRe = regexp.MustCompile("(?s)```[a-zA-Z]*[ \t]*\r?\n[ \t]*(\\{.*?\\})[ \t]*\r?\n[ \t]*```")

// Extract locates and parses the analysis object in free-form model output.
//
// A fenced block wins when present. Otherwise the span from the first "{" to
// the last "}" is parsed. No match, a parse failure or a non-object value
// yields empty Fields. Extract never fails.
func Extract(raw string) Fields {
	if strings.TrimSpace(raw) == "" {
		return Fields{}
	}

	if m := fenceRe.FindStringSubmatch(raw); m != nil {
		return parseFields(m[1])
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return Fields{}
	}
	return parseFields(raw[start : end+1])
}

func parseFields(s string) Fields {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return Fields{}
	}

	var f Fields
	f.Summary = textField(obj["summary"])
	f.Sentiment = textField(obj["sentiment"])
	f.Recommendations = textField(obj["recommendations"])
	if t, ok := obj["topics"]; ok {
		f.Topics = compact(t)
	}
	return f
}

// textField reads a text key. Strings are taken as-is, null counts as absent,
// and any other JSON value is kept as its compact JSON text.
func textField(raw json.RawMessage) *string {
	if raw == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return &s
	}

	s = string(compact(trimmed))
	return &s
}

func compact(raw json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return json.RawMessage(buf.Bytes())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
