package schemagen

import (
	"encoding/json"
	"strings"
)

// Markup is a linked-data object: a nested JSON mapping with an @context
// namespace field and an @type discriminator.
type Markup map[string]any

// Type returns the @type discriminator, or "" if absent.
func (m Markup) Type() string {
	t, _ := m["@type"].(string)
	return t
}

// MarshalIndent renders the markup as pretty-printed JSON. This is the one
// operation whose failure is a bug rather than an external-input problem.
func (m Markup) MarshalIndent() (string, error) {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", Errorf(EINTERNAL, "marshal markup: %v", err)
	}
	return string(b), nil
}

// ParseStrategy attempts to extract a markup object from raw model text.
type ParseStrategy func(text string) (Markup, error)

// ParseDirect parses the text as JSON as-is.
func ParseDirect(text string) (Markup, error) {
	var m Markup
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return nil, Errorf(EINVALID, "not a JSON object: %v", err)
	}
	return m, nil
}

// ParseFenced strips a leading/trailing markdown code fence (``` or
// ```json) and parses the remainder.
func ParseFenced(text string) (Markup, error) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return nil, Errorf(EINVALID, "no code fence present")
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return ParseDirect(strings.TrimSpace(s))
}

// ParseBalanced scans for the first balanced {...} span and parses it.
// Braces inside JSON strings are accounted for.
func ParseBalanced(text string) (Markup, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, Errorf(EINVALID, "no object found in text")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return ParseDirect(text[start : i+1])
			}
		}
	}
	return nil, Errorf(EINVALID, "unbalanced object in text")
}

// ParseStrategies is the ordered list of recovery strategies for model
// output. First success wins; exhausting the list means the caller should
// fall back to deterministic template population.
var ParseStrategies = []ParseStrategy{
	ParseDirect,
	ParseFenced,
	ParseBalanced,
}

// ParseModelOutput runs the parse strategies in order and returns the first
// successful result. Returns EINVALID when every strategy fails.
func ParseModelOutput(text string) (Markup, error) {
	for _, parse := range ParseStrategies {
		if m, err := parse(text); err == nil {
			return m, nil
		}
	}
	return nil, Errorf(EINVALID, "model output is not parseable as JSON")
}

// Merge overlays over onto base and returns a new markup. Precedence is
// explicit: a non-empty value in over wins; nested objects merge
// recursively; empty values in over never erase base values. Neither input
// is mutated.
func Merge(base, over Markup) Markup {
	out := make(Markup, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		bv, ok := out[k]
		if ok {
			bm, bIsMap := bv.(map[string]any)
			om, oIsMap := v.(map[string]any)
			if bIsMap && oIsMap {
				out[k] = map[string]any(Merge(bm, om))
				continue
			}
		}
		if !isEmptyValue(v) {
			out[k] = v
		}
	}
	return out
}

// Clean returns a copy of the markup with empty-valued keys removed. Nested
// objects and lists are cleaned recursively; a nested object that retains
// nothing but its @type/@context markers is treated as empty.
func Clean(m Markup) Markup {
	out := make(Markup, len(m))
	for k, v := range m {
		cv := cleanValue(v)
		if cv == nil {
			continue
		}
		out[k] = cv
	}
	return out
}

// cleanValue returns nil when the value should be dropped.
func cleanValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if t == "" {
			return nil
		}
		return t
	case map[string]any:
		cleaned := Clean(t)
		if len(cleaned) == 0 || onlyTypeMarkers(cleaned) {
			return nil
		}
		return map[string]any(cleaned)
	case Markup:
		return cleanValue(map[string]any(t))
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			if ci := cleanValue(item); ci != nil {
				out = append(out, ci)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return v
	}
}

func onlyTypeMarkers(m Markup) bool {
	for k := range m {
		if k != "@type" && k != "@context" {
			return false
		}
	}
	return true
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	}
	return false
}
