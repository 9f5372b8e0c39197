package varparse

import (
	"encoding/json"
	"io"
	"strings"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// ParseInput is the entry point for turning a raw test-case string into an
// ordered variable list. It never fails: input that resists every structured
// interpretation falls back to a single opaque string variable named "input".
func ParseInput(raw string) []domain.Variable {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []domain.Variable{}
	}

	if pairs, ok := decodeOrderedObject(trimmed); ok {
		return expandObjectPairs(pairs)
	}

	if vars := ScanAssignments(trimmed); len(vars) > 0 {
		return vars
	}

	value := trimmed
	if w, ok := normalizeWord(trimmed); ok {
		value = w
	}
	return []domain.Variable{{Name: "input", Value: value, Type: domain.VarTypeString}}
}

type objectPair struct {
	key   string
	value interface{}
}

// decodeOrderedObject decodes the whole string as a JSON object while
// preserving key order, which a plain map decode would lose. The second
// return is false when the text is not exactly one JSON object.
func decodeOrderedObject(raw string) ([]objectPair, bool) {
	dec := json.NewDecoder(strings.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	pairs := make([]objectPair, 0, 4)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, false
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		pairs = append(pairs, objectPair{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return pairs, true
}

// expandObjectPairs turns decoded object pairs into variables. A string
// value containing "=" is suspected to be a flattened "name=value,..." list
// nested one level too deep; it is re-scanned and spliced in place of the
// single pair, but only when the re-scan recovers more than one variable.
// This is a best-effort repair for malformed upstream data, not a
// guaranteed inverse.
func expandObjectPairs(pairs []objectPair) []domain.Variable {
	vars := make([]domain.Variable, 0, len(pairs))
	for _, p := range pairs {
		if s, isStr := p.value.(string); isStr && strings.Contains(s, "=") {
			if rescanned := ScanAssignments(p.key + "=" + s); len(rescanned) > 1 {
				vars = append(vars, rescanned...)
				continue
			}
		}

		enc, err := json.Marshal(p.value)
		if err != nil {
			// unreachable for values produced by a JSON decode
			enc = []byte(`""`)
		}
		vars = append(vars, domain.Variable{
			Name:  p.key,
			Value: string(enc),
			Type:  ClassifyValue(p.value),
		})
	}
	return vars
}
