package varparse

import (
	"encoding/json"
	"strings"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// ScanAssignments extracts "name = value" pairs from a raw string.
// Values may be bracketed literals with nested arrays or objects, quoted
// strings in either quote style, bare numbers, or boolean/null spellings in
// Python or JSON casing. A value that fails structured decoding still yields
// a string-typed variable, so authored content is never dropped. An empty
// result means the text is not in key=value form, not that scanning failed.
func ScanAssignments(raw string) []domain.Variable {
	vars := make([]domain.Variable, 0, 4)
	i := 0
	n := len(raw)

	for i < n {
		if !isIdentStart(raw[i]) {
			i++
			continue
		}

		start := i
		for i < n && isIdentPart(raw[i]) {
			i++
		}
		name := raw[start:i]

		j := skipSpaces(raw, i)
		if j >= n || raw[j] != '=' {
			continue
		}
		if j+1 < n && raw[j+1] == '=' {
			// comparison, not an assignment
			i = j + 2
			continue
		}
		j = skipSpaces(raw, j+1)

		text, end := scanValue(raw, j)
		if text == "" {
			i = j
			continue
		}
		vars = append(vars, decodeToken(name, text))
		i = end
	}

	return vars
}

// scanValue reads one value token starting at position i, returning the
// trimmed token text and the position just past it. Commas and closing
// brackets inside a bracketed or quoted region do not terminate the token.
func scanValue(s string, i int) (string, int) {
	n := len(s)
	if i >= n {
		return "", i
	}

	switch c := s[i]; {
	case c == '[' || c == '{':
		end := scanBracketed(s, i)
		return strings.TrimSpace(s[i:end]), end
	case c == '\'' || c == '"':
		end := scanQuoted(s, i)
		return s[i:end], end
	default:
		end := i
		for end < n && s[end] != ',' && s[end] != '\n' {
			end++
		}
		return strings.TrimSpace(s[i:end]), end
	}
}

// scanBracketed consumes a balanced []/{} region, quote-aware so brackets
// inside string literals do not affect the depth count. An unterminated
// region runs to the end of the input.
func scanBracketed(s string, i int) int {
	depth := 0
	n := len(s)
	var quote byte

	for ; i < n; i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' && i+1 < n {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return n
}

// scanQuoted consumes a quoted string including its delimiters.
func scanQuoted(s string, i int) int {
	quote := s[i]
	n := len(s)
	for i++; i < n; i++ {
		if s[i] == '\\' && i+1 < n {
			i++
			continue
		}
		if s[i] == quote {
			return i + 1
		}
	}
	return n
}

// decodeToken normalizes one value token to JSON, decodes it, and builds
// the variable. Decode failure demotes the token to a plain string variable
// holding the raw trimmed text.
func decodeToken(name, text string) domain.Variable {
	norm := normalizeLiteral(text)

	var decoded interface{}
	if err := json.Unmarshal([]byte(norm), &decoded); err == nil {
		if enc, err := json.Marshal(decoded); err == nil {
			return domain.Variable{Name: name, Value: string(enc), Type: ClassifyValue(decoded)}
		}
	}
	return domain.Variable{Name: name, Value: strings.TrimSpace(text), Type: domain.VarTypeString}
}

// normalizeLiteral rewrites a Python-style literal as JSON: boolean/null
// spellings are canonicalized and single-quoted strings become
// double-quoted. Bare words that are not literals pass through unchanged.
func normalizeLiteral(text string) string {
	t := strings.TrimSpace(text)
	if w, ok := normalizeWord(t); ok {
		return w
	}
	if len(t) > 0 && (t[0] == '[' || t[0] == '{' || t[0] == '\'' || t[0] == '"') {
		return rewritePythonLiterals(t)
	}
	return t
}

// normalizeWord maps the boolean/null spellings to their JSON form.
func normalizeWord(w string) (string, bool) {
	switch strings.ToLower(w) {
	case "true":
		return "true", true
	case "false":
		return "false", true
	case "none", "null":
		return "null", true
	}
	return "", false
}

// rewritePythonLiterals walks a composite or quoted token and converts
// Python spellings to JSON ones. Content inside double-quoted strings is
// copied verbatim, so embedded apostrophes there are never corrupted.
func rewritePythonLiterals(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	n := len(s)
	i := 0

	for i < n {
		c := s[i]
		switch {
		case c == '\'':
			i = convertSingleQuoted(&b, s, i)
		case c == '"':
			i = copyDoubleQuoted(&b, s, i)
		case isIdentStart(c):
			j := i
			for j < n && isIdentPart(s[j]) {
				j++
			}
			if w, ok := normalizeWord(s[i:j]); ok {
				b.WriteString(w)
			} else {
				b.WriteString(s[i:j])
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// convertSingleQuoted re-emits a single-quoted string as a double-quoted
// one, unescaping \' and escaping embedded double quotes.
func convertSingleQuoted(b *strings.Builder, s string, i int) int {
	n := len(s)
	b.WriteByte('"')
	for i++; i < n; i++ {
		c := s[i]
		if c == '\\' && i+1 < n {
			if s[i+1] == '\'' {
				b.WriteByte('\'')
			} else {
				b.WriteByte(c)
				b.WriteByte(s[i+1])
			}
			i++
			continue
		}
		if c == '\'' {
			i++
			break
		}
		if c == '"' {
			b.WriteString(`\"`)
			continue
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return i
}

// copyDoubleQuoted copies a double-quoted string verbatim, escapes included.
func copyDoubleQuoted(b *strings.Builder, s string, i int) int {
	n := len(s)
	b.WriteByte('"')
	for i++; i < n; i++ {
		c := s[i]
		if c == '\\' && i+1 < n {
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(c)
		if c == '"' {
			i++
			break
		}
	}
	return i
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
