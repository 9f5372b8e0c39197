package varparse

import (
	"bytes"
	"encoding/json"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// SerializeVariables converts an ordered variable list back into the
// canonical JSON string submitted to the execution service. It never fails:
// a stored value that is not valid JSON (a user-authored literal that never
// decoded) is submitted as a JSON string holding the raw text.
//
// A single variable literally named "input" keeps the bare-scalar fallback
// symmetric: its raw value text is returned unchanged.
func SerializeVariables(vars []domain.Variable) string {
	if len(vars) == 0 {
		return "{}"
	}
	if len(vars) == 1 && vars[0].Name == "input" {
		return vars[0].Value
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range vars {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(&buf, v.Name)
		buf.WriteByte(':')
		writeValue(&buf, v.Value)
	}
	buf.WriteByte('}')
	return buf.String()
}

// writeValue emits a stored value as-is when it is valid JSON, compacted,
// and as an encoded string otherwise.
func writeValue(buf *bytes.Buffer, value string) {
	raw := []byte(value)
	if json.Valid(raw) {
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err == nil {
			buf.Write(compact.Bytes())
			return
		}
	}
	writeJSONString(buf, value)
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc, err := json.Marshal(s)
	if err != nil {
		buf.WriteString(`""`)
		return
	}
	buf.Write(enc)
}
