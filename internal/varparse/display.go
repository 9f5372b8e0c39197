package varparse

import (
	"strings"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// NoOutputPlaceholder is shown when the execution service returned nothing
// to display.
const NoOutputPlaceholder = "(none)"

// FormatVariables renders a variable list as "name = value" lines, one per
// variable, for showing what was sent beside the results.
func FormatVariables(vars []domain.Variable) string {
	lines := make([]string, len(vars))
	for i, v := range vars {
		lines[i] = v.Name + " = " + v.Value
	}
	return strings.Join(lines, "\n")
}

// UnescapeOutput converts the literal two-character sequences \n and \t
// coming back from the execution service into real newline and tab
// characters. Purely cosmetic: comparison and scoring never see this form.
func UnescapeOutput(s string) string {
	if s == "" {
		return NoOutputPlaceholder
	}
	s = strings.ReplaceAll(s, `\n`, "\n")
	return strings.ReplaceAll(s, `\t`, "\t")
}
