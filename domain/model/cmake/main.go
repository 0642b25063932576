package cmake

import "strings"

const noFilesPlaceholder = "# No files found"

// Declaration is one generated set() block assigning a file list to a CMake
// variable.
type Declaration struct {
	Variable string
	Files    []string
}

// Render returns the declaration exactly as it is written to disk. The
// format is stable so that regenerating an unchanged tree reproduces the
// file byte for byte: one entry per line, four-space indent, no trailing
// newline after the closing parenthesis. An empty list renders a comment
// instead of entries so the variable is still defined.
func (d Declaration) Render() string {
	var b strings.Builder
	b.WriteString("set(")
	b.WriteString(d.Variable)
	b.WriteString("\n")
	if len(d.Files) == 0 {
		b.WriteString("    ")
		b.WriteString(noFilesPlaceholder)
		b.WriteString("\n")
	} else {
		for _, f := range d.Files {
			b.WriteString("    ")
			b.WriteString(f)
			b.WriteString("\n")
		}
	}
	b.WriteString(")")
	return b.String()
}
