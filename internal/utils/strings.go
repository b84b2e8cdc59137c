package utils

import (
	"strings"

	"github.com/mkerring/envelock/internal/ui"
)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatAnnotatedPaths formats paths with a per-path annotation, used for
// the new-vs-overwrite selection listing.
func FormatAnnotatedPaths(paths []string, annotations []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		if i < len(annotations) && annotations[i] != "" {
			b.WriteString(" ")
			b.WriteString(ui.Muted.Sprint(annotations[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}
