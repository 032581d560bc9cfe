package matching

import (
	"regexp"
	"strings"
)

// Separators are tried in order; the bare hyphen comes last so names such
// as "Saint-Etienne" survive when a spaced separator is present.
var titleSeparators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+vs\.?\s+`),
	regexp.MustCompile(`(?i)\s+v\s+`),
	regexp.MustCompile(`\s+[-–—]\s+`),
	regexp.MustCompile(`\s*-\s*`),
}

// SplitEventTitle splits "Home vs Away" style titles into two names.
func SplitEventTitle(title string) (home, away string, ok bool) {
	title = strings.TrimSpace(title)
	for _, sep := range titleSeparators {
		parts := sep.Split(title, -1)
		if len(parts) != 2 {
			continue
		}
		home, away = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if home != "" && away != "" {
			return home, away, true
		}
	}
	return "", "", false
}
