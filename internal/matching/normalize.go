// Package matching canonicalizes free-text team names and scores how alike
// two of them are.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// aliases maps a folded full name onto its canonical spelling.
var aliases = map[string]string{
	"inter":                 "inter",
	"internazionale":        "inter",
	"internazionale milano": "inter",
	"inter milan":           "inter",
	"tottenham hotspur":     "tottenham",
	"spurs":                 "tottenham",
	"leeds united":          "leeds",
	"crystal palace":        "crystal palace",
	"sunderland":            "sunderland",
	"cremonese":             "cremonese",
	"napoli":                "napoli",
	"bologna":               "bologna",
	"sassuolo":              "sassuolo",
	"atalanta":              "atalanta",
	"algeria":               "algeria",
	"burkina faso":          "burkina faso",
	"manchester united":     "man united",
	"man utd":               "man united",
	"manchester city":       "man city",
	"paris saint germain":   "psg",
	"paris sg":              "psg",
	"bayern munchen":        "bayern munich",
	"hellas verona":         "verona",
}

// clubTokens are organisational words dropped as whole words.
var clubTokens = map[string]struct{}{
	"fc":     {},
	"calcio": {},
	"ss":     {},
	"as":     {},
	"ass":    {},
	"ssc":    {},
	"us":     {},
	"ac":     {},
	"sc":     {},
	"club":   {},
}

const maxCanonicalPasses = 4

// Normalize returns the canonical form of a team name. The result is a
// fixed point: Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	s := fold(name)
	for i := 0; i < maxCanonicalPasses; i++ {
		next := canonicalize(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

// fold lowercases, strips diacritics, turns punctuation into spaces and
// collapses whitespace.
func fold(name string) string {
	stripped, _, err := transform.String(newDiacriticStripper(), strings.ToLower(name))
	if err != nil {
		stripped = strings.ToLower(name)
	}
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, stripped)
	return strings.Join(strings.Fields(cleaned), " ")
}

func canonicalize(s string) string {
	if alias, ok := aliases[s]; ok {
		s = alias
	}
	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if _, drop := clubTokens[w]; !drop {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// Transformers carry state, so each call builds its own chain.
func newDiacriticStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// QueryToken renders a name for provider search strings: diacritics
// stripped, case kept, and every run of non-alphanumerics joined by "_".
func QueryToken(name string) string {
	stripped, _, err := transform.String(newDiacriticStripper(), name)
	if err != nil {
		stripped = name
	}
	cleaned := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return ' '
	}, stripped)
	return strings.Join(strings.Fields(cleaned), "_")
}
