package matching

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Tottenham Hotspur!":  "tottenham",
		"FC Internazionale":   "inter",
		"Internazionale":      "inter",
		"  Inter  ":           "inter",
		"SSC Napoli":          "napoli",
		"AS Roma":             "roma",
		"US Cremonese":        "cremonese",
		"Atalanta BC":         "atalanta bc",
		"FC Bayern München":   "bayern munich",
		"Club Atlético":       "atletico",
		"Sassuolo Calcio":     "sassuolo",
		"Manchester United":   "man united",
		"Paris Saint-Germain": "psg",
		"FC":                  "",
		"":                    "",
	}
	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeKeepsClubTokensInsideWords(t *testing.T) {
	if got := Normalize("Ascoli"); got != "ascoli" {
		t.Fatalf("expected token stripping to respect word boundaries, got %q", got)
	}
	if got := Normalize("Bassano"); got != "bassano" {
		t.Fatalf("expected bassano untouched, got %q", got)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"FC Internazionale Milano",
		"Tottenham Hotspur!",
		"A.C. Milan",
		"Borussia Mönchengladbach",
		"ss lazio",
		"Club Brugge KV",
		"Paris Saint-Germain FC",
		"   ",
		"Ünïcödé   FC   Çlub",
	}
	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestAliasFolding(t *testing.T) {
	if Normalize("Internazionale") != Normalize("Inter") {
		t.Fatal("expected Internazionale and Inter to fold together")
	}
	if got := Similarity("Internazionale", "Inter"); got <= 0.95 {
		t.Fatalf("expected similarity > 0.95, got %f", got)
	}
	if Normalize("Tottenham Hotspur!") != Normalize("Tottenham") {
		t.Fatal("expected punctuation and alias folding for Tottenham")
	}
}

func TestQueryToken(t *testing.T) {
	cases := map[string]string{
		"Crystal Palace":  "Crystal_Palace",
		"Atlético Madrid": "Atletico_Madrid",
		"Paris S.G.":      "Paris_S_G",
		"  Napoli ":       "Napoli",
		"Burkina Faso":    "Burkina_Faso",
	}
	for input, want := range cases {
		if got := QueryToken(input); got != want {
			t.Fatalf("QueryToken(%q) = %q, want %q", input, got, want)
		}
	}
}
