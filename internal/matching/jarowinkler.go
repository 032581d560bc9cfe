package matching

const (
	winklerPrefixLimit = 4
	winklerScale       = 0.1
)

// Similarity compares two raw team names after normalization.
func Similarity(a, b string) float64 {
	return JaroWinkler(Normalize(a), Normalize(b))
}

// JaroWinkler scores two strings in [0,1]. Either side empty scores 0.
func JaroWinkler(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	// The greedy match scan depends on operand order; fix it so the score
	// is the same whichever way round the caller passes the names.
	if len(b) < len(a) || (len(b) == len(a) && b < a) {
		a, b = b, a
	}
	ra, rb := []rune(a), []rune(b)

	jaro := jaroScore(ra, rb)
	if jaro == 0 {
		return 0
	}

	prefix := 0
	for i := 0; i < winklerPrefixLimit && i < len(ra) && i < len(rb); i++ {
		if ra[i] != rb[i] {
			break
		}
		prefix++
	}

	score := jaro + float64(prefix)*winklerScale*(1-jaro)
	if score > 1 {
		return 1
	}
	return score
}

func jaroScore(a, b []rune) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	window := longest/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, len(a))
	matchedB := make([]bool, len(b))
	matches := 0
	for i := range a {
		start := i - window
		if start < 0 {
			start = 0
		}
		end := i + window + 1
		if end > len(b) {
			end = len(b)
		}
		for j := start; j < end; j++ {
			if matchedB[j] || a[i] != b[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	transpositions := 0
	j := 0
	for i := range a {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if a[i] != b[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(transpositions) / 2
	return (m/float64(len(a)) + m/float64(len(b)) + (m-t)/m) / 3
}
