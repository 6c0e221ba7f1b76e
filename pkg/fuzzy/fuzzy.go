package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// LevenshteinDistance calculates the edit distance between two strings
// after case and accent folding.
func LevenshteinDistance(s1, s2 string) int {
	r1 := []rune(normalizeString(s1))
	r2 := []rune(normalizeString(s2))
	m, n := len(r1), len(r2)

	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// Two rolling rows are enough.
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// FuzzyMatch checks if query fuzzy-matches text within a given threshold
// threshold is the maximum allowed edit distance
func FuzzyMatch(query, text string, threshold int) bool {
	query = normalizeString(query)
	text = normalizeString(text)
	if query == "" {
		return true
	}

	if strings.Contains(text, query) {
		return true
	}

	for _, word := range strings.Fields(text) {
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
		if strings.HasPrefix(word, query) {
			return true
		}
	}

	return false
}

// Threshold returns the typo tolerance for a query of this length.
func Threshold(query string) int {
	switch l := len([]rune(normalizeString(query))); {
	case l <= 3:
		return 1
	case l >= 8:
		return 3
	default:
		return 2
	}
}

// MatchExchange reports whether an exchange title or one of its speakers
// matches the query.
func MatchExchange(query, title string, speakers []string) bool {
	threshold := Threshold(query)
	if FuzzyMatch(query, title, threshold) {
		return true
	}
	for _, speaker := range speakers {
		if FuzzyMatch(query, speaker, threshold) {
			return true
		}
	}
	return false
}

// CalculateRelevanceScore scores how relevant an exchange is to a query.
// Higher score = more relevant. Title hits weigh more than speaker hits.
func CalculateRelevanceScore(query, title string, speakers []string) float64 {
	query = normalizeString(query)
	score := 0.0

	titleNorm := normalizeString(title)
	if strings.Contains(titleNorm, query) {
		score += 100.0
		if containsWord(titleNorm, query) {
			score += 50.0
		}
	} else {
		for _, word := range strings.Fields(titleNorm) {
			dist := LevenshteinDistance(query, word)
			if dist <= 2 {
				score += 50.0 - float64(dist)*15
			}
			if strings.HasPrefix(word, query) {
				score += 40.0
			}
		}
	}

	best := 0.0
	for _, speaker := range speakers {
		s := 0.0
		speakerNorm := normalizeString(speaker)
		if strings.Contains(speakerNorm, query) {
			s = 80.0
			if containsWord(speakerNorm, query) {
				s += 30.0
			}
		} else {
			for _, word := range strings.Fields(speakerNorm) {
				dist := LevenshteinDistance(query, word)
				if dist <= 2 {
					s += 40.0 - float64(dist)*12
				}
				if strings.HasPrefix(word, query) {
					s += 35.0
				}
			}
		}
		if s > best {
			best = s
		}
	}

	return score + best
}

// normalizeString lowercases, strips accents and collapses whitespace.
func normalizeString(s string) string {
	s = strings.ToLower(removeAccents(s))
	return strings.Join(strings.Fields(s), " ")
}

func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}

// removeAccents decomposes s and drops nonspacing marks, so "José" matches "jose".
func removeAccents(s string) string {
	var result strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch r {
		case 'đ':
			result.WriteRune('d')
		case 'Đ':
			result.WriteRune('D')
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
