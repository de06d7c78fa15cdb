package menu

import (
	"strings"
	"unicode"
)

// Threshold is the confidence below which a match is unusable. Callers treat
// anything under it as "no match" and report the spoken name instead.
const Threshold = 0.5

// Match is the result of resolving one spoken name. Item is nil when the
// catalog held no candidate at all.
type Match struct {
	Item       *Item
	Confidence float64
}

// Matcher resolves spoken item names against a catalog snapshot. Matching
// indices are precomputed from the snapshot at construction; rebuild the
// matcher when the catalog changes instead of mutating it.
type Matcher struct {
	entries []matchEntry
}

type matchEntry struct {
	key    string
	tokens []string
	item   *Item
}

// NewMatcher builds a matcher over a copy of the catalog snapshot. Aliases
// index to the same item as its primary name.
func NewMatcher(catalog []Item) *Matcher {
	matcher := &Matcher{}
	for i := range catalog {
		item := catalog[i]
		names := append([]string{item.Name}, item.Aliases...)
		for _, name := range names {
			key := normalizeName(name)
			if key == "" {
				continue
			}
			matcher.entries = append(matcher.entries, matchEntry{
				key:    key,
				tokens: strings.Fields(key),
				item:   &item,
			})
		}
	}
	return matcher
}

// Match returns the best catalog candidate for a spoken name with a
// confidence in [0,1]. The result is deterministic and independent of catalog
// order: ties resolve to the lexicographically smaller key, then smaller ID.
func (m *Matcher) Match(spokenName string) Match {
	key := normalizeName(spokenName)
	if key == "" || len(m.entries) == 0 {
		return Match{}
	}
	tokens := strings.Fields(key)

	best := Match{}
	bestKey := ""
	for _, entry := range m.entries {
		confidence := scoreNames(key, tokens, entry)
		if confidence < best.Confidence {
			continue
		}
		if confidence == best.Confidence && best.Item != nil {
			if entry.key > bestKey {
				continue
			}
			if entry.key == bestKey && entry.item.ID >= best.Item.ID {
				continue
			}
		}
		best = Match{Item: entry.item, Confidence: confidence}
		bestKey = entry.key
	}
	return best
}

func scoreNames(key string, tokens []string, entry matchEntry) float64 {
	if key == entry.key {
		return 1.0
	}

	if strings.Contains(entry.key, key) || strings.Contains(key, entry.key) {
		shorter, longer := len(key), len(entry.key)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return 0.7 + 0.25*float64(shorter)/float64(longer)
	}

	editScore := 1.0 - float64(levenshtein(key, entry.key))/float64(max(len([]rune(key)), len([]rune(entry.key))))
	if editScore < 0 {
		editScore = 0
	}

	overlap := 0
	for _, token := range tokens {
		for _, candidate := range entry.tokens {
			if token == candidate {
				overlap++
				break
			}
		}
	}
	tokenScore := 0.85 * float64(overlap) / float64(max(len(tokens), len(entry.tokens)))

	return max(editScore, tokenScore)
}

// normalizeName lowercases, strips punctuation and collapses whitespace so
// that transcription noise like casing or stray commas does not defeat exact
// matches.
func normalizeName(name string) string {
	var builder strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(r)
			lastSpace = false
		case !lastSpace:
			builder.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(builder.String())
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	lenA, lenB := len(ra), len(rb)

	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	dp := make([][]int, lenA+1)
	for i := range dp {
		dp[i] = make([]int, lenB+1)
		dp[i][0] = i
	}
	for j := 0; j <= lenB; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			dp[i][j] = min(
				dp[i-1][j]+1,
				dp[i][j-1]+1,
				dp[i-1][j-1]+cost,
			)
		}
	}
	return dp[lenA][lenB]
}
