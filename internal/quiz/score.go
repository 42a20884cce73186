package quiz

import (
	"strings"

	"tagquiz/internal/treebank"
)

// Miss records one wrongly tagged position within a sentence.
type Miss struct {
	Index int
	Token string
	Want  string
	// Got is empty when the submission ran out before this position.
	Got string
}

// Result is the outcome of grading one submission against one sentence.
// Total always equals the reference length, so per-sentence results sum
// into an aggregate score whose denominator is the number of reference
// tokens, regardless of how many tags the player actually typed.
type Result struct {
	Sentence  treebank.Sentence
	Submitted []string
	Correct   int
	Total     int
	Misses    []Miss
	// Surplus counts submitted tags past the reference length. They
	// never score and never land in a tally, but the player is told
	// about them.
	Surplus int
}

// Percent is the per-sentence score as a percentage of reference tokens.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Score grades a submission against the reference tagging. Comparison
// is case-insensitive and position-by-position: every reference token
// counts, positions the submission left uncovered are misses with an
// empty Got, and extra tags beyond the reference length are ignored
// apart from the Surplus count. Submitted tags are upper-cased before
// they are stored, so tallies built from the result never split on
// case. Grading is pure; scoring the same submission twice yields the
// same result.
func Score(sent treebank.Sentence, submitted []string) Result {
	norm := make([]string, len(submitted))
	for i, tag := range submitted {
		norm[i] = strings.ToUpper(strings.TrimSpace(tag))
	}

	res := Result{Sentence: sent, Submitted: norm, Total: len(sent)}
	for i, word := range sent {
		var got string
		if i < len(norm) {
			got = norm[i]
		}
		if got != "" && strings.EqualFold(got, word.Tag) {
			res.Correct++
			continue
		}
		res.Misses = append(res.Misses, Miss{Index: i, Token: word.Token, Want: word.Tag, Got: got})
	}
	if len(norm) > res.Total {
		res.Surplus = len(norm) - res.Total
	}
	return res
}
