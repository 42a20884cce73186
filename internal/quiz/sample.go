// Package quiz implements the tagging game itself: drawing a run of
// sentences from the corpus, grading submitted tag sequences against
// the reference tagging, and keeping the aggregate statistics a session
// reports at the end.
package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"tagquiz/internal/treebank"
)

// Sample is a contiguous run of corpus sentences chosen for one quiz.
// Start is the index of the first sentence within the corpus, shown to
// the player so a run can be located again.
type Sample struct {
	Sentences []treebank.Sentence
	Start     int
}

// TokenCount sums the reference tokens across the sampled sentences.
func (s Sample) TokenCount() int {
	n := 0
	for _, sent := range s.Sentences {
		n += len(sent)
	}
	return n
}

// Draw picks n consecutive sentences starting at a random offset. When
// n meets or exceeds the corpus size the whole corpus is returned in
// order. The random source is injected so a run can be reproduced; a
// nil rng falls back to a time-seeded one.
func Draw(rng *rand.Rand, c *treebank.Corpus, n int) (Sample, error) {
	if n <= 0 {
		return Sample{}, fmt.Errorf("sample size must be positive, got %d", n)
	}
	if c == nil || c.Len() == 0 {
		return Sample{}, fmt.Errorf("corpus is empty")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if n >= c.Len() {
		return Sample{Sentences: c.Sentences, Start: 0}, nil
	}
	start := rng.Intn(c.Len() - n + 1)
	return Sample{Sentences: c.Sentences[start : start+n], Start: start}, nil
}
