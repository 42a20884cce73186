package quiz

import (
	"github.com/google/uuid"

	"tagquiz/internal/treebank"
)

// Session is one quiz run: the drawn sentences plus everything graded
// so far. Nothing here touches disk; a session lives and dies with the
// process.
type Session struct {
	ID      string
	Sample  Sample
	Results []Result

	// Missed tallies reference tags at wrongly answered positions;
	// Overused tallies what the player put there instead. Positions the
	// submission never covered feed Missed only.
	Missed   *Tally
	Overused *Tally
}

// NewSession starts a session over the given sample.
func NewSession(sample Sample) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Sample:   sample,
		Missed:   NewTally(),
		Overused: NewTally(),
	}
}

// Done reports whether every drawn sentence has been graded.
func (s *Session) Done() bool { return len(s.Results) == len(s.Sample.Sentences) }

// Current returns the next ungraded sentence and its zero-based
// position within the sample. Callers must check Done first.
func (s *Session) Current() (int, treebank.Sentence) {
	i := len(s.Results)
	return i, s.Sample.Sentences[i]
}

// Grade scores a submission against the current sentence, folds its
// misses into the aggregate tallies, and advances the session.
func (s *Session) Grade(submitted []string) Result {
	_, sent := s.Current()
	res := Score(sent, submitted)
	for _, m := range res.Misses {
		s.Missed.Add(m.Want)
		if m.Got != "" {
			s.Overused.Add(m.Got)
		}
	}
	s.Results = append(s.Results, res)
	return res
}

// Score sums the graded results: correct answers over reference tokens.
// A session abandoned halfway reports only what was actually graded.
func (s *Session) Score() (correct, total int) {
	for _, r := range s.Results {
		correct += r.Correct
		total += r.Total
	}
	return correct, total
}

// Percent is the aggregate score as a percentage.
func (s *Session) Percent() float64 {
	correct, total := s.Score()
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
