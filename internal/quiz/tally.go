package quiz

import "sort"

// Tally counts tag occurrences while remembering first-seen order, so
// equal counts rank the same way on every run.
type Tally struct {
	counts map[string]int
	order  []string
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add records one occurrence of tag.
func (t *Tally) Add(tag string) {
	if _, seen := t.counts[tag]; !seen {
		t.order = append(t.order, tag)
	}
	t.counts[tag]++
}

// Count returns how often tag has been added.
func (t *Tally) Count(tag string) int { return t.counts[tag] }

// Len returns the number of distinct tags tallied.
func (t *Tally) Len() int { return len(t.order) }

// TagCount pairs a tag with how often it was tallied.
type TagCount struct {
	Tag   string
	Count int
}

// Ranked returns the tallied tags by descending count; ties keep
// first-seen order.
func (t *Tally) Ranked() []TagCount {
	ranked := make([]TagCount, 0, len(t.order))
	for _, tag := range t.order {
		ranked = append(ranked, TagCount{Tag: tag, Count: t.counts[tag]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
