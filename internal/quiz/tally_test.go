package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTally_AddAndCount(t *testing.T) {
	tally := NewTally()
	tally.Add("NN")
	tally.Add("VBD")
	tally.Add("NN")

	assert.Equal(t, 2, tally.Count("NN"))
	assert.Equal(t, 1, tally.Count("VBD"))
	assert.Zero(t, tally.Count("JJ"))
	assert.Equal(t, 2, tally.Len())
}

func TestTally_RankedOrdersByCount(t *testing.T) {
	tally := NewTally()
	for _, tag := range []string{"IN", "NN", "NN", "VBD", "NN", "VBD"} {
		tally.Add(tag)
	}

	want := []TagCount{{"NN", 3}, {"VBD", 2}, {"IN", 1}}
	assert.Equal(t, want, tally.Ranked())
}

func TestTally_TiesKeepFirstSeenOrder(t *testing.T) {
	t.Run("NN before VBZ", func(t *testing.T) {
		tally := NewTally()
		for _, tag := range []string{"NN", "VBZ", "NN", "VBZ"} {
			tally.Add(tag)
		}
		assert.Equal(t, []TagCount{{"NN", 2}, {"VBZ", 2}}, tally.Ranked())
	})

	t.Run("VBZ before NN", func(t *testing.T) {
		tally := NewTally()
		for _, tag := range []string{"VBZ", "NN", "VBZ", "NN"} {
			tally.Add(tag)
		}
		assert.Equal(t, []TagCount{{"VBZ", 2}, {"NN", 2}}, tally.Ranked())
	})
}

func TestTally_Empty(t *testing.T) {
	tally := NewTally()
	assert.Zero(t, tally.Len())
	assert.Empty(t, tally.Ranked())
}
