package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownMines(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {0, 1}}, 2)
	assert.ElementsMatch(t, []Cell{{0, 0}, {0, 1}}, s.KnownMines())
	assert.Empty(t, s.KnownSafes())

	s = NewSentence([]Cell{{0, 0}, {0, 1}}, 1)
	assert.Empty(t, s.KnownMines())
	assert.Empty(t, s.KnownSafes())
}

func TestKnownSafes(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {0, 1}}, 0)
	assert.ElementsMatch(t, []Cell{{0, 0}, {0, 1}}, s.KnownSafes())
	assert.Empty(t, s.KnownMines())
}

// The two conditions are mutually exclusive on any non-empty sentence.
func TestKnownMinesAndSafesExclusive(t *testing.T) {
	tests := []struct {
		cells []Cell
		count int
	}{
		{[]Cell{{0, 0}}, 0},
		{[]Cell{{0, 0}}, 1},
		{[]Cell{{0, 0}, {1, 1}, {2, 2}}, 1},
		{[]Cell{{0, 0}, {1, 1}, {2, 2}}, 3},
	}
	for _, test := range tests {
		s := NewSentence(test.cells, test.count)
		if len(s.KnownMines()) > 0 {
			assert.Empty(t, s.KnownSafes(), "sentence %s", s)
		}
	}
}

func TestMarkMine(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {0, 1}, {0, 2}}, 2)

	s.MarkMine(Cell{0, 1})
	assert.Equal(t, 1, s.Count())
	assert.ElementsMatch(t, []Cell{{0, 0}, {0, 2}}, s.Cells())

	// marking again is a no-op
	s.MarkMine(Cell{0, 1})
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 2, s.Len())

	// unknown cells are ignored
	s.MarkMine(Cell{5, 5})
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 2, s.Len())
}

func TestMarkMineClampsCount(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {0, 1}}, 0)
	s.MarkMine(Cell{0, 0})
	assert.Equal(t, 0, s.Count())
}

func TestMarkSafe(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {0, 1}}, 1)

	s.MarkSafe(Cell{0, 0})
	assert.Equal(t, 1, s.Count())
	assert.ElementsMatch(t, []Cell{{0, 1}}, s.Cells())

	s.MarkSafe(Cell{0, 0})
	assert.Equal(t, 1, s.Len())
}

func TestSentenceEqual(t *testing.T) {
	a := NewSentence([]Cell{{0, 0}, {0, 1}}, 1)
	b := NewSentence([]Cell{{0, 1}, {0, 0}}, 1)
	c := NewSentence([]Cell{{0, 0}, {0, 1}}, 2)
	d := NewSentence([]Cell{{0, 0}}, 1)

	assert.True(t, a.Equal(*b))
	assert.True(t, b.Equal(*a))
	assert.False(t, a.Equal(*c))
	assert.False(t, a.Equal(*d))
}

func TestSentenceString(t *testing.T) {
	s := NewSentence([]Cell{{1, 0}, {0, 2}}, 1)
	assert.Equal(t, "{0:2 1:0} = 1", s.String())
}
