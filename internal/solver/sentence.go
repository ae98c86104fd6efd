package solver

import (
	"fmt"
	"strings"
)

/*
A Sentence is a logical statement about the board: exactly `count`
of `cells` are mines. Cells whose status becomes known are removed
from the sentence, so `cells` only ever holds unresolved cells.
*/
type Sentence struct {
	cells set[Cell]
	count int
}

func NewSentence(cells []Cell, count int) *Sentence {
	if count < 0 {
		count = 0
	}
	return &Sentence{cells: newSet(cells...), count: count}
}

func (s Sentence) Count() int {
	return s.count
}

func (s Sentence) Len() int {
	return len(s.cells)
}

func (s Sentence) Empty() bool {
	return len(s.cells) == 0
}

func (s Sentence) Has(cell Cell) bool {
	return s.cells.has(cell)
}

func (s Sentence) Cells() []Cell {
	return sortedCells(s.cells.slice())
}

// KnownMines returns every cell of the sentence when all of them must
// be mines, i.e. the mine count equals the number of cells and is not
// zero. Otherwise it returns nothing.
func (s Sentence) KnownMines() []Cell {
	if len(s.cells) == s.count && s.count != 0 {
		return s.cells.slice()
	}
	return nil
}

// KnownSafes returns every cell of the sentence when none of them can
// be a mine, i.e. the mine count is zero. Otherwise it returns nothing.
func (s Sentence) KnownSafes() []Cell {
	if s.count == 0 {
		return s.cells.slice()
	}
	return nil
}

// MarkMine narrows the sentence given that cell is known to be a mine.
// The count never drops below zero, even on inconsistent input.
func (s *Sentence) MarkMine(cell Cell) {
	if !s.cells.has(cell) {
		return
	}
	s.cells.remove(cell)
	if s.count > 0 {
		s.count--
	}
}

// MarkSafe narrows the sentence given that cell is known to be safe.
func (s *Sentence) MarkSafe(cell Cell) {
	s.cells.remove(cell)
}

// Equal reports whether two sentences state the same fact: same cell
// set, same count. Used to deduplicate derived sentences.
func (s Sentence) Equal(other Sentence) bool {
	return s.count == other.count && s.cells.equal(other.cells)
}

func (s Sentence) String() string {
	cells := s.Cells()
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return fmt.Sprintf("{%s} = %d", strings.Join(parts, " "), s.count)
}
