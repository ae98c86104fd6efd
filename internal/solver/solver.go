package solver

import (
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

/*
Solver accumulates knowledge about a Minesweeper board from
"cell x:y has n mined neighbors" observations and deduces which
unopened cells are certainly safe or certainly mined.

A Solver is confined to a single game and a single goroutine; the
host must serialize access if it drives several games at once.
*/
type Solver struct {
	height, width int

	movesMade set[Cell]
	safes     set[Cell]
	mines     set[Cell]
	knowledge []*Sentence

	rnd *rand.Rand
}

// New creates a solver for a height×width board. The random source
// is used only to break ties between equally risky guesses; pass a
// seeded one for reproducible play.
func New(height, width int, rnd *rand.Rand) *Solver {
	return &Solver{
		height:    height,
		width:     width,
		movesMade: newSet[Cell](),
		safes:     newSet[Cell](),
		mines:     newSet[Cell](),
		rnd:       rnd,
	}
}

func (s *Solver) Height() int { return s.height }
func (s *Solver) Width() int  { return s.width }

// MovesMade returns a sorted snapshot of the cells already reported
// via AddKnowledge.
func (s *Solver) MovesMade() []Cell {
	return sortedCells(s.movesMade.slice())
}

// Safes returns a sorted snapshot of the cells known to be safe,
// played or not.
func (s *Solver) Safes() []Cell {
	return sortedCells(s.safes.slice())
}

// Mines returns a sorted snapshot of the cells known to be mines.
func (s *Solver) Mines() []Cell {
	return sortedCells(s.mines.slice())
}

// KnowledgeSize returns the number of sentences currently held.
func (s *Solver) KnowledgeSize() int {
	return len(s.knowledge)
}

// MarkMine records cell as a known mine and narrows every sentence
// accordingly. Idempotent.
func (s *Solver) MarkMine(cell Cell) {
	s.mines.add(cell)
	for _, sentence := range s.knowledge {
		sentence.MarkMine(cell)
	}
}

// MarkSafe records cell as known safe and narrows every sentence
// accordingly. Idempotent.
func (s *Solver) MarkSafe(cell Cell) {
	s.safes.add(cell)
	for _, sentence := range s.knowledge {
		sentence.MarkSafe(cell)
	}
}

func (s *Solver) inBounds(c Cell) bool {
	return 0 <= c.Row && c.Row < s.height && 0 <= c.Col && c.Col < s.width
}

// neighbors returns the in-bounds 8-neighborhood of cell, excluding
// the cell itself. Out-of-bounds coordinates clip naturally.
func (s *Solver) neighbors(cell Cell) []Cell {
	cells := make([]Cell, 0, 8)
	for row := cell.Row - 1; row <= cell.Row+1; row++ {
		for col := cell.Col - 1; col <= cell.Col+1; col++ {
			c := Cell{row, col}
			if c != cell && s.inBounds(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

/*
AddKnowledge ingests one observation: cell was opened and has count
mined neighbors. It must be called exactly once per revealed cell,
with count between 0 and the number of in-bounds neighbors. The
solver trusts the caller; it does not validate against any board.

The new fact is folded into the knowledge base and propagated to a
fixed point, so every deduction the current knowledge admits is
reflected in Safes and Mines on return.
*/
func (s *Solver) AddKnowledge(cell Cell, count int) {
	s.movesMade.add(cell)
	s.MarkSafe(cell)

	unresolved := newSet[Cell]()
	for _, n := range s.neighbors(cell) {
		if s.mines.has(n) {
			// accounted for, not an unknown
			count--
			continue
		}
		if !s.safes.has(n) {
			unresolved.add(n)
		}
	}
	if count < 0 {
		Log.WithFields(logrus.Fields{
			"cell": cell, "count": count,
		}).Warn("observation count below known mine count")
		count = 0
	}

	if len(unresolved) > 0 {
		s.knowledge = append(s.knowledge, &Sentence{cells: unresolved, count: count})
	}

	s.propagate()

	Log.WithFields(logrus.Fields{
		"cell":      cell,
		"count":     count,
		"knowledge": len(s.knowledge),
		"mines":     len(s.mines),
		"safes":     len(s.safes),
	}).Debug("knowledge updated")
}

type mark struct {
	cell Cell
	mine bool
}

/*
propagate runs the inference loop until a full pass changes nothing:

 1. resolve every sentence that now pins all its cells down and mark
    the cells globally (which narrows every other sentence),
 2. prune sentences that have become empty,
 3. derive the subset-difference sentence for every strict-subset
    pair, deduplicated against the knowledge base.
*/
func (s *Solver) propagate() {
	for changed := true; changed; {
		changed = false

		var pending deque.Deque[mark]
		for _, sentence := range s.knowledge {
			for _, c := range sentence.KnownMines() {
				if !s.mines.has(c) {
					pending.PushBack(mark{c, true})
				}
			}
			for _, c := range sentence.KnownSafes() {
				if !s.safes.has(c) {
					pending.PushBack(mark{c, false})
				}
			}
		}
		for pending.Len() > 0 {
			m := pending.PopFront()
			if m.mine {
				if s.mines.has(m.cell) {
					continue
				}
				s.MarkMine(m.cell)
			} else {
				if s.safes.has(m.cell) {
					continue
				}
				s.MarkSafe(m.cell)
			}
			changed = true
		}

		s.prune()

		var derived []*Sentence
		for i, a := range s.knowledge {
			for _, b := range s.knowledge[i+1:] {
				sub, super := a, b
				if !sub.cells.properSubsetOf(super.cells) {
					sub, super = b, a
					if !sub.cells.properSubsetOf(super.cells) {
						continue
					}
				}
				candidate := s.difference(super, sub)
				if candidate.Empty() {
					continue
				}
				if containsSentence(s.knowledge, candidate) ||
					containsSentence(derived, candidate) {
					continue
				}
				derived = append(derived, candidate)
				Log.WithFields(logrus.Fields{
					"sentence": candidate.String(),
					"from":     sub.String(),
					"of":       super.String(),
				}).Debug("inferred sentence")
			}
		}
		if len(derived) > 0 {
			s.knowledge = append(s.knowledge, derived...)
			changed = true
		}
	}
}

// difference derives "super − sub" given sub.cells ⊂ super.cells.
// Counts of well-formed sentences cannot produce a negative result;
// if one shows up the input was inconsistent and we clamp.
func (s *Solver) difference(super, sub *Sentence) *Sentence {
	cells := super.cells.clone()
	for c := range sub.cells {
		cells.remove(c)
	}
	count := super.count - sub.count
	if count < 0 {
		Log.WithFields(logrus.Fields{
			"super": super.String(), "sub": sub.String(),
		}).Warn("derived a negative mine count")
		count = 0
	}
	return &Sentence{cells: cells, count: count}
}

func (s *Solver) prune() {
	kept := s.knowledge[:0]
	for _, sentence := range s.knowledge {
		if !sentence.Empty() {
			kept = append(kept, sentence)
		}
	}
	s.knowledge = kept
}

func containsSentence(knowledge []*Sentence, candidate *Sentence) bool {
	for _, sentence := range knowledge {
		if sentence.Equal(*candidate) {
			return true
		}
	}
	return false
}

// SafeMove returns a cell known to be safe that has not been played
// yet. Which one of several candidates is returned is unspecified.
func (s *Solver) SafeMove() (Cell, bool) {
	for c := range s.safes {
		if !s.movesMade.has(c) {
			return c, true
		}
	}
	return Cell{}, false
}

/*
RandomMove picks a cell among those not yet played and not known to
be mines, preferring the lowest estimated mine risk.

The risk of a cell is the maximum of a uniform prior over all
unresolved cells, (totalMineCount − known mines) / candidates, and
the local density count/|cells| of every sentence mentioning the
cell. That is a heuristic upper bound, not a posterior. Ties are
broken uniformly at random.
*/
func (s *Solver) RandomMove(totalMineCount int) (Cell, bool) {
	var remaining []Cell
	for row := range s.height {
		for col := range s.width {
			c := Cell{row, col}
			if !s.movesMade.has(c) && !s.mines.has(c) {
				remaining = append(remaining, c)
			}
		}
	}
	if len(remaining) == 0 {
		return Cell{}, false
	}

	baseline := float64(totalMineCount-len(s.mines)) / float64(len(remaining))

	var (
		minRisk float64
		safest  []Cell
	)
	for _, c := range remaining {
		risk := baseline
		for _, sentence := range s.knowledge {
			if !sentence.Has(c) {
				continue
			}
			if local := float64(sentence.Count()) / float64(sentence.Len()); local > risk {
				risk = local
			}
		}
		switch {
		case len(safest) == 0 || risk < minRisk:
			minRisk = risk
			safest = append(safest[:0], c)
		case risk == minRisk:
			safest = append(safest, c)
		}
	}

	return safest[s.rnd.IntN(len(safest))], true
}
