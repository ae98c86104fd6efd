package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	m.Run()
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestAddKnowledgeConcludesMine(t *testing.T) {
	// 1x2 board: opening 0:0 with one mined neighbor pins 0:1.
	s := New(1, 2, testRand())
	s.AddKnowledge(Cell{0, 0}, 1)

	assert.Equal(t, []Cell{{0, 1}}, s.Mines())
	assert.Equal(t, []Cell{{0, 0}}, s.Safes())
}

func TestAddKnowledgeConcludesSafes(t *testing.T) {
	// 1x3 board: a zero count clears both neighbors.
	s := New(1, 3, testRand())
	s.AddKnowledge(Cell{0, 1}, 0)

	assert.Empty(t, s.Mines())
	assert.Equal(t, []Cell{{0, 0}, {0, 1}, {0, 2}}, s.Safes())
}

func TestSubsetInference(t *testing.T) {
	// {A,B,C} = 1 and {A,B} = 1 must yield {C} = 0.
	var (
		a = Cell{0, 0}
		b = Cell{0, 1}
		c = Cell{0, 2}
		s = New(3, 3, testRand())
	)
	s.knowledge = append(s.knowledge,
		NewSentence([]Cell{a, b, c}, 1),
		NewSentence([]Cell{a, b}, 1),
	)
	s.propagate()

	assert.Contains(t, s.Safes(), c)
	assert.NotContains(t, s.Mines(), c)
}

func TestSubsetInferenceEitherOrder(t *testing.T) {
	// The superset appearing first must not hide the inference.
	var (
		a = Cell{0, 0}
		b = Cell{0, 1}
		c = Cell{0, 2}
		s = New(3, 3, testRand())
	)
	s.knowledge = append(s.knowledge,
		NewSentence([]Cell{a, b}, 1),
		NewSentence([]Cell{a, b, c}, 1),
	)
	s.propagate()

	assert.Contains(t, s.Safes(), c)
}

func TestPropagationFixedPoint(t *testing.T) {
	s := New(3, 3, testRand())
	s.AddKnowledge(Cell{0, 0}, 1)
	s.AddKnowledge(Cell{2, 2}, 2)

	var (
		safes     = s.Safes()
		mines     = s.Mines()
		knowledge = s.KnowledgeSize()
	)
	s.propagate()

	assert.Equal(t, safes, s.Safes())
	assert.Equal(t, mines, s.Mines())
	assert.Equal(t, knowledge, s.KnowledgeSize())
}

func TestMarkIdempotent(t *testing.T) {
	s := New(2, 2, testRand())
	s.knowledge = append(s.knowledge, NewSentence([]Cell{{0, 0}, {0, 1}}, 1))

	s.MarkMine(Cell{0, 0})
	mines, count := s.Mines(), s.knowledge[0].Count()
	s.MarkMine(Cell{0, 0})
	assert.Equal(t, mines, s.Mines())
	assert.Equal(t, count, s.knowledge[0].Count())

	s.MarkSafe(Cell{0, 1})
	safes := s.Safes()
	s.MarkSafe(Cell{0, 1})
	assert.Equal(t, safes, s.Safes())
}

func TestSafesAndMinesDisjoint(t *testing.T) {
	s := New(4, 4, testRand())
	observations := []struct {
		cell  Cell
		count int
	}{
		{Cell{0, 0}, 1},
		{Cell{0, 2}, 0},
		{Cell{2, 2}, 3},
		{Cell{3, 0}, 1},
	}
	for _, obs := range observations {
		s.AddKnowledge(obs.cell, obs.count)
		for _, m := range s.Mines() {
			assert.NotContains(t, s.Safes(), m)
		}
		for _, made := range s.MovesMade() {
			assert.Contains(t, s.Safes(), made)
		}
	}
}

func TestSafeMove(t *testing.T) {
	s := New(2, 2, testRand())

	_, ok := s.SafeMove()
	assert.False(t, ok)

	s.MarkSafe(Cell{0, 0})
	cell, ok := s.SafeMove()
	require.True(t, ok)
	assert.Equal(t, Cell{0, 0}, cell)

	s.movesMade.add(cell)
	_, ok = s.SafeMove()
	assert.False(t, ok)
}

func TestRandomMoveAvoidsPlayedAndMined(t *testing.T) {
	s := New(2, 2, testRand())
	s.movesMade.add(Cell{0, 0})
	s.safes.add(Cell{0, 0})
	s.MarkMine(Cell{1, 1})

	for range 50 {
		cell, ok := s.RandomMove(2)
		require.True(t, ok)
		assert.NotEqual(t, Cell{0, 0}, cell)
		assert.NotEqual(t, Cell{1, 1}, cell)
	}
}

func TestRandomMoveNoCandidates(t *testing.T) {
	s := New(1, 2, testRand())
	s.movesMade.add(Cell{0, 0})
	s.MarkMine(Cell{0, 1})

	_, ok := s.RandomMove(1)
	assert.False(t, ok)
}

func TestRandomMovePrefersLowRisk(t *testing.T) {
	// {0:0, 0:1} = 1 puts a 50% local risk on the first row; the
	// untouched second row only carries the 1/4 baseline.
	s := New(2, 2, testRand())
	s.knowledge = append(s.knowledge, NewSentence([]Cell{{0, 0}, {0, 1}}, 1))

	for range 50 {
		cell, ok := s.RandomMove(1)
		require.True(t, ok)
		assert.Equal(t, 1, cell.Row, "expected a second-row cell, got %s", cell)
	}
}

func TestRandomMoveBreaksTiesUniformly(t *testing.T) {
	s := New(1, 2, testRand())
	seen := map[Cell]int{}
	for range 200 {
		cell, ok := s.RandomMove(1)
		require.True(t, ok)
		seen[cell]++
	}
	assert.Len(t, seen, 2)
	for cell, n := range seen {
		assert.Greater(t, n, 50, "cell %s starved", cell)
	}
}

func TestAddKnowledgeAdjustsForKnownMines(t *testing.T) {
	// 0:1 is already a known mine; opening 1:1 with count 1 accounts
	// for it and must clear the rest of the neighborhood.
	s := New(2, 3, testRand())
	s.MarkMine(Cell{0, 1})
	s.AddKnowledge(Cell{1, 1}, 1)

	assert.Equal(t, []Cell{{0, 1}}, s.Mines())
	assert.ElementsMatch(t,
		[]Cell{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
		s.Safes())
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := New(3, 3, testRand())
	s.AddKnowledge(Cell{0, 0}, 1)
	s.AddKnowledge(Cell{2, 2}, 2)

	restored := FromSnapshot(s.Snapshot(), testRand())

	assert.Equal(t, s.MovesMade(), restored.MovesMade())
	assert.Equal(t, s.Safes(), restored.Safes())
	assert.Equal(t, s.Mines(), restored.Mines())
	assert.Equal(t, s.KnowledgeSize(), restored.KnowledgeSize())
}
