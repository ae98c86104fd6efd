package solver

import "math/rand/v2"

// SentenceSnapshot is the gob-friendly form of a Sentence.
type SentenceSnapshot struct {
	Cells []Cell
	Count int
}

// Snapshot is the gob-friendly form of a Solver, used to persist a
// session between requests. The random source is not part of it and
// must be supplied again on restore.
type Snapshot struct {
	Height, Width int
	MovesMade     []Cell
	Safes         []Cell
	Mines         []Cell
	Knowledge     []SentenceSnapshot
}

func (s *Solver) Snapshot() Snapshot {
	knowledge := make([]SentenceSnapshot, len(s.knowledge))
	for i, sentence := range s.knowledge {
		knowledge[i] = SentenceSnapshot{
			Cells: sentence.Cells(),
			Count: sentence.Count(),
		}
	}
	return Snapshot{
		Height:    s.height,
		Width:     s.width,
		MovesMade: s.MovesMade(),
		Safes:     s.Safes(),
		Mines:     s.Mines(),
		Knowledge: knowledge,
	}
}

func FromSnapshot(snap Snapshot, rnd *rand.Rand) *Solver {
	s := New(snap.Height, snap.Width, rnd)
	for _, c := range snap.MovesMade {
		s.movesMade.add(c)
	}
	for _, c := range snap.Safes {
		s.safes.add(c)
	}
	for _, c := range snap.Mines {
		s.mines.add(c)
	}
	s.knowledge = make([]*Sentence, len(snap.Knowledge))
	for i, sentence := range snap.Knowledge {
		s.knowledge[i] = NewSentence(sentence.Cells, sentence.Count)
	}
	return s
}
