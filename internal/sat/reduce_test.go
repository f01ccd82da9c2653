package sat

import (
	"math/rand"
	"testing"
)

// fixedSource is a math/rand.Source that always returns the same value,
// letting tests force CoinFlip() to a known outcome without depending on
// the default seed's actual sequence.
type fixedSource int64

func (f fixedSource) Int63() int64 { return int64(f) }
func (f fixedSource) Seed(int64)   {}

func newFixedRNG(always int64) *rng {
	return &rng{rand.New(fixedSource(always))}
}

func TestPruneLearned_NeverDropsLockedClause(t *testing.T) {
	s := NewSolver()
	for i := 0; i < 3; i++ {
		s.AddVariable()
	}
	ref := s.attachClause(lits(1, 2, 3), true)
	s.trail.assign(s.vs, PositiveLiteral(0), ref)

	s.rng = newFixedRNG(0) // CoinFlip always true
	s.pruneLearned()

	if got := s.store.Literals(ref); len(got) == 0 {
		t.Errorf("pruneLearned() detached a locked clause")
	}
}

func TestPruneLearned_NeverDropsBinaryClause(t *testing.T) {
	s := NewSolver()
	for i := 0; i < 2; i++ {
		s.AddVariable()
	}
	ref := s.attachClause(lits(1, 2), true)

	s.rng = newFixedRNG(0) // CoinFlip always true
	s.pruneLearned()

	if got := s.store.Literals(ref); len(got) == 0 {
		t.Errorf("pruneLearned() detached a binary learned clause")
	}
}

func TestPruneLearned_DropsUnlockedLongerClauseOnCoinFlipTrue(t *testing.T) {
	s := NewSolver()
	for i := 0; i < 3; i++ {
		s.AddVariable()
	}
	ref := s.attachClause(lits(1, 2, 3), true)

	s.rng = newFixedRNG(0) // Float64() == 0, CoinFlip(0.5) true
	kept := append([]Literal(nil), s.store.Literals(ref)...)
	s.pruneLearned()

	// ref is the last learned slot, so detaching it pops the slot and ref
	// can no longer be resolved; check the live learned-clause count.
	if got := s.NumLearned(); got != 0 {
		t.Errorf("pruneLearned() kept an unlocked clause %v under a guaranteed coin flip (NumLearned() = %d)", kept, got)
	}
}

func TestPruneLearned_KeepsUnlockedLongerClauseOnCoinFlipFalse(t *testing.T) {
	s := NewSolver()
	for i := 0; i < 3; i++ {
		s.AddVariable()
	}
	ref := s.attachClause(lits(1, 2, 3), true)

	s.rng = newFixedRNG(1<<62 + 1<<61) // Float64() == 0.75, CoinFlip(0.5) false
	s.pruneLearned()

	if got := s.store.Literals(ref); len(got) == 0 {
		t.Errorf("pruneLearned() detached a clause under a guaranteed failed coin flip")
	}
}
