package lattice

import (
	"testing"

	"github.com/libraz/suzume/grammar"
)

func noopTransition(_, _ *Edge) float32 { return 0 }

func TestRunPicksLowerCostPath(t *testing.T) {
	l := New(2)
	l.AddEdge(&Edge{ID: 0, Start: 0, End: 1, Surface: "a", Cost: 1.0})
	l.AddEdge(&Edge{ID: 1, Start: 1, End: 2, Surface: "b", Cost: 1.0})
	l.AddEdge(&Edge{ID: 2, Start: 0, End: 2, Surface: "ab", Cost: 1.5})

	path := Run(l, noopTransition)
	if len(path) != 1 || path[0].Surface != "ab" {
		t.Fatalf("path = %+v, want single edge ab (cost 1.5 < 1.0+1.0=2.0)", path)
	}
}

func TestRunPrefersTwoCheapEdgesOverOneExpensive(t *testing.T) {
	l := New(2)
	l.AddEdge(&Edge{ID: 0, Start: 0, End: 1, Surface: "a", Cost: 0.3})
	l.AddEdge(&Edge{ID: 1, Start: 1, End: 2, Surface: "b", Cost: 0.3})
	l.AddEdge(&Edge{ID: 2, Start: 0, End: 2, Surface: "ab", Cost: 5.0})

	path := Run(l, noopTransition)
	if len(path) != 2 || path[0].Surface != "a" || path[1].Surface != "b" {
		t.Fatalf("path = %+v, want a,b", path)
	}
}

func TestRunTieBreakPrefersFewerEdges(t *testing.T) {
	l := New(2)
	l.AddEdge(&Edge{ID: 0, Start: 0, End: 1, Surface: "a", Cost: 0.5})
	l.AddEdge(&Edge{ID: 1, Start: 1, End: 2, Surface: "b", Cost: 0.5})
	l.AddEdge(&Edge{ID: 2, Start: 0, End: 2, Surface: "ab", Cost: 1.0})

	path := Run(l, noopTransition)
	if len(path) != 1 || path[0].Surface != "ab" {
		t.Fatalf("path = %+v, want single-edge ab on tie", path)
	}
}

func TestRunAppliesTransitionCost(t *testing.T) {
	l := New(2)
	l.AddEdge(&Edge{ID: 0, Start: 0, End: 1, Surface: "a", POS: grammar.Particle, Cost: 0.1})
	l.AddEdge(&Edge{ID: 1, Start: 1, End: 2, Surface: "b", POS: grammar.Particle, Cost: 0.1})
	l.AddEdge(&Edge{ID: 2, Start: 0, End: 2, Surface: "ab", POS: grammar.Noun, Cost: 0.25})

	expensiveParticleChain := func(prev, next *Edge) float32 {
		if prev != nil && prev.POS == grammar.Particle && next.POS == grammar.Particle {
			return 10.0
		}
		return 0
	}

	path := Run(l, expensiveParticleChain)
	if len(path) != 1 || path[0].Surface != "ab" {
		t.Fatalf("path = %+v, want single-edge ab (particle-chain penalty should dominate)", path)
	}
}

func TestRunEmptyLattice(t *testing.T) {
	l := New(0)
	path := Run(l, noopTransition)
	if len(path) != 0 {
		t.Errorf("path for empty lattice = %+v, want empty", path)
	}
}

func TestEdgesAtReturnsInsertionOrder(t *testing.T) {
	l := New(3)
	e0 := &Edge{ID: 0, Start: 0, End: 1}
	e1 := &Edge{ID: 1, Start: 0, End: 2}
	l.AddEdge(e0)
	l.AddEdge(e1)

	got := l.EdgesAt(0)
	if len(got) != 2 || got[0] != e0 || got[1] != e1 {
		t.Errorf("EdgesAt(0) = %+v, want insertion order", got)
	}
}
