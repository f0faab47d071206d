// Package lattice builds the text-position graph of candidate edges and
// runs Viterbi shortest-path search over it (§4.7).
//
// lattice.cpp was filtered out of original_source (only headers for
// adjacent components survived the distillation), so the Edge/Lattice
// shapes and the Viterbi algorithm are built directly from spec.md §3 and
// §4.7's prose rather than ported from a source file; the per-position
// edge-bucket + running-best-score DP is the standard shortest-path-over-
// a-DAG idiom and has no teacher analogue worth imitating (the teacher's
// morph/fsm.go walks suffix chains by backtracking recursion, a different
// problem shape — enumerating all parses rather than finding the single
// minimum-cost one — so it is not reused here).
package lattice

import "github.com/libraz/suzume/grammar"

// Edge is one lattice edge: a candidate morpheme spanning [Start, End)
// character positions, with Viterbi bookkeeping fields filled in by Run.
type Edge struct {
	ID       int
	Start    int
	End      int
	Surface  string
	Lemma    string
	Reading  string
	POS      grammar.PartOfSpeech
	ConjType grammar.ConjugationType
	Cost     float32
	Source   grammar.Source

	IsFormalNoun bool
	IsLowInfo    bool

	BestScore float32
	PrevBest  int // edge ID, or BOSID/EOSID
	HasPrev   bool
	PathEdges int // number of edges from BOS to this edge, inclusive
}

// BOSID and EOSID are the reserved IDs of the virtual boundary edges.
const (
	BOSID = -1
	EOSID = -2
)

// TransitionFunc computes the additive cost of moving from edge prev to
// edge next; it composes score.TransitionCost, score.SourcePairPenalty,
// and score.ModeBias in the caller (analyzer),
// keeping this package free of a dependency on the scoring policy.
type TransitionFunc func(prev, next *Edge) float32

// Lattice is the position-indexed edge graph for one (sub-)text of length
// charLen characters.
type Lattice struct {
	charLen int
	byStart map[int][]*Edge
	all     []*Edge
}

// New creates an empty lattice over a text of charLen characters.
func New(charLen int) *Lattice {
	return &Lattice{charLen: charLen, byStart: make(map[int][]*Edge)}
}

// AddEdge appends an edge and indexes it by its Start position. The
// caller is responsible for assigning increasing, unique IDs so that
// enumeration order (used for tie-breaking) matches insertion order.
func (l *Lattice) AddEdge(e *Edge) {
	l.all = append(l.all, e)
	l.byStart[e.Start] = append(l.byStart[e.Start], e)
}

// EdgesAt returns every edge starting at character position pos, in the
// order they were added.
func (l *Lattice) EdgesAt(pos int) []*Edge {
	return l.byStart[pos]
}

// edgesEndingAt returns every real edge whose End equals pos; the virtual
// BOS edge is not included (Run handles it separately).
func (l *Lattice) edgesEndingAt(pos int) []*Edge {
	var out []*Edge
	for _, e := range l.all {
		if e.End == pos {
			out = append(out, e)
		}
	}
	return out
}

const tieEpsilon = 1e-6

// Run executes Viterbi shortest-path search (§4.7): iterate positions 0..
// charLen, for each edge starting there compute the minimum path score
// over every predecessor edge ending there (including the virtual BOS
// edge at position 0), and record the best predecessor. transitionCost
// computes the edge-pair additive cost; it receives nil for prev when the
// predecessor is the virtual BOS edge. Returns the best path from BOS to
// EOS, in left-to-right order, or nil if the lattice has no path to
// charLen (which should not happen given unknown-word fallback coverage).
func Run(l *Lattice, transitionCost TransitionFunc) []*Edge {
	bos := &Edge{ID: BOSID, Start: 0, End: 0, BestScore: 0, HasPrev: false}
	eos := &Edge{ID: EOSID, Start: l.charLen, End: l.charLen}

	for pos := 0; pos <= l.charLen; pos++ {
		preds := l.edgesEndingAt(pos)
		if pos == 0 {
			preds = []*Edge{bos}
		}
		for _, e := range l.EdgesAt(pos) {
			relax(e, preds, transitionCost)
		}
	}

	eosPreds := l.edgesEndingAt(l.charLen)
	if len(eosPreds) == 0 && l.charLen == 0 {
		eosPreds = []*Edge{bos}
	}
	relax(eos, eosPreds, transitionCost)
	if !eos.HasPrev {
		return nil
	}

	return traceback(l, eos, bos)
}

// relax updates e's BestScore/PrevBest against every candidate predecessor,
// applying §4.7's tie-breaking rule: when two path scores tie within
// tieEpsilon, prefer (1) fewer edges, (2) the earlier-enumerated candidate
// (predecessors are walked in the lattice's insertion order).
func relax(e *Edge, preds []*Edge, transitionCost TransitionFunc) {
	for _, p := range preds {
		var prevArg *Edge
		if p.ID != BOSID {
			prevArg = p
		}
		s := p.BestScore + transitionCost(prevArg, e) + e.Cost
		count := p.PathEdges + 1

		better := !e.HasPrev || s < e.BestScore-tieEpsilon
		tied := e.HasPrev && s <= e.BestScore+tieEpsilon && count < e.PathEdges
		if !better && !tied {
			continue
		}

		e.BestScore = s
		e.PrevBest = p.ID
		e.HasPrev = true
		e.PathEdges = count
	}
}

func traceback(l *Lattice, eos, bos *Edge) []*Edge {
	byID := make(map[int]*Edge, len(l.all)+1)
	for _, e := range l.all {
		byID[e.ID] = e
	}
	byID[BOSID] = bos

	var path []*Edge
	cur := eos.PrevBest
	for cur != BOSID {
		e, ok := byID[cur]
		if !ok {
			return nil
		}
		path = append(path, e)
		if !e.HasPrev {
			break
		}
		cur = e.PrevBest
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
