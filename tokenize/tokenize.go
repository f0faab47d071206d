// Package tokenize enumerates candidate lattice edges for a plain-text
// segment (§4.6): dictionary and hard-coded-lexicon hits, inflection
// candidates, unknown-word fallback, and the prefix-joining / 〜的-
// attachment grammar patterns.
//
// analyzer.cpp/tokenizer.cpp/scorer.cpp were filtered out of
// original_source (only analyzer.h survived, see DESIGN.md), so the edge
// shapes and the enumeration order below are built from spec.md §4.6's
// prose. The dictionary-query dispatch is grounded on dict.BinaryDictionary
// and lexicon.Dictionary's shared Lookup contract; the rule-table dispatch
// for the grammar-productive patterns follows the teacher's table-driven
// style seen in ner/patterns.go (a fixed slice of literals checked in a
// loop, rather than a chain of if/else).
package tokenize

import (
	"unicode/utf8"

	"github.com/libraz/suzume/dict"
	"github.com/libraz/suzume/grammar"
	"github.com/libraz/suzume/inflect"
	"github.com/libraz/suzume/lattice"
	"github.com/libraz/suzume/unknown"
)

// Costs not pinned by any single spec constant; chosen to sit alongside
// the hard-coded lexicon's authored-cost scale (particles ~0.3, auxiliaries
// ~0.4) and documented here rather than scattered across call sites.
const (
	baseVerbCost         = 0.5
	inflectionPenalty    = 2.0
	inflectionDictBonus  = -0.3
	prefixJoinBonus      = 0.1
	defaultUnknownRunCap = 64
)

// recognizedPrefixes is the productive-prefix set from §4.6 item 5.
var recognizedPrefixes = []string{"お", "ご", "不", "未", "非", "超", "再"}

const taigenSuffixRune = '的'

// DictLookup is satisfied by dict.BinaryDictionary and userdict.Dictionary:
// a common-prefix search over UTF-8 bytes starting at byteStart.
type DictLookup interface {
	Lookup(text []byte, byteStart int) []dict.LookupResult
}

// Source pairs a dictionary with the lattice-edge Source tag its hits
// should carry (Dictionary for the core dictionary, UserDictionary for
// each loaded user dictionary, Hardcoded for the built-in lexicon).
type Source struct {
	Dict   DictLookup
	Source grammar.Source
}

// Builder enumerates edges for one segment's worth of text.
type Builder struct {
	Sources       []Source
	Verifier      inflect.Verifier
	Mode          grammar.AnalysisMode
	UnknownRunCap int // 0 means unknown.Generate's default cap
}

// Build returns a lattice populated with every candidate edge for text,
// per §4.6's five enumeration steps. text must already be normalized and
// have had any locked pre-tokenizer spans removed.
func (b *Builder) Build(text string) *lattice.Lattice {
	runes := []rune(text)
	data := []byte(text)
	byteOffsets := charToByteOffsets(runes)
	l := lattice.New(len(runes))
	nextID := 0
	addEdge := func(e *lattice.Edge) {
		e.ID = nextID
		nextID++
		l.AddEdge(e)
	}

	for i := 0; i < len(runes); i++ {
		bi := byteOffsets[i]
		b.addDictionaryEdges(addEdge, data, bi, i)
		b.addInflectionEdges(addEdge, text, i)
		b.addUnknownEdges(addEdge, runes, i)
	}
	b.addGrammarPatternEdges(l, addEdge, runes)

	return l
}

// addDictionaryEdges covers §4.6 items 1-2: every configured dictionary
// (core, user, hard-coded lexicon) is queried at the same byte offset and
// every hit becomes one edge tagged with that dictionary's Source.
func (b *Builder) addDictionaryEdges(addEdge func(*lattice.Edge), data []byte, byteStart, charStart int) {
	for _, src := range b.Sources {
		for _, hit := range src.Dict.Lookup(data, byteStart) {
			charLen := utf8.RuneCountInString(hit.Entry.Surface)
			addEdge(&lattice.Edge{
				Start:    charStart,
				End:      charStart + charLen,
				Surface:  hit.Entry.Surface,
				Lemma:    hit.Entry.EffectiveLemma(),
				Reading:  hit.Entry.Reading,
				POS:      hit.Entry.POS,
				ConjType: hit.Entry.ConjType,
				Cost:     hit.Entry.Cost,
				Source:   src.Source,

				IsFormalNoun: hit.Entry.IsFormalNoun,
				IsLowInfo:    hit.Entry.IsLowInfo,
			})
		}
	}
}

// addInflectionEdges covers §4.6 item 3: ask the inflection analyzer for
// candidates starting at i, converting confidence into an edge cost and
// applying the dictionary-verification bonus on top of that.
func (b *Builder) addInflectionEdges(addEdge func(*lattice.Edge), text string, charStart int) {
	for _, c := range inflect.Analyze(text, charStart, b.Verifier) {
		pos := grammar.Verb
		if c.VerbType == grammar.IAdjective || c.VerbType == grammar.NaAdjective {
			pos = grammar.Adjective
		}
		cost := baseVerbCost + (1.0-c.Confidence)*inflectionPenalty
		if b.Verifier != nil && b.Verifier.Verify(c.BaseForm, c.VerbType) {
			cost += inflectionDictBonus
		}
		addEdge(&lattice.Edge{
			Start:    c.Start,
			End:      c.End,
			Surface:  runesSlice(text, c.Start, c.End),
			Lemma:    c.BaseForm,
			POS:      pos,
			ConjType: c.VerbType,
			Cost:     cost,
			Source:   grammar.SourceGrammar,
		})
	}
}

// addUnknownEdges covers §4.6 item 4, guaranteeing lattice connectivity
// by always producing at least one edge leaving position i.
func (b *Builder) addUnknownEdges(addEdge func(*lattice.Edge), runes []rune, charStart int) {
	runCap := b.UnknownRunCap
	if runCap <= 0 {
		runCap = defaultUnknownRunCap
	}
	for _, c := range unknown.GenerateCapped(runes, charStart, runCap) {
		cost := c.Cost
		if b.Mode == grammar.Split {
			if c.End-c.Start > 1 {
				cost += 0.2
			} else {
				cost -= 0.2
			}
		}
		addEdge(&lattice.Edge{
			Start:   c.Start,
			End:     c.End,
			Surface: string(runes[c.Start:c.End]),
			POS:     unknownClassPOS(c.Class),
			Cost:    cost,
			Source:  grammar.SourceUnknown,
		})
	}
}

// addGrammarPatternEdges covers §4.6 item 5: prefix-joining and 〜的
// attachment. Both patterns only fire against Noun edges already present
// in the lattice (from dictionary, lexicon, or unknown generation), so
// this pass runs after the per-position loop has populated every edge.
func (b *Builder) addGrammarPatternEdges(l *lattice.Lattice, addEdge func(*lattice.Edge), runes []rune) {
	b.addPrefixJoins(l, addEdge, runes)
	b.addTaigenAttachment(l, addEdge, runes)
}

func (b *Builder) addPrefixJoins(l *lattice.Lattice, addEdge func(*lattice.Edge), runes []rune) {
	for _, prefix := range recognizedPrefixes {
		prefixRunes := []rune(prefix)
		n := len(prefixRunes)
		for i := 0; i+n <= len(runes); i++ {
			if string(runes[i:i+n]) != prefix {
				continue
			}
			for _, e := range l.EdgesAt(i + n) {
				if e.POS != grammar.Noun || e.End <= e.Start {
					continue
				}
				addEdge(&lattice.Edge{
					Start:   i,
					End:     e.End,
					Surface: prefix + e.Surface,
					Lemma:   prefix + edgeLemma(e),
					POS:     grammar.Noun,
					Cost:    e.Cost + prefixJoinBonus,
					Source:  grammar.SourceGrammar,
				})
			}
		}
	}
}

func (b *Builder) addTaigenAttachment(l *lattice.Lattice, addEdge func(*lattice.Edge), runes []rune) {
	for j := 1; j < len(runes); j++ {
		if runes[j] != taigenSuffixRune {
			continue
		}
		for _, e := range nounEdgesEndingAt(l, j) {
			addEdge(&lattice.Edge{
				Start:   e.Start,
				End:     j + 1,
				Surface: e.Surface + string(taigenSuffixRune),
				Lemma:   edgeLemma(e) + string(taigenSuffixRune),
				POS:     grammar.Adjective,
				Cost:    e.Cost,
				Source:  grammar.SourceGrammar,
			})
		}
		if j+1 < len(runes) && (runes[j+1] == 'に' || runes[j+1] == 'な') {
			addEdge(&lattice.Edge{
				Start:   j + 1,
				End:     j + 2,
				Surface: string(runes[j+1]),
				POS:     grammar.Particle,
				Cost:    0.3,
				Source:  grammar.SourceGrammar,
			})
		}
	}
}

func edgeLemma(e *lattice.Edge) string {
	if e.Lemma != "" {
		return e.Lemma
	}
	return e.Surface
}

func nounEdgesEndingAt(l *lattice.Lattice, pos int) []*lattice.Edge {
	var out []*lattice.Edge
	for i := 0; i < pos; i++ {
		for _, e := range l.EdgesAt(i) {
			if e.End == pos && e.POS == grammar.Noun {
				out = append(out, e)
			}
		}
	}
	return out
}

func unknownClassPOS(c unknown.Class) grammar.PartOfSpeech {
	if c == unknown.ClassSymbol {
		return grammar.Symbol
	}
	return grammar.Noun
}

func charToByteOffsets(runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		offsets[i] = b
		b += utf8.RuneLen(r)
	}
	offsets[len(runes)] = b
	return offsets
}

func runesSlice(text string, start, end int) string {
	runes := []rune(text)
	if start < 0 || end > len(runes) || start > end {
		return ""
	}
	return string(runes[start:end])
}
