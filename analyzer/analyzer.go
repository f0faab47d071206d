// Package analyzer wires normalize, pretoken, tokenize, lattice, score,
// postprocess, and tag into the single top-level entry point (§3, §4.13).
//
// The Analyzer/AnalyzerOptions/DictionaryManager split is grounded on
// original_source/analysis/analyzer.h: a non-copyable facade holding one
// normalizer, one dictionary manager, one lattice-building tokenizer, and
// exposing analyze/analyzeDebug plus a mode getter/setter and a
// dictionaryManager() accessor for "dictionary-aware lemmatization" (the
// reason postprocess.Processor here is handed the same DictionaryManager
// the tokenizer uses, rather than being wired separately). analyzeSpan/
// pathToMorphemes are kept as the same two-step split (run the lattice
// over one span, then convert the winning path to morphemes): Analyze
// calls analyzeSpan once per non-locked pretoken segment and emits each
// locked segment directly as one morpheme, in segment order.
package analyzer

import (
	"os"

	"github.com/libraz/suzume/dict"
	"github.com/libraz/suzume/grammar"
	"github.com/libraz/suzume/inflect"
	"github.com/libraz/suzume/lattice"
	"github.com/libraz/suzume/lexicon"
	"github.com/libraz/suzume/normalize"
	"github.com/libraz/suzume/postprocess"
	"github.com/libraz/suzume/pretoken"
	"github.com/libraz/suzume/score"
	"github.com/libraz/suzume/tag"
	"github.com/libraz/suzume/tokenize"
	"github.com/libraz/suzume/userdict"
)

// Options configures one Analyzer (§4.13), mirroring AnalyzerOptions'
// grouping of the mode bias plus each stage's own options struct.
type Options struct {
	Mode          grammar.AnalysisMode
	Normalize     normalize.Options
	Postprocess   postprocess.Options
	Tag           tag.Options
	UnknownRunCap int
}

// DefaultOptions mirrors AnalyzerOptions{} (Normal mode, every stage's own
// zero/default options).
func DefaultOptions() Options {
	return Options{
		Mode:        grammar.Normal,
		Normalize:   normalize.Options{},
		Postprocess: postprocess.DefaultOptions(),
		Tag:         tag.DefaultOptions(),
	}
}

// DictionaryManager aggregates the core binary dictionary, every loaded
// user dictionary, and the hard-coded lexicon behind one Lookup/Verify
// surface, mirroring original_source's dictionary::DictionaryManager
// (queried by both the tokenizer for edges and the post-processor for
// dictionary-verified lemmatization).
type DictionaryManager struct {
	core       *dict.BinaryDictionary
	coreCloser func() error
	userDicts  []*userdict.Dictionary
}

// SetCoreDictionary installs the core binary dictionary, replacing any
// previously loaded one. Passing nil clears it (hasCoreBinaryDictionary
// becomes false). Any mmap opened by a prior TryAutoLoadCoreDictionary
// call is closed first.
func (m *DictionaryManager) SetCoreDictionary(d *dict.BinaryDictionary) {
	m.closeCore()
	m.core = d
}

// Close releases any mmap'd core dictionary opened by
// TryAutoLoadCoreDictionary. Safe to call on a DictionaryManager whose
// core dictionary was set via SetCoreDictionary instead (a no-op then).
func (m *DictionaryManager) Close() error {
	return m.closeCore()
}

func (m *DictionaryManager) closeCore() error {
	if m.coreCloser == nil {
		return nil
	}
	err := m.coreCloser()
	m.coreCloser = nil
	return err
}

// HasCoreDictionary reports whether a core binary dictionary is loaded,
// mirroring hasCoreBinaryDictionary.
func (m *DictionaryManager) HasCoreDictionary() bool {
	return m.core != nil && m.core.IsLoaded()
}

// AddUserDictionary registers an additional user dictionary, mirroring
// addUserDictionary. Multiple user dictionaries stack; all are queried.
func (m *DictionaryManager) AddUserDictionary(d *userdict.Dictionary) {
	m.userDicts = append(m.userDicts, d)
}

// sources builds the tokenize.Source list in dictionary-tier priority
// order (§4.6 items 1-2): core dictionary first, then every user
// dictionary in registration order, then the hard-coded lexicon last so
// authored closed-class entries never shadow a real dictionary hit at the
// same span.
func (m *DictionaryManager) sources() []tokenize.Source {
	sources := make([]tokenize.Source, 0, 2+len(m.userDicts))
	if m.HasCoreDictionary() {
		sources = append(sources, tokenize.Source{Dict: m.core, Source: grammar.SourceDictionary})
	}
	for _, ud := range m.userDicts {
		sources = append(sources, tokenize.Source{Dict: ud, Source: grammar.SourceUserDictionary})
	}
	sources = append(sources, tokenize.Source{Dict: lexicon.Dictionary(), Source: grammar.SourceHardcoded})
	return sources
}

// Verify implements inflect.Verifier by checking the core dictionary for
// an exact-surface entry of the given conjugation type. User dictionaries
// and the hard-coded lexicon are not consulted: only the core dictionary
// carries authored conjugation-type metadata precise enough to verify an
// inflection candidate's base form (§4.6 item 3).
func (m *DictionaryManager) Verify(baseForm string, verbType grammar.ConjugationType) bool {
	if !m.HasCoreDictionary() {
		return false
	}
	for _, hit := range m.core.Lookup([]byte(baseForm), 0) {
		if hit.Entry.Surface == baseForm && hit.Entry.ConjType == verbType &&
			(hit.Entry.POS == grammar.Verb || hit.Entry.POS == grammar.Adjective) &&
			hit.ByteLength == len(baseForm) {
			return true
		}
	}
	return false
}

// Analyzer is the top-level morphological analyzer (§3). The zero value
// is usable once Options are assigned; Analyzer holds no other mutable
// state besides the DictionaryManager, so unlike the non-copyable C++
// original it is safe to use concurrently for Analyze calls once
// dictionary loading has finished (analyzeSpan's lattice/Viterbi state is
// all stack-local).
type Analyzer struct {
	Options Options
	Dict    DictionaryManager
}

// New constructs an Analyzer with the given options and an empty
// DictionaryManager (core dictionary and user dictionaries must be
// attached separately via Dict.SetCoreDictionary/AddUserDictionary).
func New(opts Options) *Analyzer {
	return &Analyzer{Options: opts}
}

// TryAutoLoadCoreDictionary mirrors analyzer.h's tryAutoLoadCoreDictionary:
// search §6's fixed directory chain ($SUZUME_DATA_DIR, ./data,
// $HOME/.suzume, /usr/local/share/suzume, /usr/share/suzume) for core.dic,
// loading it via dict.LoadFile (mmap'd at 64 KiB and above) on the first match (and user.dic
// alongside it, if present). Returns false without error when no
// directory in the chain has a core.dic — that is a normal "nothing to
// auto-load" outcome, not a failure.
func (a *Analyzer) TryAutoLoadCoreDictionary() (bool, error) {
	corePath, userPath, found := dict.AutoLoadPaths()
	if !found {
		return false, nil
	}

	core, closer, err := dict.LoadFile(corePath)
	if err != nil {
		return false, err
	}
	a.Dict.closeCore()
	a.Dict.core = core
	a.Dict.coreCloser = closer

	if userPath != "" {
		f, err := os.Open(userPath)
		if err != nil {
			return true, err
		}
		defer f.Close()
		ud, err := userdict.Load(f)
		if err != nil {
			return true, err
		}
		a.Dict.AddUserDictionary(ud)
	}
	return true, nil
}

// Analyze runs the full pipeline on text and returns the resulting
// morphemes (§3, §4.13): normalize, pretokenize, build+search the lattice
// over each non-locked segment (locked segments from pretoken become
// single Noun or Symbol morphemes unchanged, §4.2), then post-process the
// concatenated result.
func (a *Analyzer) Analyze(text string) ([]grammar.Morpheme, error) {
	normalized, err := normalize.Normalize(text, a.Options.Normalize)
	if err != nil {
		return nil, err
	}

	segments := pretoken.Pretokenize(normalized)

	var morphemes []grammar.Morpheme
	for _, seg := range segments {
		if seg.Locked {
			morphemes = append(morphemes, a.lockedMorpheme(seg))
			continue
		}
		morphemes = append(morphemes, a.analyzeSpan(seg.Text, seg.CharOffset)...)
	}

	proc := postprocess.Processor{Options: a.Options.Postprocess, Verifier: &a.Dict}
	return proc.Process(morphemes), nil
}

// Tags runs Analyze and then extracts keyword tags from the result
// (§4.12), sharing the same Verifier-backed post-processing pass so a tag
// generator configured with its own Postprocess options never re-derives
// lemmas from scratch.
func (a *Analyzer) Tags(text string) ([]string, error) {
	morphemes, err := a.Analyze(text)
	if err != nil {
		return nil, err
	}
	gen := tag.Generator{
		Options:     a.Options.Tag,
		Postprocess: postprocess.Processor{Verifier: &a.Dict}, // Options zero value: no double lemmatize/merge/filter
	}
	return gen.Generate(morphemes), nil
}

// lockedMorpheme converts one pretoken-locked span directly into a
// morpheme without lattice search: spans containing any symbol-class
// scalar (URLs, emails, hashtags, ISO dates, percentages) become Symbol,
// everything else (kanji dates, plain quantities, identifiers) becomes
// Noun, matching §4.2's
// "locked spans bypass the lattice" rule plus the unknown-generator's
// symbol-vs-noun default used elsewhere in this module.
func (a *Analyzer) lockedMorpheme(seg pretoken.Segment) grammar.Morpheme {
	pos := grammar.Noun
	if seg.IsSymbol {
		pos = grammar.Symbol
	}
	return grammar.Morpheme{
		Surface: seg.Text,
		POS:     pos,
		Start:   seg.CharOffset,
		End:     seg.CharOffset + runeLen(seg.Text),
	}
}

// analyzeSpan builds and searches the lattice for one non-locked span,
// mirroring analyzer.h's analyzeSpan/pathToMorphemes split.
func (a *Analyzer) analyzeSpan(text string, charOffset int) []grammar.Morpheme {
	if text == "" {
		return nil
	}

	builder := tokenize.Builder{
		Sources:       a.Dict.sources(),
		Verifier:      &a.Dict,
		Mode:          a.Options.Mode,
		UnknownRunCap: a.Options.UnknownRunCap,
	}
	l := builder.Build(text)

	transition := func(prev, next *lattice.Edge) float32 {
		// The Split-mode unknown-run adjustment is already in the edge cost
		// (tokenize.addUnknownEdges), so only the Noun mode bias is added here.
		bias := score.ModeBias(a.Options.Mode, next.POS, next.Source, next.End-next.Start)
		if prev == nil {
			return bias
		}
		return score.TransitionCost(prev.POS, next.POS) + score.SourcePairPenalty(prev.Source, next.Source) + bias
	}

	path := lattice.Run(l, transition)
	return pathToMorphemes(path, text, charOffset)
}

// pathToMorphemes converts a winning Viterbi path into morphemes, fixing
// up Start/End to the original text's character offsets.
func pathToMorphemes(path []*lattice.Edge, text string, charOffset int) []grammar.Morpheme {
	morphemes := make([]grammar.Morpheme, 0, len(path))
	for _, e := range path {
		morphemes = append(morphemes, grammar.Morpheme{
			Surface:      e.Surface,
			Lemma:        e.Lemma,
			Reading:      e.Reading,
			POS:          e.POS,
			ConjType:     e.ConjType,
			Start:        charOffset + e.Start,
			End:          charOffset + e.End,
			IsDictionary: e.Source == grammar.SourceDictionary,
			IsUserDict:   e.Source == grammar.SourceUserDictionary,
			IsFormalNoun: e.IsFormalNoun,
			IsLowInfo:    e.IsLowInfo,
			Score:        e.Cost,
		})
	}
	return morphemes
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

var _ inflect.Verifier = (*DictionaryManager)(nil)
