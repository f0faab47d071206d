// Package score implements the transition-cost table and mode bias used by
// the Viterbi search (§4.10). The POS×POS matrix is copied verbatim from
// the specification's pinned table; §4.10 marks it as "design defaults"
// that "must be reproducible", so it is a plain data table here rather
// than derived from any teacher heuristic — no file in the corpus or
// original_source contains it (tokenizer.cpp/scorer.cpp were filtered out
// of the distillation).
package score

import "github.com/libraz/suzume/grammar"

// transitionMatrix holds the additive penalty for moving from a morpheme
// of fromPOS to one of toPOS. Cells not present default to 0.0.
var transitionMatrix = map[[2]grammar.PartOfSpeech]float32{
	{grammar.Noun, grammar.Noun}:      0.0,
	{grammar.Noun, grammar.Verb}:      0.0,
	{grammar.Noun, grammar.Adjective}: 0.2,
	{grammar.Noun, grammar.Particle}:  -0.1,
	{grammar.Noun, grammar.Auxiliary}: 0.3,

	{grammar.Verb, grammar.Noun}:      0.2,
	{grammar.Verb, grammar.Verb}:      0.4,
	{grammar.Verb, grammar.Adjective}: 0.3,
	{grammar.Verb, grammar.Particle}:  0.0,
	{grammar.Verb, grammar.Auxiliary}: -0.2,

	{grammar.Adjective, grammar.Noun}:      0.2,
	{grammar.Adjective, grammar.Verb}:      0.3,
	{grammar.Adjective, grammar.Adjective}: 0.5,
	{grammar.Adjective, grammar.Particle}:  0.0,
	{grammar.Adjective, grammar.Auxiliary}: 0.0,

	{grammar.Particle, grammar.Noun}:      0.0,
	{grammar.Particle, grammar.Verb}:      0.0,
	{grammar.Particle, grammar.Adjective}: 0.0,
	{grammar.Particle, grammar.Particle}:  0.8,
	{grammar.Particle, grammar.Auxiliary}: 0.3,

	{grammar.Auxiliary, grammar.Noun}:      0.3,
	{grammar.Auxiliary, grammar.Verb}:      0.4,
	{grammar.Auxiliary, grammar.Adjective}: 0.4,
	{grammar.Auxiliary, grammar.Particle}:  0.0,
	{grammar.Auxiliary, grammar.Auxiliary}: 0.2,
}

// unknownChainPenalty is the additional per-extra-edge cost (§4.7.b) for
// chaining two or more consecutive Unknown-sourced edges, discouraging
// Viterbi from stitching together runs of unknown fallback edges when a
// dictionary or grammar edge is available.
const unknownChainPenalty = 0.8

// TransitionCost returns the POS-pair penalty for moving from fromPOS to
// toPOS, per §4.10's pinned matrix (unlisted cells are 0.0).
func TransitionCost(fromPOS, toPOS grammar.PartOfSpeech) float32 {
	return transitionMatrix[[2]grammar.PartOfSpeech{fromPOS, toPOS}]
}

// SourcePairPenalty adds the unknown-chain penalty (§4.7.b) when both the
// predecessor and the current edge were produced by the unknown-word
// generator.
func SourcePairPenalty(fromSource, toSource grammar.Source) float32 {
	if fromSource == grammar.SourceUnknown && toSource == grammar.SourceUnknown {
		return unknownChainPenalty
	}
	return 0
}

// ModeBias adjusts a dictionary Noun edge's cost for Search/Split modes
// (§4.7.c): Search mode rewards long dictionary Noun edges to favor whole
// compound matches; Split mode penalizes them to favor finer segmentation.
func ModeBias(mode grammar.AnalysisMode, pos grammar.PartOfSpeech, source grammar.Source, runeLen int) float32 {
	if pos != grammar.Noun || source == grammar.SourceUnknown {
		return 0
	}
	extra := runeLen - 2
	if extra <= 0 {
		return 0
	}
	switch mode {
	case grammar.Search:
		return -0.2 * float32(extra)
	case grammar.Split:
		return 0.1 * float32(extra)
	default:
		return 0
	}
}

// UnknownRunBias adjusts an Unknown-sourced edge's authored cost in Split
// mode (§4.7: "Edge cost is the edge's authored cost with mode adjustments
// for unknown runs in Split (±0.2)"): Split mode prefers shorter unknown
// runs, so a multi-character unknown edge is penalized and a single-
// character one is rewarded, pushing Viterbi toward finer-grained unknown
// segmentation.
func UnknownRunBias(mode grammar.AnalysisMode, source grammar.Source, runeLen int) float32 {
	if mode != grammar.Split || source != grammar.SourceUnknown {
		return 0
	}
	if runeLen > 1 {
		return 0.2
	}
	return -0.2
}
