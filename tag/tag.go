// Package tag extracts keyword tags from an analyzed morpheme sequence
// (§4.12), grounded bit-exact on
// original_source/postprocess/tag_generator.{h,cpp}.
//
// One deliberate deviation from tag_generator.cpp's shouldInclude: the cpp
// is exclusion-based (drop Particle/Auxiliary/Conjunction/Symbol, keep
// everything else), while spec.md §4.12 states an inclusion list instead
// (POS ∈ {Noun, Verb, Adjective, Adverb}). The inclusion list is
// authoritative here since it is spec.md's explicit wording; in practice
// it only differs from the cpp for Determiner/Pronoun/Other/Unknown
// morphemes, which the cpp would tag and this package does not.
package tag

import (
	"unicode/utf8"

	"github.com/libraz/suzume/grammar"
	"github.com/libraz/suzume/postprocess"
)

// Options controls tag selection and shaping (§4.12).
type Options struct {
	UseLemma           bool
	ExcludeFormalNouns bool
	ExcludeLowInfo     bool
	RemoveDuplicates   bool
	MinTagLength       int
	MaxTags            int // 0 = unlimited
}

// DefaultOptions mirrors tag_generator.h's TagGeneratorOptions defaults.
func DefaultOptions() Options {
	return Options{
		UseLemma:           true,
		ExcludeFormalNouns: true,
		ExcludeLowInfo:     true,
		RemoveDuplicates:   true,
		MinTagLength:       2,
		MaxTags:            0,
	}
}

// taggablePOS is spec.md §4.12's inclusion set.
func taggablePOS(pos grammar.PartOfSpeech) bool {
	switch pos {
	case grammar.Noun, grammar.Verb, grammar.Adjective, grammar.Adverb:
		return true
	default:
		return false
	}
}

// Generator produces tags from a raw Viterbi morpheme sequence, running
// the shared post-processing pipeline first (tag_generator.cpp always
// post-processes before filtering for taggability).
type Generator struct {
	Options     Options
	Postprocess postprocess.Processor
}

// Generate implements §4.12: post-process, then filter/dedup/cap.
func (g *Generator) Generate(morphemes []grammar.Morpheme) []string {
	processed := g.Postprocess.Process(morphemes)

	tags := make([]string, 0, len(processed))
	seen := make(map[string]bool, len(processed))

	for _, m := range processed {
		if !g.shouldInclude(m) {
			continue
		}
		t := g.tagString(m)
		if utf8.RuneCountInString(t) < g.Options.MinTagLength {
			continue
		}
		if g.Options.RemoveDuplicates {
			if seen[t] {
				continue
			}
			seen[t] = true
		}
		tags = append(tags, t)
		if g.Options.MaxTags > 0 && len(tags) >= g.Options.MaxTags {
			break
		}
	}

	return tags
}

func (g *Generator) shouldInclude(m grammar.Morpheme) bool {
	if !taggablePOS(m.POS) {
		return false
	}
	if g.Options.ExcludeFormalNouns && m.IsFormalNoun {
		return false
	}
	if g.Options.ExcludeLowInfo && m.IsLowInfo {
		return false
	}
	return true
}

func (g *Generator) tagString(m grammar.Morpheme) string {
	if g.Options.UseLemma && m.Lemma != "" {
		return m.Lemma
	}
	return m.Surface
}
