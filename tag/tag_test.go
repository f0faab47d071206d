package tag

import (
	"testing"

	"github.com/libraz/suzume/grammar"
	"github.com/libraz/suzume/postprocess"
)

func newGenerator(opts Options) *Generator {
	return &Generator{
		Options:     opts,
		Postprocess: postprocess.Processor{Options: postprocess.Options{RemoveSymbols: true, MinSurfaceLength: 1}},
	}
}

func TestGenerateUsesLemma(t *testing.T) {
	g := newGenerator(DefaultOptions())
	tags := g.Generate([]grammar.Morpheme{
		{Surface: "食べた", Lemma: "食べる", POS: grammar.Verb},
	})
	if len(tags) != 1 || tags[0] != "食べる" {
		t.Fatalf("tags = %v, want [食べる]", tags)
	}
}

func TestGenerateExcludesParticlesAndAuxiliaries(t *testing.T) {
	g := newGenerator(DefaultOptions())
	tags := g.Generate([]grammar.Morpheme{
		{Surface: "東京", Lemma: "東京", POS: grammar.Noun},
		{Surface: "は", POS: grammar.Particle},
		{Surface: "です", POS: grammar.Auxiliary},
	})
	if len(tags) != 1 || tags[0] != "東京" {
		t.Fatalf("tags = %v, want [東京]", tags)
	}
}

func TestGenerateExcludesFormalNouns(t *testing.T) {
	g := newGenerator(DefaultOptions())
	tags := g.Generate([]grammar.Morpheme{
		{Surface: "こと", Lemma: "こと", POS: grammar.Noun, IsFormalNoun: true},
		{Surface: "本屋", Lemma: "本屋", POS: grammar.Noun},
	})
	if len(tags) != 1 || tags[0] != "本屋" {
		t.Fatalf("tags = %v, want [本屋]", tags)
	}
}

func TestGenerateExcludesLowInfo(t *testing.T) {
	g := newGenerator(DefaultOptions())
	tags := g.Generate([]grammar.Morpheme{
		{Surface: "もの", Lemma: "もの", POS: grammar.Noun, IsLowInfo: true},
		{Surface: "本屋", Lemma: "本屋", POS: grammar.Noun},
	})
	if len(tags) != 1 || tags[0] != "本屋" {
		t.Fatalf("tags = %v, want [本屋]", tags)
	}
}

func TestGenerateDropsBelowMinTagLength(t *testing.T) {
	g := newGenerator(DefaultOptions())
	tags := g.Generate([]grammar.Morpheme{
		{Surface: "本", Lemma: "本", POS: grammar.Noun},
		{Surface: "図書館", Lemma: "図書館", POS: grammar.Noun},
	})
	if len(tags) != 1 || tags[0] != "図書館" {
		t.Fatalf("tags = %v, want [図書館] (本 is below min_tag_length=2)", tags)
	}
}

func TestGenerateDedupsPreservingFirstOccurrence(t *testing.T) {
	g := newGenerator(DefaultOptions())
	tags := g.Generate([]grammar.Morpheme{
		{Surface: "本", Lemma: "本屋", POS: grammar.Noun},
		{Surface: "本", Lemma: "本屋", POS: grammar.Noun},
		{Surface: "雑誌", Lemma: "雑誌", POS: grammar.Noun},
	})
	if len(tags) != 2 || tags[0] != "本屋" || tags[1] != "雑誌" {
		t.Fatalf("tags = %v, want [本屋 雑誌]", tags)
	}
}

func TestGenerateCapsAtMaxTags(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxTags = 1
	g := newGenerator(opts)
	tags := g.Generate([]grammar.Morpheme{
		{Surface: "本屋", Lemma: "本屋", POS: grammar.Noun},
		{Surface: "雑誌", Lemma: "雑誌", POS: grammar.Noun},
	})
	if len(tags) != 1 {
		t.Fatalf("tags = %v, want exactly 1 (max_tags=1)", tags)
	}
}

func TestGenerateExcludesSymbolsAndUnclassifiedPOS(t *testing.T) {
	g := newGenerator(DefaultOptions())
	tags := g.Generate([]grammar.Morpheme{
		{Surface: "！", POS: grammar.Symbol},
		{Surface: "これ", POS: grammar.Pronoun},
		{Surface: "本屋", Lemma: "本屋", POS: grammar.Noun},
	})
	if len(tags) != 1 || tags[0] != "本屋" {
		t.Fatalf("tags = %v, want [本屋] (symbol and pronoun excluded)", tags)
	}
}
