package postprocess

import (
	"testing"

	"github.com/libraz/suzume/grammar"
)

type fakeVerifier map[string]grammar.ConjugationType

func (v fakeVerifier) Verify(baseForm string, verbType grammar.ConjugationType) bool {
	want, ok := v[baseForm]
	return ok && want == verbType
}

func TestLemmatizeAppliesGodanEnding(t *testing.T) {
	p := &Processor{Options: DefaultOptions()}
	out := p.Process([]grammar.Morpheme{
		{Surface: "書いた", POS: grammar.Verb, Start: 0, End: 3},
	})
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].Lemma != "書く" {
		t.Errorf("Lemma = %q, want 書く", out[0].Lemma)
	}
}

func TestLemmatizeKeepsSurfaceForNonConjugatingPOS(t *testing.T) {
	p := &Processor{Options: DefaultOptions()}
	out := p.Process([]grammar.Morpheme{
		{Surface: "は", POS: grammar.Particle},
	})
	if out[0].Lemma != "は" {
		t.Errorf("Lemma = %q, want は unchanged", out[0].Lemma)
	}
}

func TestLemmatizePrefersDictionaryVerifiedBaseForm(t *testing.T) {
	verifier := fakeVerifier{"差し上げる": grammar.Ichidan}
	p := &Processor{Options: DefaultOptions(), Verifier: verifier}
	out := p.Process([]grammar.Morpheme{
		{Surface: "差し上げる", POS: grammar.Verb},
	})
	if out[0].Lemma != "差し上げる" {
		t.Errorf("Lemma = %q, want 差し上げる kept as-is (already a dictionary base form)", out[0].Lemma)
	}
}

func TestLemmatizeSetsConjForm(t *testing.T) {
	p := &Processor{Options: DefaultOptions()}
	out := p.Process([]grammar.Morpheme{
		{Surface: "書いた", POS: grammar.Verb},
	})
	if out[0].ConjForm != grammar.Onbinkei {
		t.Errorf("ConjForm = %v, want Onbinkei", out[0].ConjForm)
	}
}

func TestMergeNounCompoundsDisabledByDefault(t *testing.T) {
	p := &Processor{Options: DefaultOptions()}
	out := p.Process([]grammar.Morpheme{
		{Surface: "東京", Lemma: "東京", POS: grammar.Noun, End: 2},
		{Surface: "都", Lemma: "都", POS: grammar.Noun, Start: 2, End: 3},
	})
	if len(out) != 2 {
		t.Errorf("len(out) = %d, want 2 (merge disabled by default)", len(out))
	}
}

func TestMergeNounCompoundsWhenEnabled(t *testing.T) {
	opts := DefaultOptions()
	opts.MergeNounCompounds = true
	opts.Lemmatize = false
	p := &Processor{Options: opts}
	out := p.Process([]grammar.Morpheme{
		{Surface: "東京", Lemma: "東京", POS: grammar.Noun, End: 2},
		{Surface: "都", Lemma: "都", POS: grammar.Noun, Start: 2, End: 3},
	})
	if len(out) != 1 || out[0].Surface != "東京都" {
		t.Fatalf("out = %+v, want single merged 東京都", out)
	}
	if out[0].End != 3 {
		t.Errorf("End = %d, want 3", out[0].End)
	}
}

func TestMergeNounCompoundsSkipsFormalNoun(t *testing.T) {
	opts := DefaultOptions()
	opts.MergeNounCompounds = true
	opts.Lemmatize = false
	p := &Processor{Options: opts}
	out := p.Process([]grammar.Morpheme{
		{Surface: "東京", Lemma: "東京", POS: grammar.Noun, End: 2},
		{Surface: "こと", Lemma: "こと", POS: grammar.Noun, IsFormalNoun: true, Start: 2, End: 4},
	})
	if len(out) != 2 {
		t.Errorf("len(out) = %d, want 2 (formal noun must not merge)", len(out))
	}
}

func TestMergeNumericExpressions(t *testing.T) {
	opts := DefaultOptions()
	opts.Lemmatize = false
	p := &Processor{Options: opts}
	out := p.Process([]grammar.Morpheme{
		{Surface: "3", POS: grammar.Noun},
		{Surface: "億", POS: grammar.Noun},
		{Surface: "5000", POS: grammar.Noun},
		{Surface: "万", POS: grammar.Noun},
		{Surface: "円", POS: grammar.Noun},
	})
	if len(out) != 1 || out[0].Surface != "3億5000万円" {
		t.Fatalf("out = %+v, want single merged 3億5000万円", out)
	}
}

func TestMergeNumericExpressionsDoesNotSpanNonNumericGap(t *testing.T) {
	opts := DefaultOptions()
	opts.Lemmatize = false
	p := &Processor{Options: opts}
	out := p.Process([]grammar.Morpheme{
		{Surface: "3", POS: grammar.Noun},
		{Surface: "個", POS: grammar.Noun},
		{Surface: "です", POS: grammar.Auxiliary},
		{Surface: "5", POS: grammar.Noun},
	})
	if len(out) != 3 {
		t.Fatalf("out = %+v, want 3 morphemes (non-numeric gap must split the runs)", out)
	}
}

func TestMergeNaAdjectiveNa(t *testing.T) {
	opts := DefaultOptions()
	opts.Lemmatize = false
	p := &Processor{Options: opts}
	out := p.Process([]grammar.Morpheme{
		{Surface: "静か", Lemma: "静か", POS: grammar.Adjective, ConjType: grammar.NaAdjective, End: 2},
		{Surface: "な", POS: grammar.Particle, Start: 2, End: 3},
	})
	if len(out) != 1 || out[0].Surface != "静かな" {
		t.Fatalf("out = %+v, want single merged 静かな", out)
	}
	if out[0].POS != grammar.Adjective {
		t.Errorf("POS = %v, want Adjective", out[0].POS)
	}
}

func TestMergeNaAdjectiveNaRequiresTrailingNa(t *testing.T) {
	opts := DefaultOptions()
	opts.Lemmatize = false
	p := &Processor{Options: opts}
	out := p.Process([]grammar.Morpheme{
		{Surface: "静か", POS: grammar.Adjective, ConjType: grammar.NaAdjective},
		{Surface: "だ", POS: grammar.Auxiliary},
	})
	if len(out) != 2 {
		t.Errorf("len(out) = %d, want 2 (no trailing な, nothing to merge)", len(out))
	}
}

func TestFilterRemovesSymbols(t *testing.T) {
	p := &Processor{Options: DefaultOptions()}
	out := p.Process([]grammar.Morpheme{
		{Surface: "！", POS: grammar.Symbol},
		{Surface: "はい", POS: grammar.Noun},
	})
	if len(out) != 1 || out[0].Surface != "はい" {
		t.Fatalf("out = %+v, want symbol dropped", out)
	}
}

func TestFilterDropsShortSurfacesByRuneCount(t *testing.T) {
	opts := DefaultOptions()
	opts.MinSurfaceLength = 2
	p := &Processor{Options: opts}
	out := p.Process([]grammar.Morpheme{
		{Surface: "あ", POS: grammar.Noun},
		{Surface: "東京", POS: grammar.Noun, Lemma: "東京"},
	})
	if len(out) != 1 || out[0].Surface != "東京" {
		t.Fatalf("out = %+v, want the short morpheme dropped", out)
	}
}
