package inflect

import (
	"testing"

	"github.com/libraz/suzume/grammar"
)

func firstBaseForm(cands []Candidate, verbType grammar.ConjugationType) (Candidate, bool) {
	for _, c := range cands {
		if c.VerbType == verbType {
			return c, true
		}
	}
	return Candidate{}, false
}

func TestAnalyzeGodanKaOnbinkei(t *testing.T) {
	cands := Analyze("書いた", 0, nil)
	c, ok := firstBaseForm(cands, grammar.GodanKa)
	if !ok {
		t.Fatalf("no Godan-Ka candidate in %+v", cands)
	}
	if c.BaseForm != "書く" {
		t.Errorf("BaseForm = %q, want 書く", c.BaseForm)
	}
	if c.ConjForm != grammar.Onbinkei {
		t.Errorf("ConjForm = %v, want Onbinkei", c.ConjForm)
	}
}

func TestAnalyzeSuru(t *testing.T) {
	cands := Analyze("します", 0, nil)
	c, ok := firstBaseForm(cands, grammar.Suru)
	if !ok {
		t.Fatalf("no Suru candidate in %+v", cands)
	}
	if c.BaseForm != "する" {
		t.Errorf("BaseForm = %q, want する", c.BaseForm)
	}
}

func TestAnalyzeKuru(t *testing.T) {
	cands := Analyze("来ました", 0, nil)
	if len(cands) == 0 {
		t.Fatal("expected at least one candidate for 来ました")
	}
}

func TestAnalyzeIAdjective(t *testing.T) {
	cands := Analyze("美味しかった", 0, nil)
	c, ok := firstBaseForm(cands, grammar.IAdjective)
	if !ok {
		t.Fatalf("no I-adjective candidate in %+v", cands)
	}
	if c.BaseForm != "美味しい" {
		t.Errorf("BaseForm = %q, want 美味しい", c.BaseForm)
	}
}

func TestAnalyzeKatakanaSlangVerb(t *testing.T) {
	cands := Analyze("バズった", 0, nil)
	c, ok := firstBaseForm(cands, grammar.GodanRa)
	if !ok {
		t.Fatalf("no Godan-Ra candidate for katakana slang verb in %+v", cands)
	}
	if c.BaseForm != "バズる" {
		t.Errorf("BaseForm = %q, want バズる", c.BaseForm)
	}
}

type fakeVerifier struct{ verb string }

func (f fakeVerifier) Verify(base string, _ grammar.ConjugationType) bool { return base == f.verb }

func TestAnalyzeDictionaryVerificationBonus(t *testing.T) {
	without := Analyze("書いた", 0, nil)
	cWithout, _ := firstBaseForm(without, grammar.GodanKa)

	with := Analyze("書いた", 0, fakeVerifier{verb: "書く"})
	cWith, _ := firstBaseForm(with, grammar.GodanKa)

	if cWith.Confidence <= cWithout.Confidence {
		t.Errorf("verified confidence %v should exceed unverified %v", cWith.Confidence, cWithout.Confidence)
	}
}

func TestAnalyzeNoZeroWidthCandidates(t *testing.T) {
	cands := Analyze("した", 0, nil)
	for _, c := range cands {
		if c.Start == c.End {
			t.Errorf("zero-width candidate: %+v", c)
		}
	}
}

func TestAnalyzeAtEndOfInput(t *testing.T) {
	if got := Analyze("た", 1, nil); got != nil {
		t.Errorf("Analyze past end = %+v, want nil", got)
	}
}

func TestAnalyzeSortedByConfidence(t *testing.T) {
	cands := Analyze("食べられた", 0, nil)
	for i := 1; i < len(cands); i++ {
		if cands[i].Confidence > cands[i-1].Confidence {
			t.Errorf("not sorted descending at %d: %+v", i, cands)
		}
	}
}

func TestDetectConjFormMizenkei(t *testing.T) {
	if got := DetectConjForm("書かない", "書く", grammar.Verb); got != grammar.Mizenkei {
		t.Errorf("DetectConjForm = %v, want Mizenkei", got)
	}
}

func TestDetectConjFormBaseWhenEqual(t *testing.T) {
	if got := DetectConjForm("書く", "書く", grammar.Verb); got != grammar.Base {
		t.Errorf("DetectConjForm = %v, want Base", got)
	}
}

func TestDetectConjFormNonConjugatingPOS(t *testing.T) {
	if got := DetectConjForm("が", "が", grammar.Particle); got != grammar.Base {
		t.Errorf("DetectConjForm = %v, want Base for particle", got)
	}
}

func TestDetectConjFormOnbinkei(t *testing.T) {
	if got := DetectConjForm("書いた", "書く", grammar.Verb); got != grammar.Onbinkei {
		t.Errorf("DetectConjForm = %v, want Onbinkei", got)
	}
}
