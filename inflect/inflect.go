// Package inflect analyzes a surface span to decide whether it is a
// conjugated verb or adjective, returning candidate base forms with a
// confidence score (§4.8).
//
// The pattern-rule table is grounded in original_source/postprocess/
// lemmatizer.cpp's kVerbEndings/kAdjectiveEndings arrays and its
// detectConjForm classifier, generalized from a flat "return first match"
// lemmatizer into the ranked-candidate-list shape §4.8 calls for (the
// grammar::Inflection class itself was filtered out of original_source, so
// the confidence-scoring rules are authored from the spec prose). The
// rule-table dispatch idiom follows the teacher's morph/suffixes.go.
package inflect

import (
	"sort"
	"unicode/utf8"

	"github.com/libraz/suzume/grammar"
)

// Candidate is one inflection hypothesis for a surface span.
type Candidate struct {
	Start, End int // rune offsets within the analyzed text
	BaseForm   string
	VerbType   grammar.ConjugationType
	ConjForm   grammar.ConjForm
	Confidence float32
}

type rule struct {
	ending   string
	base     string
	conjType grammar.ConjugationType
	conjForm grammar.ConjForm
	floor    float32
}

// rules are ordered longest-ending-first within each group so the
// greedy matcher in Analyze prefers the most specific pattern.
var rules = []rule{
	// Suru
	{ending: "している", base: "する", conjType: grammar.Suru, conjForm: grammar.Renyokei, floor: 0.80},
	{ending: "します", base: "する", conjType: grammar.Suru, conjForm: grammar.Renyokei, floor: 0.85},
	{ending: "させる", base: "する", conjType: grammar.Suru, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "される", base: "する", conjType: grammar.Suru, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "しない", base: "する", conjType: grammar.Suru, conjForm: grammar.Mizenkei, floor: 0.80},
	{ending: "して", base: "する", conjType: grammar.Suru, conjForm: grammar.Onbinkei, floor: 0.80},
	{ending: "した", base: "する", conjType: grammar.Suru, conjForm: grammar.Onbinkei, floor: 0.80},
	{ending: "する", base: "する", conjType: grammar.Suru, conjForm: grammar.Base, floor: 0.60},

	// Kuru (irregular; only the kanji-headed forms are patternable here,
	// the kana-only forms こない/きます etc. are covered by the generic
	// Ichidan/Godan rules below since their stems differ per-verb)
	{ending: "来る", base: "来る", conjType: grammar.Kuru, conjForm: grammar.Base, floor: 0.70},
	{ending: "来た", base: "来る", conjType: grammar.Kuru, conjForm: grammar.Onbinkei, floor: 0.85},
	{ending: "来て", base: "来る", conjType: grammar.Kuru, conjForm: grammar.Onbinkei, floor: 0.85},
	{ending: "来ない", base: "来る", conjType: grammar.Kuru, conjForm: grammar.Mizenkei, floor: 0.85},

	// Causative / passive / causative-passive (compose onto the Godan
	// and Ichidan stems; matched before the plain Onbinkei/Renyokei
	// rules since they are longer).
	{ending: "わされた", base: "う", conjType: grammar.GodanWa, conjForm: grammar.Mizenkei, floor: 0.70},
	{ending: "かされた", base: "く", conjType: grammar.GodanKa, conjForm: grammar.Mizenkei, floor: 0.70},
	{ending: "がされた", base: "ぐ", conjType: grammar.GodanGa, conjForm: grammar.Mizenkei, floor: 0.70},
	{ending: "たされた", base: "つ", conjType: grammar.GodanTa, conjForm: grammar.Mizenkei, floor: 0.70},
	{ending: "なされた", base: "ぬ", conjType: grammar.GodanNa, conjForm: grammar.Mizenkei, floor: 0.70},
	{ending: "まされた", base: "む", conjType: grammar.GodanMa, conjForm: grammar.Mizenkei, floor: 0.65},
	{ending: "ばされた", base: "ぶ", conjType: grammar.GodanBa, conjForm: grammar.Mizenkei, floor: 0.70},
	{ending: "らされた", base: "る", conjType: grammar.GodanRa, conjForm: grammar.Mizenkei, floor: 0.70},

	{ending: "われた", base: "う", conjType: grammar.GodanWa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "かれた", base: "く", conjType: grammar.GodanKa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "がれた", base: "ぐ", conjType: grammar.GodanGa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "された", base: "す", conjType: grammar.GodanSa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "たれた", base: "つ", conjType: grammar.GodanTa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "なれた", base: "ぬ", conjType: grammar.GodanNa, conjForm: grammar.Mizenkei, floor: 0.70},
	{ending: "まれた", base: "む", conjType: grammar.GodanMa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "ばれた", base: "ぶ", conjType: grammar.GodanBa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "られた", base: "る", conjType: grammar.Ichidan, conjForm: grammar.Mizenkei, floor: 0.70},

	{ending: "わせた", base: "う", conjType: grammar.GodanWa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "かせた", base: "く", conjType: grammar.GodanKa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "がせた", base: "ぐ", conjType: grammar.GodanGa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "させた", base: "す", conjType: grammar.GodanSa, conjForm: grammar.Mizenkei, floor: 0.70},
	{ending: "たせた", base: "つ", conjType: grammar.GodanTa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "なせた", base: "ぬ", conjType: grammar.GodanNa, conjForm: grammar.Mizenkei, floor: 0.70},
	{ending: "ませた", base: "む", conjType: grammar.GodanMa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "ばせた", base: "ぶ", conjType: grammar.GodanBa, conjForm: grammar.Mizenkei, floor: 0.75},
	{ending: "らせた", base: "る", conjType: grammar.Ichidan, conjForm: grammar.Mizenkei, floor: 0.70},

	{ending: "られる", base: "る", conjType: grammar.Ichidan, conjForm: grammar.Mizenkei, floor: 0.70},
	{ending: "させる", base: "する", conjType: grammar.Suru, conjForm: grammar.Mizenkei, floor: 0.75},

	// Godan-Ra: onbinkei (〜った), renyokei (〜り), mizenkei (〜らない),
	// te-form (〜って)
	{ending: "った", base: "る", conjType: grammar.GodanRa, conjForm: grammar.Onbinkei, floor: 0.60},
	{ending: "って", base: "る", conjType: grammar.GodanRa, conjForm: grammar.Onbinkei, floor: 0.60},
	{ending: "らない", base: "る", conjType: grammar.GodanRa, conjForm: grammar.Mizenkei, floor: 0.80},
	{ending: "ります", base: "る", conjType: grammar.GodanRa, conjForm: grammar.Renyokei, floor: 0.85},
	{ending: "れば", base: "る", conjType: grammar.GodanRa, conjForm: grammar.Kateikei, floor: 0.80},

	// Godan-Wa: 会う, 言う, 買う
	{ending: "った", base: "う", conjType: grammar.GodanWa, conjForm: grammar.Onbinkei, floor: 0.55},
	{ending: "って", base: "う", conjType: grammar.GodanWa, conjForm: grammar.Onbinkei, floor: 0.55},
	{ending: "わない", base: "う", conjType: grammar.GodanWa, conjForm: grammar.Mizenkei, floor: 0.85},
	{ending: "います", base: "う", conjType: grammar.GodanWa, conjForm: grammar.Renyokei, floor: 0.85},
	{ending: "えば", base: "う", conjType: grammar.GodanWa, conjForm: grammar.Kateikei, floor: 0.80},
	{ending: "おう", base: "う", conjType: grammar.GodanWa, conjForm: grammar.Ishikei, floor: 0.75},

	// Godan-Ta
	{ending: "った", base: "つ", conjType: grammar.GodanTa, conjForm: grammar.Onbinkei, floor: 0.55},
	{ending: "たない", base: "つ", conjType: grammar.GodanTa, conjForm: grammar.Mizenkei, floor: 0.85},
	{ending: "ちます", base: "つ", conjType: grammar.GodanTa, conjForm: grammar.Renyokei, floor: 0.85},

	// Godan-Ka: 書く, 歩く
	{ending: "いた", base: "く", conjType: grammar.GodanKa, conjForm: grammar.Onbinkei, floor: 0.85},
	{ending: "いて", base: "く", conjType: grammar.GodanKa, conjForm: grammar.Onbinkei, floor: 0.85},
	{ending: "かない", base: "く", conjType: grammar.GodanKa, conjForm: grammar.Mizenkei, floor: 0.85},
	{ending: "きます", base: "く", conjType: grammar.GodanKa, conjForm: grammar.Renyokei, floor: 0.85},
	{ending: "けば", base: "く", conjType: grammar.GodanKa, conjForm: grammar.Kateikei, floor: 0.80},

	// Godan-Ga: 泳ぐ, 急ぐ
	{ending: "いだ", base: "ぐ", conjType: grammar.GodanGa, conjForm: grammar.Onbinkei, floor: 0.85},
	{ending: "いで", base: "ぐ", conjType: grammar.GodanGa, conjForm: grammar.Onbinkei, floor: 0.85},
	{ending: "がない", base: "ぐ", conjType: grammar.GodanGa, conjForm: grammar.Mizenkei, floor: 0.85},
	{ending: "ぎます", base: "ぐ", conjType: grammar.GodanGa, conjForm: grammar.Renyokei, floor: 0.85},

	// Godan-Sa: 話す, 貸す
	{ending: "した", base: "す", conjType: grammar.GodanSa, conjForm: grammar.Renyokei, floor: 0.60},
	{ending: "して", base: "す", conjType: grammar.GodanSa, conjForm: grammar.Renyokei, floor: 0.60},
	{ending: "さない", base: "す", conjType: grammar.GodanSa, conjForm: grammar.Mizenkei, floor: 0.85},
	{ending: "します", base: "す", conjType: grammar.GodanSa, conjForm: grammar.Renyokei, floor: 0.70},
	{ending: "せば", base: "す", conjType: grammar.GodanSa, conjForm: grammar.Kateikei, floor: 0.80},

	// Godan-Na: 死ぬ (only verb in the class)
	{ending: "んだ", base: "ぬ", conjType: grammar.GodanNa, conjForm: grammar.Onbinkei, floor: 0.55},
	{ending: "んで", base: "ぬ", conjType: grammar.GodanNa, conjForm: grammar.Onbinkei, floor: 0.55},
	{ending: "なない", base: "ぬ", conjType: grammar.GodanNa, conjForm: grammar.Mizenkei, floor: 0.85},

	// Godan-Ma: 読む, 飲む
	{ending: "んだ", base: "む", conjType: grammar.GodanMa, conjForm: grammar.Onbinkei, floor: 0.55},
	{ending: "んで", base: "む", conjType: grammar.GodanMa, conjForm: grammar.Onbinkei, floor: 0.55},
	{ending: "まない", base: "む", conjType: grammar.GodanMa, conjForm: grammar.Mizenkei, floor: 0.85},
	{ending: "みます", base: "む", conjType: grammar.GodanMa, conjForm: grammar.Renyokei, floor: 0.85},
	{ending: "めば", base: "む", conjType: grammar.GodanMa, conjForm: grammar.Kateikei, floor: 0.80},

	// Godan-Ba: 遊ぶ, 呼ぶ
	{ending: "んだ", base: "ぶ", conjType: grammar.GodanBa, conjForm: grammar.Onbinkei, floor: 0.55},
	{ending: "んで", base: "ぶ", conjType: grammar.GodanBa, conjForm: grammar.Onbinkei, floor: 0.55},
	{ending: "ばない", base: "ぶ", conjType: grammar.GodanBa, conjForm: grammar.Mizenkei, floor: 0.85},
	{ending: "びます", base: "ぶ", conjType: grammar.GodanBa, conjForm: grammar.Renyokei, floor: 0.85},

	// Ichidan: 食べる, 見る, 起きる — stem is everything before る/ない/た etc.
	{ending: "ました", base: "る", conjType: grammar.Ichidan, conjForm: grammar.Renyokei, floor: 0.75},
	{ending: "ます", base: "る", conjType: grammar.Ichidan, conjForm: grammar.Renyokei, floor: 0.75},
	{ending: "ない", base: "る", conjType: grammar.Ichidan, conjForm: grammar.Mizenkei, floor: 0.70},
	{ending: "た", base: "る", conjType: grammar.Ichidan, conjForm: grammar.Onbinkei, floor: 0.55},
	{ending: "て", base: "る", conjType: grammar.Ichidan, conjForm: grammar.Onbinkei, floor: 0.55},
	{ending: "れば", base: "る", conjType: grammar.Ichidan, conjForm: grammar.Kateikei, floor: 0.70},
	{ending: "よう", base: "る", conjType: grammar.Ichidan, conjForm: grammar.Ishikei, floor: 0.70},
	{ending: "ろ", base: "る", conjType: grammar.Ichidan, conjForm: grammar.Meireikei, floor: 0.55},

	// I-adjective
	{ending: "かった", base: "い", conjType: grammar.IAdjective, conjForm: grammar.Onbinkei, floor: 0.85},
	{ending: "くない", base: "い", conjType: grammar.IAdjective, conjForm: grammar.Mizenkei, floor: 0.85},
	{ending: "くて", base: "い", conjType: grammar.IAdjective, conjForm: grammar.Renyokei, floor: 0.80},
	{ending: "ければ", base: "い", conjType: grammar.IAdjective, conjForm: grammar.Kateikei, floor: 0.80},
	{ending: "さ", base: "い", conjType: grammar.IAdjective, conjForm: grammar.Renyokei, floor: 0.55},
	{ending: "そう", base: "い", conjType: grammar.IAdjective, conjForm: grammar.Renyokei, floor: 0.55},
	{ending: "く", base: "い", conjType: grammar.IAdjective, conjForm: grammar.Renyokei, floor: 0.55},

	// Na-adjective adverbial/attributive endings; base is the stem itself
	// (no suffix substitution), so base is left empty and filled in at
	// match time.
	{ending: "に", base: "", conjType: grammar.NaAdjective, conjForm: grammar.Renyokei, floor: 0.35},
	{ending: "な", base: "", conjType: grammar.NaAdjective, conjForm: grammar.Base, floor: 0.30},
}

func init() {
	sort.SliceStable(rules, func(i, j int) bool {
		return utf8.RuneCountInString(rules[i].ending) > utf8.RuneCountInString(rules[j].ending)
	})
}

// Verifier looks up a candidate base form and reports whether it is a
// known verb or adjective of the given conjugation type — the dictionary-
// verification bonus of §4.8.
type Verifier interface {
	Verify(baseForm string, verbType grammar.ConjugationType) bool
}

// Analyze returns inflection candidates for the text starting at rune
// offset start, sorted by descending confidence. verifier may be nil.
func Analyze(text string, start int, verifier Verifier) []Candidate {
	runes := []rune(text)
	if start >= len(runes) {
		return nil
	}
	tail := string(runes[start:])
	tailRuneCount := utf8.RuneCountInString(tail)
	end := start + tailRuneCount

	var out []Candidate
	for _, r := range rules {
		endingRunes := utf8.RuneCountInString(r.ending)
		if endingRunes > tailRuneCount {
			continue // an empty stem is allowed; scoreCandidate penalizes it
		}
		if !endsWithRunes(tail, r.ending) {
			continue
		}
		stem := tail[:len(tail)-len(r.ending)]
		stemRunes := []rune(stem)

		if katakanaVerb, ok := katakanaSlangOverride(stem, r); ok {
			katakanaVerb.Start, katakanaVerb.End = start, end
			out = append(out, scoreCandidate(katakanaVerb, stemRunes, verifier))
			continue
		}

		base := r.base
		if base == "" {
			base = stem // na-adjective: base form is the bare stem
		} else {
			base = stem + base
		}
		cand := Candidate{
			Start:      start,
			End:        end,
			BaseForm:   base,
			VerbType:   r.conjType,
			ConjForm:   r.conjForm,
			Confidence: r.floor,
		}
		out = append(out, scoreCandidate(cand, stemRunes, verifier))
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out
}

func endsWithRunes(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return s[len(s)-len(suffix):] == suffix
}

// katakanaSlangOverride implements §4.8's "stem ≥2 katakana scalars
// followed by a Godan/Ichidan-shaped ending" rule: バズる, サボって, etc.
func katakanaSlangOverride(stem string, r rule) (Candidate, bool) {
	stemRunes := []rune(stem)
	if len(stemRunes) < 2 {
		return Candidate{}, false
	}
	if r.conjType != grammar.GodanRa && r.conjType != grammar.Ichidan {
		return Candidate{}, false
	}
	for _, ru := range stemRunes {
		if !(ru >= 0x30A0 && ru <= 0x30FF) {
			return Candidate{}, false
		}
	}
	base := r.base
	if base == "" {
		base = stem
	} else {
		base = stem + base
	}
	return Candidate{BaseForm: base, VerbType: r.conjType, ConjForm: r.conjForm, Confidence: r.floor + 0.05}, true
}

// scoreCandidate applies §4.8's confidence adjustments to cand using its
// stem runes.
func scoreCandidate(cand Candidate, stemRunes []rune, verifier Verifier) Candidate {
	if len(stemRunes) < 1 {
		cand.Confidence -= 0.20
	}
	if allKanji(stemRunes) && expectsHiraganaStem(cand.VerbType) {
		cand.Confidence -= 0.15
	}
	if verifier != nil && verifier.Verify(cand.BaseForm, cand.VerbType) {
		cand.Confidence += 0.10
	}
	if cand.Confidence > 1.0 {
		cand.Confidence = 1.0
	}
	return cand
}

func allKanji(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if !(r >= 0x4E00 && r <= 0x9FFF) && !(r >= 0x3400 && r <= 0x4DBF) {
			return false
		}
	}
	return true
}

func expectsHiraganaStem(t grammar.ConjugationType) bool {
	switch t {
	case grammar.Ichidan, grammar.GodanWa, grammar.GodanKa, grammar.GodanGa,
		grammar.GodanSa, grammar.GodanTa, grammar.GodanNa, grammar.GodanMa,
		grammar.GodanBa, grammar.GodanRa, grammar.IAdjective:
		return true
	default:
		return false
	}
}

// DetectConjForm classifies an already-lemmatized surface/lemma pair into
// the conjugation form it expresses, ported from original_source/
// postprocess/lemmatizer.cpp's detectConjForm.
func DetectConjForm(surface, lemma string, pos grammar.PartOfSpeech) grammar.ConjForm {
	if pos != grammar.Verb && pos != grammar.Adjective {
		return grammar.Base
	}
	if surface == lemma {
		return grammar.Base
	}

	switch {
	case hasAnySuffix(surface, "ない", "なかった", "ぬ", "ず", "ません", "なく",
		"なくて", "なければ", "なきゃ", "なくても"):
		return grammar.Mizenkei
	case hasAnySuffix(surface, "れる", "られる", "せる", "させる", "れた",
		"られた", "せた", "させた", "される", "された"):
		return grammar.Mizenkei
	case hasAnySuffix(surface, "う", "よう", "まい") && surface != lemma:
		return grammar.Ishikei
	case hasAnySuffix(surface, "ば", "れば"):
		return grammar.Kateikei
	case hasAnySuffix(surface, "ろ", "よ", "なさい") && utf8.RuneCountInString(surface) > 1 && surface != lemma:
		return grammar.Meireikei
	case hasAnySuffix(surface, "って", "いて", "いで", "んで", "った", "いた", "いだ", "んだ"):
		return grammar.Onbinkei
	case hasAnySuffix(surface, "て", "で", "た", "だ", "ます", "ました", "まして",
		"ている", "ていた", "ておく", "てある", "てみる", "てくる", "ていく",
		"てしまう", "ちゃう", "たい", "たかった", "たら", "たり", "きた",
		"してる", "してた", "しています", "していた", "しました"):
		return grammar.Renyokei
	}

	if pos == grammar.Adjective && hasAnySuffix(surface, "く", "くて", "かった", "ければ", "さ", "そう") {
		return grammar.Renyokei
	}
	if surface != lemma {
		return grammar.Renyokei
	}
	return grammar.Base
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if endsWithRunes(s, suf) {
			return true
		}
	}
	return false
}
