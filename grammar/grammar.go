// Package grammar defines the closed type system shared by every other
// package in this module: part-of-speech and conjugation enumerations, and
// the error taxonomy returned by dictionary loading and parsing.
//
// Every enumeration here is closed and fixed at compile time — there is no
// registration mechanism for new tags. Values implement fmt.Stringer;
// PartOfSpeech and ConjugationType also implement json.Marshaler and
// json.Unmarshaler, and ConjForm implements json.Marshaler only.
// AnalysisMode has no JSON methods.
package grammar

import (
	"encoding/json"
	"fmt"
)

// PartOfSpeech is the closed tag set assigned to every morpheme.
type PartOfSpeech int

const (
	Unknown PartOfSpeech = iota
	Noun
	Verb
	Adjective
	Adverb
	Particle
	Auxiliary
	Conjunction
	Determiner
	Pronoun
	Symbol
	Other
)

var posNames = [...]string{
	Unknown:     "UNKNOWN",
	Noun:        "NOUN",
	Verb:        "VERB",
	Adjective:   "ADJ",
	Adverb:      "ADV",
	Particle:    "PARTICLE",
	Auxiliary:   "AUX",
	Conjunction: "CONJ",
	Determiner:  "DET",
	Pronoun:     "PRON",
	Symbol:      "SYMBOL",
	Other:       "OTHER",
}

var posFromName = map[string]PartOfSpeech{
	"UNKNOWN": Unknown,
	"NOUN":    Noun, "PROPN": Noun,
	"VERB":     Verb,
	"ADJ":      Adjective, "ADJECTIVE": Adjective,
	"ADV":      Adverb, "ADVERB": Adverb,
	"PARTICLE": Particle,
	"AUX":      Auxiliary, "AUXILIARY": Auxiliary,
	"CONJ": Conjunction, "CONJUNCTION": Conjunction,
	"DET": Determiner, "DETERMINER": Determiner,
	"PRON": Pronoun, "PRONOUN": Pronoun,
	"SYM": Symbol, "SYMBOL": Symbol,
	"PHRASE": Other, "INTJ": Other, "OTHER": Other,
	"名詞": Noun, "動詞": Verb, "形容詞": Adjective, "副詞": Adverb,
	"助詞": Particle, "助動詞": Auxiliary, "接続詞": Conjunction,
	"連体詞": Determiner, "代名詞": Pronoun, "記号": Symbol, "その他": Other,
}

// String returns the stable POS surface used in test output and TSV dumps.
func (p PartOfSpeech) String() string {
	if int(p) >= 0 && int(p) < len(posNames) {
		return posNames[p]
	}
	return fmt.Sprintf("PartOfSpeech(%d)", int(p))
}

// MarshalJSON encodes the POS as its stable string surface.
func (p PartOfSpeech) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

// UnmarshalJSON decodes a POS from its stable string surface or synonym.
func (p *PartOfSpeech) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParsePOS(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePOS resolves a POS token (ISO surface, English longhand, or Japanese
// name, see §6 synonym table) to a PartOfSpeech. Unknown tokens are an error
// (an *Error with code InvalidInput), not a silent fallback to Unknown.
func ParsePOS(s string) (PartOfSpeech, error) {
	if v, ok := posFromName[s]; ok {
		return v, nil
	}
	return Unknown, NewError(InvalidInput, fmt.Sprintf("unknown POS token %q", s))
}

// IsContentWord reports whether p is one of the open, meaning-bearing
// classes (Noun, Verb, Adjective, Adverb).
func IsContentWord(p PartOfSpeech) bool {
	switch p {
	case Noun, Verb, Adjective, Adverb:
		return true
	default:
		return false
	}
}

// IsFunctionWord reports whether p is a closed grammatical class
// (Particle, Auxiliary).
func IsFunctionWord(p PartOfSpeech) bool {
	return p == Particle || p == Auxiliary
}

// ConjugationType is the closed verb/adjective inflection paradigm.
type ConjugationType int

const (
	None ConjugationType = iota
	Ichidan
	GodanKa
	GodanGa
	GodanSa
	GodanTa
	GodanNa
	GodanBa
	GodanMa
	GodanRa
	GodanWa
	Suru
	Kuru
	IAdjective
	NaAdjective
)

var conjTypeNames = [...]string{
	None: "NONE", Ichidan: "ICHIDAN",
	GodanKa: "GODAN_KA", GodanGa: "GODAN_GA", GodanSa: "GODAN_SA",
	GodanTa: "GODAN_TA", GodanNa: "GODAN_NA", GodanBa: "GODAN_BA",
	GodanMa: "GODAN_MA", GodanRa: "GODAN_RA", GodanWa: "GODAN_WA",
	Suru: "SURU", Kuru: "KURU", IAdjective: "I_ADJ", NaAdjective: "NA_ADJ",
}

var conjTypeFromName = func() map[string]ConjugationType {
	m := make(map[string]ConjugationType, len(conjTypeNames))
	for v, n := range conjTypeNames {
		m[n] = ConjugationType(v)
	}
	return m
}()

func (c ConjugationType) String() string {
	if int(c) >= 0 && int(c) < len(conjTypeNames) {
		return conjTypeNames[c]
	}
	return fmt.Sprintf("ConjugationType(%d)", int(c))
}

func (c ConjugationType) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *ConjugationType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseConjugationType(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseConjugationType resolves a conjugation-type token from the §6 table.
func ParseConjugationType(s string) (ConjugationType, error) {
	if v, ok := conjTypeFromName[s]; ok {
		return v, nil
	}
	return None, NewError(InvalidInput, fmt.Sprintf("unknown conjugation type %q", s))
}

// ConjForm is the inflectional slot a surface occupies.
type ConjForm int

const (
	Base ConjForm = iota
	Mizenkei
	Renyokei
	Shushikei // terminal form, surface-identical to Base
	Rentaikei
	Kateikei
	Meireikei
	Ishikei
	Onbinkei
)

var conjFormNames = [...]string{
	Base: "BASE", Mizenkei: "MIZENKEI", Renyokei: "RENYOKEI",
	Shushikei: "SHUSHIKEI", Rentaikei: "RENTAIKEI", Kateikei: "KATEIKEI",
	Meireikei: "MEIREIKEI", Ishikei: "ISHIKEI", Onbinkei: "ONBINKEI",
}

func (f ConjForm) String() string {
	if int(f) >= 0 && int(f) < len(conjFormNames) {
		return conjFormNames[f]
	}
	return fmt.Sprintf("ConjForm(%d)", int(f))
}

func (f ConjForm) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }

// AnalysisMode biases the scorer (§4.7, §4.10).
type AnalysisMode int

const (
	Normal AnalysisMode = iota
	Search
	Split
)

func (m AnalysisMode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Search:
		return "search"
	case Split:
		return "split"
	default:
		return fmt.Sprintf("AnalysisMode(%d)", int(m))
	}
}
