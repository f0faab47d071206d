package grammar

// DictionaryEntry is one lexical entry: a surface form, its dictionary-form
// lemma, reading, part of speech, authored cost, conjugation paradigm, and
// classification flags. It is constructed once — from compiled dictionary
// bytes or a parsed TSV/CSV line — and is immutable thereafter.
type DictionaryEntry struct {
	Surface     string
	Lemma       string
	Reading     string
	POS         PartOfSpeech
	Cost        float32
	ConjType    ConjugationType
	IsFormalNoun bool
	IsLowInfo    bool
	IsPrefix     bool
}

// EffectiveLemma returns Lemma if set, else Surface — "lemma with length 0
// means same as surface" (§4.4).
func (e DictionaryEntry) EffectiveLemma() string {
	if e.Lemma == "" {
		return e.Surface
	}
	return e.Lemma
}

// Source identifies which dictionary tier a lattice edge or lookup result
// came from (§3 Lattice Edge.source).
type Source int

const (
	SourceDictionary Source = iota
	SourceUserDictionary
	SourceUnknown
	SourceGrammar
	SourceHardcoded
)

func (s Source) String() string {
	switch s {
	case SourceDictionary:
		return "Dictionary"
	case SourceUserDictionary:
		return "UserDictionary"
	case SourceUnknown:
		return "Unknown"
	case SourceGrammar:
		return "Grammar"
	case SourceHardcoded:
		return "Hardcoded"
	default:
		return "Source(?)"
	}
}
