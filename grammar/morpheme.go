package grammar

// Morpheme is one segmented unit of analyzer output, produced by Viterbi
// traceback and mutated only by the post-processor (§3).
type Morpheme struct {
	Surface  string
	Lemma    string
	Reading  string
	POS      PartOfSpeech
	ConjType ConjugationType
	ConjForm ConjForm
	Start    int // character offset in the normalized text
	End      int

	IsDictionary bool
	IsUserDict   bool
	IsFormalNoun bool
	IsLowInfo    bool
	Score        float32
}
