// Package lexicon is the hard-coded in-process lexicon (§4.6 item 2): a
// fixed table of particles, auxiliaries, compound particles, pronouns,
// determiners, conjunctions, formal nouns, essential verbs, time nouns,
// i-/na-adjectives, greetings, and the productive prefix set.
//
// The table is eagerly built once (init) into an immutable
// *dict.BinaryDictionary, matching §9's instruction to model the
// reference's static-lifetime lexica "as an eagerly-initialized constant
// table... never mutable after first use." The word lists themselves have
// no bit-exact source (original_source's lexicon headers are empty stubs,
// see DESIGN.md); the embed+parse shape is grounded on the teacher's
// morph/dict.go.
package lexicon

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/libraz/suzume/dict"
	"github.com/libraz/suzume/grammar"
)

//go:embed entries.txt
var raw string

var builtin *dict.BinaryDictionary

func init() {
	entries := parse(raw)
	bin, err := dict.FromEntries(entries)
	if err != nil {
		panic("lexicon: " + err.Error())
	}
	builtin = bin
}

// Dictionary returns the shared, immutable hard-coded lexicon.
func Dictionary() *dict.BinaryDictionary { return builtin }

func parse(text string) []grammar.DictionaryEntry {
	var entries []grammar.DictionaryEntry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 5 {
			continue
		}
		pos, err := grammar.ParsePOS(fields[1])
		if err != nil {
			panic("lexicon: " + err.Error())
		}
		conjType, err := grammar.ParseConjugationType(fields[3])
		if err != nil {
			panic("lexicon: " + err.Error())
		}
		cost, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			panic("lexicon: bad cost in line: " + line)
		}
		e := grammar.DictionaryEntry{
			Surface:  fields[0],
			Lemma:    fields[0],
			POS:      pos,
			Cost:     float32(cost),
			ConjType: conjType,
		}
		for _, flag := range strings.Split(fields[4], ",") {
			switch strings.TrimSpace(flag) {
			case "formal_noun":
				e.IsFormalNoun = true
			case "low_info":
				e.IsLowInfo = true
			case "prefix":
				e.IsPrefix = true
			}
		}
		entries = append(entries, e)
	}
	return entries
}
