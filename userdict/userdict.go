// Package userdict loads the TSV/CSV user-dictionary format (§4.5, §6) into
// a lookup-ready in-memory dictionary with the same common-prefix-search
// contract as a compiled binary dictionary.
package userdict

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gogs/chardet"

	"github.com/libraz/suzume/dict"
	"github.com/libraz/suzume/grammar"
)

const (
	defaultCSVCost   = 0.5
	fallbackParseCost = 1.0
)

// Dictionary is a loaded user dictionary: entries in load order, indexed
// for common-prefix lookup.
type Dictionary struct {
	bin     *dict.BinaryDictionary
	entries []grammar.DictionaryEntry // load order, for round-trip/debug
}

// Lookup delegates to the underlying indexed dictionary.
func (d *Dictionary) Lookup(text []byte, byteStart int) []dict.LookupResult {
	return d.bin.Lookup(text, byteStart)
}

// Entries returns the entries in load order.
func (d *Dictionary) Entries() []grammar.DictionaryEntry { return d.entries }

// Load reads a TSV/CSV user dictionary from r. It first runs a UTF-8
// encoding sanity check via chardet's TextDetector over the first 4096
// bytes — a much clearer failure than a line parse erroring out
// midway through a mis-encoded file — then parses line by line.
func Load(r io.Reader) (*Dictionary, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, grammar.NewError(grammar.FileNotFound, "userdict: "+err.Error())
	}
	if err := checkEncoding(raw); err != nil {
		return nil, err
	}

	var entries []grammar.DictionaryEntry
	scanner := bufio.NewScanner(strings.NewReader(string(raw)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entry, extra, err := parseLine(line)
		if err != nil {
			return nil, grammar.NewError(grammar.ParseError, "userdict: line "+strconv.Itoa(lineNo)+": "+err.Error())
		}
		entries = append(entries, entry)
		if extra != nil {
			entries = append(entries, *extra)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, grammar.NewError(grammar.ParseError, "userdict: "+err.Error())
	}

	bin, err := dict.FromEntries(entries)
	if err != nil {
		return nil, err
	}
	return &Dictionary{bin: bin, entries: entries}, nil
}

// checkEncoding rejects files that are not UTF-8, using chardet as a sanity
// pre-screen before any line is parsed.
func checkEncoding(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	sample := raw
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		// chardet found nothing conclusive; fall through to the line
		// parser, which will fail loudly on genuinely invalid UTF-8.
		return nil
	}
	switch strings.ToUpper(result.Charset) {
	case "UTF-8", "ASCII":
		return nil
	default:
		return grammar.NewError(grammar.InvalidUtf8, "userdict: file does not appear to be UTF-8 (detected "+result.Charset+")")
	}
}

// parseLine parses one non-empty, non-comment line. It returns the primary
// entry and, for the TSV path's reading expansion, an optional second
// entry (see expandReading).
func parseLine(line string) (grammar.DictionaryEntry, *grammar.DictionaryEntry, error) {
	if strings.ContainsRune(line, '\t') {
		return parseTSV(line)
	}
	return parseCSV(line)
}

// parseTSV parses "surface<TAB>pos<TAB>reading<TAB>cost<TAB>conj_type".
func parseTSV(line string) (grammar.DictionaryEntry, *grammar.DictionaryEntry, error) {
	fields := strings.Split(line, "\t")
	e := grammar.DictionaryEntry{}
	if len(fields) > 0 {
		e.Surface = strings.TrimSpace(fields[0])
	}
	if e.Surface == "" {
		return e, nil, errInvalid("empty surface")
	}
	if len(fields) > 1 && fields[1] != "" {
		pos, err := grammar.ParsePOS(strings.TrimSpace(fields[1]))
		if err != nil {
			return e, nil, err
		}
		e.POS = pos
	}
	if len(fields) > 2 {
		e.Reading = strings.TrimSpace(fields[2])
	}
	if len(fields) > 3 && strings.TrimSpace(fields[3]) != "" {
		cost, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 32)
		if err != nil {
			e.Cost = fallbackParseCost
		} else if cost < -10.0 || cost > 10.0 {
			return e, nil, errInvalid("cost out of range [-10, 10]")
		} else {
			e.Cost = float32(cost)
		}
	} else {
		e.Cost = defaultCSVCost
	}
	if len(fields) > 4 && strings.TrimSpace(fields[4]) != "" {
		ct, err := grammar.ParseConjugationType(strings.TrimSpace(fields[4]))
		if err != nil {
			return e, nil, err
		}
		e.ConjType = ct
	}
	e.Lemma = e.Surface
	return e, expandReading(e), nil
}

// parseCSV parses "surface,pos,cost,lemma".
func parseCSV(line string) (grammar.DictionaryEntry, *grammar.DictionaryEntry, error) {
	fields := strings.Split(line, ",")
	e := grammar.DictionaryEntry{}
	if len(fields) > 0 {
		e.Surface = strings.TrimSpace(fields[0])
	}
	if e.Surface == "" {
		return e, nil, errInvalid("empty surface")
	}
	if len(fields) > 1 && fields[1] != "" {
		pos, err := grammar.ParsePOS(strings.TrimSpace(fields[1]))
		if err != nil {
			return e, nil, err
		}
		e.POS = pos
	}
	if len(fields) > 2 && strings.TrimSpace(fields[2]) != "" {
		cost, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 32)
		if err != nil {
			e.Cost = fallbackParseCost
		} else if cost < -10.0 || cost > 10.0 {
			return e, nil, errInvalid("cost out of range [-10, 10]")
		} else {
			e.Cost = float32(cost)
		}
	} else {
		e.Cost = defaultCSVCost
	}
	if len(fields) > 3 {
		e.Lemma = strings.TrimSpace(fields[3])
	}
	if e.Lemma == "" {
		e.Lemma = e.Surface
	}
	return e, nil, nil
}

// closedClassReadingExpansion is the set of POS classes §4.5 names for
// reading expansion: closed-class words where the hiragana reading of a
// kanji-spelled surface should also be directly searchable.
func closedClassReadingExpansion(pos grammar.PartOfSpeech) bool {
	switch pos {
	case grammar.Adjective, grammar.Adverb, grammar.Conjunction, grammar.Pronoun:
		return true
	default:
		return false
	}
}

// expandReading implements §4.5's compiler-side reading expansion: for
// closed-class POS where reading != surface, also emit an entry keyed on
// the reading. Exposed via Load's TSV path directly (not gated behind a
// separate "compile" step) since the contract is the same either way: the
// reading becomes independently searchable.
func expandReading(e grammar.DictionaryEntry) *grammar.DictionaryEntry {
	if e.Reading == "" || e.Reading == e.Surface {
		return nil
	}
	if !closedClassReadingExpansion(e.POS) {
		return nil
	}
	return &grammar.DictionaryEntry{
		Surface:  e.Reading,
		Lemma:    e.Reading,
		Reading:  e.Reading,
		POS:      e.POS,
		Cost:     e.Cost,
		ConjType: e.ConjType,
	}
}

func errInvalid(msg string) error { return grammar.NewError(grammar.InvalidInput, msg) }
