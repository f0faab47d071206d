// Package pretoken splits normalized text into locked spans (URLs,
// e-mails, version literals, storage/percent quantities, dates, hashtags,
// mentions, ASCII identifier runs) that bypass the lattice, and the
// non-locked text between them (§4.2).
//
// The regex-table-plus-resolveOverlaps shape is grounded on the teacher's
// ner/patterns.go: a priority-ordered list of appendX functions builds a
// flat candidate slice, then a single overlap-resolution pass (here,
// greedy-longest-wins-by-priority rather than ner's longest-wins-by-length)
// produces the final non-overlapping spans. Western calendar-date
// supplementation (§SPEC_FULL D) additionally validates candidates with
// araddon/dateparse so "2024-13-40"-shaped garbage is not locked.
package pretoken

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/araddon/dateparse"
)

// Segment is one slice of the input: either a locked span that bypasses
// the lattice, or ordinary text that the tokenizer must segment.
type Segment struct {
	Text       string
	Locked     bool
	IsSymbol   bool // valid only when Locked; true if any scalar is symbol-class
	CharOffset int  // character index of Text's first scalar in the source
}

// priority mirrors §4.2's fixed match order: lower index wins on overlap.
var patterns = []struct {
	re       *regexp.Regexp
	validate func(string) bool
}{
	{re: regexp.MustCompile(`https?://[A-Za-z0-9\-._~:/?#\[\]@!$&'()*+,;=%]+`)},
	{re: regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)},
	{re: regexp.MustCompile(`\bv\d+(?:\.\d+)+\b`)},
	{re: regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?(%|GB|MB|KB|TB)\b`)},
	{re: regexp.MustCompile(`\d{4}年\d{1,2}月\d{1,2}日`), validate: isValidKanjiDate},
	{re: regexp.MustCompile(`\b\d{4}[-/]\d{2}[-/]\d{2}\b`), validate: isValidISOLikeDate},
	{re: regexp.MustCompile(`#[\p{Hiragana}\p{Katakana}\p{Han}A-Za-z0-9_]+`)},
	{re: regexp.MustCompile(`@[A-Za-z0-9_]+`)},
	{re: regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9_]*\b`)},
}

type candidate struct {
	start, end int // byte offsets
	priority   int
}

// Pretokenize splits text into locked and non-locked segments per §4.2.
func Pretokenize(text string) []Segment {
	if text == "" {
		return nil
	}

	var cands []candidate
	for priority, p := range patterns {
		for _, m := range p.re.FindAllStringIndex(text, -1) {
			if p.validate != nil && !p.validate(text[m[0]:m[1]]) {
				continue
			}
			cands = append(cands, candidate{start: m[0], end: m[1], priority: priority})
		}
	}
	locked := resolveOverlaps(cands)

	return buildSegments(text, locked)
}

// resolveOverlaps scans candidates left to right: among candidates with
// the same start the longest match wins, with ties broken toward lower
// priority index (earlier in §4.2's fixed order); a candidate overlapping
// one already kept is dropped even when it is longer. This follows the teacher's "longer wins, then more specific wins" rule in
// ner/patterns.go's resolveOverlaps, adapted since here "more specific"
// means "fixed priority order" rather than a Labeled flag.
func resolveOverlaps(cands []candidate) []candidate {
	if len(cands) <= 1 {
		return cands
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].start != cands[j].start {
			return cands[i].start < cands[j].start
		}
		li, lj := cands[i].end-cands[i].start, cands[j].end-cands[j].start
		if li != lj {
			return li > lj
		}
		return cands[i].priority < cands[j].priority
	})

	out := make([]candidate, 0, len(cands))
	maxEnd := 0
	for _, c := range cands {
		if c.start >= maxEnd {
			out = append(out, c)
			maxEnd = c.end
		}
	}
	return out
}

func buildSegments(text string, locked []candidate) []Segment {
	var segs []Segment
	pos := 0
	charOffset := 0

	flushPlain := func(to int) {
		if to <= pos {
			return
		}
		slice := text[pos:to]
		segs = append(segs, Segment{Text: slice, Locked: false, CharOffset: charOffset})
		charOffset += len([]rune(slice))
	}

	for _, c := range locked {
		flushPlain(c.start)
		slice := text[c.start:c.end]
		segs = append(segs, Segment{
			Text:       slice,
			Locked:     true,
			IsSymbol:   hasSymbolScalar(slice),
			CharOffset: charOffset,
		})
		charOffset += len([]rune(slice))
		pos = c.end
	}
	flushPlain(len(text))

	return segs
}

func hasSymbolScalar(s string) bool {
	for _, r := range s {
		if isSymbolRune(r) {
			return true
		}
	}
	return false
}

// isSymbolRune classifies a scalar as symbol-class for the locked-segment
// POS decision in §4.2 ("Symbol if any codepoint is symbol-class, else
// Noun"). ASCII letters/digits and CJK/kana scalars are not symbol-class;
// everything else (punctuation used in URLs/emails, @, #, etc.) is.
func isSymbolRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return false
	case r >= 0x3041 && r <= 0x30FF: // hiragana + katakana
		return false
	case r >= 0x4E00 && r <= 0x9FFF, r >= 0x3400 && r <= 0x4DBF: // kanji
		return false
	case r == '_':
		return false
	default:
		return true
	}
}

func isValidKanjiDate(s string) bool {
	var y, m, d int
	n, err := fmt.Sscanf(s, "%d年%d月%d日", &y, &m, &d)
	if err != nil || n != 3 {
		return false
	}
	return validYMD(y, m, d)
}

func isValidISOLikeDate(s string) bool {
	_, err := dateparse.ParseStrict(s)
	return err == nil
}

func validYMD(y, m, d int) bool {
	if m < 1 || m > 12 || d < 1 {
		return false
	}
	days := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	maxDay := days[m-1]
	if m == 2 && isLeapYear(y) {
		maxDay = 29
	}
	return d <= maxDay
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
