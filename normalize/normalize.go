// Package normalize folds Japanese text into a canonical scalar stream
// before it enters the pre-tokenizer and lattice: full-width digits and
// Latin letters collapse to ASCII, half-width katakana expands to
// full-width, and dakuten/handakuten/Vu-series sequences combine into a
// single precomposed scalar.
//
// Normalize processes the input once, left to right, looking one scalar
// ahead to combine diacritic/small-vowel pairs. The transformation table is
// ported bit-exact from the reference normalizer (see DESIGN.md); this
// package does not perform full Unicode NFKC — only the specific folds
// §4.1 names.
//
// All functions are safe for concurrent use by multiple goroutines.
package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/libraz/suzume/grammar"
	"golang.org/x/text/unicode/width"
)

// Options controls optional deviations from the default folding behavior.
type Options struct {
	// PreserveCase disables ASCII/full-width-Latin case folding.
	PreserveCase bool
	// PreserveVu disables Vu-series (ヴ/ゔ) folding to Ba/Bi/Bu/Be/Bo or
	// bare ブ/ぶ. Real brand names (ヴィトン) expect folding off.
	PreserveVu bool
}

const maxInputBytes = 1 << 20

// Normalize folds text per §4.1 and returns the result, or a grammar.Error
// with code InvalidUtf8 if text is not valid UTF-8.
func Normalize(text string, opts Options) (string, error) {
	if !utf8.ValidString(text) {
		return "", grammar.NewError(grammar.InvalidUtf8, "normalize: input is not valid UTF-8")
	}
	if text == "" {
		return "", nil
	}
	if len(text) > maxInputBytes {
		return text, nil
	}

	var b strings.Builder
	b.Grow(int(float64(len(text)) * 1.2))

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		cp := normalizeChar(r, opts)

		// Peek: half-width dakuten/handakuten combine with the scalar just
		// produced, consuming the peeked mark.
		if i+1 < len(runes) {
			next := runes[i+1]
			if next == halfwidthDakuten {
				if combined, ok := combineWithDakuten(cp); ok {
					b.WriteRune(combined)
					i++
					continue
				}
			} else if next == halfwidthHandakuten {
				if combined, ok := combineWithHandakuten(cp); ok {
					b.WriteRune(combined)
					i++
					continue
				}
			}
		}

		if !opts.PreserveVu && isVuSeries(cp) {
			if i+1 < len(runes) {
				next := normalizeChar(runes[i+1], opts)
				if combined, ok := normalizeVuSequence(cp, next); ok {
					b.WriteRune(combined)
					i++
					continue
				}
			}
			b.WriteRune(foldBareVu(cp))
			continue
		}

		b.WriteRune(cp)
	}

	return b.String(), nil
}

// NeedsNormalization reports whether text contains any scalar Normalize
// would change, short-circuiting callers that can skip the full pass.
// It uses golang.org/x/text/unicode/width as a cheap pre-screen for the
// common ASCII/already-normalized case before falling back to the exact
// per-scalar check.
func NeedsNormalization(text string) bool {
	for _, r := range text {
		if r < 0x80 {
			if r >= 'A' && r <= 'Z' {
				return true
			}
			continue
		}
		if p := width.LookupRune(r); p.Kind() == width.Neutral {
			// Neutral runes are never touched by any of our folds.
			continue
		}
		if normalizeChar(r, Options{}) != r {
			return true
		}
		if isVuSeries(r) || r == halfwidthDakuten || r == halfwidthHandakuten {
			return true
		}
	}
	return false
}
