package normalize

// Folding tables ported bit-exact from
// original_source/normalize/normalizer.cpp.

const (
	halfwidthDakuten    rune = 0xFF9E
	halfwidthHandakuten rune = 0xFF9F

	katakanaVu      rune = 0x30F4
	katakanaSmallA  rune = 0x30A1
	katakanaSmallI  rune = 0x30A3
	katakanaSmallU  rune = 0x30A5
	katakanaSmallE  rune = 0x30A7
	katakanaSmallO  rune = 0x30A9
	katakanaBa      rune = 0x30D0
	katakanaBi      rune = 0x30D3
	katakanaBu      rune = 0x30D6
	katakanaBe      rune = 0x30D9
	katakanaBo      rune = 0x30DC
	katakanaBareFold rune = 0x30D6 // ヴ -> ブ

	hiraganaVu      rune = 0x3094
	hiraganaSmallA  rune = 0x3041
	hiraganaSmallI  rune = 0x3043
	hiraganaSmallU  rune = 0x3045
	hiraganaSmallE  rune = 0x3047
	hiraganaSmallO  rune = 0x3049
	hiraganaBa      rune = 0x3070
	hiraganaBi      rune = 0x3073
	hiraganaBu      rune = 0x3076
	hiraganaBe      rune = 0x3079
	hiraganaBo      rune = 0x307C
	hiraganaBareFold rune = 0x3076 // ゔ -> ぶ
)

// halfwidthKatakanaMap converts U+FF66..U+FF9F to their full-width
// equivalents. Index 0 corresponds to U+FF66.
var halfwidthKatakanaMap = [...]rune{
	0x30F2, // ｦ -> ヲ
	0x30A1, // ｧ -> ァ
	0x30A3, // ｨ -> ィ
	0x30A5, // ｩ -> ゥ
	0x30A7, // ｪ -> ェ
	0x30A9, // ｫ -> ォ
	0x30E3, // ｬ -> ャ
	0x30E5, // ｭ -> ュ
	0x30E7, // ｮ -> ョ
	0x30C3, // ｯ -> ッ
	0x30FC, // ｰ -> ー
	0x30A2, // ｱ -> ア
	0x30A4, // ｲ -> イ
	0x30A6, // ｳ -> ウ
	0x30A8, // ｴ -> エ
	0x30AA, // ｵ -> オ
	0x30AB, // ｶ -> カ
	0x30AD, // ｷ -> キ
	0x30AF, // ｸ -> ク
	0x30B1, // ｹ -> ケ
	0x30B3, // ｺ -> コ
	0x30B5, // ｻ -> サ
	0x30B7, // ｼ -> シ
	0x30B9, // ｽ -> ス
	0x30BB, // ｾ -> セ
	0x30BD, // ｿ -> ソ
	0x30BF, // ﾀ -> タ
	0x30C1, // ﾁ -> チ
	0x30C4, // ﾂ -> ツ
	0x30C6, // ﾃ -> テ
	0x30C8, // ﾄ -> ト
	0x30CA, // ﾅ -> ナ
	0x30CB, // ﾆ -> ニ
	0x30CC, // ﾇ -> ヌ
	0x30CD, // ﾈ -> ネ
	0x30CE, // ﾉ -> ノ
	0x30CF, // ﾊ -> ハ
	0x30D2, // ﾋ -> ヒ
	0x30D5, // ﾌ -> フ
	0x30D8, // ﾍ -> ヘ
	0x30DB, // ﾎ -> ホ
	0x30DE, // ﾏ -> マ
	0x30DF, // ﾐ -> ミ
	0x30E0, // ﾑ -> ム
	0x30E1, // ﾒ -> メ
	0x30E2, // ﾓ -> モ
	0x30E4, // ﾔ -> ヤ
	0x30E6, // ﾕ -> ユ
	0x30E8, // ﾖ -> ヨ
	0x30E9, // ﾗ -> ラ
	0x30EA, // ﾘ -> リ
	0x30EB, // ﾙ -> ル
	0x30EC, // ﾚ -> レ
	0x30ED, // ﾛ -> ロ
	0x30EF, // ﾜ -> ワ
	0x30F3, // ﾝ -> ン
	halfwidthDakuten,
	halfwidthHandakuten,
}

// normalizeChar applies folds 1-5 of §4.1 to a single scalar.
func normalizeChar(r rune, opts Options) rune {
	switch {
	case r >= 0xFF10 && r <= 0xFF19: // full-width digit
		return r - 0xFF10 + '0'
	case r >= 0xFF21 && r <= 0xFF3A: // full-width uppercase Latin
		if opts.PreserveCase {
			return r - 0xFF21 + 'A'
		}
		return r - 0xFF21 + 'a'
	case r >= 0xFF41 && r <= 0xFF5A: // full-width lowercase Latin
		return r - 0xFF41 + 'a'
	case r >= 'A' && r <= 'Z':
		if opts.PreserveCase {
			return r
		}
		return r - 'A' + 'a'
	case r >= 0xFF66 && r <= 0xFF9F:
		return halfwidthKatakanaMap[r-0xFF66]
	default:
		return r
	}
}

// combineWithDakuten returns the voiced form of base, if one exists.
func combineWithDakuten(base rune) (rune, bool) {
	switch {
	case base >= 0x30AB && base <= 0x30B3 && (base-0x30AB)%2 == 0: // Ka-row
		return base + 1, true
	case base >= 0x30B5 && base <= 0x30BD && (base-0x30B5)%2 == 0: // Sa-row
		return base + 1, true
	case base == 0x30BF:
		return 0x30C0, true
	case base == 0x30C1:
		return 0x30C2, true
	case base == 0x30C4:
		return 0x30C5, true
	case base == 0x30C6:
		return 0x30C7, true
	case base == 0x30C8:
		return 0x30C9, true
	case base >= 0x30CF && base <= 0x30DD && (base-0x30CF)%3 == 0: // Ha-row
		return base + 1, true
	case base == 0x30A6: // ウ -> ヴ
		return katakanaVu, true
	case base == 0x30EF: // ワ -> ヷ
		return 0x30F7, true
	default:
		return 0, false
	}
}

// combineWithHandakuten returns the semi-voiced (p-) form of base, Ha-row only.
func combineWithHandakuten(base rune) (rune, bool) {
	if base >= 0x30CF && base <= 0x30DD && (base-0x30CF)%3 == 0 {
		return base + 2, true
	}
	return 0, false
}

func isVuSeries(r rune) bool { return r == katakanaVu || r == hiraganaVu }

// normalizeVuSequence combines ヴ/ゔ with a following small vowel into a
// single Ba/Bi/Bu/Be/Bo scalar.
func normalizeVuSequence(vu, next rune) (rune, bool) {
	switch vu {
	case katakanaVu:
		switch next {
		case katakanaSmallA:
			return katakanaBa, true
		case katakanaSmallI:
			return katakanaBi, true
		case katakanaSmallU:
			return katakanaBu, true
		case katakanaSmallE:
			return katakanaBe, true
		case katakanaSmallO:
			return katakanaBo, true
		}
	case hiraganaVu:
		switch next {
		case hiraganaSmallA:
			return hiraganaBa, true
		case hiraganaSmallI:
			return hiraganaBi, true
		case hiraganaSmallU:
			return hiraganaBu, true
		case hiraganaSmallE:
			return hiraganaBe, true
		case hiraganaSmallO:
			return hiraganaBo, true
		}
	}
	return 0, false
}

func foldBareVu(vu rune) rune {
	if vu == katakanaVu {
		return katakanaBareFold
	}
	return hiraganaBareFold
}
