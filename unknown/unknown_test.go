package unknown

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		r    rune
		want Class
	}{
		{'あ', ClassHiragana},
		{'ア', ClassKatakana},
		{'漢', ClassKanji},
		{'A', ClassLatinAlpha},
		{'7', ClassDigit},
		{'!', ClassSymbol},
		{'😀', ClassSymbol},
	}
	for _, c := range cases {
		if got := Classify(c.r); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestGenerateKatakanaEmitsAllPrefixes(t *testing.T) {
	runes := []rune("パソコン")
	cands := Generate(runes, 0)
	if len(cands) != 4 {
		t.Fatalf("got %d candidates, want 4: %+v", len(cands), cands)
	}
	for i, c := range cands {
		if c.Start != 0 || c.End != i+1 {
			t.Errorf("cand[%d] = %+v", i, c)
		}
	}
}

func TestGenerateHiraganaLongestOnly(t *testing.T) {
	runes := []rune("あいう")
	cands := Generate(runes, 0)
	if len(cands) != 1 || cands[0].End != 3 {
		t.Fatalf("got %+v, want single edge covering all 3 runes", cands)
	}
}

func TestGenerateStopsAtClassBoundary(t *testing.T) {
	runes := []rune("パンです")
	cands := Generate(runes, 0)
	for _, c := range cands {
		if c.End > 2 {
			t.Errorf("candidate crossed into hiragana run: %+v", c)
		}
	}
}

func TestGenerateSymbolRunMergesZWJSequence(t *testing.T) {
	runes := []rune{'👨', 0x200D, '👩', 0x200D, '👧'}
	cands := Generate(runes, 0)
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1 merged symbol run: %+v", len(cands), cands)
	}
	if cands[0].End != len(runes) {
		t.Errorf("End = %d, want %d", cands[0].End, len(runes))
	}
}

func TestGenerateAtEndOfInput(t *testing.T) {
	if got := Generate([]rune("あ"), 1); got != nil {
		t.Errorf("Generate past end = %+v, want nil", got)
	}
}

func TestGenerateCappedBoundsRunLength(t *testing.T) {
	runes := []rune{}
	for i := 0; i < 200; i++ {
		runes = append(runes, 'ア')
	}
	cands := GenerateCapped(runes, 0, 10)
	if len(cands) != 10 {
		t.Fatalf("got %d candidates, want 10 (capped)", len(cands))
	}
	if cands[len(cands)-1].End != 10 {
		t.Errorf("last candidate End = %d, want 10", cands[len(cands)-1].End)
	}
}

func TestCostIncreasesWithRunLength(t *testing.T) {
	runes := []rune("アイウエオ")
	cands := Generate(runes, 0)
	for i := 1; i < len(cands); i++ {
		if cands[i].Cost <= cands[i-1].Cost {
			t.Errorf("cost not increasing: cands[%d]=%v cands[%d]=%v", i-1, cands[i-1], i, cands[i])
		}
	}
}
