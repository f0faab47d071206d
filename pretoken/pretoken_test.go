package pretoken

import "testing"

func findLocked(segs []Segment, text string) (Segment, bool) {
	for _, s := range segs {
		if s.Locked && s.Text == text {
			return s, true
		}
	}
	return Segment{}, false
}

func TestPretokenizeURL(t *testing.T) {
	segs := Pretokenize("見て https://example.com/path?q=1 です")
	s, ok := findLocked(segs, "https://example.com/path?q=1")
	if !ok {
		t.Fatalf("expected locked URL segment in %+v", segs)
	}
	if !s.IsSymbol {
		t.Errorf("URL segment should classify as Symbol (contains symbol-class ':' and '/')")
	}
}

func TestPretokenizeEmail(t *testing.T) {
	segs := Pretokenize("連絡先はtest@example.co.jpです")
	if _, ok := findLocked(segs, "test@example.co.jp"); !ok {
		t.Fatalf("expected locked email in %+v", segs)
	}
}

func TestPretokenizeVersionLiteral(t *testing.T) {
	segs := Pretokenize("v2.0.1をリリース")
	if _, ok := findLocked(segs, "v2.0.1"); !ok {
		t.Fatalf("expected locked version literal in %+v", segs)
	}
}

func TestPretokenizeStoragePercent(t *testing.T) {
	segs := Pretokenize("容量は100GBです")
	if _, ok := findLocked(segs, "100GB"); !ok {
		t.Fatalf("expected locked storage quantity in %+v", segs)
	}
}

func TestPretokenizeFullKanjiDate(t *testing.T) {
	segs := Pretokenize("2024年1月15日に開催")
	if _, ok := findLocked(segs, "2024年1月15日"); !ok {
		t.Fatalf("expected locked date in %+v", segs)
	}
}

func TestPretokenizeRejectsInvalidKanjiDate(t *testing.T) {
	segs := Pretokenize("2024年13月40日")
	if _, ok := findLocked(segs, "2024年13月40日"); ok {
		t.Errorf("invalid date should not be locked: %+v", segs)
	}
}

func TestPretokenizeISOLikeDate(t *testing.T) {
	segs := Pretokenize("締切は2024-03-15までです")
	if _, ok := findLocked(segs, "2024-03-15"); !ok {
		t.Fatalf("expected locked ISO-like date in %+v", segs)
	}
}

func TestPretokenizeHashtag(t *testing.T) {
	segs := Pretokenize("#東京 に行った")
	if _, ok := findLocked(segs, "#東京"); !ok {
		t.Fatalf("expected locked hashtag in %+v", segs)
	}
}

func TestPretokenizeMention(t *testing.T) {
	segs := Pretokenize("@taro さんへ")
	if _, ok := findLocked(segs, "@taro"); !ok {
		t.Fatalf("expected locked mention in %+v", segs)
	}
}

func TestPretokenizeASCIIIdentifier(t *testing.T) {
	segs := Pretokenize("function getUserName() を呼ぶ")
	if _, ok := findLocked(segs, "getUserName"); !ok {
		t.Fatalf("expected locked ASCII identifier in %+v", segs)
	}
}

func TestPretokenizeCharOffsetsMonotonic(t *testing.T) {
	segs := Pretokenize("これはhttps://a.bです。テスト")
	prev := -1
	for _, s := range segs {
		if s.CharOffset <= prev {
			t.Errorf("CharOffset not increasing: %+v", segs)
		}
		prev = s.CharOffset
	}
}

func TestPretokenizeEmptyInput(t *testing.T) {
	if got := Pretokenize(""); got != nil {
		t.Errorf("Pretokenize(\"\") = %+v, want nil", got)
	}
}

func TestPretokenizeNoLockedSpans(t *testing.T) {
	segs := Pretokenize("これはテストです")
	if len(segs) != 1 || segs[0].Locked {
		t.Errorf("plain text should yield a single non-locked segment: %+v", segs)
	}
}
