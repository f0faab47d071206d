package normalize

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fullwidth digits", "１２３", "123"},
		{"fullwidth upper", "ＡＢＣ", "abc"},
		{"ascii upper folds", "ABC", "abc"},
		{"halfwidth katakana", "ｱｲ", "アイ"}, // ｱｲ -> アイ
		{"dakuten combine ka", "ｶﾞ", "ガ"},       // ｶﾞ -> ガ
		{"handakuten combine ha", "ﾊﾟ", "パ"},    // ﾊﾟ -> パ
		{"vu plus small a folds to ba", "ヴァ", "バ"},
		{"bare vu folds to bu", "ヴ", "ブ"},
		{"hiragana bare vu folds to bu", "ゔ", "ぶ"},
		{"empty", "", ""},
		{"plain kanji untouched", "日本語", "日本語"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Normalize(tt.in, Options{})
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePreserveVu(t *testing.T) {
	t.Parallel()
	got, err := Normalize("ヴィトン", Options{PreserveVu: true}) // ヴィトン
	if err != nil {
		t.Fatal(err)
	}
	want := "ヴィトン"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeInvalidUTF8(t *testing.T) {
	t.Parallel()
	_, err := Normalize("\xff\xfe", Options{})
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}

func TestNeedsNormalizationRoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{"", "plain ascii", "日本語テキスト", "１２"}
	for _, in := range inputs {
		if !NeedsNormalization(in) {
			out, err := Normalize(in, Options{})
			if err != nil {
				t.Fatal(err)
			}
			if out != in {
				t.Errorf("NeedsNormalization(%q)=false but Normalize changed it to %q", in, out)
			}
		}
	}
}
