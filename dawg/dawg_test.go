package dawg

import (
	"sort"
	"testing"
)

func buildFixture(t *testing.T, words []string) *Trie {
	t.Helper()
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	keys := make([][]byte, len(sorted))
	values := make([]uint32, len(sorted))
	for i, w := range sorted {
		keys[i] = []byte(w)
		values[i] = uint32(i)
	}
	tr := &Trie{}
	if !tr.Build(keys, values) {
		t.Fatalf("Build failed for %v", words)
	}
	return tr
}

func TestExactMatchAndPrefixSearch(t *testing.T) {
	words := []string{"a", "ab", "abc", "abd", "b", "日本語", "日本"}
	tr := buildFixture(t, words)

	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	for i, w := range sorted {
		v, ok := tr.ExactMatch([]byte(w))
		if !ok {
			t.Errorf("ExactMatch(%q) not found", w)
			continue
		}
		if v != uint32(i) {
			t.Errorf("ExactMatch(%q) = %d, want %d", w, v, i)
		}
	}

	if _, ok := tr.ExactMatch([]byte("nope")); ok {
		t.Errorf("ExactMatch(%q) unexpectedly found", "nope")
	}

	results := tr.CommonPrefixSearch([]byte("abd extra"), 0, 0)
	lengths := map[int]bool{}
	for _, r := range results {
		lengths[r.Length] = true
	}
	if !lengths[1] || !lengths[2] || !lengths[3] {
		t.Errorf("CommonPrefixSearch(%q) = %+v, want lengths 1 (a), 2 (ab), 3 (abd)", "abd extra", results)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	tr := buildFixture(t, []string{"猫", "猫が", "犬"})
	data := tr.Serialize()
	got, err := Deserialize(data)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"猫", "猫が", "犬"} {
		wantV, ok := tr.ExactMatch([]byte(w))
		if !ok {
			t.Fatalf("original trie missing %q", w)
		}
		gotV, ok := got.ExactMatch([]byte(w))
		if !ok || gotV != wantV {
			t.Errorf("round-tripped ExactMatch(%q) = %d,%v want %d", w, gotV, ok, wantV)
		}
	}
}

func TestBuildRejectsUnsortedKeys(t *testing.T) {
	tr := &Trie{}
	keys := [][]byte{[]byte("b"), []byte("a")}
	values := []uint32{0, 1}
	if tr.Build(keys, values) {
		t.Fatal("Build should reject unsorted keys")
	}
}

func TestBuildEmpty(t *testing.T) {
	tr := &Trie{}
	if !tr.Build(nil, nil) {
		t.Fatal("Build should succeed on empty input")
	}
	if !tr.Empty() {
		t.Fatal("expected empty trie")
	}
}
