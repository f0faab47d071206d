package dict

import (
	"testing"

	"github.com/libraz/suzume/grammar"
)

func TestBuildLoadRoundTrip(t *testing.T) {
	w := &Writer{}
	w.AddEntry(grammar.DictionaryEntry{Surface: "test", POS: grammar.Noun, Cost: 1.5})
	w.AddEntry(grammar.DictionaryEntry{Surface: "猫", Lemma: "猫", Reading: "ねこ", POS: grammar.Noun, Cost: 0.8})
	w.AddEntry(grammar.DictionaryEntry{Surface: "食べる", Lemma: "食べる", POS: grammar.Verb, Cost: 1.0, ConjType: grammar.Ichidan})

	data, err := w.Build()
	if err != nil {
		t.Fatal(err)
	}

	bd, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}
	if bd.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", bd.Size())
	}

	results := bd.Lookup([]byte("test"), 0)
	if len(results) != 1 {
		t.Fatalf("Lookup(test) = %d results, want 1", len(results))
	}
	if got := results[0].Entry.Cost; got < 1.49 || got > 1.51 {
		t.Errorf("cost = %v, want ~1.5", got)
	}

	results = bd.Lookup([]byte("食べるもの"), 0)
	if len(results) != 1 || results[0].ByteLength != len([]byte("食べる")) {
		t.Fatalf("Lookup(食べるもの) = %+v", results)
	}
	if results[0].Entry.EffectiveLemma() != "食べる" {
		t.Errorf("lemma = %q", results[0].Entry.EffectiveLemma())
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	_, err := Load(make([]byte, headerSize))
	if err == nil {
		t.Fatal("expected error for zeroed header")
	}
	if grammar.CodeOf(err) != grammar.ParseError {
		t.Errorf("code = %v, want ParseError", grammar.CodeOf(err))
	}
}

func TestEntriesSortedBySurfaceInPool(t *testing.T) {
	w := &Writer{}
	w.AddEntry(grammar.DictionaryEntry{Surface: "b", POS: grammar.Noun})
	w.AddEntry(grammar.DictionaryEntry{Surface: "a", POS: grammar.Noun})
	data, err := w.Build()
	if err != nil {
		t.Fatal(err)
	}
	bd, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}
	if bd.GetEntry(0).Surface != "a" || bd.GetEntry(1).Surface != "b" {
		t.Errorf("entries not sorted: %q, %q", bd.GetEntry(0).Surface, bd.GetEntry(1).Surface)
	}
}
