package dict

import (
	"encoding/binary"
	"os"
	"sort"

	"github.com/libraz/suzume/dawg"
	"github.com/libraz/suzume/grammar"
)

// Writer builds a binary dictionary from a set of entries (§4.4 Write).
type Writer struct {
	entries []grammar.DictionaryEntry
}

// AddEntry appends entry to the pending set.
func (w *Writer) AddEntry(entry grammar.DictionaryEntry) {
	w.entries = append(w.entries, entry)
}

// Size returns the number of entries staged so far.
func (w *Writer) Size() int { return len(w.entries) }

// Build serializes the staged entries into the binary dictionary format.
// Entries are sorted by surface; the string pool holds each distinct
// surface, then each distinct lemma (entries whose lemma equals their
// surface store no lemma bytes at all, per §4.4).
func (w *Writer) Build() ([]byte, error) {
	entries := append([]grammar.DictionaryEntry(nil), w.entries...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Surface < entries[j].Surface })

	var pool []byte
	type offsets struct {
		surfOff, lemmaOff uint32
		surfLen, lemmaLen uint16
	}
	offs := make([]offsets, len(entries))
	poolIndex := make(map[string]uint32)

	appendString := func(s string) (uint32, uint16) {
		if off, ok := poolIndex[s]; ok {
			return off, uint16(len(s))
		}
		off := uint32(len(pool))
		pool = append(pool, s...)
		poolIndex[s] = off
		return off, uint16(len(s))
	}

	for i, e := range entries {
		offs[i].surfOff, offs[i].surfLen = appendString(e.Surface)
	}
	for i, e := range entries {
		if e.Lemma != "" && e.Lemma != e.Surface {
			offs[i].lemmaOff, offs[i].lemmaLen = appendString(e.Lemma)
		}
	}

	keys := make([][]byte, len(entries))
	values := make([]uint32, len(entries))
	for i, e := range entries {
		keys[i] = []byte(e.Surface)
		values[i] = uint32(i)
	}
	// Entries may share a surface (homographs); Build requires strictly
	// increasing keys, so dedupe adjacent equal surfaces by keeping the
	// first occurrence's index as the trie's value — lookup resolves the
	// rest via GetEntry on adjacent ids if the caller needs every homograph.
	dedupKeys := keys[:0:0]
	dedupValues := values[:0:0]
	for i := range keys {
		if i > 0 && string(keys[i]) == string(keys[i-1]) {
			continue
		}
		dedupKeys = append(dedupKeys, keys[i])
		dedupValues = append(dedupValues, values[i])
	}

	trie := &dawg.Trie{}
	if !trie.Build(dedupKeys, dedupValues) {
		return nil, grammar.NewError(grammar.InternalError, "dict: trie build failed")
	}
	trieBytes := trie.Serialize()

	entryOffset := headerSize + len(trieBytes)
	stringOffset := entryOffset + len(entries)*entrySize

	buf := make([]byte, stringOffset+len(pool))
	h := header{
		magic:        magic,
		versionMajor: versionMajor,
		versionMinor: versionMinor,
		entryCount:   uint32(len(entries)),
		trieOffset:   headerSize,
		trieSize:     uint32(len(trieBytes)),
		entryOffset:  uint32(entryOffset),
		stringOffset: uint32(stringOffset),
	}
	copy(buf[0:headerSize], h.encode())
	copy(buf[headerSize:entryOffset], trieBytes)

	off := entryOffset
	for i, e := range entries {
		o := offs[i]
		rec := buf[off : off+entrySize]
		binary.LittleEndian.PutUint32(rec[0:4], o.surfOff)
		binary.LittleEndian.PutUint16(rec[4:6], o.surfLen)
		rec[6] = byte(e.POS)
		rec[7] = byte(e.ConjType)
		binary.LittleEndian.PutUint32(rec[8:12], o.lemmaOff)
		binary.LittleEndian.PutUint16(rec[12:14], o.lemmaLen)
		binary.LittleEndian.PutUint16(rec[14:16], uint16(floatToCost(e.Cost)))
		var flags uint8
		if e.IsFormalNoun {
			flags |= flagFormalNoun
		}
		if e.IsLowInfo {
			flags |= flagLowInfo
		}
		if e.IsPrefix {
			flags |= flagPrefix
		}
		rec[16] = flags
		off += entrySize
	}
	copy(buf[stringOffset:], pool)

	return buf, nil
}

// FromEntries builds an in-memory BinaryDictionary directly from entries,
// without round-tripping through the serialized byte format. Used by
// userdict and lexicon, which need the same sorted-trie lookup contract as
// a compiled dictionary but have no file to write.
func FromEntries(entries []grammar.DictionaryEntry) (*BinaryDictionary, error) {
	sorted := append([]grammar.DictionaryEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Surface < sorted[j].Surface })

	keys := make([][]byte, len(sorted))
	values := make([]uint32, len(sorted))
	for i, e := range sorted {
		keys[i] = []byte(e.Surface)
		values[i] = uint32(i)
	}
	dedupKeys := keys[:0:0]
	dedupValues := values[:0:0]
	for i := range keys {
		if i > 0 && string(keys[i]) == string(keys[i-1]) {
			continue
		}
		dedupKeys = append(dedupKeys, keys[i])
		dedupValues = append(dedupValues, values[i])
	}

	trie := &dawg.Trie{}
	if !trie.Build(dedupKeys, dedupValues) {
		return nil, grammar.NewError(grammar.InternalError, "dict: trie build failed")
	}
	return &BinaryDictionary{trie: trie, entries: sorted}, nil
}

// WriteToFile builds and writes the dictionary to path.
func (w *Writer) WriteToFile(path string) error {
	data, err := w.Build()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return grammar.NewError(grammar.InternalError, "dict: write: "+err.Error())
	}
	return nil
}
