// Package dict implements the on-disk binary dictionary format (§4.4, §6):
// a double-array trie over surface forms, a fixed-size entry record array,
// and a string pool for surface/lemma bytes. BinaryDictionary is read-only
// once loaded; Writer builds the format from a set of entries.
package dict

import (
	"encoding/binary"

	"github.com/libraz/suzume/dawg"
	"github.com/libraz/suzume/grammar"
)

const (
	magic        uint32 = 0x444D5A53 // "SZMD" little-endian
	versionMajor uint16 = 1
	versionMinor uint16 = 0

	headerSize = 36
	entrySize  = 20

	flagFormalNoun uint8 = 0x01
	flagLowInfo    uint8 = 0x02
	flagPrefix     uint8 = 0x04
)

type header struct {
	magic        uint32
	versionMajor uint16
	versionMinor uint16
	entryCount   uint32
	trieOffset   uint32
	trieSize     uint32
	entryOffset  uint32
	stringOffset uint32
	flags        uint32
	checksum     uint32
}

func (h header) encode() []byte {
	buf := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.magic)
	binary.LittleEndian.PutUint16(buf[4:6], h.versionMajor)
	binary.LittleEndian.PutUint16(buf[6:8], h.versionMinor)
	binary.LittleEndian.PutUint32(buf[8:12], h.entryCount)
	binary.LittleEndian.PutUint32(buf[12:16], h.trieOffset)
	binary.LittleEndian.PutUint32(buf[16:20], h.trieSize)
	binary.LittleEndian.PutUint32(buf[20:24], h.entryOffset)
	binary.LittleEndian.PutUint32(buf[24:28], h.stringOffset)
	binary.LittleEndian.PutUint32(buf[28:32], h.flags)
	binary.LittleEndian.PutUint32(buf[32:36], h.checksum)
	return buf
}

func decodeHeader(data []byte) header {
	return header{
		magic:        binary.LittleEndian.Uint32(data[0:4]),
		versionMajor: binary.LittleEndian.Uint16(data[4:6]),
		versionMinor: binary.LittleEndian.Uint16(data[6:8]),
		entryCount:   binary.LittleEndian.Uint32(data[8:12]),
		trieOffset:   binary.LittleEndian.Uint32(data[12:16]),
		trieSize:     binary.LittleEndian.Uint32(data[16:20]),
		entryOffset:  binary.LittleEndian.Uint32(data[20:24]),
		stringOffset: binary.LittleEndian.Uint32(data[24:28]),
		flags:        binary.LittleEndian.Uint32(data[28:32]),
		checksum:     binary.LittleEndian.Uint32(data[32:36]),
	}
}

func floatToCost(f float32) int16  { return int16(f * 100) }
func costToFloat(c int16) float32  { return float32(c) / 100.0 }

// LookupResult is one common-prefix-search hit resolved to its entry.
type LookupResult struct {
	EntryID    uint32
	ByteLength int
	Entry      *grammar.DictionaryEntry
}

// BinaryDictionary is a loaded, read-only dictionary.
type BinaryDictionary struct {
	trie    *dawg.Trie
	entries []grammar.DictionaryEntry
	data    []byte // owned (or mmapped) backing bytes; retained for string pool references
}

// Size returns the number of entries.
func (d *BinaryDictionary) Size() int { return len(d.entries) }

// IsLoaded reports whether the dictionary has been populated.
func (d *BinaryDictionary) IsLoaded() bool { return d.trie != nil }

// GetEntry returns the entry at idx, or nil if out of range.
func (d *BinaryDictionary) GetEntry(idx uint32) *grammar.DictionaryEntry {
	if int(idx) >= len(d.entries) {
		return nil
	}
	return &d.entries[idx]
}

// Lookup performs a common-prefix search at byteStart and resolves each hit
// to its entry (§4.4).
func (d *BinaryDictionary) Lookup(text []byte, byteStart int) []LookupResult {
	if !d.IsLoaded() {
		return nil
	}
	hits := d.trie.CommonPrefixSearch(text, byteStart, 0)
	results := make([]LookupResult, 0, len(hits))
	for _, h := range hits {
		if int(h.Value) >= len(d.entries) {
			continue
		}
		results = append(results, LookupResult{
			EntryID:    h.Value,
			ByteLength: h.Length,
			Entry:      &d.entries[h.Value],
		})
	}
	return results
}

// Load parses a binary dictionary from an owned byte slice (the slice is
// retained, not copied — callers that need independence must copy first).
func Load(data []byte) (*BinaryDictionary, error) {
	if len(data) < headerSize {
		return nil, grammar.NewError(grammar.ParseError, "dict: truncated header")
	}
	h := decodeHeader(data)
	if h.magic != magic {
		return nil, grammar.NewError(grammar.ParseError, "dict: bad magic")
	}
	if h.versionMajor != versionMajor {
		return nil, grammar.NewError(grammar.ParseError, "dict: unsupported major version")
	}
	if uint64(h.trieOffset)+uint64(h.trieSize) > uint64(len(data)) ||
		uint64(h.entryOffset) > uint64(len(data)) ||
		uint64(h.stringOffset) > uint64(len(data)) {
		return nil, grammar.NewError(grammar.ParseError, "dict: region out of bounds")
	}

	trie, err := dawg.Deserialize(data[h.trieOffset : h.trieOffset+h.trieSize])
	if err != nil {
		return nil, grammar.Wrap(err, "dict: trie")
	}

	stringPool := data[h.stringOffset:]
	entries := make([]grammar.DictionaryEntry, h.entryCount)
	off := int(h.entryOffset)
	for i := uint32(0); i < h.entryCount; i++ {
		rec := data[off : off+entrySize]
		surfOff := binary.LittleEndian.Uint32(rec[0:4])
		surfLen := binary.LittleEndian.Uint16(rec[4:6])
		pos := PartOfSpeech(rec[6])
		conjType := ConjugationType(rec[7])
		lemmaOff := binary.LittleEndian.Uint32(rec[8:12])
		lemmaLen := binary.LittleEndian.Uint16(rec[12:14])
		cost := int16(binary.LittleEndian.Uint16(rec[14:16]))
		flags := rec[16]

		if int(surfOff)+int(surfLen) > len(stringPool) {
			return nil, grammar.NewError(grammar.ParseError, "dict: surface out of bounds")
		}
		surface := string(stringPool[surfOff : surfOff+uint32(surfLen)])
		var lemma string
		if lemmaLen > 0 {
			if int(lemmaOff)+int(lemmaLen) > len(stringPool) {
				return nil, grammar.NewError(grammar.ParseError, "dict: lemma out of bounds")
			}
			lemma = string(stringPool[lemmaOff : lemmaOff+uint32(lemmaLen)])
		}

		entries[i] = grammar.DictionaryEntry{
			Surface:      surface,
			Lemma:        lemma,
			POS:          pos,
			Cost:         costToFloat(cost),
			ConjType:     conjType,
			IsFormalNoun: flags&flagFormalNoun != 0,
			IsLowInfo:    flags&flagLowInfo != 0,
			IsPrefix:     flags&flagPrefix != 0,
		}
		off += entrySize
	}

	return &BinaryDictionary{trie: trie, entries: entries, data: data}, nil
}

// Aliases so this file can reference grammar types tersely without an
// import-qualified name in every signature above.
type PartOfSpeech = grammar.PartOfSpeech
type ConjugationType = grammar.ConjugationType
