package dawg

import (
	"encoding/binary"

	"github.com/libraz/suzume/grammar"
)

// daMagic is the four-byte trie serialization magic, §4.3.
var daMagic = [4]byte{'D', 'A', '0', '2'}

// Serialize writes the trie as "DA02" + u32 unit count + unitCount * (u32
// baseOrValue, u32 check), little-endian.
func (t *Trie) Serialize() []byte {
	n := len(t.baseOrValue)
	buf := make([]byte, 4+4+n*8)
	copy(buf[0:4], daMagic[:])
	binary.LittleEndian.PutUint32(buf[4:8], uint32(n))
	off := 8
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(buf[off:off+4], t.baseOrValue[i])
		binary.LittleEndian.PutUint32(buf[off+4:off+8], t.check[i])
		off += 8
	}
	return buf
}

// Deserialize loads a trie previously produced by Serialize.
func Deserialize(data []byte) (*Trie, error) {
	if len(data) < 8 {
		return nil, grammar.NewError(grammar.ParseError, "dawg: truncated trie header")
	}
	if data[0] != daMagic[0] || data[1] != daMagic[1] || data[2] != daMagic[2] || data[3] != daMagic[3] {
		return nil, grammar.NewError(grammar.ParseError, "dawg: bad trie magic")
	}
	n := int(binary.LittleEndian.Uint32(data[4:8]))
	need := 8 + n*8
	if len(data) < need {
		return nil, grammar.NewError(grammar.ParseError, "dawg: truncated trie body")
	}
	t := &Trie{
		baseOrValue: make([]uint32, n),
		check:       make([]uint32, n),
	}
	off := 8
	for i := 0; i < n; i++ {
		t.baseOrValue[i] = binary.LittleEndian.Uint32(data[off : off+4])
		t.check[i] = binary.LittleEndian.Uint32(data[off+4 : off+8])
		off += 8
	}
	return t, nil
}

// SerializedSize returns the byte length Serialize would produce, without
// allocating it — used by dict writers to precompute offsets.
func (t *Trie) SerializedSize() int {
	return 8 + len(t.baseOrValue)*8
}
