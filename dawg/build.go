package dawg

import "sort"

// buildState holds the mutable scratch arrays used while constructing a
// trie. Ported from original_source/dictionary/double_array.{h,cpp}
// BuildState.
type buildState struct {
	baseOrValue  []uint32
	check        []uint32
	used         []bool
	nextCheckPos int
}

func (s *buildState) resize(n int) {
	if n <= len(s.baseOrValue) {
		return
	}
	grownBase := make([]uint32, n)
	copy(grownBase, s.baseOrValue)
	grownCheck := make([]uint32, n)
	copy(grownCheck, s.check)
	grownUsed := make([]bool, n)
	copy(grownUsed, s.used)
	s.baseOrValue = grownBase
	s.check = grownCheck
	s.used = grownUsed
}

// findBase searches for a base value such that base^c is free for every
// child label c in children. children must be sorted ascending.
func (s *buildState) findBase(children []byte) uint32 {
	if len(children) == 0 {
		return 0
	}
	firstChild := uint32(children[0])
	pos := s.nextCheckPos
	if int(firstChild) > pos {
		pos = int(firstChild)
	}

	for {
		baseCand := uint32(pos) ^ firstChild
		allFree := true
		for _, c := range children {
			idx := baseCand ^ uint32(c)
			if int(idx) < len(s.used) && s.used[idx] {
				allFree = false
				break
			}
		}
		if allFree {
			return baseCand
		}
		pos++
		if pos >= len(s.baseOrValue)+blockSize {
			return uint32(len(s.baseOrValue))
		}
	}
}

// Build constructs the trie from sorted, unique keys and their values.
// Keys must be strictly increasing in byte-lexicographic order; Build
// returns false if they are not, or if an internal invariant is violated
// during construction (should never happen on valid sorted input).
func (t *Trie) Build(keys [][]byte, values []uint32) bool {
	if len(keys) != len(values) {
		return false
	}
	if len(keys) == 0 {
		t.baseOrValue = nil
		t.check = nil
		return true
	}
	for i := 1; i < len(keys); i++ {
		if compareBytes(keys[i], keys[i-1]) <= 0 {
			return false
		}
	}

	st := &buildState{}
	st.resize(initialSize)
	st.used[0] = true

	ok := func() (ok bool) {
		defer func() {
			if r := recover(); r != nil {
				ok = false
			}
		}()
		buildRecursive(st, keys, values, 0, len(keys), 0, 0)
		return true
	}()
	if !ok {
		t.baseOrValue = nil
		t.check = nil
		return false
	}

	// Shrink trailing unused cells. A root child whose base is still 0 is
	// all-zero too, so occupancy (not cell contents) decides what to drop.
	end := len(st.baseOrValue)
	for end > 1 && !st.used[end-1] {
		end--
	}
	t.baseOrValue = st.baseOrValue[:end]
	t.check = st.check[:end]
	return true
}

// buildRecursive assigns trie cells for keys[begin:end] at the given depth,
// rooted at parentPos. Ported from DoubleArray::buildRecursive.
func buildRecursive(st *buildState, keys [][]byte, values []uint32, begin, end, depth int, parentPos uint32) {
	if begin >= end {
		return
	}

	// Keys exactly ending at depth (leaf range) come first, since keys are
	// lexicographically sorted and a prefix sorts before its extensions.
	leafBegin, leafEnd := begin, begin
	for leafEnd < end && len(keys[leafEnd]) == depth {
		leafEnd++
	}

	var children []byte
	if leafEnd > leafBegin {
		children = append(children, 0)
	}
	var prevChar byte
	havePrev := false
	for i := leafEnd; i < end; i++ {
		c := keys[i][depth]
		if !havePrev || c != prevChar {
			children = append(children, c)
			prevChar = c
			havePrev = true
		}
	}

	base := st.findBase(children)
	maxPos := 0
	for _, c := range children {
		idx := int(base ^ uint32(c))
		if idx > maxPos {
			maxPos = idx
		}
	}
	if maxPos >= len(st.baseOrValue) {
		newSize := maxPos + blockSize
		if len(st.baseOrValue)*2 > newSize {
			newSize = len(st.baseOrValue) * 2
		}
		if newSize > maxSize {
			panic("dawg: trie exceeds maximum size")
		}
		st.resize(newSize)
	}

	st.baseOrValue[parentPos] = base
	if int(base) > st.nextCheckPos {
		st.nextCheckPos = int(base)
	}

	// First pass: mark every child slot used, pointing check back at parent.
	for _, c := range children {
		idx := base ^ uint32(c)
		st.used[idx] = true
		st.check[idx] = parentPos
	}

	// Second pass: set the NUL child's leaf value, then recurse into each
	// non-leaf child's sub-range. The terminal value for keys ending here
	// is the value of the first such key in range.
	if leafEnd > leafBegin {
		idx := base ^ 0
		st.baseOrValue[idx] = leafBit | (values[leafBegin] & valueMask)
	}

	i := leafEnd
	for _, c := range children {
		if c == 0 {
			continue
		}
		childBegin := i
		for i < end && keys[i][depth] == c {
			i++
		}
		childPos := base ^ uint32(c)
		buildRecursive(st, keys, values, childBegin, i, depth+1, childPos)
	}
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// SortKeys sorts keys and permutes values in lockstep so both satisfy
// Build's ordering precondition. Callers building a trie from unsorted
// DictionaryEntry data should call this first.
func SortKeys(keys [][]byte, values []uint32) {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return compareBytes(keys[idx[i]], keys[idx[j]]) < 0
	})
	sortedKeys := make([][]byte, len(keys))
	sortedValues := make([]uint32, len(values))
	for newPos, oldPos := range idx {
		sortedKeys[newPos] = keys[oldPos]
		sortedValues[newPos] = values[oldPos]
	}
	copy(keys, sortedKeys)
	copy(values, sortedValues)
}
