package dict

import (
	"os"
	"path/filepath"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/libraz/suzume/grammar"
)

// mappedDictionary wraps a BinaryDictionary over an mmap'd file so the
// process never copies the dictionary bytes into the Go heap. Grounded in
// SteosOfficial-SteosMorphy/analyzer/analyzer.go's loadInternal, which maps
// its dictionary file the same way.
type mappedDictionary struct {
	*BinaryDictionary
	mapping mmap.MMap
	file    *os.File
}

// Close unmaps the dictionary file. Safe to call once; further lookups
// after Close are undefined, matching mmap-go's own contract.
func (m *mappedDictionary) Close() error {
	var err error
	if m.mapping != nil {
		err = m.mapping.Unmap()
	}
	if m.file != nil {
		if cerr := m.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// LoadFile loads a binary dictionary from path. When the file is larger
// than inlineThreshold it is mapped read-only via mmap-go instead of being
// read into an owned buffer; the returned Closer must be closed when the
// dictionary is no longer needed (the top-level Analyzer does this when a
// DictionaryManager is torn down). Smaller files are read with os.ReadFile
// and behave exactly as Load(data) — §4.4's "entire contents read into an
// owned byte vector" contract is preserved at that size, where mmap's
// per-mapping overhead isn't worth paying.
const inlineThreshold = 1 << 16 // 64 KiB

func LoadFile(path string) (*BinaryDictionary, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, grammar.NewError(grammar.FileNotFound, "dict: "+err.Error())
	}
	if info.Size() < inlineThreshold {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, grammar.NewError(grammar.FileNotFound, "dict: "+err.Error())
		}
		bd, err := Load(data)
		if err != nil {
			return nil, nil, err
		}
		return bd, func() error { return nil }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, grammar.NewError(grammar.FileNotFound, "dict: "+err.Error())
	}
	mapping, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, nil, grammar.NewError(grammar.InternalError, "dict: mmap: "+err.Error())
	}
	bd, err := Load([]byte(mapping))
	if err != nil {
		mapping.Unmap()
		f.Close()
		return nil, nil, err
	}
	md := &mappedDictionary{BinaryDictionary: bd, mapping: mapping, file: f}
	return md.BinaryDictionary, md.Close, nil
}

// coreDictFile and userDictFile are the fixed auto-load file names (§6).
const (
	coreDictFile = "core.dic"
	userDictFile = "user.dic"
)

// autoLoadDirs is §6's fixed search order: $SUZUME_DATA_DIR, ./data,
// $HOME/.suzume, /usr/local/share/suzume, /usr/share/suzume. First
// directory containing core.dic wins.
func autoLoadDirs() []string {
	var dirs []string
	if v := os.Getenv("SUZUME_DATA_DIR"); v != "" {
		dirs = append(dirs, v)
	}
	dirs = append(dirs, "./data")
	if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".suzume"))
	}
	dirs = append(dirs, "/usr/local/share/suzume", "/usr/share/suzume")
	return dirs
}

// AutoLoadPaths returns the core and (if present) user dictionary paths
// found by walking §6's fixed search order, stopping at the first
// directory containing core.dic. userPath is "" when that directory has
// no user.dic. found is false if no directory in the search order
// contains core.dic.
func AutoLoadPaths() (corePath, userPath string, found bool) {
	for _, dir := range autoLoadDirs() {
		candidate := filepath.Join(dir, coreDictFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			corePath = candidate
			if uCandidate := filepath.Join(dir, userDictFile); fileExists(uCandidate) {
				userPath = uCandidate
			}
			return corePath, userPath, true
		}
	}
	return "", "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
