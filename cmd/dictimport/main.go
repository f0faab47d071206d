// Command dictimport converts a JMDict-simplified JSONL dump into the
// TSV user-dictionary format that this module's userdict.Load accepts
// (§4.5/§6).
//
// Each line is staged into a temporary SQLite table first (an
// inexpensive way to dedupe by surface+reading and sort deterministically
// without holding a second copy of every row in memory as Go structs),
// then the staging table is read back in sorted order and written out as
// TSV. Download a dump from https://github.com/scriptin/jmdict-simplified
// then run:
//
//	go run ./cmd/dictimport -input jmdict-eng-3.5.0.jsonl -output dict.tsv
//
// Grounded on japaniel-readerer/pkg/dictionary/importer.go's JMdictEntry
// shape and japaniel-readerer/pkg/db's sql.Open("sqlite3", ...) /
// upsert-via-ON CONFLICT staging pattern, and the teacher's
// cmd/dictgen/main.go for the flag-based CLI shape and stderr error
// convention.
package main

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/libraz/suzume/grammar"
)

const (
	scannerBufSize = 1 << 20
	defaultCost    = 0.5
)

// jmdictEntry mirrors japaniel-readerer's JMdictEntry, trimmed to the
// fields a dictionary compiler needs (surface/reading/POS); sense glosses
// are not carried into the morphological dictionary.
type jmdictEntry struct {
	Kanji []jmdictElement `json:"kanji"`
	Kana  []jmdictElement `json:"kana"`
	Sense []jmdictSense   `json:"sense"`
}

type jmdictElement struct {
	Text string `json:"text"`
}

type jmdictSense struct {
	PartOfSpeech []string `json:"partOfSpeech"`
}

func main() {
	inputPath := flag.String("input", "", "path to a JMDict-simplified JSONL dump")
	outputPath := flag.String("output", "dict.tsv", "output TSV path (userdict.Load format)")
	dbPath := flag.String("db", ":memory:", "SQLite staging database path (default: in-memory)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: dictimport -input <jsonl> [-output <tsv>] [-db <path>]")
		os.Exit(1)
	}

	if err := run(*inputPath, *outputPath, *dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "dictimport: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath, dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("open staging db: %w", err)
	}
	defer db.Close()

	if err := stageSchema(db); err != nil {
		return fmt.Errorf("create staging schema: %w", err)
	}

	staged, skipped, err := stageEntries(db, inputPath)
	if err != nil {
		return fmt.Errorf("stage entries: %w", err)
	}
	fmt.Fprintf(os.Stderr, "dictimport: staged %d entries (%d skipped: no mappable POS)\n", staged, skipped)

	if err := exportTSV(db, outputPath); err != nil {
		return fmt.Errorf("export tsv: %w", err)
	}
	fmt.Fprintf(os.Stderr, "dictimport: wrote %s\n", outputPath)
	return nil
}

func stageSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS staged_words (
			surface TEXT NOT NULL,
			reading TEXT NOT NULL,
			pos     TEXT NOT NULL,
			cost    REAL NOT NULL,
			PRIMARY KEY (surface, reading, pos)
		)`)
	return err
}

// stageEntries reads inputPath line by line and upserts one row per
// (surface, reading) pair with a mappable POS, deduping surface/reading/
// POS collisions across entries via INSERT OR IGNORE (last-writer-wins is
// unnecessary here: every row for the same key carries the same cost).
func stageEntries(db *sql.DB, inputPath string) (staged, skipped int, err error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	stmt, err := db.Prepare(`INSERT OR IGNORE INTO staged_words (surface, reading, pos, cost) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, 0, err
	}
	defer stmt.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, scannerBufSize), scannerBufSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry jmdictEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue // malformed lines are rare in jmdict-simplified dumps
		}

		pos, ok := mapPOS(entry.Sense)
		if !ok {
			skipped++
			continue
		}

		for _, surface := range surfaceForms(entry) {
			reading := readingFor(entry, surface)
			if _, err := stmt.Exec(surface, reading, pos.String(), defaultCost); err != nil {
				return staged, skipped, err
			}
			staged++
		}
	}
	if err := scanner.Err(); err != nil {
		return staged, skipped, err
	}
	return staged, skipped, nil
}

// surfaceForms returns every kanji spelling, or every kana spelling when
// the entry has none (kana-only words, e.g. common particles/adverbs).
func surfaceForms(e jmdictEntry) []string {
	if len(e.Kanji) > 0 {
		forms := make([]string, 0, len(e.Kanji))
		for _, k := range e.Kanji {
			forms = append(forms, k.Text)
		}
		return forms
	}
	forms := make([]string, 0, len(e.Kana))
	for _, k := range e.Kana {
		forms = append(forms, k.Text)
	}
	return forms
}

// readingFor picks the first kana reading, falling back to surface itself
// for kana-only entries (surface == reading).
func readingFor(e jmdictEntry, surface string) string {
	if len(e.Kanji) > 0 && len(e.Kana) > 0 {
		return e.Kana[0].Text
	}
	return surface
}

// jmdictPOSTags maps jmdict-simplified's partOfSpeech codes to this
// module's grammar.PartOfSpeech. Codes not listed here are skipped
// (interjections, expressions, and other classes this morphological
// dictionary does not model).
var jmdictPOSTags = map[string]grammar.PartOfSpeech{
	"n":       grammar.Noun,
	"n-adv":   grammar.Noun,
	"n-t":     grammar.Noun,
	"pn":      grammar.Pronoun,
	"adj-i":   grammar.Adjective,
	"adj-na":  grammar.Adjective,
	"adj-no":  grammar.Adjective,
	"adv":     grammar.Adverb,
	"conj":    grammar.Conjunction,
	"prt":     grammar.Particle,
	"aux":     grammar.Auxiliary,
	"aux-v":   grammar.Auxiliary,
	"aux-adj": grammar.Auxiliary,
}

// verbPOSPrefixes covers jmdict's v1/v5*/vs/vk verb-class codes, all of
// which map to Verb (conjugation-type detail is left to inflect.Analyze
// at analysis time rather than staged here).
var verbPOSPrefixes = []string{"v1", "v5", "vs", "vk", "vz"}

func mapPOS(senses []jmdictSense) (grammar.PartOfSpeech, bool) {
	for _, s := range senses {
		for _, tag := range s.PartOfSpeech {
			if pos, ok := jmdictPOSTags[tag]; ok {
				return pos, true
			}
			for _, prefix := range verbPOSPrefixes {
				if strings.HasPrefix(tag, prefix) {
					return grammar.Verb, true
				}
			}
		}
	}
	return grammar.Unknown, false
}

// exportTSV reads every staged row back in deterministic (surface,
// reading) order and writes userdict.Load's TSV shape:
// "surface<TAB>pos<TAB>reading<TAB>cost<TAB>conj_type" (conj_type left
// blank; userdict.parseTSV defaults it to None).
func exportTSV(db *sql.DB, outputPath string) error {
	rows, err := db.Query(`SELECT surface, reading, pos, cost FROM staged_words ORDER BY surface, reading`)
	if err != nil {
		return err
	}
	defer rows.Close()

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for rows.Next() {
		var surface, reading, pos string
		var cost float64
		if err := rows.Scan(&surface, &reading, &pos, &cost); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", surface, pos, reading, strconv.FormatFloat(cost, 'f', 2, 64))
	}
	return rows.Err()
}
