// Command analyze is a thin CLI front-end over the analyzer package
// (§1, §4.13), kept minimal since the core library — not a CLI — is the
// deliverable this spec describes.
//
// Grounded on the teacher's cmd/smoketest/main.go for its flag-based,
// stderr-error, os.Exit(1)-on-failure CLI shape; unlike smoketest this
// tool takes text on stdin (or via -text) rather than walking a
// directory, since there is no corpus to batch-scan here.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/libraz/suzume/analyzer"
	"github.com/libraz/suzume/dict"
	"github.com/libraz/suzume/grammar"
	"github.com/libraz/suzume/userdict"
)

func main() {
	text := flag.String("text", "", "text to analyze (default: read stdin)")
	dictPath := flag.String("dict", "", "path to a compiled binary dictionary (optional)")
	userDictPath := flag.String("userdict", "", "path to a TSV/CSV user dictionary (optional)")
	mode := flag.String("mode", "normal", "analysis mode: normal, search, or split")
	tagsOnly := flag.Bool("tags", false, "print extracted tags instead of morphemes")
	flag.Parse()

	input, err := readInput(*text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}

	opts := analyzer.DefaultOptions()
	opts.Mode, err = parseMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
	a := analyzer.New(opts)

	if *dictPath != "" {
		if err := loadCoreDictionary(a, *dictPath); err != nil {
			fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
			os.Exit(1)
		}
	}
	if *userDictPath != "" {
		if err := loadUserDictionary(a, *userDictPath); err != nil {
			fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
			os.Exit(1)
		}
	}

	if *tagsOnly {
		printTags(a, input)
		return
	}
	printMorphemes(a, input)
}

func readInput(text string) (string, error) {
	if text != "" {
		return text, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func parseMode(s string) (grammar.AnalysisMode, error) {
	switch strings.ToLower(s) {
	case "", "normal":
		return grammar.Normal, nil
	case "search":
		return grammar.Search, nil
	case "split":
		return grammar.Split, nil
	default:
		return grammar.Normal, fmt.Errorf("unknown mode %q (want normal, search, or split)", s)
	}
}

func loadCoreDictionary(a *analyzer.Analyzer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dictionary: %w", err)
	}
	d, err := dict.Load(data)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	a.Dict.SetCoreDictionary(d)
	return nil
}

func loadUserDictionary(a *analyzer.Analyzer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open user dictionary: %w", err)
	}
	defer f.Close()

	d, err := userdict.Load(f)
	if err != nil {
		return fmt.Errorf("load user dictionary: %w", err)
	}
	a.Dict.AddUserDictionary(d)
	return nil
}

func printMorphemes(a *analyzer.Analyzer, text string) {
	morphemes, err := a.Analyze(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, m := range morphemes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Surface, m.Lemma, m.POS, m.Reading)
	}
}

func printTags(a *analyzer.Analyzer, text string) {
	tags, err := a.Tags(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, t := range tags {
		fmt.Fprintln(w, t)
	}
}
