package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/glotta/langdetect/profile"
)

func main() {
	inputPath := flag.String("input", "", "Path to a plain-text training corpus")
	name := flag.String("name", "", "Language identifier for the profile (e.g. \"en\")")
	outputPath := flag.String("output", "", "Path to write the profile JSON (defaults to the language name)")
	keepRare := flag.Bool("keep-rare", false, "Skip pruning of rare grams")
	flag.Parse()

	if *inputPath == "" || *name == "" {
		fmt.Fprintln(os.Stderr, "Please provide -input and -name")
		os.Exit(1)
	}

	if *outputPath == "" {
		*outputPath = *name + ".json"
	}

	file, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	p := profile.NewNamed(*name)

	scanner := bufio.NewScanner(file)

	// Corpus lines can be long
	const maxCapacity = 1024 * 1024
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		p.Update(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading corpus: %v\n", err)
		os.Exit(1)
	}

	if !*keepRare {
		p.OmitLessFreq()
	}

	data, err := json.Marshal(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding profile: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing profile: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s: %d grams, n_words=%v\n", *outputPath, len(p.Freq), p.NWords)
}
