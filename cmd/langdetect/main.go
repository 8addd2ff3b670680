package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/glotta/langdetect"
)

func main() {
	profileDir := flag.String("profiles", "", "Directory with JSON language profiles")
	seed := flag.Int64("seed", -1, "Random seed for reproducible detection (disabled if <0)")
	alpha := flag.Float64("alpha", 0, "Smoothing parameter override (0 uses the default)")
	probs := flag.Bool("probs", false, "Print the full ranked probability list")
	names := flag.Bool("names", false, "Print language display names next to codes")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}

	if *profileDir == "" {
		fmt.Fprintln(os.Stderr, "Please provide a profile directory using -profiles")
		os.Exit(1)
	}

	factory := langdetect.NewFactory(&logger)
	if err := factory.LoadProfiles(*profileDir); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load language profiles")
	}

	if *seed >= 0 {
		factory.SetSeed(uint64(*seed))
	}

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to read stdin")
		}

		text = string(data)
	}

	cfg := langdetect.DetectorConfig{Alpha: *alpha}

	if *probs {
		ranked, err := factory.Probabilities(text, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("Detection failed")
		}

		for _, l := range ranked {
			fmt.Printf("%s\t%.4f\n", describe(l.Lang, *names), l.Prob)
		}

		return
	}

	lang, err := factory.Detect(text, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Detection failed")
	}

	fmt.Println(describe(lang, *names))
}

// describe renders a language code, optionally with its display name.
func describe(code string, withName bool) string {
	if !withName || code == langdetect.UnknownLanguage {
		return code
	}

	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	return fmt.Sprintf("%s (%s)", code, display.English.Languages().Name(tag))
}
