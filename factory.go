package langdetect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/glotta/langdetect/ngram"
	"github.com/glotta/langdetect/profile"
)

// Factory owns the probability model built from language profiles and creates
// detectors against it. Load all profiles first; once detectors are being
// created the model must be treated as immutable.
type Factory struct {
	wordLangProb map[string][]float64
	langs        []string
	seed         *uint64
	logger       *zerolog.Logger
}

// NewFactory returns an empty factory. A nil logger disables logging.
func NewFactory(logger *zerolog.Logger) *Factory {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Factory{
		wordLangProb: make(map[string][]float64),
		logger:       logger,
	}
}

// SetSeed fixes the random seed passed to every detector this factory
// creates, making detection reproducible.
func (f *Factory) SetSeed(seed uint64) {
	f.seed = &seed
}

// Languages returns the loaded language identifiers in index order.
func (f *Factory) Languages() []string {
	out := make([]string, len(f.langs))
	copy(out, f.langs)

	return out
}

// Clear drops every loaded profile.
func (f *Factory) Clear() {
	f.langs = f.langs[:0]
	f.wordLangProb = make(map[string][]float64)
}

// AddProfile merges one profile into the probability model. The profile takes
// language index `index` out of `langSize` total languages; for each of its
// grams, entry `index` of the gram's probability vector becomes
// count/NWords[len-1]. A name collision rejects the profile before any
// mutation.
func (f *Factory) AddProfile(p *profile.Profile, index, langSize int) error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", profile.ErrInvalid)
	}

	for _, lang := range f.langs {
		if lang == p.Name {
			return &DuplicatedLanguageError{Lang: p.Name}
		}
	}

	f.langs = append(f.langs, p.Name)

	for gram, count := range p.Freq {
		n := utf8.RuneCountInString(gram)
		if n < 1 || n > ngram.MaxGram {
			continue
		}

		v, ok := f.wordLangProb[gram]
		if !ok {
			v = make([]float64, langSize)
			f.wordLangProb[gram] = v
		}

		v[index] = float64(count) / float64(p.NWords[n-1])
	}

	f.logger.Debug().Str("lang", p.Name).Int("index", index).Int("grams", len(p.Freq)).Msg("loaded language profile")

	return nil
}

// RemoveProfile unloads a language, compacting its index out of every
// probability vector.
func (f *Factory) RemoveProfile(lang string) error {
	index := -1

	for i, l := range f.langs {
		if l == lang {
			index = i
			break
		}
	}

	if index < 0 {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}

	f.langs = append(f.langs[:index], f.langs[index+1:]...)

	for gram, v := range f.wordLangProb {
		if index < len(v) {
			f.wordLangProb[gram] = append(v[:index], v[index+1:]...)
		}
	}

	return nil
}

// LoadJSONProfiles builds the model from raw profile records, assigning
// language indexes in slice order.
func (f *Factory) LoadJSONProfiles(records [][]byte) error {
	langSize := len(records)
	if langSize < 2 {
		return ErrNotEnoughProfiles
	}

	for i, rec := range records {
		p, err := profile.FromJSON(rec)
		if err != nil {
			return err
		}

		if err := f.AddProfile(p, i, langSize); err != nil {
			return err
		}
	}

	return nil
}

// LoadProfiles reads every profile file in dir. Filenames are sorted first so
// language index assignment does not depend on directory iteration order.
func (f *Factory) LoadProfiles(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading profile directory: %w", err)
	}

	var names []string

	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	sort.Strings(names)

	records := make([][]byte, 0, len(names))

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("reading profile %s: %w", name, err)
		}

		records = append(records, data)
	}

	if err := f.LoadJSONProfiles(records); err != nil {
		return err
	}

	f.logger.Info().Int("languages", len(f.langs)).Str("dir", dir).Msg("profiles loaded")

	return nil
}

// Create returns a fresh detector over a cloned copy of the model, so the
// detector can run independently of the factory and of its siblings.
func (f *Factory) Create(cfg DetectorConfig) (*Detector, error) {
	if cfg.Prior != nil {
		if err := validatePrior(cfg.Prior, len(f.langs)); err != nil {
			return nil, err
		}
	}

	if cfg.Seed == nil {
		cfg.Seed = f.seed
	}

	model := make(map[string][]float64, len(f.wordLangProb))

	for gram, v := range f.wordLangProb {
		cloned := make([]float64, len(v))
		copy(cloned, v)
		model[gram] = cloned
	}

	langs := make([]string, len(f.langs))
	copy(langs, f.langs)

	return newDetector(model, langs, cfg), nil
}

// Detect is the one-shot form: create, append, detect.
func (f *Factory) Detect(text string, cfg DetectorConfig) (string, error) {
	d, err := f.Create(cfg)
	if err != nil {
		return "", err
	}

	d.Append(text)

	return d.Detect()
}

// Probabilities is the one-shot form of Detector.Probabilities.
func (f *Factory) Probabilities(text string, cfg DetectorConfig) ([]Language, error) {
	d, err := f.Create(cfg)
	if err != nil {
		return nil, err
	}

	d.Append(text)

	return d.Probabilities()
}

func validatePrior(prior []float64, langSize int) error {
	if len(prior) != langSize {
		return fmt.Errorf("prior has %d entries, want %d", len(prior), langSize)
	}

	sum := 0.0

	for _, p := range prior {
		if p < 0 {
			return errNegativePrior
		}

		sum += p
	}

	if sum <= 0 {
		return errZeroPrior
	}

	return nil
}
