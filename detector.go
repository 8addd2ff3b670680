// Package langdetect identifies the most probable natural language of a text
// sample. Detection scores character 1- to 3-grams against per-language
// frequency profiles with a randomized iterative probability estimation, so a
// short sample is enough for a reliable ranking across the loaded languages.
package langdetect

import (
	"math/rand/v2"
	"regexp"

	"github.com/glotta/langdetect/ngram"
)

const (
	// DefaultAlpha is the base additive smoothing parameter.
	DefaultAlpha = 0.5
	// DefaultTrials is the number of independent randomized trials averaged
	// into the final probability vector.
	DefaultTrials = 7
	// DefaultMaxTextLength caps the number of characters consumed per
	// Append call.
	DefaultMaxTextLength = 10000

	// UnknownLanguage is returned by Detect when no language clears the
	// reporting threshold.
	UnknownLanguage = "unknown"

	alphaWidth     = 0.05
	iterationLimit = 1000
	probThreshold  = 0.1
	convThreshold  = 0.99999
	baseFreq       = 10000.0
)

var (
	// regexp rejects repeat counts above 1000.
	urlPattern  = regexp.MustCompile(`https?://[-_.?&~;+=/#0-9A-Za-z]{1,1000}`)
	mailPattern = regexp.MustCompile(`[-_.0-9A-Za-z]{1,64}@[-_0-9A-Za-z]{1,255}[-_.0-9A-Za-z]{1,255}`)
)

// DetectorConfig carries the recognized detector options. The zero value
// selects every default; a nil Seed draws entropy from the process source.
type DetectorConfig struct {
	// Alpha overrides the base smoothing parameter when non-zero.
	Alpha float64
	// Trials overrides the trial count when non-zero.
	Trials int
	// MaxTextLength overrides the per-Append character cap when non-zero.
	MaxTextLength int
	// Prior, when set, seeds each trial with these per-language
	// probabilities instead of a uniform vector. Its length must equal the
	// number of loaded languages.
	Prior []float64
	// Seed makes the whole trial loop reproducible.
	Seed *uint64
}

// Detector accumulates text and estimates per-language probabilities against
// a cloned probability model. It owns its model copy, so independent
// detectors may run concurrently; a single Detector is not safe for
// concurrent use.
//
// The first call to Detect or Probabilities computes the probability vector
// and caches it for the detector's lifetime; later Append calls have no
// effect on the cached result.
type Detector struct {
	wordLangProb map[string][]float64
	langs        []string
	rng          *rand.Rand

	text          []rune
	langProb      []float64
	alpha         float64
	trials        int
	maxTextLength int
	prior         []float64
}

func newDetector(wordLangProb map[string][]float64, langs []string, cfg DetectorConfig) *Detector {
	d := &Detector{
		wordLangProb:  wordLangProb,
		langs:         langs,
		alpha:         cfg.Alpha,
		trials:        cfg.Trials,
		maxTextLength: cfg.MaxTextLength,
		prior:         cfg.Prior,
	}

	if d.alpha == 0 {
		d.alpha = DefaultAlpha
	}

	if d.trials == 0 {
		d.trials = DefaultTrials
	}

	if d.maxTextLength == 0 {
		d.maxTextLength = DefaultMaxTextLength
	}

	if cfg.Seed != nil {
		d.rng = rand.New(rand.NewPCG(*cfg.Seed, *cfg.Seed))
	} else {
		d.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return d
}

// Append adds text to the sample under analysis. URL-like and e-mail-like
// substrings are stripped, Vietnamese diacritics are recomposed, consecutive
// whitespace collapses to a single space and at most MaxTextLength characters
// are consumed per call.
func (d *Detector) Append(text string) {
	text = urlPattern.ReplaceAllString(text, " ")
	text = mailPattern.ReplaceAllString(text, " ")
	text = ngram.NormalizeVietnamese(text)

	pre := ' '

	for i, ch := range []rune(text) {
		if i >= d.maxTextLength {
			break
		}

		if ch != ' ' || pre != ' ' {
			d.text = append(d.text, ch)
		}

		pre = ch
	}
}

// Detect returns the identifier of the most probable language, or
// UnknownLanguage when no language clears the reporting threshold.
func (d *Detector) Detect() (string, error) {
	probs, err := d.Probabilities()
	if err != nil {
		return "", err
	}

	if len(probs) == 0 || probs[0].Lang == "" {
		return UnknownLanguage, nil
	}

	return probs[0].Lang, nil
}

// Probabilities returns the ranked per-language probabilities for the
// accumulated text. Only languages above the reporting threshold appear.
func (d *Detector) Probabilities() ([]Language, error) {
	if d.langProb == nil {
		if err := d.detectBlock(); err != nil {
			return nil, err
		}
	}

	return d.rank(), nil
}

func (d *Detector) detectBlock() error {
	d.cleanText()

	grams := d.extractNGrams()
	if len(grams) == 0 {
		return ErrNoFeatures
	}

	d.langProb = make([]float64, len(d.langs))

	for t := 0; t < d.trials; t++ {
		prob := d.initProbability()
		alpha := d.alpha + d.rng.NormFloat64()*alphaWidth

		for i := 0; ; i++ {
			d.updateLangProb(prob, grams[d.rng.IntN(len(grams))], alpha)

			if i%5 == 0 {
				if normalizeProb(prob) > convThreshold || i >= iterationLimit {
					break
				}
			}
		}

		for j, p := range prob {
			d.langProb[j] += p / float64(d.trials)
		}
	}

	return nil
}

// cleanText strips Latin letters when the sample is dominated by a non-Latin
// script, so incidental brand names cannot bias the ranking. Characters in
// the Latin Extended Additional block count as Latin even though they sit
// above U+0300.
func (d *Detector) cleanText() {
	latin, nonLatin := 0, 0

	for _, ch := range d.text {
		switch {
		case ch >= 'A' && ch <= 'z':
			latin++
		case ch >= '̀' && !ngram.InLatinExtendedAdditional(ch):
			nonLatin++
		}
	}

	if latin*2 >= nonLatin {
		return
	}

	stripped := d.text[:0]

	for _, ch := range d.text {
		if ch < 'A' || ch > 'z' {
			stripped = append(stripped, ch)
		}
	}

	d.text = stripped
}

// extractNGrams collects every windowed gram that exists in the probability
// model.
func (d *Detector) extractNGrams() []string {
	var grams []string

	w := ngram.NewWindow()

	for _, ch := range d.text {
		w.AddChar(ch)

		for n := 1; n <= ngram.MaxGram; n++ {
			g, ok := w.Get(n)
			if !ok {
				continue
			}

			if _, known := d.wordLangProb[g]; known {
				grams = append(grams, g)
			}
		}
	}

	return grams
}

func (d *Detector) initProbability() []float64 {
	prob := make([]float64, len(d.langs))

	if d.prior != nil {
		copy(prob, d.prior)

		return prob
	}

	for i := range prob {
		prob[i] = 1 / float64(len(d.langs))
	}

	return prob
}

func (d *Detector) updateLangProb(prob []float64, gram string, alpha float64) {
	langProb, ok := d.wordLangProb[gram]
	if !ok {
		return
	}

	weight := alpha / baseFreq

	for i := range prob {
		prob[i] *= weight + langProb[i]
	}
}

// normalizeProb scales prob to sum to one and returns the maximum entry.
func normalizeProb(prob []float64) float64 {
	sum := 0.0
	for _, p := range prob {
		sum += p
	}

	maxP := 0.0

	for i := range prob {
		prob[i] /= sum

		if prob[i] > maxP {
			maxP = prob[i]
		}
	}

	return maxP
}

func (d *Detector) rank() []Language {
	result := make([]Language, 0, len(d.langs))

	for i, lang := range d.langs {
		if d.langProb[i] > probThreshold {
			result = append(result, Language{Lang: lang, Prob: d.langProb[i]})
		}
	}

	sortLanguages(result)

	return result
}
