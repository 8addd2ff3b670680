// Package profile holds per-language character n-gram statistics. A Profile
// accumulates gram frequencies from training text and can prune rare or noisy
// grams before being turned into a probability model.
package profile

import (
	"strings"
	"unicode/utf8"

	"github.com/glotta/langdetect/ngram"
)

const (
	// minimumFreq is the floor of the pruning threshold.
	minimumFreq = 2
	// lessFreqRatio scales the pruning threshold with profile size.
	lessFreqRatio = 100000
)

// Profile is the gram-frequency model of one language. NWords[k] is the total
// number of accumulated grams of length k+1 and always equals the sum of the
// counts of the stored grams of that length.
type Profile struct {
	Name   string
	Freq   map[string]int
	NWords [ngram.MaxGram]int
}

// New returns an unnamed profile. Unnamed profiles ignore Add and
// OmitLessFreq; they exist so partially constructed records have a safe zero
// behavior.
func New() *Profile {
	return &Profile{Freq: make(map[string]int)}
}

// NewNamed returns an empty profile for the given language identifier.
func NewNamed(name string) *Profile {
	return &Profile{Name: name, Freq: make(map[string]int)}
}

// Add counts one occurrence of gram. Unnamed profiles and grams whose
// character length falls outside 1..3 are ignored.
func (p *Profile) Add(gram string) {
	if p.Name == "" || gram == "" {
		return
	}

	n := utf8.RuneCountInString(gram)
	if n < 1 || n > ngram.MaxGram {
		return
	}

	p.NWords[n-1]++

	if p.Freq == nil {
		p.Freq = make(map[string]int)
	}

	p.Freq[gram]++
}

// Update feeds a stretch of training text through the n-gram window and
// accumulates every gram it yields.
func (p *Profile) Update(text string) {
	if text == "" {
		return
	}

	text = ngram.NormalizeVietnamese(text)
	w := ngram.NewWindow()

	for _, ch := range text {
		w.AddChar(ch)

		for n := 1; n <= ngram.MaxGram; n++ {
			if g, ok := w.Get(n); ok {
				p.Add(g)
			}
		}
	}
}

// OmitLessFreq drops grams with counts at or below a size-scaled threshold.
// If, after that, single ASCII letters account for less than a third of the
// 1-gram total, every gram containing an ASCII letter is dropped as well:
// for a language whose script is not Latin, those grams are contamination
// from brand names and loanwords.
func (p *Profile) OmitLessFreq() {
	if p.Name == "" {
		return
	}

	threshold := p.NWords[0] / lessFreqRatio
	if threshold < minimumFreq {
		threshold = minimumFreq
	}

	roman := 0

	for gram, count := range p.Freq {
		if count <= threshold {
			p.NWords[utf8.RuneCountInString(gram)-1] -= count
			delete(p.Freq, gram)
		} else if isRomanLetter(gram) {
			roman += count
		}
	}

	if roman < p.NWords[0]/3 {
		for gram, count := range p.Freq {
			if strings.ContainsFunc(gram, isASCIILetter) {
				p.NWords[utf8.RuneCountInString(gram)-1] -= count
				delete(p.Freq, gram)
			}
		}
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isRomanLetter(gram string) bool {
	r, size := utf8.DecodeRuneInString(gram)

	return size == len(gram) && isASCIILetter(r)
}
