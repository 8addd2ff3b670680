// Package ngram turns raw text into the character n-gram features used for
// language classification. It provides the script-folding character
// normalizer, Vietnamese diacritic recomposition and a bounded sliding window
// that yields 1- to 3-character grams.
package ngram

import (
	"github.com/glotta/langdetect/internal/messages"
)

// MaxGram is the longest gram the window produces.
const MaxGram = 3

// normTables holds the static data behind Normalize and
// NormalizeVietnamese. Built once from the embedded properties file and never
// mutated afterwards.
type normTables struct {
	latin1Excluded map[rune]struct{}
	cjkFold        map[rune]rune
	viBases        []rune
	viDmarks       []rune
	viComposed     [][]rune
}

var tables = loadTables(messages.MustLoad())

func loadTables(t *messages.Table) *normTables {
	nt := &normTables{
		latin1Excluded: make(map[rune]struct{}),
		cjkFold:        make(map[rune]rune),
		viBases:        []rune(t.String("vi.bases")),
		viDmarks:       []rune(t.String("vi.dmarks")),
	}

	for _, r := range t.String("latin1.exclude") {
		nt.latin1Excluded[r] = struct{}{}
	}

	// The first character of each class is the representative.
	for _, class := range t.Sequence("cjk.class") {
		members := []rune(class)
		if len(members) == 0 {
			continue
		}

		for _, r := range members {
			nt.cjkFold[r] = members[0]
		}
	}

	for _, mark := range nt.viDmarks {
		key := "vi.composed." + hex4(mark)
		nt.viComposed = append(nt.viComposed, []rune(t.String(key)))
	}

	return nt
}

func hex4(r rune) string {
	const digits = "0123456789ABCDEF"

	return string([]byte{
		digits[r>>12&0xF],
		digits[r>>8&0xF],
		digits[r>>4&0xF],
		digits[r&0xF],
	})
}

// Normalize maps a code point to its canonical representative. Letters keep
// their identity (modulo script folding); digits, punctuation and anything
// else that carries no language signal become the space sentinel. Total over
// all code points.
func Normalize(r rune) rune {
	switch blockOf(r) {
	case blockBasicLatin:
		if r < 'A' || (r > 'Z' && r < 'a') || r > 'z' {
			return ' '
		}
	case blockLatin1Supplement:
		if _, ok := tables.latin1Excluded[r]; ok {
			return ' '
		}
	case blockLatinExtendedB:
		// Romanian comma-below forms fold to the cedilla forms.
		switch r {
		case 'ș':
			return 'ş'
		case 'ț':
			return 'ţ'
		}
	case blockGeneralPunctuation:
		return ' '
	case blockArabic:
		// Farsi yeh folds to Arabic yeh.
		if r == 'ی' {
			return 'ي'
		}
	case blockLatinExtendedAdditional:
		// Vietnamese tone-marked vowels collapse to one representative.
		if r >= 'Ạ' {
			return 'ể'
		}
	case blockHiragana:
		return 'あ'
	case blockKatakana:
		return 'ア'
	case blockBopomofo, blockBopomofoExtended:
		return 'ㄅ'
	case blockCJKUnifiedIdeographs:
		if rep, ok := tables.cjkFold[r]; ok {
			return rep
		}
	case blockHangulSyllables:
		return '가'
	}

	return r
}
