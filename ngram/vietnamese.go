package ngram

import "strings"

// NormalizeVietnamese recomposes decomposed Vietnamese text: whenever a base
// vowel is followed by one of the five combining tone marks, the pair is
// replaced with the precomposed character. Profiles are built from
// precomposed text, so gram matching requires the same form on input.
func NormalizeVietnamese(text string) string {
	runes := []rune(text)

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			bi := runeIndex(tables.viBases, runes[i])
			di := runeIndex(tables.viDmarks, runes[i+1])

			if bi >= 0 && di >= 0 && bi < len(tables.viComposed[di]) {
				b.WriteRune(tables.viComposed[di][bi])
				i++ // the combining mark is consumed with its base

				continue
			}
		}

		b.WriteRune(runes[i])
	}

	return b.String()
}

func runeIndex(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}

	return -1
}
