package ngram

import "testing"

func TestNormalizeBasicLatin(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{0x0000, ' '},
		{0x0009, ' '},
		{0x0020, ' '},
		{'0', ' '},
		{'@', ' '},
		{'A', 'A'},
		{'Z', 'Z'},
		{0x005B, ' '},
		{0x0060, ' '},
		{'a', 'a'},
		{'z', 'z'},
		{0x007B, ' '},
		{0x007F, ' '},
		{0x0080, 0x0080},
		{0x00A0, ' '}, // excluded Latin-1 code point
		{0x00A1, 0x00A1},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%U) = %U, want %U", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCJK(t *testing.T) {
	// Representatives and unclassified ideographs map to themselves.
	for _, r := range []rune{0x4E00, 0x4E01, 0x4E02, 0x4E04, 0x4E05, 0x4E06,
		0x4E07, 0x4E08, 0x4E09, 0x4E10, 0x4E11, 0x4E12, 0x4E13, 0x4E14,
		0x4E15, 0x4E1E, 0x4E1F, 0x4E20, 0x4E21, 0x4E22, 0x4E23, 0x4E30} {
		if got := Normalize(r); got != r {
			t.Errorf("Normalize(%U) = %U, want identity", r, got)
		}
	}

	// Class members fold to their representative.
	folds := []struct {
		in   rune
		want rune
	}{
		{0x4E03, 0x4E01},
		{0x4E24, 0x4E13},
		{0x4E25, 0x4E13},
		{0x842C, 0x4E07}, // traditional folds to simplified
		{0x570B, 0x56FD},
	}

	for _, tt := range folds {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%U) = %U, want %U", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeRomanian(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{0x015F, 0x015F},
		{0x0163, 0x0163},
		{0x0219, 0x015F}, // comma below folds to cedilla
		{0x021B, 0x0163},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%U) = %U, want %U", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeScriptCollapse(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want rune
	}{
		{"hiragana", 0x3044, 0x3042},
		{"katakana", 0x30A4, 0x30A2},
		{"bopomofo", 0x3106, 0x3105},
		{"bopomofo extended", 0x31A1, 0x3105},
		{"hangul", 0xAC01, 0xAC00},
		{"farsi yeh", 0x06CC, 0x064A},
		{"vietnamese tone vowel", 0x1EA0, 0x1EC3},
		{"vietnamese below threshold", 0x1E00, 0x1E00},
		{"general punctuation", 0x2010, ' '},
		{"cyrillic passes through", 0x0430, 0x0430},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%U) = %U, want %U", tt.in, got, tt.want)
			}
		})
	}
}
