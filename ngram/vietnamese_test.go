package ngram

import (
	"testing"

	"github.com/glotta/langdetect/internal/messages"
)

func TestNormalizeVietnamesePassthrough(t *testing.T) {
	tests := []string{"", "ABC", "012", "À"}

	for _, tt := range tests {
		if got := NormalizeVietnamese(tt); got != tt {
			t.Errorf("NormalizeVietnamese(%q) = %q, want unchanged", tt, got)
		}
	}
}

func TestNormalizeVietnameseComposes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"À", "À"},
		{"á", "á"},
		{"ẽ", "ẽ"},
		{"ự", "ự"},
		{"xin chào", "xin chào"},
		// A mark without a preceding base vowel stays as is.
		{"x̀", "x̀"},
	}

	for _, tt := range tests {
		if got := NormalizeVietnamese(tt.in); got != tt.want {
			t.Errorf("NormalizeVietnamese(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Every (base, mark) pair must produce the matching precomposed character
// from the embedded tables.
func TestNormalizeVietnameseAllCombinations(t *testing.T) {
	table := messages.MustLoad()

	bases := []rune(table.String("vi.bases"))
	dmarks := []rune(table.String("vi.dmarks"))

	for _, mark := range dmarks {
		composed := []rune(table.String("vi.composed." + hex4(mark)))
		if len(composed) != len(bases) {
			t.Fatalf("composed table for %U has %d entries, want %d", mark, len(composed), len(bases))
		}

		for i, base := range bases {
			in := string(base) + string(mark)

			if got := NormalizeVietnamese(in); got != string(composed[i]) {
				t.Errorf("NormalizeVietnamese(%q) = %q, want %q", in, got, string(composed[i]))
			}
		}
	}
}
