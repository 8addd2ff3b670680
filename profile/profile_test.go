package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	p := NewNamed("en")

	p.Add("a")
	assert.Equal(t, 1, p.Freq["a"])

	p.Add("a")
	assert.Equal(t, 2, p.Freq["a"])
	assert.Equal(t, 2, p.NWords[0])
}

func TestAddUnnamedIgnored(t *testing.T) {
	p := New()

	p.Add("a")

	assert.Empty(t, p.Freq)
	assert.Zero(t, p.NWords[0])
}

func TestAddBadLengthIgnored(t *testing.T) {
	p := NewNamed("en")

	p.Add("a")
	p.Add("")
	p.Add("abcd")

	assert.Equal(t, 1, p.Freq["a"])
	assert.NotContains(t, p.Freq, "")
	assert.NotContains(t, p.Freq, "abcd")
	assert.Equal(t, 1, p.NWords[0])
}

func TestOmitLessFreq(t *testing.T) {
	p := NewNamed("en")

	grams := []string{
		"a", "b", "c", "あ", "い", "う", "え", "お",
		"か", "が", "き", "ぎ", "く",
	}
	for i := 0; i < 5; i++ {
		for _, g := range grams {
			p.Add(g)
		}
	}

	p.Add("ぐ")

	require.Equal(t, 5, p.Freq["a"])
	require.Equal(t, 5, p.Freq["あ"])
	require.Equal(t, 1, p.Freq["ぐ"])

	p.OmitLessFreq()

	// The rare gram falls below the threshold; the surviving ASCII letters
	// are a small minority next to the kana, so they are dropped too.
	assert.NotContains(t, p.Freq, "a")
	assert.Equal(t, 5, p.Freq["あ"])
	assert.NotContains(t, p.Freq, "ぐ")
}

func TestOmitLessFreqUnnamed(t *testing.T) {
	p := New()

	p.OmitLessFreq() // must not panic
}

func TestOmitLessFreqKeepsCountsConsistent(t *testing.T) {
	p := NewNamed("xx")

	for i := 0; i < 10; i++ {
		p.Update("the quick brown fox jumps over the lazy dog")
	}

	p.Update("zq")

	before := p.NWords

	p.OmitLessFreq()

	for k := 0; k < len(p.NWords); k++ {
		assert.LessOrEqual(t, p.NWords[k], before[k], "n_words[%d] grew", k)
		assert.GreaterOrEqual(t, p.NWords[k], 0, "n_words[%d] negative", k)
	}

	// The sum of surviving counts per length must equal n_words.
	var sums [3]int
	for gram, count := range p.Freq {
		sums[len([]rune(gram))-1] += count
		assert.GreaterOrEqual(t, count, 0)
	}

	assert.Equal(t, sums, p.NWords)
}

func TestUpdateWindowsText(t *testing.T) {
	p := NewNamed("en")

	p.Update("ab cd")

	assert.Equal(t, 1, p.Freq["a"])
	assert.Equal(t, 1, p.Freq["b"])
	assert.Equal(t, 1, p.Freq["ab"])
	assert.Equal(t, 1, p.Freq[" ab"])
	assert.Equal(t, 1, p.Freq["cd"])
	// Word boundary: no gram spans the space.
	assert.NotContains(t, p.Freq, "bc")
	assert.Equal(t, 4, p.NWords[0])
}

func TestUpdateAppliesVietnameseComposition(t *testing.T) {
	p := NewNamed("vi")

	p.Update("à") // decomposed à

	assert.NotContains(t, p.Freq, "a")
	assert.Equal(t, 1, p.Freq["à"])
}
