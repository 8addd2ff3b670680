package ngram

import "unicode"

// Window is a bounded sliding buffer over normalized characters. It has two
// observable states: at a word boundary (the last buffered character is the
// space sentinel) and mid-word. Crossing back into a boundary resets the
// buffer, so grams never span words.
//
// A run of two or more consecutive uppercase characters sets the capitalized
// flag; while it is set the window yields no grams, keeping proper nouns and
// acronyms out of the feature stream.
type Window struct {
	grams       []rune
	capitalWord bool
}

// NewWindow returns a window at the word-boundary state.
func NewWindow() *Window {
	return &Window{grams: []rune{' '}}
}

// AddChar normalizes ch and shifts it into the window.
func (w *Window) AddChar(ch rune) {
	ch = Normalize(ch)
	last := w.grams[len(w.grams)-1]

	if last == ' ' {
		w.grams = append(w.grams[:0], ' ')
		w.capitalWord = false

		if ch == ' ' {
			return
		}
	} else if len(w.grams) >= MaxGram {
		w.grams = w.grams[1:]
	}

	w.grams = append(w.grams, ch)

	if unicode.IsUpper(ch) {
		if unicode.IsUpper(last) {
			w.capitalWord = true
		}
	} else {
		w.capitalWord = false
	}
}

// Get returns the gram formed by the last n buffered characters. The second
// result is false during a capitalized run, for n outside 1..MaxGram, when
// fewer than n characters are buffered, or for a 1-gram that would be the
// bare sentinel.
func (w *Window) Get(n int) (string, bool) {
	if w.capitalWord {
		return "", false
	}

	if n < 1 || n > MaxGram || len(w.grams) < n {
		return "", false
	}

	if n == 1 {
		ch := w.grams[len(w.grams)-1]
		if ch == ' ' {
			return "", false
		}

		return string(ch), true
	}

	return string(w.grams[len(w.grams)-n:]), true
}
