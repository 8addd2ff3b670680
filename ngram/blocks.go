package ngram

// Unicode blocks the normalizer cares about. Everything else falls into
// blockOther and passes through untouched.
type unicodeBlock int

const (
	blockOther unicodeBlock = iota
	blockBasicLatin
	blockLatin1Supplement
	blockLatinExtendedB
	blockArabic
	blockLatinExtendedAdditional
	blockGeneralPunctuation
	blockHiragana
	blockKatakana
	blockBopomofo
	blockBopomofoExtended
	blockCJKUnifiedIdeographs
	blockHangulSyllables
)

func blockOf(r rune) unicodeBlock {
	switch {
	case r <= 0x007F:
		return blockBasicLatin
	case r <= 0x00FF:
		return blockLatin1Supplement
	case r >= 0x0180 && r <= 0x024F:
		return blockLatinExtendedB
	case r >= 0x0600 && r <= 0x06FF:
		return blockArabic
	case r >= 0x1E00 && r <= 0x1EFF:
		return blockLatinExtendedAdditional
	case r >= 0x2000 && r <= 0x206F:
		return blockGeneralPunctuation
	case r >= 0x3040 && r <= 0x309F:
		return blockHiragana
	case r >= 0x30A0 && r <= 0x30FF:
		return blockKatakana
	case r >= 0x3100 && r <= 0x312F:
		return blockBopomofo
	case r >= 0x31A0 && r <= 0x31BF:
		return blockBopomofoExtended
	case r >= 0x4E00 && r <= 0x9FFF:
		return blockCJKUnifiedIdeographs
	case r >= 0xAC00 && r <= 0xD7AF:
		return blockHangulSyllables
	default:
		return blockOther
	}
}

// InLatinExtendedAdditional reports whether r belongs to the Latin Extended
// Additional block. The detector's cleaning pass treats this block as Latin
// script even though its code points sit above U+0300.
func InLatinExtendedAdditional(r rune) bool {
	return blockOf(r) == blockLatinExtendedAdditional
}
