package langdetect

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFeatures is returned when the accumulated text contains no gram
	// present in any loaded profile. It is terminal for that text: no
	// default guess is produced.
	ErrNoFeatures = errors.New("no features in text")

	// ErrNotEnoughProfiles is returned when fewer than two language
	// profiles are supplied; ranking needs at least two candidates.
	ErrNotEnoughProfiles = errors.New("need at least two language profiles")

	// ErrLanguageNotFound is returned when removing a language that was
	// never loaded.
	ErrLanguageNotFound = errors.New("language not found")

	errNegativePrior = errors.New("prior entries must be non-negative")
	errZeroPrior     = errors.New("prior must carry a positive total weight")
)

// DuplicatedLanguageError reports a profile whose name collides with an
// already loaded language. The offending profile is not merged.
type DuplicatedLanguageError struct {
	Lang string
}

func (e *DuplicatedLanguageError) Error() string {
	return fmt.Sprintf("duplicated language profile: %s", e.Lang)
}
