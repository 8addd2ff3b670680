package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/glotta/langdetect/ngram"
)

// ErrInvalid marks a profile record that fails boundary validation.
var ErrInvalid = errors.New("invalid profile record")

// record is the on-disk shape of a profile.
type record struct {
	Freq   map[string]int `json:"freq"`
	NWords []int          `json:"n_words"`
	Name   string         `json:"name"`
}

// FromJSON decodes a profile record. The record must carry a name and exactly
// one total per gram length; anything else is rejected rather than padded.
func FromJSON(data []byte) (*Profile, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if rec.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalid)
	}

	if len(rec.NWords) != ngram.MaxGram {
		return nil, fmt.Errorf("%w: n_words has %d entries, want %d", ErrInvalid, len(rec.NWords), ngram.MaxGram)
	}

	p := NewNamed(rec.Name)
	if rec.Freq != nil {
		p.Freq = rec.Freq
	}

	copy(p.NWords[:], rec.NWords)

	return p, nil
}

// FromFile reads and decodes a single profile file.
func FromFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	p, err := FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	return p, nil
}

// MarshalJSON encodes the profile in the record shape accepted by FromJSON.
func (p *Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{
		Freq:   p.Freq,
		NWords: p.NWords[:],
		Name:   p.Name,
	})
}
