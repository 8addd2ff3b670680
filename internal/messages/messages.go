// Package messages loads the static normalization tables bundled with the
// library: the Latin-1 exclusion set, the CJK ideograph fold classes and the
// Vietnamese recomposition tables. The data ships as a Java-style properties
// file with \uXXXX escapes and is embedded at build time, so the table is
// parsed exactly once and shared read-only afterwards.
package messages

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
)

//go:embed normalization.properties
var rawProperties string

// Table is an immutable key/value view over the embedded properties data.
type Table struct {
	entries map[string]string
}

// Load parses the embedded properties file.
func Load() (*Table, error) {
	entries := make(map[string]string)

	for lineNo, line := range strings.Split(rawProperties, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("messages: line %d: missing '='", lineNo+1)
		}

		entries[strings.TrimSpace(key)] = unescape(value)
	}

	return &Table{entries: entries}, nil
}

// MustLoad is Load for package initialization of embedded, compile-time data.
func MustLoad() *Table {
	t, err := Load()
	if err != nil {
		panic(err)
	}

	return t
}

// Get returns the value for key and whether it was present.
func (t *Table) Get(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// String returns the value for key, or "!key!" when absent so that a missing
// table entry is visible in output rather than silently empty.
func (t *Table) String(key string) string {
	v, ok := t.entries[key]
	if !ok {
		return "!" + key + "!"
	}

	return v
}

// Sequence collects the values of key.1, key.2, ... until the first gap.
func (t *Table) Sequence(prefix string) []string {
	var out []string

	for i := 1; ; i++ {
		v, ok := t.entries[prefix+"."+strconv.Itoa(i)]
		if !ok {
			return out
		}

		out = append(out, v)
	}
}

// unescape decodes \uXXXX sequences; everything else passes through.
func unescape(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] == '\\' && i+6 <= len(s) && s[i+1] == 'u' {
			if code, err := strconv.ParseUint(s[i+2:i+6], 16, 32); err == nil {
				b.WriteRune(rune(code))
				i += 6

				continue
			}
		}

		b.WriteByte(s[i])
		i++
	}

	return b.String()
}
