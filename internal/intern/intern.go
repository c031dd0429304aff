// Package intern keeps one canonical copy of option names so that lookups of
// grouped short flags do not allocate a new string per character.
package intern

import "sync"

// Interner is a thread-safe string table.
type Interner struct {
	mu      sync.RWMutex
	strings map[string]string
}

// New creates an interner with room for capacity strings.
func New(capacity int) *Interner {
	if capacity <= 0 {
		capacity = 64
	}
	return &Interner{strings: make(map[string]string, capacity)}
}

// Intern returns the canonical copy of s.
func (in *Interner) Intern(s string) string {
	in.mu.RLock()
	canonical, ok := in.strings[s]
	in.mu.RUnlock()
	if ok {
		return canonical
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if canonical, ok := in.strings[s]; ok {
		return canonical
	}
	in.strings[s] = s
	return s
}

// Rune returns the one-character string for r, pre-built for ASCII letters
// and digits.
func (in *Interner) Rune(r rune) string {
	switch {
	case r >= 'a' && r <= 'z':
		return asciiNames[r-'a']
	case r >= 'A' && r <= 'Z':
		return asciiNames[26+r-'A']
	case r >= '0' && r <= '9':
		return asciiNames[52+r-'0']
	}
	return in.Intern(string(r))
}

// Len returns the number of interned strings.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.strings)
}

var asciiNames = [62]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

var global = New(128)

// Intern interns s in the process-wide table.
func Intern(s string) string { return global.Intern(s) }

// Rune returns the canonical one-character string for r.
func Rune(r rune) string { return global.Rune(r) }
