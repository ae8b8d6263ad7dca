package pubcode

import (
	"crypto/rand"
	"errors"
	"strings"
)

// Public lookup codes are short, uppercase and unambiguous: no 0/O or 1/I,
// so they survive being read aloud or typed from a business card.
const (
	alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	Length   = 8
)

var ErrRandomSource = errors.New("failed to read random source")

func Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrRandomSource
	}
	var b strings.Builder
	b.Grow(Length)
	for _, c := range buf {
		b.WriteByte(alphabet[int(c)%len(alphabet)])
	}
	return b.String(), nil
}

// Normalize maps caller input to the canonical stored form.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func IsWellFormed(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(alphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
