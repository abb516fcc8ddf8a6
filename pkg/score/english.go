// Package score rates how much a buffer looks like English text.
package score

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Func scores a buffer. Higher is more likely English. Invalid UTF-8 scores 0.
type Func func([]byte) int

var ErrUnknownScorer = errors.New("unknown scorer")

const (
	NameEnglish   = "english"
	NameFrequency = "frequency"
)

// English counts the letters and whitespace in b.
func English(b []byte) int {
	if !utf8.Valid(b) {
		return 0
	}
	var n int
	for _, r := range string(b) {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// Relative frequencies of English letters, in thousandths.
var letterWeights = [26]int{
	82, 15, 28, 43, 127, 22, 20, 61, 70, 2, 8, 40, 24, // a-m
	67, 75, 19, 1, 60, 63, 91, 28, 10, 24, 2, 20, 1, // n-z
}

const spaceWeight = 130

// Frequency sums reference English frequencies over the ASCII letters and
// spaces in b.
func Frequency(b []byte) int {
	if !utf8.Valid(b) {
		return 0
	}
	var n int
	for _, c := range b {
		switch {
		case 'a' <= c && c <= 'z':
			n += letterWeights[c-'a']
		case 'A' <= c && c <= 'Z':
			n += letterWeights[c-'A']
		case c == ' ':
			n += spaceWeight
		}
	}
	return n
}

// ByName returns the scorer registered under name. Empty means English.
func ByName(name string) (Func, error) {
	switch strings.ToLower(name) {
	case "", NameEnglish:
		return English, nil
	case NameFrequency:
		return Frequency, nil
	default:
		return nil, ErrUnknownScorer
	}
}
