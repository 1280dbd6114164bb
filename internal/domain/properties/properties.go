// Package properties computes the derived properties of a stored string.
// All computations are pure functions of the value: recomputing for the same
// input yields an identical record.
package properties

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Properties is the set of derived values for a string (immutable value object).
type Properties struct {
	length           int
	isPalindrome     bool
	uniqueCharacters int
	wordCount        int
	sha256Hash       string
	frequency        map[rune]int
}

// Compute derives all properties of value. Total over every string input,
// including the empty string.
func Compute(value string) Properties {
	runes := []rune(value)

	freq := make(map[rune]int, len(runes))
	for _, r := range runes {
		freq[r]++
	}

	return Properties{
		length:           len(runes),
		isPalindrome:     isPalindrome(value),
		uniqueCharacters: len(freq),
		wordCount:        len(strings.Fields(value)),
		sha256Hash:       Hash(value),
		frequency:        freq,
	}
}

// Reconstruct creates Properties from stored fields without recomputation
// (storage hydration).
func Reconstruct(
	length int, palindrome bool, uniqueCharacters, wordCount int,
	sha256Hash string, frequency map[rune]int,
) Properties {
	return Properties{
		length:           length,
		isPalindrome:     palindrome,
		uniqueCharacters: uniqueCharacters,
		wordCount:        wordCount,
		sha256Hash:       sha256Hash,
		frequency:        frequency,
	}
}

// Hash returns the hex SHA-256 digest of the exact UTF-8 bytes of value.
// This digest is the storage identity of the string.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// Length returns the character (rune) count.
func (p Properties) Length() int { return p.length }

// IsPalindrome reports whether the lowercased value equals its own reverse.
func (p Properties) IsPalindrome() bool { return p.isPalindrome }

// UniqueCharacters returns the number of distinct characters (case-sensitive,
// whitespace and punctuation included).
func (p Properties) UniqueCharacters() int { return p.uniqueCharacters }

// WordCount returns the number of whitespace-delimited tokens.
func (p Properties) WordCount() int { return p.wordCount }

// SHA256Hash returns the hex content digest.
func (p Properties) SHA256Hash() string { return p.sha256Hash }

// CharacterFrequency returns the occurrence count per character. Characters
// not present in the value have no entry.
func (p Properties) CharacterFrequency() map[rune]int { return p.frequency }

// FrequencyOf returns the occurrence count of r, zero if absent.
func (p Properties) FrequencyOf(r rune) int { return p.frequency[r] }

// isPalindrome lowercases the whole value and compares it to its reverse.
// Nothing is stripped: spaces and punctuation count. Empty and
// single-character strings are palindromes.
func isPalindrome(value string) bool {
	runes := []rune(strings.ToLower(value))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
