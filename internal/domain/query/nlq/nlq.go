// Package nlq interprets free-text queries as structured predicate sets.
//
// Interpretation is rule-based pattern matching, not a grammar: an ordered
// list of trigger rules is checked against the lowercased query, and each
// match contributes one predicate. A predicate kind set by an earlier rule is
// never overwritten by a later one (first match per kind wins). A query that
// triggers no rule yields the empty set, which matches every stored record.
// Interpretation never fails, whatever the input.
package nlq

import (
	"regexp"
	"strconv"

	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
)

// number matches a digit sequence or a spelled-out count from one to ten.
// Larger spelled-out numbers are only recognized in digit form.
const number = `(\d+|one|two|three|four|five|six|seven|eight|nine|ten)`

var spelled = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

var (
	rePalindrome     = regexp.MustCompile(`palindrom`)
	reSingleWord     = regexp.MustCompile(`\b(?:single|one) word\b`)
	reWordCount      = regexp.MustCompile(`\b` + number + `[\s-]words?\b`)
	reLongerThan     = regexp.MustCompile(`\blonger than ` + number + `\b`)
	reMoreThanChars  = regexp.MustCompile(`\bmore than ` + number + ` characters?\b`)
	reShorterThan    = regexp.MustCompile(`\bshorter than ` + number + `\b`)
	reLessThanChars  = regexp.MustCompile(`\bless than ` + number + ` characters?\b`)
	reAtLeastChars   = regexp.MustCompile(`\bat least ` + number + ` characters?\b`)
	reContainsLetter = regexp.MustCompile(`\bcontain(?:ing|s)?(?: the)? letter ([a-z])\b`)
	reContainsChar   = regexp.MustCompile(`\bcontains ([a-z])\b`)
	reFirstVowel     = regexp.MustCompile(`\bfirst vowel\b`)
)

// rules is the trigger table, in priority order. Overlapping numeric phrases
// (e.g. "longer than 5" together with "at least 10 characters") resolve by
// this order: the earlier rule claims the predicate kind.
var rules = []func(q string, s filter.Set) filter.Set{
	func(q string, s filter.Set) filter.Set {
		if rePalindrome.MatchString(q) {
			return s.With(filter.IsPalindrome(true))
		}
		return s
	},
	func(q string, s filter.Set) filter.Set {
		if reSingleWord.MatchString(q) {
			return s.With(filter.WordCount(1))
		}
		return s
	},
	numericRule(reWordCount, 0, filter.WordCount),
	numericRule(reLongerThan, +1, filter.MinLength),
	numericRule(reMoreThanChars, +1, filter.MinLength),
	numericRule(reShorterThan, -1, filter.MaxLength),
	numericRule(reLessThanChars, -1, filter.MaxLength),
	numericRule(reAtLeastChars, 0, filter.MinLength),
	charRule(reContainsLetter),
	charRule(reContainsChar),
	func(q string, s filter.Set) filter.Set {
		if reFirstVowel.MatchString(q) {
			return s.With(filter.ContainsCharacter('a'))
		}
		return s
	},
}

// Interpret maps query onto a predicate set. The worst case for malformed or
// unrecognized input is an empty or partial set, never an error.
func Interpret(query string) filter.Set {
	q := lower(query)
	var s filter.Set
	for _, rule := range rules {
		s = rule(q, s)
	}
	return s
}

func numericRule(re *regexp.Regexp, offset int, predicate func(int) filter.Predicate) func(string, filter.Set) filter.Set {
	return func(q string, s filter.Set) filter.Set {
		m := re.FindStringSubmatch(q)
		if m == nil {
			return s
		}
		n, ok := parseNumber(m[1])
		if !ok {
			return s
		}
		return s.With(predicate(n + offset))
	}
}

func charRule(re *regexp.Regexp) func(string, filter.Set) filter.Set {
	return func(q string, s filter.Set) filter.Set {
		m := re.FindStringSubmatch(q)
		if m == nil {
			return s
		}
		return s.With(filter.ContainsCharacter(rune(m[1][0])))
	}
}

// parseNumber converts a digit sequence or a spelled-out one..ten.
func parseNumber(s string) (int, bool) {
	if n, ok := spelled[s]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// lower is an ASCII-only lowercase; query triggers are all ASCII.
func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
