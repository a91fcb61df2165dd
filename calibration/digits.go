// Package calibration recovers calibration values from the lines of an
// amended calibration document.
//
// Each line is read under two rules: Literal, which only sees the digits
// '0' through '9', and Mixed, which also accepts the English digit words
// "zero" through "nine". The first and last digit found on a line form a
// two-digit calibration value, and the values are summed per rule.
package calibration

import "strings"

// Sequence is the ordered list of digit values found on a line.
type Sequence []int

// Rule is a way of reading digits out of a line.
type Rule struct {
	Name  string
	Label string

	Extract func(line string) Sequence
}

var (
	// Literal reads only the digit characters of a line.
	Literal = Rule{Name: "literal", Label: "Q1", Extract: ExtractLiteral}
	// Mixed reads digit characters and spelled-out digit words.
	Mixed = Rule{Name: "mixed", Label: "Q2", Extract: ExtractMixed}
)

// Rules lists the rules in the order their totals are reported.
var Rules = []Rule{Literal, Mixed}

func (r Rule) String() string { return r.Name }

// ExtractLiteral returns the values of the ASCII digits of line, left to
// right.
func ExtractLiteral(line string) Sequence {
	var out Sequence
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			out = append(out, int(c-'0'))
		}
	}
	return out
}

type token struct {
	text  string
	value int
}

// tokens is checked in order at every position. Digit literals come first,
// then the words in ascending value.
var tokens = []token{
	{"0", 0}, {"1", 1}, {"2", 2}, {"3", 3}, {"4", 4},
	{"5", 5}, {"6", 6}, {"7", 7}, {"8", 8}, {"9", 9},
	{"zero", 0},
	{"one", 1},
	{"two", 2},
	{"three", 3},
	{"four", 4},
	{"five", 5},
	{"six", 6},
	{"seven", 7},
	{"eight", 8},
	{"nine", 9},
}

// ExtractMixed returns the digits of line, where a digit is either a digit
// character or a spelled-out digit word. Words may overlap: every position
// is tested, so "twone" reads as 2, 1.
func ExtractMixed(line string) Sequence {
	var out Sequence
	for i := 0; i < len(line); i++ {
		if v, ok := tokenAt(line[i:]); ok {
			out = append(out, v)
		}
	}
	return out
}

func tokenAt(s string) (int, bool) {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.text) {
			return t.value, true
		}
	}
	return 0, false
}

// Compose returns the calibration value of seq: its first digit followed by
// its last. A single digit is used in both places.
func Compose(seq Sequence) (int, error) {
	if len(seq) == 0 {
		return 0, ErrNoDigits
	}
	return 10*seq[0] + seq[len(seq)-1], nil
}
