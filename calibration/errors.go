package calibration

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNoDigits is returned when a line has no digit under a rule, so no
// calibration value can be formed from it.
var ErrNoDigits = errors.New("calibration: no digits in line")

// Policy decides what happens to a line that has no digits under a rule.
type Policy int

const (
	// Strict fails the run at the first line without digits.
	Strict Policy = iota
	// ZeroForEmpty counts a line without digits as 0.
	ZeroForEmpty
)

var policyNames = map[Policy]string{
	Strict:       "strict",
	ZeroForEmpty: "zero",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// ParsePolicy returns the Policy named s ("strict" or "zero").
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return Strict, errors.Newf("unknown empty-line policy %q (want strict or zero)", s)
}
