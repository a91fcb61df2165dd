package calibration

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// LineSource yields the lines of a calibration document in order.
// *bufio.Scanner implements it.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// NewLineSource returns a LineSource over the lines of r. Lines may be of
// any length.
func NewLineSource(r io.Reader) LineSource {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return s
}

// Totals holds the sum of calibration values under each rule.
type Totals struct {
	Literal int
	Mixed   int
}

// Get returns the total for r. It panics if r is not Literal or Mixed.
func (t Totals) Get(r Rule) int {
	switch r.Name {
	case Literal.Name:
		return t.Literal
	case Mixed.Name:
		return t.Mixed
	}
	panic(fmt.Sprintf("calibration: unknown rule %q", r.Name))
}

// LineResult is what the Aggregator found on a single line.
type LineResult struct {
	// Number is the 1-based line number.
	Number int
	Line   string

	Literal      Sequence
	Mixed        Sequence
	LiteralValue int
	MixedValue   int
}

// An Aggregator sums the calibration values of a document under both rules.
// The zero value uses the Strict policy.
type Aggregator struct {
	Policy Policy

	// OnLine, if non-nil, is called for every line after both of its values
	// are known.
	OnLine func(LineResult)
}

// Run reads src to the end and returns the totals.
func (a *Aggregator) Run(src LineSource) (Totals, error) {
	var t Totals
	n := 0
	for src.Scan() {
		n++
		res, err := a.line(n, src.Text())
		if err != nil {
			return Totals{}, err
		}
		t.Literal += res.LiteralValue
		t.Mixed += res.MixedValue
		if a.OnLine != nil {
			a.OnLine(res)
		}
	}
	if err := src.Err(); err != nil {
		return Totals{}, errors.Wrap(err, "reading calibration document")
	}
	return t, nil
}

// Lines is like Run but over an in-memory document.
func (a *Aggregator) Lines(lines []string) (Totals, error) {
	return a.Run(&sliceSource{lines: lines, i: -1})
}

func (a *Aggregator) line(n int, line string) (LineResult, error) {
	res := LineResult{
		Number:  n,
		Line:    line,
		Literal: Literal.Extract(line),
		Mixed:   Mixed.Extract(line),
	}
	var err error
	if res.LiteralValue, err = a.compose(res.Literal); err != nil {
		return res, errors.Wrapf(err, "line %d: %s rule", n, Literal)
	}
	if res.MixedValue, err = a.compose(res.Mixed); err != nil {
		return res, errors.Wrapf(err, "line %d: %s rule", n, Mixed)
	}
	return res, nil
}

func (a *Aggregator) compose(seq Sequence) (int, error) {
	v, err := Compose(seq)
	if errors.Is(err, ErrNoDigits) && a.Policy == ZeroForEmpty {
		return 0, nil
	}
	return v, err
}

type sliceSource struct {
	lines []string
	i     int
}

func (s *sliceSource) Scan() bool {
	if s.i+1 >= len(s.lines) {
		return false
	}
	s.i++
	return true
}

func (s *sliceSource) Text() string { return s.lines[s.i] }
func (s *sliceSource) Err() error   { return nil }
