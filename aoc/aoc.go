// Package aoc is a small harness for running Advent of Code solvers
// against their samples and puzzle input. (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"math"
	"os"

	"tailscale.com/util/deephash"
)

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample

	memo map[deephash.Sum]any
}

// Input returns the input for the part being run: the sample in sample
// mode, otherwise the -input file or the (cached) puzzle input.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if flagInput != "" {
		return MustGet(os.ReadFile(flagInput))
	}
	return fileOrFetch(fmt.Sprintf("%d/%d.input", p.year, p.day.day), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

// Scanner returns a line scanner over the input. Lines may be of any
// length.
func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return s
}

// Lines returns the lines of the input, without line terminators.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type memoKey struct {
	Key   string
	Input []byte
}

// Memo returns fn's result for the current input, calling fn only the first
// time a given key and input are seen. Parts that share a pass over the
// input use it so the pass runs once per input.
func Memo[T any](p *Puzzle, key string, fn func() T) T {
	k := deephash.Hash(&memoKey{Key: key, Input: p.Input()})
	if v, ok := p.memo[k]; ok {
		return v.(T)
	}
	v := fn()
	if p.memo == nil {
		p.memo = make(map[deephash.Sum]any)
	}
	p.memo[k] = v
	return v
}
