// Command day1 solves "Trebuchet?!" through the aoc harness.
//
//	go run ./day1 -sample
//	go run ./day1 -input calibration.txt
package main

import (
	_ "embed"

	"github.com/maisem/trebuchet/aoc"
	"github.com/maisem/trebuchet/calibration"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

// totals runs both rules over the input once. The part 2 sample has lines
// with no digit characters, so those count as zero instead of failing.
func (s solver) totals() calibration.Totals {
	return aoc.Memo(s.Puzzle, "totals", func() calibration.Totals {
		a := &calibration.Aggregator{
			Policy: calibration.ZeroForEmpty,
			OnLine: func(r calibration.LineResult) {
				s.Debugf("%d %q: %v=%d %v=%d", r.Number, r.Line, r.Literal, r.LiteralValue, r.Mixed, r.MixedValue)
			},
		}
		return aoc.MustGet(a.Run(s.Scanner()))
	})
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return s.totals().Literal
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return s.totals().Mixed
}
