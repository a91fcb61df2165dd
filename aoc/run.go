package aoc

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
)

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}, which must
// have the signature func() any, and groups them by day with parts in
// order.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s has signature %v; want func() any", mn, v.Method(i).Type())
		}
		d := MustGet(strconv.Atoi(matches[1]))
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagInput      string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "", "read puzzle input from this file instead of the cache")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runOptions selects which parts and inputs runDay runs.
type runOptions struct {
	part       string // empty for all parts
	onlySample bool
	skipSample bool
}

func flagOptions() runOptions {
	return runOptions{
		part:       flagPart,
		onlySample: flagOnlySample,
		skipSample: flagSkipSample,
	}
}

// modes returns the input modes to run each part in: true for the sample,
// false for the real input.
func (o runOptions) modes() []bool {
	var modes []bool
	if !o.skipSample {
		modes = append(modes, true)
	}
	if !o.onlySample {
		modes = append(modes, false)
	}
	return modes
}

// runDay runs the selected parts of day, writing results to w. It reports
// whether every sample run matched its want= value, stopping at the first
// that does not.
func runDay(w io.Writer, slvr any, year int, d day, samples map[string]sample, opts runOptions) bool {
	p := &Puzzle{
		year:    year,
		day:     d,
		samples: samples,
	}
	fmt.Fprintln(w, "Running day", d.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range d.parts {
		if opts.part != "" && ps.Part != opts.part {
			continue
		}
		p.solver = ps
		for _, sm := range opts.modes() {
			p.SampleMode = sm
			if !sm {
				p.Input() // fetch before the clock starts
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Fprintf(w, "part %s: %v (took %v) \n", ps.Part, got, took)
				continue
			}
			if want := p.Sample().want; fmt.Sprint(got) != want {
				fmt.Fprintf(w, "part %s: %v ❌; want %v\n", ps.Part, got, want)
				return false
			}
			fmt.Fprintf(w, "part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
		}
	}
	return true
}

// CheckSamples runs every part of slvr against its sample from src only,
// and returns an error describing the first part whose result differs from
// its want= value. It is meant for solver tests.
func CheckSamples(src []byte, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days := extractMethods(slvr)
	if len(days) == 0 {
		return errors.Newf("%T has no D{day}p{part} methods", slvr)
	}
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, n := range dayNums {
		d := days[n]
		for _, ps := range d.parts {
			if _, ok := samples[ps.Name]; !ok {
				return errors.Newf("%s has no want= sample", ps.Name)
			}
		}
		var out strings.Builder
		if !runDay(&out, slvr, 0, d, samples, runOptions{onlySample: true}) {
			return errors.Newf("day %d sample mismatch:\n%s", n, out.String())
		}
	}
	return nil
}

// Run runs the solver methods of slvr (see extractMethods) for the given
// year, checking each against the samples in src, which should be the
// solver's own source. slvr must be a pointer to a struct embedding
// *Puzzle.
func Run(year int, src []byte, slvr any) {
	samples, err := extractSamples(src)
	if err != nil {
		log.Fatal(err)
	}
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		if !runDay(os.Stdout, slvr, year, day, samples, flagOptions()) {
			os.Exit(1)
		}
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	failed := false
	for _, day := range dayNums {
		if !runDay(os.Stdout, slvr, year, days[day], samples, flagOptions()) {
			failed = true
		}
		fmt.Println()
	}
	if failed {
		os.Exit(1)
	}
}
