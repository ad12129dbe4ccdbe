// Package aoc is a small state-space search toolkit plus the harness used to
// run Advent of Code solvers against it. (forked from maisem/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(funcName, comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(name string, src []byte, samples map[string]sample) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		newLogger().Fatalf("parsing %s to extract samples: %v", name, err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(funcName, c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
}

// samplesFromFS extracts the samples of every Go file at the top of src.
func samplesFromFS(src fs.FS) map[string]sample {
	names := MustGet(fs.Glob(src, "*.go"))
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		extractSamples(name, MustGet(fs.ReadFile(src, name)), samples)
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	logger  *logrus.Logger
	input   []byte
}

// Input returns the puzzle input, or the sample input in sample mode.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		p.input = MustGet(os.ReadFile(p.inputPath()))
	}
	return p.input
}

func (p *Puzzle) inputPath() string {
	if flagInput != "" {
		return flagInput
	}
	return filepath.Join(flagInputs, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day))
}

// Text returns the input with trailing newlines removed.
func (p *Puzzle) Text() string {
	return strings.TrimRight(string(p.Input()), "\n")
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	s.Buffer(nil, 1<<20)
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		p.Log().Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Log returns a log entry tagged with the puzzle being solved.
func (p *Puzzle) Log() *logrus.Entry {
	l := p.logger
	if l == nil {
		l = newLogger()
	}
	return l.WithFields(logrus.Fields{
		"year":   p.year,
		"day":    p.day.day,
		"part":   p.solver.Part,
		"sample": p.SampleMode,
	})
}

func (p *Puzzle) Debug(v ...any) {
	p.Log().Debug(v...)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.Log().Debugf(format, args...)
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		p.Log().Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

func (p *Puzzle) hasSample() bool {
	_, ok := p.samples[p.solver.Name]
	return ok
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		newLogger().Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m := v.Method(i).Interface().(func() interface{})
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
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
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInput      string
	flagInputs     string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "", "input file for the selected day")
	flag.StringVar(&flagInputs, "inputs", ".", "directory holding <year>/<day>.input files")
}

var initFlags = sync.OnceFunc(flag.Parse)

// Harness logs go to logOutput, and fatal ones end the process with exit.
var (
	logOutput io.Writer = os.Stderr
	exit                = os.Exit
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(logOutput)
	l.ExitFunc = exit
	if flagDebug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// bind points the solver's embedded *Puzzle at p.
func bind(slvr any, p *Puzzle) {
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
}

func runDay(slvr any, year int, day day, samples map[string]sample, logger *logrus.Logger) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
		logger:  logger,
	}
	fmt.Println("Running day", day.day)
	bind(slvr, &p)
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && (flagSkipSample || !p.hasSample()) {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// Run solves the days registered on slvr. src holds the solver sources, from
// which the sample inputs and wanted answers are extracted.
func Run(year int, src fs.FS, slvr any) {
	initFlags()
	samples := samplesFromFS(src)
	days := extractMethods(slvr)
	logger := newLogger()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			logger.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples, logger)
		return
	}
	if flagInput != "" {
		logger.Fatalf("-input requires -day")
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples, logger)
		fmt.Println()
	}
}

// CheckSamples runs every part that has an embedded sample and reports the
// ones whose answer differs from the sample's want value.
func CheckSamples(year int, src fs.FS, slvr any) error {
	samples := samplesFromFS(src)
	days := extractMethods(slvr)
	logger := newLogger()
	var errs []error
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		p := Puzzle{
			year:       year,
			day:        days[d],
			samples:    samples,
			logger:     logger,
			SampleMode: true,
		}
		bind(slvr, &p)
		for _, ps := range days[d].parts {
			p.solver = ps
			if !p.hasSample() {
				continue
			}
			if got, want := fmt.Sprint(ps.fn()), p.Sample().want; got != want {
				errs = append(errs, fmt.Errorf("%s: got %s; want %s", ps.Name, got, want))
			}
		}
	}
	return errors.Join(errs...)
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		newLogger().Fatalf("bad prefix: %q", s)
	}
	return s1
}

// Or returns the first non-zero value of list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// AnyKey returns any key from the map.
// It panics if the map is empty.
func AnyKey[K comparable, V any](m map[K]V) K {
	for k := range m {
		return k
	}
	panic("bad")
}
