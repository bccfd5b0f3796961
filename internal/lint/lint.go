package lint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"fqlint/core/fastq"
	"fqlint/core/validate"
	"fqlint/internal/logger"
)

const batchSize = 4096

// errStop ends a run early without it being an error (FailFast).
var errStop = errors.New("stop")

// Finding is one diagnosis attached to the record that produced it.
type Finding struct {
	Path string
	// Record is the 1-based record number.
	Record    int
	Severity  validate.Severity
	Diagnosis *validate.Diagnosis
}

// Line is the 1-based line number of the record's name line.
func (f Finding) Line() int { return (f.Record-1)*4 + 1 }

// Summary describes a finished run.
type Summary struct {
	Path       string
	Records    int
	Findings   int
	ByCode     map[string]int
	Highest    validate.Severity
	SecondPass bool
	Stopped    bool
}

// HasFindings reports whether anything failed.
func (s Summary) HasFindings() bool { return s.Findings > 0 }

// statefulFactory builds a fresh stateful validator per run. code is kept so
// listing the validator set does not allocate one.
type statefulFactory struct {
	code  string
	build func() (validate.StatefulValidator, error)
}

// Linter holds the enabled validator set. Stateless validators are shared
// across runs; stateful ones are built fresh for every run.
type Linter struct {
	opts      Options
	stateless []validate.Validator
	stateful  []statefulFactory
	log       *slog.Logger
}

// New builds the validator set. Validators are applied in registration order:
// S002 then S007.
func New(opts Options) (*Linter, error) {
	if opts.Threads <= 0 {
		opts.Threads = runtime.NumCPU()
	}
	if opts.Alphabet == "" {
		opts.Alphabet = validate.DefaultAlphabet
	}
	if opts.FalsePositiveRate == 0 {
		opts.FalsePositiveRate = validate.DefaultFalsePositiveRate
	}
	if opts.Capacity == 0 {
		opts.Capacity = validate.DefaultCapacity
	}
	l := &Linter{opts: opts, log: opts.Logger}
	if l.log == nil {
		l.log = logger.Discard()
	}
	l.log = l.log.With(logger.Component("lint"))

	if a := validate.NewAlphabetValidator([]byte(opts.Alphabet)); opts.enabled(a) {
		l.stateless = append(l.stateless, a)
	}

	newDup := func() (validate.StatefulValidator, error) {
		return validate.NewDuplicateNameValidatorSized(opts.FalsePositiveRate, opts.Capacity)
	}
	dup, err := newDup()
	if err != nil {
		return nil, err
	}
	if opts.enabled(dup) {
		l.stateful = append(l.stateful, statefulFactory{code: dup.Code(), build: newDup})
	}
	return l, nil
}

// Codes lists the enabled validator codes in application order.
func (l *Linter) Codes() []string {
	var out []string
	for _, v := range l.stateless {
		out = append(out, v.Code())
	}
	for _, f := range l.stateful {
		out = append(out, f.code)
	}
	return out
}

// Run validates the file at path ("-" for stdin) and calls report for every
// finding. A report error aborts the run and is returned.
func (l *Linter) Run(ctx context.Context, path string, report func(Finding) error) (Summary, error) {
	sum := Summary{Path: path, ByCode: map[string]int{}}
	log := l.log.With(logger.File(path))

	stateful := make([]validate.StatefulValidator, 0, len(l.stateful))
	for _, f := range l.stateful {
		v, err := f.build()
		if err != nil {
			return sum, err
		}
		stateful = append(stateful, v)
	}

	emit := func(f Finding) error {
		f.Path = path
		sum.Findings++
		sum.ByCode[f.Diagnosis.Code]++
		if f.Severity > sum.Highest {
			sum.Highest = f.Severity
		}
		if err := report(f); err != nil {
			return err
		}
		if l.opts.FailFast {
			return errStop
		}
		return nil
	}

	var kept []*fastq.Record
	keep := path == "-" && len(stateful) > 0

	start := time.Now()
	p1 := &firstPass{l: l, stateful: stateful, emit: emit}
	err := fastq.StreamPathCtx(ctx, path, func(r *fastq.Record) error {
		if keep {
			kept = append(kept, r)
		}
		return p1.add(ctx, r)
	})
	if err == nil {
		err = p1.flush(ctx)
	}
	sum.Records = p1.n
	if errors.Is(err, errStop) {
		sum.Stopped = true
		return sum, nil
	}
	if err != nil {
		return sum, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("pass 1 done", logger.Records(sum.Records), logger.Duration(time.Since(start)))

	pending := stateful[:0:0]
	for _, v := range stateful {
		if v.IsEmpty() {
			log.Debug("nothing to verify; skipping pass 2", logger.Validator(v.Code()))
			continue
		}
		pending = append(pending, v)
	}
	if len(pending) == 0 {
		return sum, nil
	}

	start = time.Now()
	sum.SecondPass = true
	n := 0
	verify := func(r *fastq.Record) error {
		n++
		for _, v := range pending {
			if err := check(v, v.Verify, r, n, emit); err != nil {
				return err
			}
		}
		return nil
	}
	if keep {
		for _, r := range kept {
			if err = ctx.Err(); err != nil {
				break
			}
			if err = verify(r); err != nil {
				break
			}
		}
	} else {
		err = fastq.StreamPathCtx(ctx, path, verify)
	}
	if errors.Is(err, errStop) {
		sum.Stopped = true
		return sum, nil
	}
	if err != nil {
		return sum, fmt.Errorf("%s: pass 2: %w", path, err)
	}
	if n != sum.Records {
		return sum, fmt.Errorf("%s: pass 2 read %d records, pass 1 read %d", path, n, sum.Records)
	}
	log.Debug("pass 2 done", logger.Records(n), logger.Duration(time.Since(start)))
	return sum, nil
}

// check runs one validation and turns a *Diagnosis into a Finding. Any other
// error is a validator fault and aborts the run.
func check(d validate.Descriptor, fn func(*fastq.Record) error, r *fastq.Record, n int, emit func(Finding) error) error {
	err := fn(r)
	if err == nil {
		return nil
	}
	f, ferr := toFinding(d, err, n)
	if ferr != nil {
		return ferr
	}
	return emit(f)
}

func toFinding(d validate.Descriptor, err error, n int) (Finding, error) {
	var diag *validate.Diagnosis
	if !errors.As(err, &diag) {
		return Finding{}, fmt.Errorf("%s: record %d: %w", d.Code(), n, err)
	}
	return Finding{Record: n, Severity: d.Level(), Diagnosis: diag}, nil
}

// firstPass buffers records so stateless checks can run in parallel while
// Insert and reporting stay in file order.
type firstPass struct {
	l        *Linter
	stateful []validate.StatefulValidator
	emit     func(Finding) error

	n     int
	batch []*fastq.Record
}

func (p *firstPass) add(ctx context.Context, r *fastq.Record) error {
	p.batch = append(p.batch, r)
	if len(p.batch) < batchSize {
		return nil
	}
	return p.flush(ctx)
}

func (p *firstPass) flush(ctx context.Context) error {
	if len(p.batch) == 0 {
		return nil
	}
	base := p.n
	results, err := p.checkStateless(ctx, base)
	if err != nil {
		return err
	}
	for i, r := range p.batch {
		p.n++
		for _, f := range results[i] {
			if err := p.emit(f); err != nil {
				return err
			}
		}
		for _, v := range p.stateful {
			v.Insert(r)
		}
	}
	p.batch = p.batch[:0]
	return nil
}

// checkStateless returns the findings of every stateless validator for each
// record in the batch, indexed like the batch. Each worker owns its index.
func (p *firstPass) checkStateless(ctx context.Context, base int) ([][]Finding, error) {
	results := make([][]Finding, len(p.batch))
	if len(p.l.stateless) == 0 {
		return results, nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.l.opts.Threads)
	for i, r := range p.batch {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for _, v := range p.l.stateless {
				err := v.Validate(r)
				if err == nil {
					continue
				}
				f, ferr := toFinding(v, err, base+i+1)
				if ferr != nil {
					return ferr
				}
				results[i] = append(results[i], f)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
