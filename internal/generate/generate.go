// Package generate synthesises FASTQ files for tests and benchmarks.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"fqlint/core/distributions"
	"fqlint/core/fastq"
)

const phredOffset = 33

var bases = [4]byte{'A', 'C', 'G', 'T'}

// ErrInvalidOptions is returned for a negative record count or a
// non-positive read length.
var ErrInvalidOptions = errors.New("invalid generate options")

type Options struct {
	Records int
	Length  int
	// Prefix of every read name; names are "<Prefix>:<n>" with n from 1.
	Prefix string
	Seed   uint64
	// Duplicates repeats the name of every Nth record from the previous
	// record (0 = all names unique). Useful for exercising S007.
	Duplicates int
}

// Generator produces records deterministically for a seed.
type Generator struct {
	opts    Options
	rng     *rand.Rand
	quality *distributions.QualityScores
	n       int
	seq     []byte
	qual    []byte
	last    string
}

func New(opts Options) (*Generator, error) {
	if opts.Records < 0 || opts.Length <= 0 || opts.Duplicates < 0 {
		return nil, fmt.Errorf("%w: records=%d length=%d duplicates=%d",
			ErrInvalidOptions, opts.Records, opts.Length, opts.Duplicates)
	}
	if opts.Prefix == "" {
		opts.Prefix = "@read"
	}
	// Bases and qualities draw from independent streams so changing one
	// does not shift the other.
	return &Generator{
		opts:    opts,
		rng:     rand.New(rand.NewPCG(opts.Seed, 1)),
		quality: distributions.NewQualityScores(rand.NewPCG(opts.Seed, 2)),
		seq:     make([]byte, opts.Length),
		qual:    make([]byte, opts.Length),
	}, nil
}

// Next returns the next record, or io.EOF after Options.Records records.
func (g *Generator) Next() (*fastq.Record, error) {
	if g.n >= g.opts.Records {
		return nil, io.EOF
	}
	g.n++
	name := g.opts.Prefix + ":" + strconv.Itoa(g.n)
	if d := g.opts.Duplicates; d > 0 && g.n%d == 0 && g.last != "" {
		name = g.last
	}
	g.last = name

	for i := range g.seq {
		g.seq[i] = bases[g.rng.IntN(len(bases))]
	}
	g.quality.Fill(g.qual)
	for i := range g.qual {
		g.qual[i] += phredOffset
	}
	return fastq.FromBytes([]byte(name), g.seq, []byte("+"), g.qual).Clone(), nil
}

// Write generates every record into w.
func Write(ctx context.Context, w io.Writer, opts Options) (int, error) {
	g, err := New(opts)
	if err != nil {
		return 0, err
	}
	fw := fastq.NewWriter(w)
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		rec, err := g.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, err
		}
		if err := fw.Write(rec); err != nil {
			return n, err
		}
		n++
	}
	return n, fw.Flush()
}
