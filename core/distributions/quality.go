// Package distributions holds samplers used to synthesise realistic reads.
package distributions

import (
	"math/rand/v2"

	"fortio.org/safecast"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	MinScore = 0.0
	MaxScore = 41.0

	meanScore = (MinScore + MaxScore) / 2
	// sqrt(meanScore / 3)
	stdDevScore = 2.61
)

// QualityScores draws per-base quality scores in [MinScore, MaxScore] from a
// normal distribution centred on the middle of the range. Out-of-range draws
// are clamped to the nearest bound rather than redrawn, so the bounds are
// slightly over-represented; fixtures depend on this exact behaviour.
type QualityScores struct {
	dist distuv.Normal
}

// NewQualityScores samples from src. A nil src uses the global generator and
// is not reproducible.
func NewQualityScores(src rand.Source) *QualityScores {
	return &QualityScores{dist: distuv.Normal{Mu: meanScore, Sigma: stdDevScore, Src: src}}
}

// Sample returns one score.
func (q *QualityScores) Sample() uint8 {
	// clamped into [0, 41], so rounding always fits a uint8
	return safecast.MustRound[uint8](clamp(q.dist.Rand(), MinScore, MaxScore))
}

// Fill overwrites dst with fresh scores.
func (q *QualityScores) Fill(dst []byte) {
	for i := range dst {
		dst[i] = q.Sample()
	}
}

// Mean is the centre of the sampled distribution.
func (q *QualityScores) Mean() float64 { return q.dist.Mu }

func clamp(n, lo, hi float64) float64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
