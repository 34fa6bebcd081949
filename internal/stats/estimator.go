package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrZeroBaseline is returned by Ratio when the denominator proportion is
// zero, which would make the ratio undefined.
var ErrZeroBaseline = errors.New("stats: baseline proportion is zero")

// Proportion is an observed proportion with its margin of error at the
// estimator's confidence level.
type Proportion struct {
	Count int
	Base  int
	P     float64
	MOE   float64
}

// Estimator converts raw counts into proportion estimates with Wald
// (normal-approximation) margins of error.
type Estimator struct {
	z float64
}

// NewEstimator builds an estimator for the given two-sided confidence
// level, e.g. 0.95. The critical value comes from the standard normal
// quantile, so 0.95 yields the familiar z of 1.96.
func NewEstimator(confidence float64) Estimator {
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	return Estimator{z: normal.Quantile((1 + confidence) / 2)}
}

// Proportion estimates k out of n. Both the point estimate and the margin
// of error are 0 when n is 0; a proportion of exactly 0 or 1 gets a zero
// margin, as the Wald interval does.
func (e Estimator) Proportion(k, n int) Proportion {
	p := Proportion{Count: k, Base: n}
	if n == 0 {
		return p
	}
	p.P = float64(k) / float64(n)
	p.MOE = e.z * math.Sqrt(p.P*(1-p.P)/float64(n))
	return p
}

// Ratio estimates num.P / den.P with its margin of error, propagating the
// two relative errors in quadrature. A side with a zero proportion or a
// zero margin contributes no uncertainty. A zero ratio carries a zero
// margin. A zero denominator returns ErrZeroBaseline.
func Ratio(num, den Proportion) (ratio, moe float64, err error) {
	if den.P == 0 {
		return 0, 0, ErrZeroBaseline
	}
	ratio = num.P / den.P
	if ratio == 0 {
		return 0, 0, nil
	}

	var relErrSq float64
	if num.P > 0 && num.MOE > 0 {
		relErrSq += (num.MOE / num.P) * (num.MOE / num.P)
	}
	if den.P > 0 && den.MOE > 0 {
		relErrSq += (den.MOE / den.P) * (den.MOE / den.P)
	}
	if relErrSq > 0 {
		moe = math.Abs(ratio) * math.Sqrt(relErrSq)
	}
	return ratio, moe, nil
}
