package shoot

import (
	"errors"
	"fmt"
	"math"

	kitlog "github.com/go-kit/kit/log"
)

// ErrInvalidBracket indicates initial residuals that do not straddle a
// sign change. The search fails immediately rather than hunting for a
// valid bracket itself.
var ErrInvalidBracket = errors.New("shoot: residuals do not bracket a sign change")

// Residual maps a candidate scalar parameter to the signed boundary
// miss. Each call is expected to be expensive (a full IVP integration).
type Residual func(x float64) (float64, error)

// Bracket is a pair of parameter values known to straddle a root,
// together with their residuals. F1*F2 <= 0 holds for the life of a
// search; exactly one endpoint is replaced per iteration.
type Bracket struct {
	X1, F1 float64
	X2, F2 float64
}

func (b Bracket) Width() float64 { return math.Abs(b.X2 - b.X1) }

// Result reports the outcome of a bisection search. Exhausting the
// iteration budget is a normal outcome, not an error: Root then holds
// the best midpoint found and Converged is false.
type Result struct {
	Root        float64
	Residual    float64
	Iterations  int
	Evaluations int
	Converged   bool
	Bracket     Bracket
}

// Bisector drives a Residual to zero by bracketed bisection. Plain
// bisection converges linearly, halving the bracket every iteration
// regardless of residual curvature; no secant or Newton acceleration.
type Bisector struct {
	Tol     float64
	MaxIter int
	Logger  kitlog.Logger
}

func NewBisector(tol float64, maxIter int) *Bisector {
	return &Bisector{Tol: tol, MaxIter: maxIter}
}

// Solve searches [x1, x2] for a root of f. The two endpoints must
// produce residuals of opposite sign (or one of them exactly zero);
// anything else is ErrInvalidBracket, detected before any further
// residual evaluations.
//
// Each iteration evaluates the midpoint and replaces the endpoint on
// the same strict sign partition: an exact-zero midpoint residual
// replaces x2 and then terminates through the |fmid| <= Tol check.
func (b *Bisector) Solve(f Residual, x1, x2 float64) (Result, error) {
	f1, err := f(x1)
	if err != nil {
		return Result{}, err
	}
	f2, err := f(x2)
	if err != nil {
		return Result{Evaluations: 1}, err
	}

	res := Result{
		Evaluations: 2,
		Bracket:     Bracket{X1: x1, F1: f1, X2: x2, F2: f2},
	}
	if f1*f2 > 0 {
		return res, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrInvalidBracket, x1, f1, x2, f2)
	}

	for res.Iterations < b.MaxIter {
		br := &res.Bracket
		xmid := 0.5 * (br.X1 + br.X2)
		fmid, err := f(xmid)
		if err != nil {
			return res, err
		}
		res.Evaluations++
		res.Iterations++
		res.Root, res.Residual = xmid, fmid

		if fmid*br.F1 > 0 {
			br.X1, br.F1 = xmid, fmid
		} else {
			br.X2, br.F2 = xmid, fmid
		}

		if b.Logger != nil {
			b.Logger.Log("iter", res.Iterations, "x", xmid, "residual", fmid, "width", br.Width())
		}

		if math.Abs(fmid) <= b.Tol {
			res.Converged = true
			return res, nil
		}
	}

	return res, nil
}
