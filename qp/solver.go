// SPDX-License-Identifier: MIT

package qp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mlcore/matrix"
)

// Solver holds one box-constrained QP and the current iterate α.
// Solver is not safe for concurrent use.
type Solver struct {
	q       [][]float64
	p, l, u []float64
	y       []float64
	alpha   []float64
	grad    []float64 // G = Q·α + p, kept in sync with alpha
	opts    Options
}

// pair identifies a working pair (i, j) blocked for non-positive curvature.
type pair struct{ i, j int }

// NewSolver copies the problem data and prepares the initial iterate
// α = clip(0, l, u) with its gradient.
// Blueprint:
//
//	Stage 1 (Validate): every operand non-nil; Q square n×n; p, l, u, y of length n;
//	                    y[i] ∈ {+1, -1}; l[i] <= u[i] (infinite bounds allowed).
//	Stage 2 (Prepare):  private copies of every input.
//	Stage 3 (Execute):  α ← clip(0, l, u); G ← Q·α + p.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrInvalidLabel, ErrInvalidBounds.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSolver(Q *matrix.Dense, p, l, u, y *matrix.Vector, opts ...Option) (*Solver, error) {
	if err := matrix.ValidateNotNil(Q); err != nil {
		return nil, qpErrorf(opNewSolver, err)
	}
	for _, v := range []*matrix.Vector{p, l, u, y} {
		if err := matrix.ValidateVecNotNil(v); err != nil {
			return nil, qpErrorf(opNewSolver, err)
		}
	}
	if err := matrix.ValidateSquare(Q); err != nil {
		return nil, qpErrorf(opNewSolver, err)
	}
	n := Q.Rows()
	for _, v := range []*matrix.Vector{p, l, u, y} {
		if err := matrix.ValidateVecLen(v, n); err != nil {
			return nil, qpErrorf(opNewSolver, err)
		}
	}

	s := &Solver{
		q:      Q.ToSlices(),
		p:      p.Values(),
		l:      l.Values(),
		u:      u.Values(),
		y:      y.Values(),
		alpha:  make([]float64, n),
		grad:   make([]float64, n),
		opts:   gatherOptions(opts...),
	}

	var i, k int
	for i = 0; i < n; i++ {
		if s.y[i] != 1 && s.y[i] != -1 {
			return nil, fmt.Errorf("%s: y[%d]=%v: %w", opNewSolver, i, s.y[i], ErrInvalidLabel)
		}
		if !(s.l[i] <= s.u[i]) {
			return nil, fmt.Errorf("%s: [%d] l=%v u=%v: %w", opNewSolver, i, s.l[i], s.u[i], ErrInvalidBounds)
		}
		s.alpha[i] = min(max(0, s.l[i]), s.u[i])
	}
	for i = 0; i < n; i++ {
		s.grad[i] = s.p[i]
		for k = 0; k < n; k++ {
			if s.alpha[k] != 0 {
				s.grad[i] += s.q[i][k] * s.alpha[k]
			}
		}
	}

	return s, nil
}

// Size returns the number of variables.
func (s *Solver) Size() int { return len(s.alpha) }

// Alpha returns a copy of the current iterate.
func (s *Solver) Alpha() *matrix.Vector { return matrix.NewVector(s.alpha...) }

// Gap returns the maximal KKT violation of the current iterate:
// max over I_up of -yᵢGᵢ minus min over I_low of -yⱼGⱼ (j ≠ i).
// It is 0 when no pair of variables can move.
func (s *Solver) Gap() float64 {
	_, _, gap, ok := s.selectPair()
	if !ok {
		return 0
	}

	return gap
}

// Solve runs SMO from the current iterate for at most maxIters iterations.
// Calling Solve again resumes where the previous call stopped.
// Blueprint:
//
//	Stage 1 (Validate): maxIters >= 0; tol >= 0 and not NaN.
//	Stage 2 (Select):   maximal violating pair (i, j). No pair, or gap <= 0,
//	                    or gap < tol ends the run as converged.
//	Stage 3 (Step):     η = Qᵢᵢ + Qⱼⱼ - 2·yᵢyⱼ·Qᵢⱼ. η <= 0 blocks the pair until
//	                    α next changes; otherwise t = min(gap/η, box limits),
//	                    αᵢ += yᵢt, αⱼ -= yⱼt, G updated in O(n).
//	Stage 4 (Finalize): objective, bias and a copy of α.
//
// Behavior highlights:
//   - Every step keeps Σ yᵢαᵢ and l <= α <= u exactly; a step that reaches a
//     limit snaps the variable onto the bound.
//   - When every violating pair is blocked the run stops with Stalled set.
//   - Exhausting maxIters is reported through Converged=false, not an error.
//
// Errors: ErrInvalidParameter.
// Complexity: O(n) per iteration while no pair is blocked.
func (s *Solver) Solve(maxIters int, tol float64) (*Result, error) {
	if maxIters < 0 {
		return nil, fmt.Errorf("%s: maxIters=%d: %w", opSolve, maxIters, ErrInvalidParameter)
	}
	if !(tol >= 0) {
		return nil, fmt.Errorf("%s: tol=%v: %w", opSolve, tol, ErrInvalidParameter)
	}

	var (
		it                 int
		i, j               int
		gap                float64
		ok                 bool
		converged, stalled bool
		blocked            = make(map[pair]struct{})
	)
	for {
		i, j, gap, ok = s.selectPair()
		if !ok || gap <= 0 || gap < tol {
			converged = true
			if !ok {
				gap = 0
			}
			break
		}
		if it >= maxIters {
			break
		}
		if len(blocked) > 0 {
			if _, hit := blocked[pair{i, j}]; hit {
				if i, j, ok = s.selectUnblocked(blocked, tol); !ok {
					stalled = true
					break
				}
			}
		}
		it++
		if !s.step(i, j) {
			blocked[pair{i, j}] = struct{}{}
			s.opts.logger.Debug("qp: non-positive curvature, pair blocked", "i", i, "j", j)
			continue
		}
		clear(blocked)
	}

	res := &Result{
		Alpha:      matrix.NewVector(s.alpha...),
		Gap:        gap,
		Iterations: it,
		Converged:  converged,
		Stalled:    stalled,
		Objective:  s.objective(),
		Bias:       s.bias(),
	}
	s.opts.logger.Debug("qp: solve finished",
		"n", len(s.alpha),
		"iterations", res.Iterations,
		"gap", res.Gap,
		"converged", res.Converged,
		"stalled", res.Stalled,
		"objective", res.Objective,
	)

	return res, nil
}

// canRaise reports k ∈ I_up: yₖαₖ can still increase.
func (s *Solver) canRaise(k int) bool {
	if s.y[k] > 0 {
		return s.alpha[k] < s.u[k]
	}
	return s.alpha[k] > s.l[k]
}

// canLower reports k ∈ I_low: yₖαₖ can still decrease.
func (s *Solver) canLower(k int) bool {
	if s.y[k] > 0 {
		return s.alpha[k] > s.l[k]
	}
	return s.alpha[k] < s.u[k]
}

// score is -yₖGₖ, the quantity the working-set rule ranks by.
func (s *Solver) score(k int) float64 { return -s.y[k] * s.grad[k] }

// selectPair picks i = argmax_{I_up} score and j = argmin_{I_low, j≠i} score.
// Ties keep the lowest index. ok is false when either set is empty.
func (s *Solver) selectPair() (int, int, float64, bool) {
	n := len(s.alpha)
	i, j := -1, -1
	var best, worst, v float64
	var k int
	for k = 0; k < n; k++ {
		if !s.canRaise(k) {
			continue
		}
		if v = s.score(k); i < 0 || v > best {
			i, best = k, v
		}
	}
	if i < 0 {
		return -1, -1, 0, false
	}
	for k = 0; k < n; k++ {
		if k == i || !s.canLower(k) {
			continue
		}
		if v = s.score(k); j < 0 || v < worst {
			j, worst = k, v
		}
	}
	if j < 0 {
		return -1, -1, 0, false
	}

	return i, j, best - worst, true
}

// selectUnblocked returns the most violating pair that is not blocked and
// whose violation still exceeds tol. O(n²); only used once a pair is blocked.
func (s *Solver) selectUnblocked(blocked map[pair]struct{}, tol float64) (int, int, bool) {
	n := len(s.alpha)
	bi, bj := -1, -1
	var best, v float64
	var i, j int
	for i = 0; i < n; i++ {
		if !s.canRaise(i) {
			continue
		}
		for j = 0; j < n; j++ {
			if j == i || !s.canLower(j) {
				continue
			}
			if _, hit := blocked[pair{i, j}]; hit {
				continue
			}
			v = s.score(i) - s.score(j)
			if v <= 0 || v < tol {
				continue
			}
			if bi < 0 || v > best {
				bi, bj, best = i, j, v
			}
		}
	}

	return bi, bj, bi >= 0
}

// step performs the analytic two-variable update on (i, j).
// It returns false, leaving α untouched, when the curvature η is not positive.
func (s *Solver) step(i, j int) bool {
	yi, yj := s.y[i], s.y[j]
	eta := s.q[i][i] + s.q[j][j] - 2*yi*yj*s.q[i][j]
	if !(eta > 0) {
		return false
	}
	gap := s.score(i) - s.score(j)

	var limI, limJ float64
	if yi > 0 {
		limI = s.u[i] - s.alpha[i]
	} else {
		limI = s.alpha[i] - s.l[i]
	}
	if yj > 0 {
		limJ = s.alpha[j] - s.l[j]
	} else {
		limJ = s.u[j] - s.alpha[j]
	}
	t := min(gap/eta, limI, limJ)

	oldI, oldJ := s.alpha[i], s.alpha[j]
	switch {
	case t == limI && yi > 0:
		s.alpha[i] = s.u[i]
	case t == limI:
		s.alpha[i] = s.l[i]
	default:
		s.alpha[i] = oldI + yi*t
	}
	switch {
	case t == limJ && yj > 0:
		s.alpha[j] = s.l[j]
	case t == limJ:
		s.alpha[j] = s.u[j]
	default:
		s.alpha[j] = oldJ - yj*t
	}

	dI, dJ := s.alpha[i]-oldI, s.alpha[j]-oldJ
	for k := range s.grad {
		s.grad[k] += s.q[k][i]*dI + s.q[k][j]*dJ
	}

	return true
}

// objective returns ½·αᵀQα + pᵀα = ½·Σ αₖ(Gₖ + pₖ).
func (s *Solver) objective() float64 {
	var sum float64
	for k, a := range s.alpha {
		sum += a * (s.grad[k] + s.p[k])
	}

	return 0.5 * sum
}

// bias returns b = -ρ where ρ averages yₖGₖ over free variables, or falls
// back to the midpoint of the bounds implied by variables at l or u.
func (s *Solver) bias() float64 {
	ub, lb := math.Inf(1), math.Inf(-1)
	var sum, yg float64
	var free int
	for k := range s.alpha {
		yg = s.y[k] * s.grad[k]
		atUpper := s.alpha[k] >= s.u[k]
		atLower := s.alpha[k] <= s.l[k]
		switch {
		case atUpper && atLower:
			// l == u: the variable is fixed and carries no information.
		case atUpper && s.y[k] < 0, atLower && s.y[k] > 0:
			ub = min(ub, yg)
		case atUpper, atLower:
			lb = max(lb, yg)
		default:
			free++
			sum += yg
		}
	}

	var rho float64
	switch {
	case free > 0:
		rho = sum / float64(free)
	case math.IsInf(ub, 1) && math.IsInf(lb, -1):
		rho = 0
	case math.IsInf(ub, 1):
		rho = lb
	case math.IsInf(lb, -1):
		rho = ub
	default:
		rho = (ub + lb) / 2
	}

	return -rho
}
