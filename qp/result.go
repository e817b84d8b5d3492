// SPDX-License-Identifier: MIT

package qp

import "github.com/katalvlaran/mlcore/matrix"

// Result is the outcome of one Solve call.
type Result struct {
	// Alpha is a copy of the final iterate; l <= Alpha <= u holds exactly.
	Alpha *matrix.Vector
	// Gap is the maximal KKT violation of Alpha (0 when no pair can move).
	Gap float64
	// Iterations counts pair updates attempted in this call, including
	// pairs rejected for non-positive curvature.
	Iterations int
	// Converged is set when Gap dropped below the tolerance.
	Converged bool
	// Stalled is set when every remaining violating pair had η <= 0.
	Stalled bool
	// Objective is ½·αᵀQα + pᵀα at Alpha.
	Objective float64
	// Bias is the SVM intercept b implied by the KKT conditions.
	Bias float64
}

// Decision evaluates f(x) = Σ αᵢyᵢK(xᵢ, x) + b for one sample, given the
// kernel row K(xᵢ, x) over the training set and the training labels y.
func (r *Result) Decision(kernelRow, y *matrix.Vector) (float64, error) {
	if err := matrix.ValidateVecLen(kernelRow, r.Alpha.Len()); err != nil {
		return 0, qpErrorf(opDecision, err)
	}
	if err := matrix.ValidateVecLen(y, r.Alpha.Len()); err != nil {
		return 0, qpErrorf(opDecision, err)
	}

	a, k, ys := r.Alpha.Values(), kernelRow.Values(), y.Values()
	sum := r.Bias
	for i := range a {
		if a[i] != 0 {
			sum += a[i] * ys[i] * k[i]
		}
	}

	return sum, nil
}
