// SPDX-License-Identifier: MIT

// Package qp solves the box-constrained quadratic program behind support
// vector machine training:
//
//	minimize   ½·αᵀQα + pᵀα
//	subject to l ≤ α ≤ u,  Σ yᵢαᵢ = const
//
// with Sequential Minimal Optimization (SMO). Each iteration picks the
// maximal violating pair of the KKT conditions, moves the two variables
// analytically along the line that keeps Σ yᵢαᵢ fixed, clips the step to
// the box and updates the gradient incrementally in O(n).
//
// For an SVM dual, Q[i,j] = yᵢyⱼK(xᵢ,xⱼ), p = -1, l = 0 and u = C.
//
// Reaching the iteration cap is not an error: Solve always returns the best
// α found so far together with its violation gap, so callers can judge the
// quality of the solution themselves.
package qp
