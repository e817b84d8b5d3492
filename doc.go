// SPDX-License-Identifier: MIT

// Package mlcore is the numeric core behind classic machine-learning
// training loops: dense linear algebra and a box-constrained QP solver.
//
// Subpackages:
//
//	matrix/      Vector and Dense types, products (Gemv, Gemm, OuterProduct),
//	              row/column primitives, element-wise ops, Gram and covariance.
//	matrix/ops/  factorizations and solvers: LU with partial pivoting,
//	              Determinant, Solve, Inverse (LU) and InverseCofactor (small n),
//	              GaussianElimination, GramSchmidt QR, EigenSym (Jacobi).
//	qp/          Sequential Minimal Optimization for the SVM dual
//	              min ½αᵀQα + pᵀα, l ≤ α ≤ u, Σ yᵢαᵢ = const.
//
// Everything is pure Go on float64 values. All operations return explicit
// errors wrapping package sentinels, and inputs are never mutated unless a
// method says so.
//
// Quick start:
//
//	K, _ := matrix.Gram(X)
//	yy, _ := matrix.OuterProduct(y, y)
//	Q, _ := matrix.Hadamard(K, yy)
//	s, _ := qp.NewSolver(Q, p, l, u, y)
//	res, _ := s.Solve(10000, 1e-6)
package mlcore
