// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major float64 matrix used as the
// storage behind distance tables.
//
// The package offers:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone).
//   - Dense, a contiguous row-major implementation with bounds-checked access.
//   - NewSymmetric, which builds an n×n symmetric matrix with a zero diagonal
//     from a pairwise function evaluated only on the upper triangle.
//
// Errors are sentinels matched with errors.Is; accessors wrap them with the
// method name and indices.
package matrix
