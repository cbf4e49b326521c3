package ols

import "errors"

// ErrSingularNormalMatrix indicates X^T*X is not invertible, so the
// normal equations have no unique solution.
var ErrSingularNormalMatrix = errors.New("ols: normal matrix is singular")

// ErrDimensionMismatch indicates X's row count does not match y's length.
var ErrDimensionMismatch = errors.New("ols: regressor row count does not match target length")
