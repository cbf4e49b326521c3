package ols

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Result is the outcome of a least-squares fit: the coefficient vector
// and its goodness-of-fit statistics.
type Result struct {
	Beta []float64
	RMSE float64
	R2   float64
}

// Solve fits beta = (X^T X)^-1 X^T y by the normal equations over an
// n x k regressor matrix X (row-major, n rows of k columns) and an
// n-length target y. It fails with ErrSingularNormalMatrix if X^T X is
// not invertible.
func Solve(x [][]float64, y []float64) (Result, error) {
	n := len(y)
	if n == 0 || len(x) != n {
		return Result{}, fmt.Errorf("%w: %d regressor rows, %d targets", ErrDimensionMismatch, len(x), n)
	}
	k := len(x[0])

	xm := mat.NewDense(n, k, nil)
	for i, row := range x {
		if len(row) != k {
			return Result{}, fmt.Errorf("%w: ragged regressor row %d", ErrDimensionMismatch, i)
		}
		xm.SetRow(i, row)
	}
	ym := mat.NewVecDense(n, y)

	var xtx mat.Dense
	xtx.Mul(xm.T(), xm)

	var xty mat.VecDense
	xty.MulVec(xm.T(), ym)

	var chol mat.Cholesky
	ok := chol.Factorize(mat.NewSymDense(k, xtx.RawMatrix().Data))
	if !ok {
		return Result{}, ErrSingularNormalMatrix
	}

	var betaVec mat.VecDense
	if err := chol.SolveVecTo(&betaVec, &xty); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSingularNormalMatrix, err)
	}

	beta := make([]float64, k)
	for i := 0; i < k; i++ {
		beta[i] = betaVec.AtVec(i)
	}

	rmse, r2 := goodnessOfFit(x, y, beta)
	return Result{Beta: beta, RMSE: rmse, R2: r2}, nil
}

func goodnessOfFit(x [][]float64, y, beta []float64) (rmse, r2 float64) {
	n := len(y)
	mean := floats.Sum(y) / float64(n)

	var ssRes, ssTot, sumSqErr float64
	for i, row := range x {
		var yHat float64
		for j, coeff := range beta {
			yHat += coeff * row[j]
		}
		resid := y[i] - yHat
		ssRes += resid * resid
		sumSqErr += resid * resid
		d := y[i] - mean
		ssTot += d * d
	}

	rmse = math.Sqrt(sumSqErr / float64(n))
	if ssTot == 0 {
		r2 = 1
	} else {
		r2 = 1 - ssRes/ssTot
	}
	return rmse, r2
}
