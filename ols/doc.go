// Package ols solves an over-determined linear system X*beta = y in the
// least-squares sense via the normal equations, and reports RMSE and R².
package ols
