package filtering

import "fmt"

// CentralDifference is a stateful filter that, given a stream of f(t)
// samples spaced by h, produces the D-th derivative using a symmetric
// N-point stencil (N odd). Coefficients are the closed-form central
// finite-difference weights for the requested derivative order, computed
// once at construction via Fornberg's algorithm and reused for every
// subsequent window — the same "precompute once, reuse per call" shape
// as the teacher's Whittaker-Henderson Cholesky factor.
//
// Order of accuracy is O(h^(N-D)). The derivative reported by the Push of
// sample k (0-based) corresponds to time (k-(N-1)/2)*h, the center of the
// window.
type CentralDifference struct {
	order  int
	points int
	h      float64
	coeffs []float64
	buf    []float64
	filled int
	head   int
}

// NewCentralDifference constructs a filter for the given derivative
// order and stencil width. points must be odd and strictly greater than
// order, and h must be positive.
func NewCentralDifference(order, points int, h float64) (*CentralDifference, error) {
	if points < 3 || points%2 == 0 {
		return nil, fmt.Errorf("%w: stencil width must be odd and >= 3, got %d", ErrInvalidWindow, points)
	}
	if order < 1 || order >= points {
		return nil, fmt.Errorf("filtering: derivative order %d invalid for stencil width %d", order, points)
	}

	half := (points - 1) / 2
	nodes := make([]float64, points)
	for i := 0; i < points; i++ {
		nodes[i] = float64(i-half) * h
	}

	return &CentralDifference{
		order:  order,
		points: points,
		h:      h,
		coeffs: fornbergWeights(order, nodes, 0),
		buf:    make([]float64, points),
	}, nil
}

// Push feeds the next sample into the window. ready is true once the
// window has filled for the first time and on every push thereafter;
// value is the estimated D-th derivative at the window's center sample.
func (c *CentralDifference) Push(f float64) (value float64, ready bool) {
	c.buf[c.head] = f
	c.head = (c.head + 1) % c.points
	if c.filled < c.points {
		c.filled++
	}
	if c.filled < c.points {
		return 0, false
	}

	var sum float64
	for k := 0; k < c.points; k++ {
		// buf[head] is the oldest sample (the next to be overwritten);
		// walking forward from head visits the window in time order.
		sum += c.coeffs[k] * c.buf[(c.head+k)%c.points]
	}
	return sum, true
}

// fornbergWeights computes the finite-difference weights for the given
// derivative order at evaluation point z over the supplied (not
// necessarily uniformly spaced) nodes, via Fornberg's 1988 recurrence.
func fornbergWeights(order int, nodes []float64, z float64) []float64 {
	n := len(nodes)
	c := make([][]float64, order+1)
	for i := range c {
		c[i] = make([]float64, n)
	}
	c[0][0] = 1.0

	c1 := 1.0
	c4 := nodes[0] - z
	for i := 1; i < n; i++ {
		mn := i
		if order < mn {
			mn = order
		}
		c2 := 1.0
		c5 := c4
		c4 = nodes[i] - z
		for j := 0; j < i; j++ {
			c3 := nodes[i] - nodes[j]
			c2 *= c3
			if j == i-1 {
				for k := mn; k >= 1; k-- {
					c[k][i] = c1 * (float64(k)*c[k-1][i-1] - c5*c[k][i-1]) / c2
				}
				c[0][i] = -c1 * c5 * c[0][i-1] / c2
			}
			for k := mn; k >= 1; k-- {
				c[k][j] = (c4*c[k][j] - float64(k)*c[k-1][j]) / c3
			}
			c[0][j] = c4 * c[0][j] / c3
		}
		c1 = c2
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = c[order][i]
	}
	return out
}
