package feedback

import "gonum.org/v1/gonum/mat"

// riccatiIterations bounds the fixed-point iteration used to solve the
// discrete algebraic Riccati equation. The plants here are stable or
// marginally stable low-order systems; convergence is well within this
// budget in practice.
const riccatiIterations = 200

// riccatiScalar solves the scalar DARE p = q + a²p − (abp)²/(r+b²p) by
// fixed-point iteration from p₀ = q.
func riccatiScalar(a, b, q, r float64) float64 {
	p := q
	for i := 0; i < riccatiIterations; i++ {
		denom := r + b*b*p
		p = q + a*a*p - (a*b*p)*(a*b*p)/denom
	}
	return p
}

// riccatiDouble solves the 2-state discrete algebraic Riccati equation
//
//	P = Q + AᵀPA − (AᵀPB)(R+BᵀPB)⁻¹(BᵀPA)
//
// by fixed-point iteration from P₀ = Q.
func riccatiDouble(a, b, q *mat.Dense, r float64) *mat.Dense {
	p := mat.DenseCopyOf(q)
	for i := 0; i < riccatiIterations; i++ {
		var atP, atPA, pb, atPB, btP, btPA, atPBK mat.Dense
		atP.Mul(a.T(), p)
		atPA.Mul(&atP, a)
		pb.Mul(p, b)
		atPB.Mul(a.T(), &pb)
		btP.Mul(b.T(), p)
		btPA.Mul(&btP, a)
		denom := r + mat.Dot(b.ColView(0), pb.ColView(0))
		var k mat.Dense
		k.Scale(1/denom, &btPA)
		atPBK.Mul(&atPB, &k)

		var next mat.Dense
		next.Add(q, &atPA)
		next.Sub(&next, &atPBK)
		p = mat.DenseCopyOf(&next)
	}
	return p
}

// lqrGain returns the discrete LQR gain K = (R+BᵀPB)⁻¹BᵀPA for the
// converged Riccati solution P.
func lqrGain(a, b, p *mat.Dense, r float64) *mat.Dense {
	var pb, btP, btPA, k mat.Dense
	pb.Mul(p, b)
	btP.Mul(b.T(), p)
	btPA.Mul(&btP, a)
	denom := r + mat.Dot(b.ColView(0), pb.ColView(0))
	k.Scale(1/denom, &btPA)
	return &k
}

// ackermann returns the 1x2 pole-placement gain that assigns both
// closed-loop discrete poles of the 2-state plant (a, b) to p (a
// critically-damped, repeated-pole response), via Ackermann's formula
// K = e₂ᵀ C⁻¹ φ(A), φ(A) = A² − 2pA + p²I.
func ackermann(a, b *mat.Dense, p float64) *mat.Dense {
	var ab mat.Dense
	ab.Mul(a, b)
	ctrb := mat.NewDense(2, 2, nil)
	ctrb.SetCol(0, mat.Col(nil, 0, b))
	ctrb.SetCol(1, mat.Col(nil, 0, &ab))

	var ctrbInv mat.Dense
	if err := ctrbInv.Inverse(ctrb); err != nil {
		// The (A,B) pairs this package constructs are controllable by
		// construction (B is never zero for a physical plant); an
		// uninvertible controllability matrix indicates a programming
		// error, not a runtime condition callers can recover from.
		panic("feedback: plant is not controllable: " + err.Error())
	}

	var a2, twoPA, phi mat.Dense
	a2.Mul(a, a)
	twoPA.Scale(2*p, a)
	phi.Sub(&a2, &twoPA)
	phi.Add(&phi, scaledIdentity(p*p))

	var e2CInv mat.Dense
	e2CInv.Mul(mat.NewDense(1, 2, []float64{0, 1}), &ctrbInv)
	var k mat.Dense
	k.Mul(&e2CInv, &phi)
	return &k
}

func scaledIdentity(s float64) *mat.Dense {
	return mat.NewDense(2, 2, []float64{s, 0, 0, s})
}
