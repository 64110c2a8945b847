package svgwriter

// StrainControl returns the four Bezier control points of the curve
// from p0 to p1 whose end tangents point along p1-q0 and q1-p0,
// with tangent lengths chosen to minimize the strain energy.
//
// The closed form is Theorem 2 (t0=0, t1=1) of Yong & Cheng,
// "Geometric Hermite curves with minimum strain energy", CAGD 2004.
// Degenerate tangent configurations (e close to 0) are not guarded
// and yield NaN or infinite coordinates.
func StrainControl(q0, p0, p1, q1 Point) (a, b, c, d Point) {
	v0 := p1.Sub(q0)
	v1 := q1.Sub(p0)

	dp := p1.Sub(p0).Mul(3)
	dv0 := dp.Dot(v0)
	dv1 := dp.Dot(v1)
	v00 := v0.Dot(v0)
	v01 := v0.Dot(v1)
	v11 := v1.Dot(v1)
	e := 4*v00*v11 - v01*v01
	a0 := (2*dv0*v11 - dv1*v01) / e
	a1 := (2*dv1*v00 - dv0*v01) / e

	return p0, p0.Add(v0.Mul(a0 / 3)), p1.Sub(v1.Mul(a1 / 3)), p1
}
