package physics

// Resolve applies a perfectly elastic collision response to a pair of
// bodies. It is a no-op unless the center distance is within the sum of the
// radii (exact tangency counts). On contact each velocity is decomposed
// along the unit normal (a's center toward b's) and the unit tangent; the
// tangential components pass through unchanged, the normal components take
// the two-mass 1-D elastic exchange, and both velocities are reassigned from
// the pre-call state so neither body sees the other's updated value.
//
// Positions are left alone. No separation impulse is applied, so bodies may
// still overlap after the response; the next ticks carry them apart.
func Resolve(a, b *Body) {
	if a.Pos.Sub(b.Pos).Len() > a.Radius+b.Radius {
		return
	}

	n, err := b.Pos.Sub(a.Pos).Normalize()
	if err != nil {
		// Coincident centers leave the contact normal undefined.
		// Skip the pair this tick instead of guessing a direction.
		return
	}
	t := Vec2{X: -n.Y, Y: n.X}

	v1n := a.Vel.Dot(n)
	v1t := a.Vel.Dot(t)
	v2n := b.Vel.Dot(n)
	v2t := b.Vel.Dot(t)

	m1, m2 := a.Mass, b.Mass
	u1n := ((m1-m2)*v1n + 2*m2*v2n) / (m1 + m2)
	u2n := ((m2-m1)*v2n + 2*m1*v1n) / (m1 + m2)

	a.Vel = n.Mul(u1n).Add(t.Mul(v1t))
	b.Vel = n.Mul(u2n).Add(t.Mul(v2t))
}
