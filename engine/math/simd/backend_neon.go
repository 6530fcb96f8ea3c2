package simd

// neon mirrors the AArch64 code path: vrecpe/vrsqrte seeds refined with
// vrecps/vrsqrts Newton-Raphson steps. Division and sqrt are exact on AArch64
// (fdiv/fsqrt), so only the estimates differ from the fallback.
type neon struct {
	portable
}

func (neon) name() Implementation { return ImplNEON }

func (neon) features() []string { return []string{"asimd"} }

func (neon) recipEstimate(a lanes) lanes {
	return lanes{
		recipBitEstimate(a[0]),
		recipBitEstimate(a[1]),
		recipBitEstimate(a[2]),
		recipBitEstimate(a[3]),
	}
}

func (neon) recipSqrtEstimate(a lanes) lanes {
	return lanes{
		recipSqrtBitEstimate(a[0]),
		recipSqrtBitEstimate(a[1]),
		recipSqrtBitEstimate(a[2]),
		recipSqrtBitEstimate(a[3]),
	}
}

func (n neon) sqrtEstimate(a lanes) lanes {
	rs := n.recipSqrtEstimate(a)
	var r lanes
	for i := range r {
		r[i] = sqrtFromRecipSqrt(a[i], rs[i])
	}
	return r
}
