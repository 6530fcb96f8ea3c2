package simd

// sse mirrors the SSE-family code path: estimates come from 12-bit
// rcpps/rsqrtps approximations. SSE4.1 only changes the reported features, the
// lane select already follows blendvps on every backend.
type sse struct {
	portable
	hasSSE41 bool
}

func (sse) name() Implementation { return ImplSSE }

func (s sse) features() []string {
	if s.hasSSE41 {
		return []string{"sse2", "sse4.1"}
	}
	return []string{"sse2"}
}

func (sse) recipEstimate(a lanes) lanes {
	var r lanes
	for i := range r {
		r[i] = truncateEstimate(1 / a[i])
	}
	return r
}

func (s sse) recipSqrtEstimate(a lanes) lanes {
	exact := s.recipSqrt(a)
	var r lanes
	for i := range r {
		r[i] = truncateEstimate(exact[i])
	}
	return r
}

// sqrtEstimate is x * rsqrtps(x) with the zero and infinity lanes masked back.
func (s sse) sqrtEstimate(a lanes) lanes {
	rs := s.recipSqrtEstimate(a)
	var r lanes
	for i := range r {
		r[i] = sqrtFromRecipSqrt(a[i], rs[i])
	}
	return r
}
