package mathutil

// Color3 is an RGB triple, components in [0,255].
type Color3 struct {
	R, G, B uint8
}

// Color4 is an RGBA quad, components in [0,255].
type Color4 struct {
	R, G, B, A uint8
}

// Cmp is a lexicographic tuple comparator on (R, G, B).
func (c Color3) Cmp(o Color3) int {
	if d := int(c.R) - int(o.R); d != 0 {
		return sign(d)
	}
	if d := int(c.G) - int(o.G); d != 0 {
		return sign(d)
	}
	return sign(int(c.B) - int(o.B))
}

// Cmp is a lexicographic tuple comparator on (R, G, B, A).
func (c Color4) Cmp(o Color4) int {
	if d := int(c.R) - int(o.R); d != 0 {
		return sign(d)
	}
	if d := int(c.G) - int(o.G); d != 0 {
		return sign(d)
	}
	if d := int(c.B) - int(o.B); d != 0 {
		return sign(d)
	}
	return sign(int(c.A) - int(o.A))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
