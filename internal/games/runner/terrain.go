package runner

import "sort"

// Point is a polyline vertex: X is world distance, Y is height (down is positive).
type Point struct {
	X, Y float64
}

// Polyline is a floor or ceiling profile.
// Points must be sorted by strictly increasing X and the slice must be non-empty;
// Level.Validate enforces this at load time and Sample does not re-check it.
type Polyline []Point

// Sample returns the interpolated height of p at world distance x.
// Queries before the first point or after the last clamp to that point's height.
func Sample(p Polyline, x float64) float64 {
	first, last := p[0], p[len(p)-1]
	if x <= first.X {
		return first.Y
	}
	if x >= last.X {
		return last.Y
	}

	// First vertex at or past x; i >= 1 because x > first.X
	i := sort.Search(len(p), func(i int) bool { return p[i].X >= x })
	b := p[i]
	if b.X == x {
		return b.Y
	}
	a := p[i-1]
	t := (x - a.X) / (b.X - a.X)
	return a.Y + t*(b.Y-a.Y)
}

// Sample is shorthand for Sample(p, x).
func (p Polyline) Sample(x float64) float64 {
	return Sample(p, x)
}

// sorted reports whether X strictly increases along the polyline.
func (p Polyline) sorted() bool {
	for i := 1; i < len(p); i++ {
		if p[i].X <= p[i-1].X {
			return false
		}
	}
	return true
}
