package flscape

// Point is an evaluated (or not-yet-evaluated) location in the search space: an
// ordered tuple of real-valued coordinates plus an objective value.
//
// A Point consumed by any FLM must have Evaluated() == true; reading Value()
// of an unevaluated point returns ErrNotEvaluated. Population is nil when a
// point carries no swarm snapshot — this replaces the nested
// point.state[0].state[j] indirection of the original implementation with a
// named field; it carries no semantics of its own.
type Point struct {
	Coords     []float64
	Population []Point

	value     float64
	evaluated bool
}

// NewPoint builds an unevaluated point from the given coordinates. The slice
// is copied; callers may reuse or mutate it afterwards.
func NewPoint(coords []float64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)
	return Point{Coords: c}
}

// Dim returns the dimensionality of the point.
func (p Point) Dim() int {
	return len(p.Coords)
}

// Evaluated reports whether SetValue has been called on this point.
func (p Point) Evaluated() bool {
	return p.evaluated
}

// Value returns the point's objective value. Lower is better (minimisation).
func (p Point) Value() (float64, error) {
	if !p.evaluated {
		return 0, ErrNotEvaluated
	}
	return p.value, nil
}

// SetValue marks the point evaluated and records its objective value.
func (p *Point) SetValue(v float64) {
	p.value = v
	p.evaluated = true
}

// Clone performs an explicit deep copy: coordinates and any population
// snapshot are recursively copied. The ordinary Go copy (p2 := p1) only
// copies slice headers, so it aliases Coords/Population — call sites that
// need independent storage must call Clone explicitly.
func (p Point) Clone() Point {
	cp := Point{
		Coords:    append([]float64(nil), p.Coords...),
		value:     p.value,
		evaluated: p.evaluated,
	}
	if p.Population != nil {
		cp.Population = make([]Point, len(p.Population))
		for i, member := range p.Population {
			cp.Population[i] = member.Clone()
		}
	}
	return cp
}
