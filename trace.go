package flscape

// Trace (called "Sample" in spec) is an ordered sequence of evaluated points
// emitted by an optimiser's walk. Order is semantically meaningful: points
// are spatially/temporally adjacent steps, not an unordered bag.
//
// A Trace owns its points and, transitively, their population snapshots —
// ownership is a strict tree, there is no sharing or back-references.
type Trace struct {
	points         []Point
	advertisedSize int // < 0 means "use len(points)"
}

// NewTrace returns an empty trace.
func NewTrace() *Trace {
	return &Trace{advertisedSize: -1}
}

// Add appends an evaluated point to the trace, preserving insertion order.
// It reports false (and does not add the point) if the point is not
// evaluated.
func (t *Trace) Add(p Point) bool {
	if !p.Evaluated() {
		return false
	}
	t.points = append(t.points, p)
	return true
}

// Size returns the advertised size of the trace: the actual number of points
// unless SetAdvertisedSize has narrowed it.
func (t *Trace) Size() int {
	if t.advertisedSize < 0 {
		return len(t.points)
	}
	return t.advertisedSize
}

// Len returns the actual number of points regardless of advertised size.
func (t *Trace) Len() int {
	return len(t.points)
}

// Get returns the i-th point of the (advertised) trace.
func (t *Trace) Get(i int) Point {
	return t.points[i]
}

// SetAdvertisedSize exposes only a prefix of the trace to callers, for
// localised analyses. It fails if i exceeds the actual number of points.
func (t *Trace) SetAdvertisedSize(i int) bool {
	if i < 0 || i > len(t.points) {
		return false
	}
	t.advertisedSize = i
	return true
}

// ResetAdvertisedSize restores Size() to the actual point count.
func (t *Trace) ResetAdvertisedSize() {
	t.advertisedSize = -1
}

// Values returns the objective value of every (advertised) point, in order.
// It fails with ErrNotEvaluated if an unevaluated point is present; Add
// never admits one (Characterize also builds its trace through Add), so this
// is a defensive check.
func (t *Trace) Values() ([]float64, error) {
	n := t.Size()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := t.points[i].Value()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Axis returns coordinate c of every (advertised) point, in order.
func (t *Trace) Axis(c int) []float64 {
	n := t.Size()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = t.points[i].Coords[c]
	}
	return out
}
