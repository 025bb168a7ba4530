package wireframe

import "fmt"

// CollisionFunc reports whether the Cartesian point (x, y, z) violates a
// spatial constraint (collides with an external object, leaves an allowed
// envelope, and so on).
type CollisionFunc func(x, y, z float64) bool

// ConstrainCollidingSegments pins to zero current every segment on which
// any of ptsPerSeg evenly spaced test points (endpoints included,
// ptsPerSeg ≥ 2) collides according to collides. Test points are taken in
// the base half-period; by symmetry the same segments collide in every
// copy of a symmetric obstacle layout.
//
// The ids of the newly constrained segments are returned, ascending.
func (w *Wireframe) ConstrainCollidingSegments(collides CollisionFunc, ptsPerSeg int) ([]int, error) {
	if collides == nil {
		return nil, fmt.Errorf("wireframe: collision function must not be nil")
	}
	if ptsPerSeg < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPointsPerSegment, ptsPerSeg)
	}

	base := w.nodes[0]
	var colliding []int
	for s := 0; s < w.nSegments; s++ {
		p0 := base[w.segments[s][0]]
		p1 := base[w.segments[s][1]]
		for k := 0; k < ptsPerSeg; k++ {
			t := float64(k) / float64(ptsPerSeg-1)
			x := p0[0] + t*(p1[0]-p0[0])
			y := p0[1] + t*(p1[1]-p0[1])
			z := p0[2] + t*(p1[2]-p0[2])
			if collides(x, y, z) {
				colliding = append(colliding, s)
				break
			}
		}
	}

	if len(colliding) > 0 {
		if err := w.SetSegmentsConstrained(colliding...); err != nil {
			return nil, err
		}
	}
	return colliding, nil
}
