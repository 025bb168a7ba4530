package wireframe_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/torwire/wireframe"
)

func TestWireframeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	evenDim := gen.IntRange(1, 6).Map(func(k int) int { return 2 * k })

	properties.Property("counts follow the grid dimensions", prop.ForAll(
		func(nfp, nPhi, nTheta int) bool {
			w, err := wireframe.New(testTorus(nfp), nPhi, nTheta)
			if err != nil {
				return false
			}
			return w.NNodes() == (nPhi+1)*nTheta &&
				w.NSegments() == 2*nPhi*nTheta &&
				w.NTorSegments() == nPhi*nTheta &&
				w.NCells() == nPhi*nTheta &&
				len(w.FreeSegments()) == w.NSegments()
		},
		gen.IntRange(1, 5), evenDim, evenDim,
	))

	properties.Property("the zero current state is always feasible", prop.ForAll(
		func(nfp, nPhi, nTheta int) bool {
			w, err := wireframe.New(testTorus(nfp), nPhi, nTheta)
			if err != nil {
				return false
			}
			ok, err := w.CheckConstraints(nil)
			return err == nil && ok
		},
		gen.IntRange(1, 5), evenDim, evenDim,
	))

	properties.Property("every segment appears at both of its endpoints", prop.ForAll(
		func(nPhi, nTheta int) bool {
			w, err := wireframe.New(testTorus(2), nPhi, nTheta)
			if err != nil {
				return false
			}
			for s := 0; s < w.NSegments(); s++ {
				n0, n1 := w.SegmentEndpoints(s)
				if !containsSegment(w.ConnectedSegments(n0), s) ||
					!containsSegment(w.ConnectedSegments(n1), s) {
					return false
				}
			}
			return true
		},
		evenDim, evenDim,
	))

	properties.Property("pinning three segments of an interior node pins the fourth", prop.ForAll(
		func(nPhi, nTheta, pick int) bool {
			w, err := wireframe.New(testTorus(2), nPhi, nTheta)
			if err != nil {
				return false
			}
			i := 1 + pick%(nPhi-1)
			j := pick % nTheta
			cs := w.ConnectedSegments(w.NodeIndex(i, j))

			keep := pick % 4
			var pins []int
			for slot, s := range cs {
				if slot != keep {
					pins = append(pins, s)
				}
			}
			if err := w.SetSegmentsConstrained(pins...); err != nil {
				return false
			}
			return containsID(w.ConstrainedSegments(wireframe.IncludeImplicit), cs[keep])
		},
		gen.IntRange(2, 6).Map(func(k int) int { return 2 * k }), evenDim, gen.IntRange(0, 1<<20),
	))

	properties.Property("TF coil superpositions are always feasible", prop.ForAll(
		func(nPhi, nTheta, nTF int, per float64) bool {
			w, err := wireframe.New(testTorus(2), nPhi, nTheta)
			if err != nil {
				return false
			}
			if err := w.AddTFCoilCurrents(1+nTF%nPhi, per); err != nil {
				return false
			}
			ok, err := w.CheckConstraints(nil)
			return err == nil && ok
		},
		evenDim, evenDim, gen.IntRange(0, 64), gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}

func containsSegment(cs [4]int, s int) bool {
	for _, c := range cs {
		if c == s {
			return true
		}
	}
	return false
}

func containsID(ids []int, s int) bool {
	for _, id := range ids {
		if id == s {
			return true
		}
	}
	return false
}
