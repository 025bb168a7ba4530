package wireframe_test

import (
	"testing"

	"github.com/katalvlaran/torwire/wireframe"
)

func BenchmarkNew(b *testing.B) {
	surf := testTorus(3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := wireframe.New(surf, 16, 16); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConstraintMatrices(b *testing.B) {
	w, err := wireframe.New(testTorus(3), 16, 16)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := w.ConstraintMatrices(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConstraintMatrices_Windowpane(b *testing.B) {
	w, err := wireframe.Windowpane(testTorus(2), 4, 4, 4, 4, 2, 2)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := w.ConstraintMatrices(
			wireframe.WithoutConstrainedSegments(), wireframe.AssumeNoCrossings())
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCheckConstraints(b *testing.B) {
	w, err := wireframe.New(testTorus(3), 16, 16)
	if err != nil {
		b.Fatal(err)
	}
	if err := w.AddTFCoilCurrents(4, 1e5); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.CheckConstraints(nil); err != nil {
			b.Fatal(err)
		}
	}
}
