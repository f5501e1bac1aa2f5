package testutil

import (
	"math"
	"testing"
)

// Indexed is a read-only view of a float64 sequence, satisfied by
// *vector.Vector[float64].
type Indexed interface {
	Len() int
	Get(i int) (float64, error)
}

// RequireValues fails t unless v holds exactly len(want) elements, each
// within eps of the expected value.
func RequireValues(t *testing.T, v Indexed, want []float64, eps float64) {
	t.Helper()
	if v.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(want))
	}
	for i, w := range want {
		got, err := v.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) error = %v", i, err)
		}
		if math.Abs(got-w) > eps {
			t.Fatalf("Get(%d) = %v, want %v (eps %v)", i, got, w, eps)
		}
	}
}
