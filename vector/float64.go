package vector

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Mul computes dst[i] = a[i] * b[i] for every stored element.
// All three vectors must be ready and have the same length.
func Mul(dst, a, b *Vector[float64]) error {
	if err := sameLength(dst, a, b); err != nil {
		return err
	}
	vecmath.MulBlock(dst.stored(), a.stored(), b.stored())
	return nil
}

// MulInPlace computes dst[i] *= src[i].
func MulInPlace(dst, src *Vector[float64]) error {
	if err := sameLength(dst, src); err != nil {
		return err
	}
	vecmath.MulBlockInPlace(dst.stored(), src.stored())
	return nil
}

// Magnitude computes dst[i] = sqrt(re[i]^2 + im[i]^2).
func Magnitude(dst, re, im *Vector[float64]) error {
	if err := sameLength(dst, re, im); err != nil {
		return err
	}
	vecmath.Magnitude(dst.stored(), re.stored(), im.stored())
	return nil
}

// Power computes dst[i] = re[i]^2 + im[i]^2.
func Power(dst, re, im *Vector[float64]) error {
	if err := sameLength(dst, re, im); err != nil {
		return err
	}
	vecmath.Power(dst.stored(), re.stored(), im.stored())
	return nil
}

// stored returns the occupied prefix of the backing block.
func (v *Vector[T]) stored() []T {
	return v.slots[:v.length]
}

func sameLength(vs ...*Vector[float64]) error {
	for _, v := range vs {
		if err := v.ready(); err != nil {
			return err
		}
	}
	n := vs[0].length
	for _, v := range vs[1:] {
		if v.length != n {
			return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, v.length)
		}
	}
	return nil
}
