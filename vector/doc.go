// Package vector provides Vector, a generic growable sequence backed by one
// contiguous slice. Appends are amortized O(1): when the vector is full its
// capacity is multiplied by a growth factor (2 by default) and the stored
// elements are copied into the new block. Indexed access is O(1) and bounds
// checked against the logical length, so the unused tail of the backing
// slice is never observable.
//
// A Vector has an explicit lifecycle. The zero value is uninitialized; Init
// (or New) allocates the initial block, Release drops it. Only Init is valid
// on a released vector.
//
// Vectors are not safe for concurrent use. A vector that is shared between
// goroutines needs external synchronization.
//
// For float64 vectors the package also exposes element-wise kernels (Mul,
// MulInPlace, Magnitude, Power) that dispatch to SIMD implementations.
package vector
