package vector

import (
	"fmt"
	"math"
)

// State is the lifecycle stage of a Vector.
type State int

const (
	// StateUninitialized is the zero value; only Init is valid.
	StateUninitialized State = iota
	// StateReady means storage is allocated and all operations are valid.
	StateReady
	// StateReleased means storage was dropped by Release; only Init is valid.
	StateReleased
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateReleased:
		return "released"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Vector is a growable sequence of T stored in one contiguous slice.
//
// The zero value is uninitialized; call Init (or use New) before appending.
// Growth replaces the backing slice, so element addresses are not stable
// across Append. Indices are.
//
// A Vector must not be used by multiple goroutines without external locking.
type Vector[T any] struct {
	// slots is the backing block; len(slots) is the capacity.
	slots  []T
	length int
	cfg    Config
	state  State
}

// New returns a ready vector configured by opts.
func New[T any](opts ...Option) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.Init(opts...); err != nil {
		return nil, err
	}
	return v, nil
}

// Init allocates the initial block and empties the vector. It is valid in
// every state and is the only way to reuse a released vector.
func (v *Vector[T]) Init(opts ...Option) error {
	cfg := ApplyOptions(opts...)
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("%w: initial capacity %d exceeds max %d",
			err, cfg.InitialCapacity, cfg.MaxCapacity)
	}

	slots, err := allocate[T](cfg.InitialCapacity)
	if err != nil {
		return err
	}

	v.slots = slots
	v.length = 0
	v.cfg = cfg
	v.state = StateReady
	return nil
}

// State reports the lifecycle stage. A nil vector is uninitialized.
func (v *Vector[T]) State() State {
	if v == nil {
		return StateUninitialized
	}
	return v.state
}

// Len returns the number of stored elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.slots)
}

// Append stores elem at index Len(), growing the backing block first if it
// is full. On error the vector is unchanged.
func (v *Vector[T]) Append(elem T) error {
	if err := v.GrowIfFull(); err != nil {
		return err
	}
	v.slots[v.length] = elem
	v.length++
	return nil
}

// GrowIfFull multiplies the capacity by the growth factor when Len() == Cap()
// and copies the stored elements into the new block. A zero capacity grows
// to one slot. It does nothing when a free slot remains.
func (v *Vector[T]) GrowIfFull() error {
	if err := v.ready(); err != nil {
		return err
	}
	if v.length < len(v.slots) {
		return nil
	}

	next, err := v.nextCapacity()
	if err != nil {
		return err
	}
	slots, err := allocate[T](next)
	if err != nil {
		return err
	}
	copy(slots, v.slots[:v.length])
	v.slots = slots
	return nil
}

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	var zero T
	if err := v.ready(); err != nil {
		return zero, err
	}
	if err := v.checkIndex(i); err != nil {
		return zero, err
	}
	return v.slots[i], nil
}

// Set overwrites the element at index i. Len() is unchanged; indices at or
// beyond Len() are rejected even when they fall inside the capacity.
func (v *Vector[T]) Set(i int, elem T) error {
	if err := v.ready(); err != nil {
		return err
	}
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.slots[i] = elem
	return nil
}

// Release drops the backing block. The vector keeps no reference to the
// stored elements afterwards and must be re-initialized before further use.
// Releasing a vector that is not ready is a no-op.
func (v *Vector[T]) Release() {
	if v == nil || v.state != StateReady {
		return
	}
	clear(v.slots[:v.length])
	v.slots = nil
	v.length = 0
	v.state = StateReleased
}

// reset empties a ready vector while keeping its block. Pool uses it.
func (v *Vector[T]) reset() {
	clear(v.slots[:v.length])
	v.length = 0
}

func (v *Vector[T]) ready() error {
	if v == nil {
		return fmt.Errorf("%w (nil vector)", ErrNotReady)
	}
	if v.state != StateReady {
		return fmt.Errorf("%w (state %s)", ErrNotReady, v.state)
	}
	return nil
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.length {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, v.length)
	}
	return nil
}

func (v *Vector[T]) nextCapacity() (int, error) {
	capacity := len(v.slots)
	next := 1
	if capacity > 0 {
		if capacity > math.MaxInt/v.cfg.GrowthFactor {
			return 0, fmt.Errorf("%w: capacity %d overflows on growth", ErrAllocation, capacity)
		}
		next = capacity * v.cfg.GrowthFactor
	}
	if v.cfg.MaxCapacity > 0 && next > v.cfg.MaxCapacity {
		return 0, fmt.Errorf("%w: capacity %d exceeds max %d", ErrAllocation, next, v.cfg.MaxCapacity)
	}
	return next, nil
}

// allocate converts the runtime's makeslice panic for impossible sizes into
// ErrAllocation. Genuine memory exhaustion still aborts the process.
func allocate[T any](n int) (slots []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			slots = nil
			err = fmt.Errorf("%w: %d slots: %v", ErrAllocation, n, r)
		}
	}()
	return make([]T, n), nil
}
