package vector

import "sync"

// Pool provides sync.Pool-based Vector reuse so that hot loops building
// short-lived sequences keep their grown blocks instead of reallocating.
type Pool[T any] struct {
	pool sync.Pool
	opts []Option
	cfg  Config
}

// NewPool returns a Pool whose vectors are initialized with opts.
func NewPool[T any](opts ...Option) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Vector[T]{}
			},
		},
		opts: opts,
		cfg:  ApplyOptions(opts...),
	}
}

// Get returns an empty, ready vector configured like the pool. Its capacity
// is at least the configured initial capacity and may be larger when the
// block was grown by an earlier user. Vectors put back with a different
// config are re-initialized. Callers should return it via Put when done.
func (p *Pool[T]) Get() (*Vector[T], error) {
	v := p.pool.Get().(*Vector[T])
	if p.reusable(v) {
		v.reset()
		return v, nil
	}
	if err := v.Init(p.opts...); err != nil {
		return nil, err
	}
	return v, nil
}

// Put returns a vector to the pool. Stored elements are cleared on the next
// Get. The caller must not use the vector after calling Put.
func (p *Pool[T]) Put(v *Vector[T]) {
	if v == nil {
		return
	}
	p.pool.Put(v)
}

func (p *Pool[T]) reusable(v *Vector[T]) bool {
	if v.state != StateReady || v.cfg != p.cfg {
		return false
	}
	if v.Cap() < p.cfg.InitialCapacity {
		return false
	}
	return p.cfg.MaxCapacity == 0 || v.Cap() <= p.cfg.MaxCapacity
}
