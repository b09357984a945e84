// Package scratch provides reusable word-row buffers for packed raster code.
package scratch

import "sync"

// Pool is a thread-safe pool for reusing []uint32 scratch rows.
//
// Pool groups rows by their word length, allowing efficient reuse of
// identically-sized buffers. Error-diffusion and transform code allocates
// one or two rows per call; pooling them reduces GC pressure for
// applications that process many images of similar widths.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]uint32
	maxSize int // max rows per bucket
}

// NewPool creates a new row pool with the given maximum rows per bucket.
// maxPerBucket limits how many rows of each length are retained.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]uint32),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a zeroed row of exactly words uint32s from the pool,
// or allocates a new one. Rows of non-positive length return nil.
func (p *Pool) Get(words int) []uint32 {
	if words <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[words]

	if len(bucket) > 0 {
		row := bucket[len(bucket)-1]
		p.buckets[words] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(row)
		return row
	}
	p.mu.Unlock()

	return make([]uint32, words)
}

// Put returns a row to the pool for reuse.
// If row is nil or the pool bucket is at max capacity, the row is discarded.
func (p *Pool) Put(row []uint32) {
	if row == nil {
		return
	}

	key := len(row)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, row)
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// GetRow retrieves a zeroed row from the default pool.
func GetRow(words int) []uint32 {
	return defaultPool.Get(words)
}

// PutRow returns a row to the default pool.
func PutRow(row []uint32) {
	defaultPool.Put(row)
}
