// Package tcb caches per-connection state records keyed by "host:port",
// retiring the least recently used record (and releasing its transport)
// when the table overflows.
package tcb

import (
	"io"
	"time"

	"conncache/internal/cache"
)

// TCB is a transmission control block: the per-connection state retained
// between uses of a (host, port) peer.
type TCB struct {
	Endpoint    Endpoint
	Established time.Time

	// Sequence bookkeeping for the connection.
	SendNext uint32
	RecvNext uint32

	conn io.Closer
}

// NewTCB builds a record for ep owning conn.
// conn may be nil for records that carry state only.
func NewTCB(ep Endpoint, conn io.Closer) *TCB {
	return &TCB{
		Endpoint:    ep,
		Established: time.Now(),
		conn:        conn,
	}
}

// Release tears down the record's transport. The first call closes the
// underlying connection and reports its error; later calls are no-ops, so
// eviction cleanup stays safe when a caller already released the record.
func (t *TCB) Release() error {
	if t.conn == nil {
		return nil
	}
	conn := t.conn
	t.conn = nil
	return conn.Close()
}

// Released reports whether the record's transport has been torn down.
func (t *TCB) Released() bool { return t.conn == nil }

// Table is a fixed-capacity registry of TCBs. When a new record pushes the
// table over capacity, the least recently used record is released and
// dropped. A Table is owned by whoever constructs it and, like the cache
// underneath, is not safe for concurrent use.
type Table struct {
	cache *cache.Cache[string, *TCB]
}

// NewTable constructs a table holding at most capacity records.
func NewTable(capacity int) (*Table, error) {
	c, err := cache.New(capacity, cache.WithEvictionFunc(func(_ string, t *TCB) error {
		return t.Release()
	}))
	if err != nil {
		return nil, err
	}
	return &Table{cache: c}, nil
}

// Put stores t under ep's key and returns the record it displaced, if any.
// Overwrites are not evictions: the displaced record comes back unreleased
// so the caller can decide whether to tear it down. A returned error comes
// from releasing a record evicted for capacity.
func (tbl *Table) Put(ep Endpoint, t *TCB) (prev *TCB, err error) {
	prev, _ = tbl.cache.Peek(ep.Key())
	if err := tbl.cache.Put(ep.Key(), t); err != nil {
		return prev, err
	}
	return prev, nil
}

// Get returns the record for ep, marking it most recently used.
// Absent endpoints report cache.ErrKeyNotFound.
func (tbl *Table) Get(ep Endpoint) (*TCB, error) {
	return tbl.cache.Get(ep.Key())
}

// GetByKey is Get for a pre-combined key. Malformed keys report
// ErrMalformedKey without touching the table.
func (tbl *Table) GetByKey(key string) (*TCB, error) {
	ep, err := ParseKey(key)
	if err != nil {
		return nil, err
	}
	return tbl.Get(ep)
}

// Contains reports presence without touching recency order.
func (tbl *Table) Contains(ep Endpoint) bool {
	return tbl.cache.Exists(ep.Key())
}

// Len returns the number of records held.
func (tbl *Table) Len() int { return tbl.cache.Size() }

// Keys returns the combined keys in MRU -> LRU order.
func (tbl *Table) Keys() []string { return tbl.cache.Keys() }
