package cache

// node is an intrusive doubly linked list element owned by the cache.
// The entry carries its own links, so the key index can unlink or promote it
// in O(1) without round-tripping through container/list element values.
type node[K comparable, V any] struct {
	key K
	val V

	prev *node[K, V]
	next *node[K, V]
}

// ring is a sentinel-rooted doubly linked list of nodes.
// root.next is the most recently used entry, root.prev the least.
type ring[K comparable, V any] struct {
	root node[K, V]
	len  int
}

func (r *ring[K, V]) init() {
	r.root.prev = &r.root
	r.root.next = &r.root
	r.len = 0
}

func (r *ring[K, V]) pushFront(n *node[K, V]) {
	n.prev = &r.root
	n.next = r.root.next
	n.prev.next = n
	n.next.prev = n
	r.len++
}

func (r *ring[K, V]) remove(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	r.len--
}

func (r *ring[K, V]) moveToFront(n *node[K, V]) {
	if r.root.next == n {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = &r.root
	n.next = r.root.next
	n.prev.next = n
	n.next.prev = n
}

// back returns the least recently used node, or nil when the ring is empty.
func (r *ring[K, V]) back() *node[K, V] {
	if r.len == 0 {
		return nil
	}
	return r.root.prev
}

// front returns the most recently used node, or nil when the ring is empty.
func (r *ring[K, V]) front() *node[K, V] {
	if r.len == 0 {
		return nil
	}
	return r.root.next
}
