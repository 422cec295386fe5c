// Package cache implements a fixed-capacity, least-recently-used key–value cache.
//
// Goals for this package:
//   - Make the core data structures explicit (hash index + intrusive recency ring)
//   - Provide O(1) Put/Get/Exists/Remove via map index + ring pointers
//   - Evict exactly the least recently touched entry on overflow
//   - Give callers one extension point: an eviction func fired once per evicted
//     entry, synchronously inside the Put that overflowed
//
// The cache is deliberately single-threaded. Callers that share an instance
// across goroutines must serialize every call with their own lock.
package cache
