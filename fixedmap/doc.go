// Package fixedmap implements a bounded string-keyed map with fixed-size
// values over a caller-owned region.
//
// # Overview
//
// The table is a fixed number of equal-stride buckets laid out back to back
// in the caller's byte region: key field, value field, then a 1-byte state
// flag. The layout is computed once at New from the declared sizes, so the
// same region is interpreted identically on every platform. Nothing is
// allocated after initialization.
//
// Collisions are resolved by linear probing: a key's bucket is its
// polynomial hash (h = h*31 + c) modulo the table size, and lookups walk
// forward from there, wrapping, until they hit the key or a never-used
// bucket. Operations are O(1) expected and bounded by the table size in the
// worst case.
//
// # Deletion
//
// Remove marks the bucket as a tombstone instead of clearing it outright.
// Probes run through tombstones, so keys that were inserted past a
// colliding, later-removed entry remain reachable; Put reclaims tombstones
// once it has confirmed the key is not already present further down the
// chain. Clearing the flag outright would break those probe chains and make
// colliding keys silently unfindable after an unrelated removal.
//
// # Keys and values
//
// Keys are stored NUL-terminated in a fixed field, so at most maxKeyLen-1
// bytes of a key are significant; longer keys are truncated uniformly
// before hashing, storing, and comparing. Values must be exactly the
// declared value size. Get returns a view into the bucket, valid until the
// key is overwritten or removed.
//
// # Thread Safety
//
// Map instances are not thread-safe. Callers must synchronize access
// externally.
package fixedmap
