package fixedmap

import (
	"fmt"

	"github.com/phrzdgal/data-struct-library/internal/buf"
)

// Bucket state flag values. A never-used bucket terminates probe sequences;
// a tombstone keeps them alive so entries inserted past a removed collision
// stay reachable.
const (
	flagEmpty     = 0
	flagOccupied  = 1
	flagTombstone = 2
)

// layout describes the fixed byte layout of one bucket, computed once at
// init from the declared sizes rather than from any struct padding rules.
// A bucket is: key field (keyLen bytes, NUL-terminated), value field
// (valueSize bytes), then a 1-byte state flag.
type layout struct {
	keyLen int // key field width; stored keys use at most keyLen-1 bytes
	valOff int // == keyLen
	valEnd int // == keyLen + valueSize
	stride int // == keyLen + valueSize + 1; valEnd doubles as the flag offset
}

// Map is a bounded string-keyed map with fixed-size values over a
// caller-owned region, resolved via linear-probing open addressing.
//
// Map instances are not thread-safe. Callers must synchronize access
// externally.
type Map struct {
	region  []byte // exactly buckets*stride bytes of the caller's region
	buckets int
	lay     layout
	count   int // occupied buckets
}

// New binds a map to region with table_size buckets, a key field of
// maxKeyLen bytes, and valueSize-byte values. The whole table span is
// zero-filled so every bucket starts never-used. Trailing region bytes
// beyond buckets*stride are untouched slack.
//
// All three sizes must be positive and the table must fit in the region;
// the bucket count times the stride is checked with overflow-safe
// arithmetic before any byte is touched.
func New(region []byte, buckets, maxKeyLen, valueSize int) (*Map, error) {
	if buckets <= 0 || maxKeyLen <= 0 || valueSize <= 0 {
		return nil, fmt.Errorf("%w: buckets=%d maxKeyLen=%d valueSize=%d",
			ErrParams, buckets, maxKeyLen, valueSize)
	}
	lay := layout{
		keyLen: maxKeyLen,
		valOff: maxKeyLen,
		valEnd: maxKeyLen + valueSize,
		stride: maxKeyLen + valueSize + 1,
	}
	end, err := buf.CheckTableBounds(len(region), buckets, lay.stride)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegionSmall, err)
	}

	table := region[:end]
	clear(table)

	return &Map{
		region:  table,
		buckets: buckets,
		lay:     lay,
	}, nil
}

// Put inserts or updates key. The value must be exactly the declared value
// size. Re-putting an existing key overwrites its value in place without
// moving the entry. Returns ErrTableFull when a full probe pass finds
// neither the key nor a reusable bucket.
//
// Keys longer than the key field are truncated to maxKeyLen-1 bytes; the
// truncated form is what is hashed, stored, and compared, so an overlong
// key behaves identically across Put, Get, and Remove.
func (m *Map) Put(key string, value []byte) error {
	if len(value) != m.lay.valEnd-m.lay.valOff {
		return fmt.Errorf("%w: got %d, want %d", ErrValueSize,
			len(value), m.lay.valEnd-m.lay.valOff)
	}
	k := m.storedKey(key)

	// First pass duty is twofold: update in place on a key match, or
	// remember the first reusable bucket (empty or tombstone). The probe
	// must continue past tombstones before inserting, otherwise a key
	// already present further down the chain would be duplicated.
	reuse := -1
	idx := m.startBucket(k)
	for probes := 0; probes < m.buckets; probes++ {
		b := m.bucket(idx)
		switch b[m.lay.valEnd] {
		case flagOccupied:
			if m.keyEqual(b, k) {
				copy(b[m.lay.valOff:m.lay.valEnd], value)
				return nil
			}
		case flagTombstone:
			if reuse < 0 {
				reuse = idx
			}
		case flagEmpty:
			if reuse < 0 {
				reuse = idx
			}
			return m.insert(reuse, k, value)
		}
		idx++
		if idx == m.buckets {
			idx = 0
		}
	}
	if reuse < 0 {
		return ErrTableFull
	}
	return m.insert(reuse, k, value)
}

// Get returns a view of key's value field, or ok = false when the key is
// absent. The view stays valid until the key is overwritten or removed;
// callers that need the value past the next mutation must copy it.
func (m *Map) Get(key string) ([]byte, bool) {
	b := m.find(m.storedKey(key))
	if b == nil {
		return nil, false
	}
	return b[m.lay.valOff:m.lay.valEnd:m.lay.valEnd], true
}

// Contains reports whether key is present.
func (m *Map) Contains(key string) bool {
	return m.find(m.storedKey(key)) != nil
}

// Remove deletes key, returning whether it was present. The bucket becomes
// a tombstone: its flag changes but the key and value bytes stay in place,
// logically absent, so probe chains running through the bucket survive.
func (m *Map) Remove(key string) bool {
	b := m.find(m.storedKey(key))
	if b == nil {
		return false
	}
	b[m.lay.valEnd] = flagTombstone
	m.count--
	return true
}

// Len returns the number of live entries.
func (m *Map) Len() int { return m.count }

// Buckets returns the table size the map was created with.
func (m *Map) Buckets() int { return m.buckets }

// find probes for k's bucket and returns it, or nil when absent. Probing
// stops at the first never-used bucket and runs through tombstones, for at
// most a full pass over the table.
func (m *Map) find(k string) []byte {
	idx := m.startBucket(k)
	for probes := 0; probes < m.buckets; probes++ {
		b := m.bucket(idx)
		switch b[m.lay.valEnd] {
		case flagEmpty:
			return nil
		case flagOccupied:
			if m.keyEqual(b, k) {
				return b
			}
		}
		idx++
		if idx == m.buckets {
			idx = 0
		}
	}
	return nil
}

// insert writes k and value into bucket idx and marks it occupied.
func (m *Map) insert(idx int, k string, value []byte) error {
	b := m.bucket(idx)
	keyField := b[:m.lay.keyLen]
	clear(keyField)
	copy(keyField, k)
	copy(b[m.lay.valOff:m.lay.valEnd], value)
	b[m.lay.valEnd] = flagOccupied
	m.count++
	return nil
}

// storedKey truncates key to what the key field can hold alongside its
// terminating NUL.
func (m *Map) storedKey(key string) string {
	if len(key) > m.lay.keyLen-1 {
		return key[:m.lay.keyLen-1]
	}
	return key
}

// startBucket hashes k with the polynomial hash h = h*31 + c, seed 0, and
// maps it onto the table.
func (m *Map) startBucket(k string) int {
	var h uint64
	for i := 0; i < len(k); i++ {
		h = h*31 + uint64(k[i])
	}
	return int(h % uint64(m.buckets))
}

// keyEqual compares the NUL-terminated key field of bucket b against k.
// k is already truncated, so a full-field key still leaves room for the NUL.
func (m *Map) keyEqual(b []byte, k string) bool {
	return string(b[:len(k)]) == k && b[len(k)] == 0
}

func (m *Map) bucket(idx int) []byte {
	off := idx * m.lay.stride
	return m.region[off : off+m.lay.stride]
}
