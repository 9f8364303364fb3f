package pool

import (
	"fmt"
	"os"

	"github.com/phrzdgal/data-struct-library/internal/buf"
)

// Runtime debug flag for pool tracing - controlled by FIXED_LOG_POOL env var.
var logPool = os.Getenv("FIXED_LOG_POOL") != ""

const (
	// LinkSize is the width of the next-block link embedded in each free
	// block: a little-endian uint64 byte offset. BlockSize must be at least
	// this large so a free block can hold its own chain link.
	LinkSize = 8

	// nilLink terminates the free chain. Block offsets are region-relative
	// and always < len(region), so all ones can never be a valid link.
	nilLink = ^uint64(0)

	// headNone marks an empty chain in the pool metadata.
	headNone = -1
)

// BlockRef is an opaque reference to a pool block, valid for the pool that
// issued it until passed back to Free. Internally it is the block's byte
// offset within the backing region.
type BlockRef int

// Pool hands out fixed-size blocks from a caller-owned region in O(1).
// Free blocks are kept on an intrusive singly linked chain: the first
// LinkSize bytes of each free block hold the offset of the next free block.
// While a block is handed out those same bytes are plain payload and the
// caller may overwrite them freely; the link is only meaningful while the
// block is on the chain.
//
// Pool instances are not thread-safe. Callers must synchronize access
// externally.
type Pool struct {
	region     []byte
	blockSize  int
	numBlocks  int
	head       int // offset of first free block, or headNone
	freeBlocks int
}

// New binds a pool to region and links every block into the free chain,
// head first. numBlocks = len(region)/blockSize; trailing bytes that do not
// fill a whole block are unused slack.
//
// blockSize must be at least LinkSize (so free blocks can carry their chain
// link) and the region must hold at least one block; otherwise New rejects
// the configuration instead of producing an allocator that would corrupt
// its own region.
func New(region []byte, blockSize int) (*Pool, error) {
	if blockSize < LinkSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrBlockSize, blockSize, LinkSize)
	}
	numBlocks := len(region) / blockSize
	if numBlocks < 1 {
		return nil, fmt.Errorf("%w: %d bytes, block size %d", ErrRegionSmall, len(region), blockSize)
	}

	p := &Pool{
		region:     region,
		blockSize:  blockSize,
		numBlocks:  numBlocks,
		head:       0,
		freeBlocks: numBlocks,
	}

	// Chain block i to block i+1; the last block terminates the chain.
	for i := 0; i < numBlocks-1; i++ {
		buf.PutU64LE(region[i*blockSize:], uint64((i+1)*blockSize))
	}
	buf.PutU64LE(region[(numBlocks-1)*blockSize:], nilLink)

	if logPool {
		fmt.Fprintf(os.Stderr, "[POOL] init: %d blocks x %d bytes (%d slack)\n",
			numBlocks, blockSize, len(region)-numBlocks*blockSize)
	}
	return p, nil
}

// Alloc pops the head of the free chain and returns its reference together
// with a view of the block's BlockSize bytes. Returns ErrExhausted when no
// block is free. The returned bytes are not zeroed; the first LinkSize bytes
// still hold the stale chain link.
func (p *Pool) Alloc() (BlockRef, []byte, error) {
	if p.head == headNone {
		if logPool {
			fmt.Fprintf(os.Stderr, "[POOL] alloc: exhausted (%d blocks out)\n", p.numBlocks)
		}
		return 0, nil, ErrExhausted
	}

	off := p.head
	next := buf.U64LE(p.region[off:])
	if next == nilLink {
		p.head = headNone
	} else {
		p.head = int(next)
	}
	p.freeBlocks--

	block := p.region[off : off+p.blockSize : off+p.blockSize]
	return BlockRef(off), block, nil
}

// Free pushes the block back onto the front of the chain. Returns ErrBadRef
// when ref is out of range or not aligned to a block boundary.
//
// The caller must pass a reference obtained from Alloc on this pool and must
// not free it twice: a double-free links the block to itself or makes it
// reachable from two chain positions, after which two Alloc calls would hand
// out the same live block. The pool does not track handed-out blocks, so
// this precondition is a trust contract, not runtime-checked.
func (p *Pool) Free(ref BlockRef) error {
	off := int(ref)
	if off < 0 || off >= p.numBlocks*p.blockSize || off%p.blockSize != 0 {
		return fmt.Errorf("%w: %d", ErrBadRef, off)
	}

	if p.head == headNone {
		buf.PutU64LE(p.region[off:], nilLink)
	} else {
		buf.PutU64LE(p.region[off:], uint64(p.head))
	}
	p.head = off
	p.freeBlocks++
	return nil
}

// BlockSize returns the size of each block in bytes.
func (p *Pool) BlockSize() int { return p.blockSize }

// NumBlocks returns the total number of blocks managed by the pool.
func (p *Pool) NumBlocks() int { return p.numBlocks }

// FreeBlocks returns the number of blocks currently on the free chain.
func (p *Pool) FreeBlocks() int { return p.freeBlocks }
