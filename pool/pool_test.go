package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T, regionSize, blockSize int) *Pool {
	t.Helper()
	p, err := New(make([]byte, regionSize), blockSize)
	require.NoError(t, err)
	return p
}

func TestPool_New(t *testing.T) {
	p := newTestPool(t, 200, 32)
	assert.Equal(t, 32, p.BlockSize())
	assert.Equal(t, 6, p.NumBlocks(), "200/32 = 6 whole blocks, 8 bytes slack")
	assert.Equal(t, 6, p.FreeBlocks())
}

func TestPool_NewRejectsSmallBlockSize(t *testing.T) {
	_, err := New(make([]byte, 256), LinkSize-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBlockSize)

	// Exactly the link width is the smallest legal block.
	p, err := New(make([]byte, 256), LinkSize)
	require.NoError(t, err)
	assert.Equal(t, 32, p.NumBlocks())
}

func TestPool_NewRejectsTinyRegion(t *testing.T) {
	_, err := New(make([]byte, 31), 32)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegionSmall)

	_, err = New(nil, 32)
	assert.ErrorIs(t, err, ErrRegionSmall)
}

// TestPool_LIFOReuse is the original harness scenario: a 200-byte pool of
// 32-byte blocks must hand a freed block straight back on the next alloc.
func TestPool_LIFOReuse(t *testing.T) {
	p := newTestPool(t, 200, 32)

	ref1, block1, err := p.Alloc()
	require.NoError(t, err)
	require.Len(t, block1, 32)

	ref2, _, err := p.Alloc()
	require.NoError(t, err)
	assert.NotEqual(t, ref1, ref2)

	require.NoError(t, p.Free(ref1))

	ref3, block3, err := p.Alloc()
	require.NoError(t, err)
	assert.Equal(t, ref1, ref3, "most recently freed block is reused first")
	assert.Same(t, &block1[0], &block3[0])
}

func TestPool_InitialChainOrder(t *testing.T) {
	p := newTestPool(t, 128, 32)

	// Fresh pool hands out blocks in region order, starting at block 0.
	for i := 0; i < 4; i++ {
		ref, _, err := p.Alloc()
		require.NoError(t, err)
		assert.Equal(t, BlockRef(i*32), ref, "alloc %d", i)
	}
}

func TestPool_Exhaustion(t *testing.T) {
	p := newTestPool(t, 96, 32)

	refs := make([]BlockRef, 0, 3)
	for j := 0; j < 3; j++ {
		ref, _, err := p.Alloc()
		require.NoError(t, err)
		refs = append(refs, ref)
	}
	assert.Equal(t, 0, p.FreeBlocks())

	_, _, err := p.Alloc()
	require.ErrorIs(t, err, ErrExhausted)

	// Freeing one block makes exactly one alloc succeed again.
	require.NoError(t, p.Free(refs[1]))
	ref, _, err := p.Alloc()
	require.NoError(t, err)
	assert.Equal(t, refs[1], ref)
	_, _, err = p.Alloc()
	assert.ErrorIs(t, err, ErrExhausted)
}

// TestPool_FullCycle allocates every block, frees them all, and allocates
// them all again. Every block must be handed out exactly once per pass.
func TestPool_FullCycle(t *testing.T) {
	const blocks = 8
	p := newTestPool(t, blocks*16, 16)

	seen := make(map[BlockRef]bool)
	refs := make([]BlockRef, 0, blocks)
	for j := 0; j < blocks; j++ {
		ref, _, err := p.Alloc()
		require.NoError(t, err)
		require.False(t, seen[ref], "block %d handed out twice", ref)
		seen[ref] = true
		refs = append(refs, ref)
	}

	for _, ref := range refs {
		require.NoError(t, p.Free(ref))
	}
	assert.Equal(t, blocks, p.FreeBlocks())

	seen = make(map[BlockRef]bool)
	for j := 0; j < blocks; j++ {
		ref, _, err := p.Alloc()
		require.NoError(t, err)
		require.False(t, seen[ref], "block %d handed out twice after refill", ref)
		seen[ref] = true
	}
	_, _, err := p.Alloc()
	assert.ErrorIs(t, err, ErrExhausted)
}

// TestPool_PayloadOverwritesLink writes over the entire block, including the
// bytes that held the chain link, then frees and re-allocates. The chain
// must survive because the link is rewritten on Free.
func TestPool_PayloadOverwritesLink(t *testing.T) {
	p := newTestPool(t, 128, 32)

	ref, block, err := p.Alloc()
	require.NoError(t, err)
	for i := range block {
		block[i] = 0xFF
	}

	require.NoError(t, p.Free(ref))

	ref2, _, err := p.Alloc()
	require.NoError(t, err)
	assert.Equal(t, ref, ref2)

	// Remaining blocks are still reachable through the chain.
	for j := 0; j < p.NumBlocks()-1; j++ {
		_, _, err := p.Alloc()
		require.NoError(t, err)
	}
}

func TestPool_FreeBadRef(t *testing.T) {
	p := newTestPool(t, 128, 32)
	_, _, err := p.Alloc()
	require.NoError(t, err)

	assert.ErrorIs(t, p.Free(BlockRef(-32)), ErrBadRef)
	assert.ErrorIs(t, p.Free(BlockRef(128)), ErrBadRef, "offset past last block")
	assert.ErrorIs(t, p.Free(BlockRef(5)), ErrBadRef, "unaligned offset")
	assert.Equal(t, 3, p.FreeBlocks(), "rejected frees must not touch the chain")
}

func TestPool_SingleBlock(t *testing.T) {
	p := newTestPool(t, 8, 8)
	require.Equal(t, 1, p.NumBlocks())

	ref, block, err := p.Alloc()
	require.NoError(t, err)
	require.Len(t, block, 8)

	_, _, err = p.Alloc()
	require.ErrorIs(t, err, ErrExhausted)

	require.NoError(t, p.Free(ref))
	ref2, _, err := p.Alloc()
	require.NoError(t, err)
	assert.Equal(t, ref, ref2)
}
