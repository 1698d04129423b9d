package ucdtables

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Compressed is the outcome of block-compressing a record index at one
// block size, together with the resolved storage widths.
type Compressed struct {
	BlockSize  int
	Stage1     []int
	Stage2     []int
	Stage1Kind Kind
	Stage2Kind Kind
	TotalBytes int // record table + stage1 + stage2
}

func compressAt(table []int, blockSize int, recordBytes int) (*Compressed, error) {
	stage1, stage2 := CompressBlocks(table, blockSize)
	k1, err := ResolveKind(stage1)
	if err != nil {
		return nil, fmt.Errorf("stage1 at block size %d: %w", blockSize, err)
	}
	k2, err := ResolveKind(stage2)
	if err != nil {
		return nil, fmt.Errorf("stage2 at block size %d: %w", blockSize, err)
	}
	return &Compressed{
		BlockSize:  blockSize,
		Stage1:     stage1,
		Stage2:     stage2,
		Stage1Kind: k1,
		Stage2Kind: k2,
		TotalBytes: recordBytes + k1.Size()*len(stage1) + k2.Size()*len(stage2),
	}, nil
}

// OptimizeBlockSize compresses table at every candidate block size and
// returns the result with the smallest total encoded size. recordBytes
// is the encoded size of the record table, a constant added to every
// candidate's total.
//
// A tie goes to the earlier candidate. Candidates are evaluated
// concurrently; each works on its own state, and the winner is picked
// afterwards in candidate order, so the result is identical to a serial
// sweep.
func OptimizeBlockSize(table []int, recordBytes int, candidates []int) (*Compressed, error) {
	assert(len(candidates) > 0, "OptimizeBlockSize requires at least one candidate block size")
	results := make([]*Compressed, len(candidates))
	var g errgroup.Group
	for i, blockSize := range candidates {
		i, blockSize := i, blockSize // per-iteration copies for pre-1.22 loop semantics
		g.Go(func() error {
			c, err := compressAt(table, blockSize, recordBytes)
			if err != nil {
				return err
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	best := results[0]
	for _, c := range results {
		tracer().Debugf("block size %4d => %6d bytes", c.BlockSize, c.TotalBytes)
		if c.TotalBytes < best.TotalBytes {
			best = c
		}
	}
	return best, nil
}
