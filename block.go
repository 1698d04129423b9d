package ucdtables

import "encoding/binary"

// CompressBlocks splits table into contiguous blocks of blockSize
// elements and deduplicates identical blocks into a two-stage structure.
//
// stage1 holds, per block of the input, the offset (in block units) of
// that block's content within stage2; stage2 is the concatenation of the
// unique block contents in first-allocation order. For any index i,
//
//	table[i] == stage2[stage1[i/blockSize]*blockSize + i%blockSize]
//
// len(table) must be an exact multiple of blockSize.
func CompressBlocks(table []int, blockSize int) (stage1, stage2 []int) {
	assert(blockSize > 0 && len(table)%blockSize == 0,
		"CompressBlocks requires the table length to be a multiple of the block size")
	offsets := make(map[string]int)
	stage1 = make([]int, 0, len(table)/blockSize)
	key := make([]byte, 0, blockSize*binary.MaxVarintLen64)
	for i := 0; i < len(table); i += blockSize {
		block := table[i : i+blockSize]
		key = key[:0]
		for _, v := range block {
			key = binary.AppendVarint(key, int64(v))
		}
		offset, ok := offsets[string(key)]
		if !ok {
			offset = len(stage2) / blockSize
			offsets[string(key)] = offset
			stage2 = append(stage2, block...)
		}
		stage1 = append(stage1, offset)
	}
	return stage1, stage2
}
