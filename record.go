package ucdtables

import "encoding/binary"

// Combine zips N parallel dense arrays into per-codepoint records and
// deduplicates them.
//
// The returned index has one entry per code point holding the id of that
// code point's record; records holds each unique N-tuple exactly once.
// Ids are dense in [0, len(records)) and assigned in first-seen order
// while walking code points in increasing order, which makes the
// numbering reproducible for identical inputs.
func Combine(columns ...[]int) (index []int, records [][]int) {
	assert(len(columns) > 0, "Combine requires at least one column")
	length := len(columns[0])
	for _, col := range columns[1:] {
		assert(len(col) == length, "Combine requires columns of equal length")
	}
	seen := make(map[string]int)
	index = make([]int, length)
	key := make([]byte, 0, len(columns)*binary.MaxVarintLen64)
	for cp := 0; cp < length; cp++ {
		key = key[:0]
		for _, col := range columns {
			key = binary.AppendVarint(key, int64(col[cp]))
		}
		id, ok := seen[string(key)]
		if !ok {
			id = len(records)
			seen[string(key)] = id
			record := make([]int, len(columns))
			for d, col := range columns {
				record[d] = col[cp]
			}
			records = append(records, record)
		}
		index[cp] = id
	}
	return index, records
}
