package ucdtables

import "fmt"

// MaxCodepoint is one past the highest Unicode code point.
const MaxCodepoint = 0x110000

// Config carries the static parameters of one compilation pass.
type Config struct {
	// MaxCodepoint is the size of the dense codepoint domain. It must be
	// a multiple of every candidate block size.
	MaxCodepoint int

	// BlockSizes are the candidate block sizes tried by the optimizer,
	// in preference order for ties.
	BlockSizes []int

	// ExpectedBlockSize, when non-zero, is the block size the consuming
	// runtime was compiled with. Selecting any other size fails the
	// pass, since the runtime's lookup macro hard-codes it.
	ExpectedBlockSize int
}

// DefaultConfig returns the configuration for the full Unicode domain
// with candidate block sizes 32..512.
func DefaultConfig() Config {
	return Config{
		MaxCodepoint:      MaxCodepoint,
		BlockSizes:        []int{32, 64, 128, 256, 512},
		ExpectedBlockSize: 128,
	}
}

// BlockSizeMismatchError reports that the optimal block size differs
// from the one the consuming runtime expects.
type BlockSizeMismatchError struct {
	Chosen, Expected int
}

func (e *BlockSizeMismatchError) Error() string {
	return fmt.Sprintf("optimal block size %d does not match the expected block size %d; "+
		"the consuming runtime must be updated", e.Chosen, e.Expected)
}

// TableSet is the complete compiled output of one pass.
type TableSet struct {
	FieldNames []string // one per record field, from the column names
	Records    [][]int  // unique property records, in id order
	Layout     RecordLayout

	BlockSize  int
	Stage1     []int
	Stage2     []int
	Stage1Kind Kind
	Stage2Kind Kind

	TotalBytes int
}

// RecordBytes returns the encoded size of the record table.
func (ts *TableSet) RecordBytes() int {
	return len(ts.Records) * ts.Layout.Size
}

// Lookup resolves a code point to its record id through the two-stage
// index, the way the consuming runtime does.
func (ts *TableSet) Lookup(cp rune) int {
	b := ts.BlockSize
	return ts.Stage2[ts.Stage1[int(cp)/b]*b+int(cp)%b]
}

// Compile runs the whole pipeline: expand each column into a dense
// full-domain array, combine the arrays into deduplicated records, plan
// the packed record layout, and block-compress the record index at the
// best candidate block size.
func Compile(cfg Config, columns []Column) (*TableSet, error) {
	assert(len(columns) > 0, "Compile requires at least one column")
	dense := make([][]int, len(columns))
	names := make([]string, len(columns))
	for i, col := range columns {
		table, err := BuildDense(cfg.MaxCodepoint, col.Default, col.Reader)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col.Name, err)
		}
		dense[i] = table
		names[i] = col.Name
	}
	index, records := Combine(dense...)
	layout, err := PlanRecordLayout(records)
	if err != nil {
		return nil, fmt.Errorf("record layout: %w", err)
	}
	recordBytes := len(records) * layout.Size
	best, err := OptimizeBlockSize(index, recordBytes, cfg.BlockSizes)
	if err != nil {
		return nil, err
	}
	ts := &TableSet{
		FieldNames: names,
		Records:    records,
		Layout:     layout,
		BlockSize:  best.BlockSize,
		Stage1:     best.Stage1,
		Stage2:     best.Stage2,
		Stage1Kind: best.Stage1Kind,
		Stage2Kind: best.Stage2Kind,
		TotalBytes: best.TotalBytes,
	}
	tracer().Infof("compiled %d records (%d bytes each), block size %d, total %d bytes",
		len(records), layout.Size, ts.BlockSize, ts.TotalBytes)
	if cfg.ExpectedBlockSize != 0 && ts.BlockSize != cfg.ExpectedBlockSize {
		return nil, &BlockSizeMismatchError{Chosen: ts.BlockSize, Expected: cfg.ExpectedBlockSize}
	}
	return ts, nil
}
