package ucdtables

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testColumns() []Column {
	return []Column{
		{Name: "script", Default: 9, Reader: NewSliceReader([]Assignment{
			{Lo: 0, Hi: 7, Value: 33},
			{Lo: 16, Hi: 23, Value: 12},
		})},
		{Name: "chartype", Default: 2, Reader: NewSliceReader([]Assignment{
			{Lo: 0, Hi: 3, Value: 5},
			{Lo: 4, Hi: 7, Value: 9},
			{Lo: 16, Hi: 23, Value: 5},
		})},
		{Name: "othercase", Default: 0, Reader: NewSliceReader([]Assignment{
			{Lo: 0, Hi: 3, Value: -32},
			{Lo: 4, Hi: 7, Value: 32},
		})},
	}
}

func testConfig() Config {
	return Config{MaxCodepoint: 32, BlockSizes: []int{2, 4, 8}}
}

func TestCompileRoundTrip(t *testing.T) {
	tables, err := Compile(testConfig(), testColumns())
	require.NoError(t, err)

	expect := func(cp rune, script, chartype, othercase int) {
		record := tables.Records[tables.Lookup(cp)]
		require.Equal(t, []int{script, chartype, othercase}, record, "code point %d", cp)
	}
	for cp := rune(0); cp < 4; cp++ {
		expect(cp, 33, 5, -32)
	}
	for cp := rune(4); cp < 8; cp++ {
		expect(cp, 33, 9, 32)
	}
	for cp := rune(8); cp < 16; cp++ {
		expect(cp, 9, 2, 0) // untouched code points hold the defaults
	}
	for cp := rune(16); cp < 24; cp++ {
		expect(cp, 12, 5, 0)
	}
}

func TestCompileRecordLayout(t *testing.T) {
	tables, err := Compile(testConfig(), testColumns())
	require.NoError(t, err)
	require.Equal(t, []string{"script", "chartype", "othercase"}, tables.FieldNames)
	require.Equal(t, []Kind{Uint8, Uint8, Int8}, []Kind{
		tables.Layout.Fields[0].Kind,
		tables.Layout.Fields[1].Kind,
		tables.Layout.Fields[2].Kind,
	})
	require.Equal(t, 3, tables.Layout.Size)
	require.Equal(t, len(tables.Records)*tables.Layout.Size, tables.RecordBytes())
}

func TestCompileIdempotent(t *testing.T) {
	first, err := Compile(testConfig(), testColumns())
	require.NoError(t, err)
	second, err := Compile(testConfig(), testColumns())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCompileBlockSizeContract(t *testing.T) {
	want, err := Compile(testConfig(), testColumns())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.ExpectedBlockSize = want.BlockSize
	_, err = Compile(cfg, testColumns())
	require.NoError(t, err)

	for _, blockSize := range cfg.BlockSizes {
		if blockSize == want.BlockSize {
			continue
		}
		cfg.ExpectedBlockSize = blockSize
		_, err = Compile(cfg, testColumns())
		var mismatch *BlockSizeMismatchError
		require.ErrorAs(t, err, &mismatch)
		require.Equal(t, want.BlockSize, mismatch.Chosen)
		require.Equal(t, blockSize, mismatch.Expected)
	}
}

func TestCompileWrapsColumnErrors(t *testing.T) {
	readerErr := errors.New("malformed input")
	cfg := testConfig()
	_, err := Compile(cfg, []Column{
		{Name: "script", Default: 0, Reader: &failingReader{err: readerErr}},
	})
	require.ErrorIs(t, err, readerErr)
	require.ErrorContains(t, err, "script")
}
