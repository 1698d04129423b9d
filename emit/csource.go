// Package emit renders a compiled table set as the C source artifact the
// property-matching runtime is built from.
package emit

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/ucdtables"
)

const elemsPerLine = 16

// cTypes maps resolved kinds to the type names of the consuming C code.
var cTypes = map[ucdtables.Kind]string{
	ucdtables.Uint8:  "uschar",
	ucdtables.Uint16: "pcre_uint16",
	ucdtables.Uint32: "pcre_uint32",
	ucdtables.Int8:   "signed char",
	ucdtables.Int16:  "pcre_int16",
	ucdtables.Int32:  "pcre_int32",
}

// WriteCSource writes the complete generated source file: prologue,
// dummy tables for builds without UCP support, the record struct
// definition as a comment, the three data tables, and the block size
// guard that ties the artifact to the runtime's compile-time constant.
func WriteCSource(w io.Writer, ts *ucdtables.TableSet) error {
	b := bufio.NewWriter(w)
	writePrologue(b, ts)
	writeStruct(b, ts)
	writeRecords(b, ts)
	writeTable(b, "_pcre_ucd_stage1", ts.Stage1, ts.Stage1Kind, 0, ts.BlockSize)
	writeTable(b, "_pcre_ucd_stage2", ts.Stage2, ts.Stage2Kind, ts.BlockSize, 0)
	fmt.Fprintf(b, "#if UCD_BLOCK_SIZE != %d\n", ts.BlockSize)
	fmt.Fprintf(b, "#error Please correct UCD_BLOCK_SIZE in pcre_internal.h\n")
	fmt.Fprintf(b, "#endif\n")
	fmt.Fprintf(b, "#endif  /* SUPPORT_UCP */\n")
	return b.Flush()
}

func writePrologue(b *bufio.Writer, ts *ucdtables.TableSet) {
	fmt.Fprintf(b, "#ifdef HAVE_CONFIG_H\n#include \"config.h\"\n#endif\n\n")
	fmt.Fprintf(b, "#include \"pcre_internal.h\"\n\n")
	fmt.Fprintf(b, "/* Unicode character database. */\n")
	fmt.Fprintf(b, "/* This file was autogenerated by the ucdgen tool. */\n")
	fmt.Fprintf(b, "/* Total size: %d bytes, block size: %d. */\n\n", ts.TotalBytes, ts.BlockSize)
	fmt.Fprintf(b, "/* The tables herein are needed only when UCP support is built */\n")
	fmt.Fprintf(b, "/* into PCRE. Small dummy tables are supplied otherwise, since */\n")
	fmt.Fprintf(b, "/* some compilers barf at a totally empty module. */\n\n")
	fmt.Fprintf(b, "#ifndef SUPPORT_UCP\n")
	fmt.Fprintf(b, "const ucd_record _pcre_ucd_records[] = {{0,0,0 }};\n")
	fmt.Fprintf(b, "const uschar _pcre_ucd_stage1[] = {0};\n")
	fmt.Fprintf(b, "const pcre_uint16 _pcre_ucd_stage2[] = {0};\n")
	fmt.Fprintf(b, "#else\n\n")
}

func writeStruct(b *bufio.Writer, ts *ucdtables.TableSet) {
	fmt.Fprintf(b, "/* When recompiling tables with a new Unicode version,\n")
	fmt.Fprintf(b, "please check types in the structure definition from pcre_internal.h:\n")
	fmt.Fprintf(b, "typedef struct {\n")
	for i, f := range ts.Layout.Fields {
		fmt.Fprintf(b, "%s %s;\n", cTypes[f.Kind], fieldName(ts, i))
	}
	fmt.Fprintf(b, "} ucd_record; */\n\n")
}

func fieldName(ts *ucdtables.TableSet, i int) string {
	if i < len(ts.FieldNames) && ts.FieldNames[i] != "" {
		return ts.FieldNames[i]
	}
	return fmt.Sprintf("property_%d", i)
}

func writeRecords(b *bufio.Writer, ts *ucdtables.TableSet) {
	fmt.Fprintf(b, "const ucd_record _pcre_ucd_records[] = { /* %d bytes, record size %d */\n",
		ts.RecordBytes(), ts.Layout.Size)
	for id, record := range ts.Records {
		fmt.Fprintf(b, "  {")
		for _, v := range record {
			fmt.Fprintf(b, "%6d, ", v)
		}
		fmt.Fprintf(b, "}, /* %3d */\n", id)
	}
	fmt.Fprintf(b, "};\n\n")
}

// writeTable prints one data table. A stage-2 table passes its block
// size so rows are grouped per block; a stage-1 table passes the stride
// of one entry in code points so each row gets a U+XXXX comment.
func writeTable(b *bufio.Writer, name string, table []int, kind ucdtables.Kind, blockSize, stride int) {
	fmt.Fprintf(b, "const %s %s[] = { /* %d bytes", cTypes[kind], name, kind.Size()*len(table))
	if blockSize > 0 {
		fmt.Fprintf(b, ", block = %d", blockSize)
	}
	fmt.Fprintf(b, " */\n")
	if blockSize > 0 {
		for i := 0; i < len(table); i += blockSize {
			fmt.Fprintf(b, "/* block %d */\n", i/blockSize)
			writeRows(b, table[i:i+blockSize], "")
		}
	} else {
		for i := 0; i < len(table); i += elemsPerLine {
			row := table[i:min(i+elemsPerLine, len(table))]
			writeRows(b, row, fmt.Sprintf(" /* U+%04X */", i*stride))
		}
	}
	fmt.Fprintf(b, "};\n\n")
}

func writeRows(b *bufio.Writer, values []int, comment string) {
	for i := 0; i < len(values); i += elemsPerLine {
		for _, v := range values[i:min(i+elemsPerLine, len(values))] {
			fmt.Fprintf(b, "%3d,", v)
		}
		fmt.Fprintf(b, "%s\n", comment)
	}
}
