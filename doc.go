/*
Package ucdtables compiles Unicode character properties into compact
two-stage lookup tables.

The package takes per-codepoint property assignments (script, general
category, case offset) and digests them into the table format consumed by
a regex engine's character-property matcher: a table of unique property
records, plus a two-stage index that maps any code point to its record
with two array reads and no branches.

Compilation is a single batch pass. Each property source is expanded into
a dense full-domain array, the arrays are zipped into deduplicated
records, and the per-codepoint record index is block-compressed at the
block size that minimizes the total encoded byte size. Parsing of the
Unicode data files lives in package ucd; rendering of the generated
source artifact lives in package emit.

Conceptually this follows Peter Kankowski's multistage table construction
as used by PCRE: many code points share one record, and many fixed-size
blocks of the record index share one content, so both levels deduplicate
well.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package ucdtables

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ucdtables'
func tracer() tracing.Trace {
	return tracing.Select("ucdtables")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
