package ucdtables

import "testing"

func TestPlanRecordLayoutSizes(t *testing.T) {
	cases := []struct {
		records [][]int
		size    int
	}{
		{[][]int{{3}, {6}, {6}, {1}}, 1},
		{[][]int{{300}, {600}, {600}, {100}}, 2},
		{[][]int{{25, 3}, {6, 6}, {34, 6}, {68, 1}}, 2},
		{[][]int{{300, 3}, {6, 6}, {340, 6}, {690, 1}}, 4},
		{[][]int{{3, 300}, {6, 6}, {6, 340}, {1, 690}}, 4},
		{[][]int{{300, 300}, {6, 6}, {6, 340}, {1, 690}}, 4},
		{[][]int{{3, 100000}, {6, 6}, {6, 123456}, {1, 690}}, 8},
		{[][]int{{100000, 300}, {6, 6}, {123456, 6}, {1, 690}}, 8},
	}
	for _, c := range cases {
		layout, err := PlanRecordLayout(c.records)
		if err != nil {
			t.Fatalf("PlanRecordLayout(%v) failed: %v", c.records, err)
		}
		if layout.Size != c.size {
			t.Errorf("record size for %v = %d, want %d", c.records, layout.Size, c.size)
		}
	}
}

func TestPlanRecordLayoutFields(t *testing.T) {
	// script fits uint8, category fits uint8, case offset needs int32
	records := [][]int{
		{33, 5, -32},
		{26, 7, 0},
		{9, 2, 100000},
	}
	layout, err := PlanRecordLayout(records)
	if err != nil {
		t.Fatal(err)
	}
	wantKinds := []Kind{Uint8, Uint8, Int32}
	wantOffsets := []int{0, 1, 4}
	for f, fl := range layout.Fields {
		if fl.Kind != wantKinds[f] {
			t.Errorf("field %d kind = %s, want %s", f, fl.Kind, wantKinds[f])
		}
		if fl.Offset != wantOffsets[f] {
			t.Errorf("field %d offset = %d, want %d", f, fl.Offset, wantOffsets[f])
		}
	}
	if layout.Size != 8 {
		t.Errorf("record size = %d, want 8", layout.Size)
	}
}

func TestPlanRecordLayoutOverflow(t *testing.T) {
	_, err := PlanRecordLayout([][]int{{-1}, {4294967295}})
	if err == nil {
		t.Fatal("expected an overflow error for a column no kind covers")
	}
}
