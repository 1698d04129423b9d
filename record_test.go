package ucdtables

import (
	"reflect"
	"testing"
)

func TestCombineDeduplicates(t *testing.T) {
	a := []int{5, 5, 5, 7}
	b := []int{1, 1, 2, 1}
	index, records := Combine(a, b)
	wantIndex := []int{0, 0, 1, 2}
	wantRecords := [][]int{{5, 1}, {5, 2}, {7, 1}}
	if !reflect.DeepEqual(index, wantIndex) {
		t.Errorf("index = %v, want %v", index, wantIndex)
	}
	if !reflect.DeepEqual(records, wantRecords) {
		t.Errorf("records = %v, want %v", records, wantRecords)
	}
}

func TestCombineSingleColumn(t *testing.T) {
	index, records := Combine([]int{9, 9, 4, 9})
	if !reflect.DeepEqual(index, []int{0, 0, 1, 0}) {
		t.Errorf("unexpected index %v", index)
	}
	if !reflect.DeepEqual(records, [][]int{{9}, {4}}) {
		t.Errorf("unexpected records %v", records)
	}
}

// Equal tuples share an id and distinct ids differ in at least one field.
func TestCombineSoundness(t *testing.T) {
	const n = 512
	a := make([]int, n)
	b := make([]int, n)
	c := make([]int, n)
	for i := range a {
		a[i] = i % 7
		b[i] = (i * i) % 5
		c[i] = -(i % 3)
	}
	index, records := Combine(a, b, c)
	if len(index) != n {
		t.Fatalf("index length %d, want %d", len(index), n)
	}
	for cp, id := range index {
		record := records[id]
		if record[0] != a[cp] || record[1] != b[cp] || record[2] != c[cp] {
			t.Fatalf("code point %d resolves to record %v, want (%d,%d,%d)",
				cp, record, a[cp], b[cp], c[cp])
		}
	}
	seen := make(map[[3]int]int)
	for id, record := range records {
		key := [3]int{record[0], record[1], record[2]}
		if prev, dup := seen[key]; dup {
			t.Fatalf("records %d and %d hold the same tuple %v", prev, id, record)
		}
		seen[key] = id
	}
}

// Negative and positive values must not collide in the interning key.
func TestCombineSignedValues(t *testing.T) {
	index, records := Combine([]int{-32, 32, -32})
	if !reflect.DeepEqual(index, []int{0, 1, 0}) {
		t.Errorf("unexpected index %v", index)
	}
	if !reflect.DeepEqual(records, [][]int{{-32}, {32}}) {
		t.Errorf("unexpected records %v", records)
	}
}
