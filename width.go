package ucdtables

import "fmt"

// Kind is a fixed-width integer representation for an output array.
//
// The order matters: ResolveKind checks kinds in declaration order and
// takes the first one whose range covers all values, so unsigned kinds
// are preferred over signed ones of the same byte size.
type Kind int

const (
	Uint8 Kind = iota
	Uint16
	Uint32
	Int8
	Int16
	Int32
)

var kindSizes = [...]int{1, 2, 4, 1, 2, 4}

var kindNames = [...]string{"uint8", "uint16", "uint32", "int8", "int16", "int32"}

var kindLimits = [...]struct{ min, max int64 }{
	{0, 255},
	{0, 65535},
	{0, 4294967295},
	{-128, 127},
	{-32768, 32767},
	{-2147483648, 2147483647},
}

// Size returns the width of the kind in bytes.
func (k Kind) Size() int { return kindSizes[k] }

func (k Kind) String() string { return kindNames[k] }

// OverflowError reports a value range no supported kind can represent.
type OverflowError struct {
	Min, Max int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("value range [%d, %d] too large for any supported integer type", e.Min, e.Max)
}

// ResolveKind finds the narrowest kind that can hold every element of
// values without loss. An empty slice resolves to Uint8.
func ResolveKind(values []int) (Kind, error) {
	minval, maxval := 0, 0
	for i, v := range values {
		if i == 0 {
			minval, maxval = v, v
			continue
		}
		if v < minval {
			minval = v
		}
		if v > maxval {
			maxval = v
		}
	}
	for k, lim := range kindLimits {
		if lim.min <= int64(minval) && int64(maxval) <= lim.max {
			return Kind(k), nil
		}
	}
	return 0, &OverflowError{Min: minval, Max: maxval}
}

// EncodedSize returns the number of bytes values occupies when stored
// with its resolved kind.
func EncodedSize(values []int) (int, error) {
	kind, err := ResolveKind(values)
	if err != nil {
		return 0, err
	}
	return kind.Size() * len(values), nil
}
