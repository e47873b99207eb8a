package typecast

import (
	"bytes"
	"io"
	"reflect"
	"testing"
)

type (
	celsius float64
	animal  interface{ Sound() string }
	dog     struct{}
	cat     struct{}
	point   struct{ X, Y int }
	pair    struct{ X, Y int }
)

func (dog) Sound() string { return "woof" }

var numericTypes = []reflect.Type{
	reflect.TypeFor[int](), reflect.TypeFor[int8](), reflect.TypeFor[int16](),
	reflect.TypeFor[int32](), reflect.TypeFor[int64](), reflect.TypeFor[uint](),
	reflect.TypeFor[uint8](), reflect.TypeFor[uint16](), reflect.TypeFor[uint32](),
	reflect.TypeFor[uint64](), reflect.TypeFor[uintptr](), reflect.TypeFor[float32](),
	reflect.TypeFor[float64](),
}

func TestCanCastTo_Numeric(t *testing.T) {
	for _, from := range numericTypes {
		for _, to := range numericTypes {
			if !CanCastTo(from, to) {
				t.Errorf("CanCastTo(%s, %s) = false, want true", from, to)
			}
		}
		if CanCastTo(from, reflect.TypeFor[bool]()) || CanCastTo(reflect.TypeFor[bool](), from) {
			t.Errorf("bool and %s must not cast", from)
		}
	}
}

func TestCanCastTo(t *testing.T) {
	tests := []struct {
		name     string
		from, to reflect.Type
		want     bool
	}{
		{"identity", reflect.TypeFor[string](), reflect.TypeFor[string](), true},
		{"bool to bool", reflect.TypeFor[bool](), reflect.TypeFor[bool](), true},
		{"named to underlying", reflect.TypeFor[celsius](), reflect.TypeFor[float64](), true},
		{"underlying to named", reflect.TypeFor[float64](), reflect.TypeFor[celsius](), true},
		{"concrete to interface", reflect.TypeFor[dog](), reflect.TypeFor[animal](), true},
		{"interface to concrete", reflect.TypeFor[animal](), reflect.TypeFor[dog](), false},
		{"non-implementer to interface", reflect.TypeFor[cat](), reflect.TypeFor[animal](), false},
		{"pointer to io.Reader", reflect.TypeFor[*bytes.Buffer](), reflect.TypeFor[io.Reader](), true},
		{"identical struct layout", reflect.TypeFor[point](), reflect.TypeFor[pair](), true},
		{"unrelated structs", reflect.TypeFor[dog](), reflect.TypeFor[point](), false},
		{"string to bytes", reflect.TypeFor[string](), reflect.TypeFor[[]byte](), true},
		{"bytes to string", reflect.TypeFor[[]byte](), reflect.TypeFor[string](), true},
		{"int to string", reflect.TypeFor[int](), reflect.TypeFor[string](), false},
		{"string to int", reflect.TypeFor[string](), reflect.TypeFor[int](), false},
		{"anything to any", reflect.TypeFor[point](), reflect.TypeFor[any](), true},
		{"nil from", nil, reflect.TypeFor[int](), false},
		{"nil to", reflect.TypeFor[int](), nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanCastTo(tc.from, tc.to); got != tc.want {
				t.Errorf("CanCastTo = %v, want %v", got, tc.want)
			}
			if got := CanCastFrom(tc.to, tc.from); got != tc.want {
				t.Errorf("CanCastFrom = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanImplicitlyCast(t *testing.T) {
	tests := []struct {
		name     string
		from, to reflect.Type
		want     bool
	}{
		{"int8 to int16", reflect.TypeFor[int8](), reflect.TypeFor[int16](), true},
		{"int16 to int8", reflect.TypeFor[int16](), reflect.TypeFor[int8](), false},
		{"uint8 to int16", reflect.TypeFor[uint8](), reflect.TypeFor[int16](), true},
		{"uint8 to uint32", reflect.TypeFor[uint8](), reflect.TypeFor[uint32](), true},
		{"int8 to uint64", reflect.TypeFor[int8](), reflect.TypeFor[uint64](), false},
		{"uint32 to int32", reflect.TypeFor[uint32](), reflect.TypeFor[int32](), false},
		{"int32 to int64", reflect.TypeFor[int32](), reflect.TypeFor[int64](), true},
		{"int64 to float64", reflect.TypeFor[int64](), reflect.TypeFor[float64](), true},
		{"uint64 to float32", reflect.TypeFor[uint64](), reflect.TypeFor[float32](), true},
		{"float32 to float64", reflect.TypeFor[float32](), reflect.TypeFor[float64](), true},
		{"float64 to float32", reflect.TypeFor[float64](), reflect.TypeFor[float32](), false},
		{"float64 to int64", reflect.TypeFor[float64](), reflect.TypeFor[int64](), false},
		{"complex64 to complex128", reflect.TypeFor[complex64](), reflect.TypeFor[complex128](), true},
		{"rune to int64", reflect.TypeFor[rune](), reflect.TypeFor[int64](), true},
		{"bool to int", reflect.TypeFor[bool](), reflect.TypeFor[int](), false},
		{"celsius to float64", reflect.TypeFor[celsius](), reflect.TypeFor[float64](), false},
		{"dog to animal", reflect.TypeFor[dog](), reflect.TypeFor[animal](), true},
		{"string to bytes", reflect.TypeFor[string](), reflect.TypeFor[[]byte](), false},
		{"nil", nil, nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanImplicitlyCast(tc.from, tc.to); got != tc.want {
				t.Errorf("CanImplicitlyCast = %v, want %v", got, tc.want)
			}
		})
	}
}
