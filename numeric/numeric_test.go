package numeric

import (
	"testing"

	"github.com/kbukum/extkit/errors"
)

func TestRangePredicates(t *testing.T) {
	tests := []struct {
		v, lo, hi                             int
		between, within, betweenMin, betweenMax bool
	}{
		{0, 1, 3, false, false, false, false},
		{1, 1, 3, true, false, true, false},
		{2, 1, 3, true, true, true, true},
		{3, 1, 3, true, false, false, true},
		{4, 1, 3, false, false, false, false},
		{2, 3, 1, false, false, false, false},
	}
	for _, tc := range tests {
		if got := Between(tc.v, tc.lo, tc.hi); got != tc.between {
			t.Errorf("Between(%d, %d, %d): expected %v, got %v", tc.v, tc.lo, tc.hi, tc.between, got)
		}
		if got := Within(tc.v, tc.lo, tc.hi); got != tc.within {
			t.Errorf("Within(%d, %d, %d): expected %v, got %v", tc.v, tc.lo, tc.hi, tc.within, got)
		}
		if got := BetweenMin(tc.v, tc.lo, tc.hi); got != tc.betweenMin {
			t.Errorf("BetweenMin(%d, %d, %d): expected %v, got %v", tc.v, tc.lo, tc.hi, tc.betweenMin, got)
		}
		if got := BetweenMax(tc.v, tc.lo, tc.hi); got != tc.betweenMax {
			t.Errorf("BetweenMax(%d, %d, %d): expected %v, got %v", tc.v, tc.lo, tc.hi, tc.betweenMax, got)
		}
	}
}

func TestRangePredicates_Strings(t *testing.T) {
	if !Between("m", "a", "z") {
		t.Error("expected m between a and z")
	}
	if Within("a", "a", "z") {
		t.Error("expected a not within (a, z)")
	}
}

func TestLesserGreaterOf(t *testing.T) {
	if got := LesserOf(3, 7); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := GreaterOf(3, 7); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := LesserOf(2.5, -1.0); got != -1.0 {
		t.Errorf("expected -1, got %v", got)
	}
	if got := GreaterOf("b", "a"); got != "b" {
		t.Errorf("expected b, got %s", got)
	}
}

func TestRequireGuards(t *testing.T) {
	if err := RequirePositive("count", 1); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := RequirePositive("count", 0); !errors.HasCode(err, errors.ErrCodeOutOfRange) {
		t.Errorf("expected OUT_OF_RANGE, got %v", err)
	}
	if err := RequireNonNegative("count", int8(0)); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := RequireNonNegative("width", -0.5); !errors.HasCode(err, errors.ErrCodeOutOfRange) {
		t.Errorf("expected OUT_OF_RANGE, got %v", err)
	}
}
