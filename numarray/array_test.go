package numarray_test

import (
	"errors"
	"slices"
	"testing"

	"arraylike/merr"
	"arraylike/numarray"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Positive", 5, 5},
		{"Zero", 0, 0},
		{"Negative", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := numarray.New[int](tt.size)
			if a.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", a.Len(), tt.want)
			}
			for i, v := range a.All() {
				if v != 0 {
					t.Errorf("element %d = %d, want zero value", i, v)
				}
			}
		})
	}
}

func TestGetSet(t *testing.T) {
	a := numarray.New[int](5)

	if err := a.Set(1, 6); err != nil {
		t.Fatalf("Set(1, 6) unexpected error: %v", err)
	}
	v, err := a.Get(1)
	if err != nil || v != 6 {
		t.Errorf("Get(1) = (%d, %v), want (6, nil)", v, err)
	}
	if a.At(1) != 6 {
		t.Errorf("At(1) = %d, want 6", a.At(1))
	}

	for _, idx := range []int{-1, 5, 100} {
		if err := a.Set(idx, 1); !errors.Is(err, merr.ErrIndexOutOfBounds) {
			t.Errorf("Set(%d) error = %v, want ErrIndexOutOfBounds", idx, err)
		}
		if _, err := a.Get(idx); !errors.Is(err, merr.ErrIndexOutOfBounds) {
			t.Errorf("Get(%d) error = %v, want ErrIndexOutOfBounds", idx, err)
		}
	}
	if a.Len() != 5 {
		t.Errorf("Len() changed to %d after failed writes", a.Len())
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At(3) on a length-3 array should panic")
		}
	}()
	numarray.Of(1, 2, 3).At(3)
}

func TestFill(t *testing.T) {
	a := numarray.New[int](4)
	a.Fill(10)
	if got := a.ToSlice(); !slices.Equal(got, []int{10, 10, 10, 10}) {
		t.Errorf("Fill(10) = %v", got)
	}
}

func TestOfCopiesInput(t *testing.T) {
	src := []float64{1.5, 2.5}
	a := numarray.Of(src...)
	src[0] = 99

	if a.At(0) != 1.5 {
		t.Errorf("Of() must copy its input, got %v", a.At(0))
	}

	out := a.ToSlice()
	out[1] = 42
	if a.At(1) != 2.5 {
		t.Errorf("ToSlice() must return a copy, got %v", a.At(1))
	}
}

func TestFromSeq(t *testing.T) {
	t.Run("Exact", func(t *testing.T) {
		a := numarray.FromSeq(3, slices.Values([]int{7, 8, 9}))
		if got := a.ToSlice(); !slices.Equal(got, []int{7, 8, 9}) {
			t.Errorf("FromSeq() = %v", got)
		}
	})

	t.Run("Truncates", func(t *testing.T) {
		a := numarray.FromSeq(2, slices.Values([]int{7, 8, 9}))
		if got := a.ToSlice(); !slices.Equal(got, []int{7, 8}) {
			t.Errorf("FromSeq() = %v", got)
		}
	})

	t.Run("PadsWithZero", func(t *testing.T) {
		a := numarray.FromSeq(4, slices.Values([]int{7}))
		if got := a.ToSlice(); !slices.Equal(got, []int{7, 0, 0, 0}) {
			t.Errorf("FromSeq() = %v", got)
		}
	})
}

func TestValuesStopsEarly(t *testing.T) {
	a := numarray.Of(1, 2, 3, 4)
	var seen []int
	for v := range a.Values() {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	if !slices.Equal(seen, []int{1, 2}) {
		t.Errorf("Values() with break = %v", seen)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Ints", numarray.Of(10, 10, 10).String(), "[10 10 10]"},
		{"Floats", numarray.Of(1.5, 2.0).String(), "[1.5 2]"},
		{"Empty", numarray.New[int](0).String(), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
