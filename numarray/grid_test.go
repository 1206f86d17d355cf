package numarray_test

import (
	"errors"
	"slices"
	"testing"

	"arraylike/merr"
	"arraylike/numarray"
)

func TestGrid(t *testing.T) {
	g := numarray.NewGrid[int](3, 4)
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("NewGrid(3, 4) dims = %dx%d", g.Rows(), g.Cols())
	}

	want := "[[0 0 0 0]\n [0 0 0 0]\n [0 0 0 0]]"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if err := g.Set(r, c, r+1); err != nil {
				t.Fatalf("Set(%d, %d) unexpected error: %v", r, c, err)
			}
		}
	}

	want = "[[1 1 1 1]\n [2 2 2 2]\n [3 3 3 3]]"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	v, err := g.Get(2, 3)
	if err != nil || v != 3 {
		t.Errorf("Get(2, 3) = (%d, %v), want (3, nil)", v, err)
	}

	row, err := g.Row(1)
	if err != nil {
		t.Fatalf("Row(1) unexpected error: %v", err)
	}
	if got := row.ToSlice(); !slices.Equal(got, []int{2, 2, 2, 2}) {
		t.Errorf("Row(1) = %v", got)
	}

	_ = row.Set(0, 99)
	if v, _ := g.Get(1, 0); v != 2 {
		t.Errorf("Row() must return a copy, grid now holds %d", v)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := numarray.NewGrid[int](2, 2)

	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range cases {
		if _, err := g.Get(c[0], c[1]); !errors.Is(err, merr.ErrIndexOutOfBounds) {
			t.Errorf("Get(%d, %d) error = %v, want ErrIndexOutOfBounds", c[0], c[1], err)
		}
		if err := g.Set(c[0], c[1], 1); !errors.Is(err, merr.ErrIndexOutOfBounds) {
			t.Errorf("Set(%d, %d) error = %v, want ErrIndexOutOfBounds", c[0], c[1], err)
		}
	}

	if _, err := g.Row(2); !errors.Is(err, merr.ErrIndexOutOfBounds) {
		t.Errorf("Row(2) error = %v, want ErrIndexOutOfBounds", err)
	}
}

func TestGridEmpty(t *testing.T) {
	g := numarray.NewGrid[int](-1, 3)
	if g.Rows() != 0 || g.String() != "[]" {
		t.Errorf("NewGrid(-1, 3) = %dx%d %q", g.Rows(), g.Cols(), g.String())
	}
}
