package numarray

import (
	"strings"

	"arraylike/merr"
	"arraylike/seqs"
)

// Grid is a rows x cols matrix stored row-major in one backing slice.
type Grid[T seqs.Number] struct {
	rows, cols int
	data       []T
}

// NewGrid returns a zero-filled grid. Negative dimensions are treated as zero.
func NewGrid[T seqs.Number](rows, cols int) *Grid[T] {
	rows, cols = max(rows, 0), max(cols, 0)
	return &Grid[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

func (g *Grid[T]) Rows() int {
	return g.rows
}

func (g *Grid[T]) Cols() int {
	return g.cols
}

func (g *Grid[T]) Get(row, col int) (T, error) {
	if err := g.check(row, col); err != nil {
		var zero T
		return zero, err
	}
	return g.data[row*g.cols+col], nil
}

func (g *Grid[T]) Set(row, col int, value T) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.data[row*g.cols+col] = value
	return nil
}

// Row returns a copy of the given row.
func (g *Grid[T]) Row(row int) (*Array[T], error) {
	if row < 0 || row >= g.rows {
		return nil, merr.WrapErrIndexOutOfBounds(row, g.rows)
	}
	return Of(g.data[row*g.cols : (row+1)*g.cols]...), nil
}

func (g *Grid[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteString("\n ")
		}
		row, _ := g.Row(r)
		sb.WriteString(row.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (g *Grid[T]) check(row, col int) error {
	if row < 0 || row >= g.rows {
		return merr.WrapErrIndexOutOfBounds(row, g.rows)
	}
	if col < 0 || col >= g.cols {
		return merr.WrapErrIndexOutOfBounds(col, g.cols)
	}
	return nil
}
