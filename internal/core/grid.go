package core

import (
	"errors"
	"fmt"
)

// MaxCells caps rows*cols so a bad override can't exhaust memory.
const MaxCells = 1 << 24

var ErrGridSize = errors.New("invalid grid size")

// Grid is a dense row-major table of terrain. Its dimensions never change
// after construction. Accessors expect in-range coordinates.
type Grid struct {
	rows, cols int
	cells      []Terrain
}

func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %d rows x %d cols", ErrGridSize, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: make([]Terrain, rows*cols)}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) At(row, col int) Terrain     { return g.cells[row*g.cols+col] }
func (g *Grid) Set(row, col int, t Terrain) { g.cells[row*g.cols+col] = t }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Fill assigns every cell from gen, row by row.
func (g *Grid) Fill(gen Generator) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.Set(r, c, gen.Terrain(r, c))
		}
	}
}
