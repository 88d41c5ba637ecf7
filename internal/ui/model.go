package ui

import (
	"image"

	"github.com/2048civ/2048civ/internal/hexgrid"
)

// Selection is either empty or a single tile.
type Selection struct {
	cell hexgrid.Cell
	ok   bool
}

func (s Selection) Cell() (hexgrid.Cell, bool) { return s.cell, s.ok }

// Toggle selects c, or clears the selection when c is already selected.
func (s *Selection) Toggle(c hexgrid.Cell) {
	if s.ok && s.cell == c {
		s.Clear()
		return
	}
	s.cell, s.ok = c, true
}

func (s *Selection) Clear() { *s = Selection{} }

// dragState lives from pointer-down to pointer-up.
type dragState struct {
	active      bool
	start       image.Point // pointer at press
	startOffset image.Point // camera offset at press
}
