package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// SpawnPoint is the pivot every new piece starts at.
var SpawnPoint = core.Pt(5, 0)

// Piece is the active falling tetromino.
type Piece struct {
	Kind     Kind
	Rotation int
	Pivot    core.Point
}

// NewPiece spawns k at SpawnPoint in rotation 0.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, Pivot: SpawnPoint}
}

// Shape returns the piece's cells relative to its pivot.
func (p Piece) Shape() []core.Point {
	return Catalog[p.Kind].Rotations[p.Rotation].Shape()
}

// Cells returns the absolute board positions of the piece.
func (p Piece) Cells() []core.Point {
	shape := p.Shape()
	for i := range shape {
		shape[i] = shape[i].Add(p.Pivot)
	}
	return shape
}

// Fits reports whether the piece collides with nothing at its pivot.
func (p Piece) Fits(g *Grid) bool {
	return g.Fits(p.Shape(), p.Pivot)
}

// Move translates the piece by d when the target is free.
func (p *Piece) Move(g *Grid, d core.Point) bool {
	target := p.Pivot.Add(d)
	if !g.Fits(p.Shape(), target) {
		return false
	}
	p.Pivot = target
	return true
}

// Rotate turns the piece to rotation to, trying each wall kick candidate in
// order. When every candidate collides the piece is left untouched.
func (p *Piece) Rotate(g *Grid, to int) bool {
	to &= 3
	shape := Catalog[p.Kind].Rotations[to].Shape()
	for _, kick := range KickCandidates(p.Kind, p.Rotation, to) {
		target := p.Pivot.Add(kick)
		if g.Fits(shape, target) {
			p.Pivot = target
			p.Rotation = to
			return true
		}
	}
	return false
}

// Lock merges the piece into the grid.
func (p Piece) Lock(g *Grid) {
	g.Merge(p.Shape(), p.Pivot, CellOf(p.Kind))
}
