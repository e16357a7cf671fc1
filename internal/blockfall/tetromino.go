package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// Rotation is one hand-authored layout of a tetromino: four cells relative
// to the pivot plus an alignment offset added to every cell.
type Rotation struct {
	Offset core.Point
	Cells  [4]core.Point
}

// Shape returns the cells with the alignment offset applied, ready to be
// placed at a pivot.
func (r Rotation) Shape() []core.Point {
	shape := make([]core.Point, len(r.Cells))
	for i, c := range r.Cells {
		shape[i] = c.Add(r.Offset)
	}
	return shape
}

// Tetromino holds the four rotation states of one kind.
type Tetromino struct {
	Kind      Kind
	Rotations [4]Rotation
}

// RotateLeft returns the rotation index reached by turning counter-clockwise.
func RotateLeft(r int) int {
	return (r + 3) % 4
}

// RotateRight returns the rotation index reached by turning clockwise.
func RotateRight(r int) int {
	return (r + 1) % 4
}

func pts(xy ...int) [4]core.Point {
	var out [4]core.Point
	for i := range out {
		out[i] = core.Pt(xy[2*i], xy[2*i+1])
	}
	return out
}

// Catalog is the immutable table of every kind, indexed by Kind. The states
// are specified one by one rather than generated by matrix rotation.
var Catalog = [KindCount]Tetromino{
	{Kind: KindI, Rotations: [4]Rotation{
		{Offset: core.Pt(0, 0), Cells: pts(-1, 0, 0, 0, 1, 0, 2, 0)},
		{Offset: core.Pt(1, 0), Cells: pts(0, -1, 0, 0, 0, 1, 0, 2)},
		{Offset: core.Pt(1, 1), Cells: pts(1, 0, 0, 0, -1, 0, -2, 0)},
		{Offset: core.Pt(0, 1), Cells: pts(0, 1, 0, 0, 0, -1, 0, -2)},
	}},
	{Kind: KindO, Rotations: [4]Rotation{
		{Cells: pts(0, 0, 1, 0, 1, 1, 0, 1)},
		{Cells: pts(0, 0, 1, 0, 1, 1, 0, 1)},
		{Cells: pts(0, 0, 1, 0, 1, 1, 0, 1)},
		{Cells: pts(0, 0, 1, 0, 1, 1, 0, 1)},
	}},
	{Kind: KindT, Rotations: [4]Rotation{
		{Cells: pts(-1, 0, 0, 0, 1, 0, 0, -1)},
		{Cells: pts(0, -1, 0, 0, 0, 1, 1, 0)},
		{Cells: pts(1, 0, 0, 0, -1, 0, 0, 1)},
		{Cells: pts(0, 1, 0, 0, 0, -1, -1, 0)},
	}},
	{Kind: KindS, Rotations: [4]Rotation{
		{Cells: pts(-1, 0, 0, 0, 0, -1, 1, -1)},
		{Cells: pts(0, -1, 0, 0, 1, 0, 1, 1)},
		{Cells: pts(1, 0, 0, 0, 0, 1, -1, 1)},
		{Cells: pts(0, 1, 0, 0, -1, 0, -1, -1)},
	}},
	{Kind: KindZ, Rotations: [4]Rotation{
		{Cells: pts(-1, -1, 0, -1, 0, 0, 1, 0)},
		{Cells: pts(1, -1, 1, 0, 0, 0, 0, 1)},
		{Cells: pts(1, 1, 0, 1, 0, 0, -1, 0)},
		{Cells: pts(-1, 1, -1, 0, 0, 0, 0, -1)},
	}},
	{Kind: KindJ, Rotations: [4]Rotation{
		{Cells: pts(-1, -1, -1, 0, 0, 0, 1, 0)},
		{Cells: pts(1, -1, 0, -1, 0, 0, 0, 1)},
		{Cells: pts(1, 1, 1, 0, 0, 0, -1, 0)},
		{Cells: pts(-1, 1, 0, 1, 0, 0, 0, -1)},
	}},
	{Kind: KindL, Rotations: [4]Rotation{
		{Cells: pts(-1, 0, 0, 0, 1, 0, 1, -1)},
		{Cells: pts(0, -1, 0, 0, 0, 1, 1, 1)},
		{Cells: pts(1, 0, 0, 0, -1, 0, -1, 1)},
		{Cells: pts(0, 1, 0, 0, 0, -1, -1, -1)},
	}},
}

// previewOffsets places each kind inside the 4x4 preview box.
var previewOffsets = [KindCount]core.Point{
	KindI: core.Pt(1, 1),
	KindO: core.Pt(1, 1),
	KindT: core.Pt(1, 2),
	KindS: core.Pt(1, 2),
	KindZ: core.Pt(1, 2),
	KindJ: core.Pt(1, 2),
	KindL: core.Pt(1, 2),
}

// PreviewOffset returns the fixed render offset of k in the preview box.
func PreviewOffset(k Kind) core.Point {
	return previewOffsets[k]
}
