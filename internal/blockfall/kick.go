package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// Kick groups. I has its own table, O never kicks, the rest share one.
const (
	kickGroupCommon = iota
	kickGroupI
	kickGroupO
)

var kickGroups = [KindCount]int{
	KindI: kickGroupI,
	KindO: kickGroupO,
	KindT: kickGroupCommon,
	KindS: kickGroupCommon,
	KindZ: kickGroupCommon,
	KindJ: kickGroupCommon,
	KindL: kickGroupCommon,
}

// kickSlots maps [from][to] rotation to a table slot. Several pairs,
// including the 180 degree ones, land on slot 0.
var kickSlots = [4][4]int{
	{0, 0, 0, 7},
	{1, 0, 2, 0},
	{0, 3, 0, 4},
	{6, 0, 5, 0},
}

type kickList [5]core.Point

func kl(xy ...int) kickList {
	var out kickList
	for i := range out {
		out[i] = core.Pt(xy[2*i], xy[2*i+1])
	}
	return out
}

var kickTable = [3][8]kickList{
	kickGroupCommon: {
		kl(0, 0, -1, 0, -1, 1, 0, -2, -1, -2),
		kl(0, 0, 1, 0, 1, -1, 0, 2, 1, 2),
		kl(0, 0, 1, 0, 1, 1, 0, -2, 1, -2),
		kl(0, 0, -1, 0, -1, -1, 0, 2, -1, 2),
		kl(0, 0, 1, 0, 1, -1, 0, 2, 1, 2),
		kl(0, 0, -1, 0, -1, 1, 0, -2, -1, -2),
		kl(0, 0, -1, 0, -1, -1, 0, 2, -1, 2),
		kl(0, 0, 1, 0, 1, 1, 0, -2, 1, -2),
	},
	kickGroupI: {
		kl(0, 0, -2, 0, 1, 0, -2, -1, 1, 2),
		kl(0, 0, -1, 0, 2, 0, -1, 2, 2, -1),
		kl(0, 0, 2, 0, -1, 0, 2, 1, -1, -2),
		kl(0, 0, 1, 0, -2, 0, 1, -2, -2, 1),
		kl(0, 0, 2, 0, -1, 0, 2, 1, -1, -2),
		kl(0, 0, 1, 0, -2, 0, 1, -2, -2, 1),
		kl(0, 0, -2, 0, 1, 0, -2, -1, 1, 2),
		kl(0, 0, -1, 0, 2, 0, -1, 2, 2, -1),
	},
	// kickGroupO is all zero offsets.
}

// KickCandidates returns the ordered pivot offsets tried when kind k
// rotates from one state to another.
func KickCandidates(k Kind, from, to int) []core.Point {
	slot := kickSlots[from&3][to&3]
	list := kickTable[kickGroups[k]][slot]
	return list[:]
}
