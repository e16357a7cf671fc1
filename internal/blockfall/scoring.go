package blockfall

import "math"

var tierBase = [3]uint64{1, 2, 5}

// TierMultiplier returns the score multiplier for tier: 1, 2, 5 repeating,
// scaled by ten for every group of three tiers, times one hundred.
func TierMultiplier(tier int) uint64 {
	if tier < 0 {
		tier = 0
	}
	m := tierBase[tier%3] * 100
	for range tier / 3 {
		m *= 10
	}
	return m
}

// TierForScore returns floor(ln(score/500)), or 0 below 500 points.
func TierForScore(score uint64) int {
	if score < 500 {
		return 0
	}
	return int(math.Floor(math.Log(float64(score) / 500)))
}

// LineClearPoints is the award for clearing n rows at once with multiplier m.
func LineClearPoints(n int, m uint64) uint64 {
	if n <= 0 {
		return 0
	}
	count := uint64(n)
	return (uint64(1)<<(count-1))*m + count*(count+1)*m
}

// CascadeBonus is the award for the line counter when a cascade settles.
func CascadeBonus(lines int, m uint64) uint64 {
	if lines <= 0 {
		return 0
	}
	n := uint64(lines)
	return n * (n + 1) * m
}
