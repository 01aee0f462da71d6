package houses

import "sort"

// Tally counts bodies per house; index 0 is house 1. Plain counts only:
// weighting by dignity or strength belongs to the caller.
func Tally(positions map[string]float64, cusps CuspSet) [HouseCount]int {
	var counts [HouseCount]int
	for _, lon := range positions {
		counts[Locate(lon, cusps)-1]++
	}
	return counts
}

// Occupants lists the bodies in each house, names sorted within a house.
func Occupants(positions map[string]float64, cusps CuspSet) [HouseCount][]string {
	var out [HouseCount][]string
	for name, lon := range positions {
		h := Locate(lon, cusps) - 1
		out[h] = append(out[h], name)
	}
	for i := range out {
		sort.Strings(out[i])
	}
	return out
}
