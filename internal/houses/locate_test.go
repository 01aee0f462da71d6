package houses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateWraparound(t *testing.T) {
	// 330 opens house 1, so [330, 360) is house 1 and 345 lands there.
	cusps := Equal(330) // 330, 0, 30, ..., 300

	tests := []struct {
		lon  float64
		want int
	}{
		{345, 1},
		{330, 1},
		{359.999, 1},
		{0, 2},
		{15, 2},
		{30, 3},
		{299.999, 12},
		{300, 12},
		{-15, 1},
		{705, 1},
		{375, 2},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Locate(tt.lon, cusps), "Locate(%v)", tt.lon)
	}
}

func TestLocateLastHouseWraps(t *testing.T) {
	cusps := Equal(0) // 330 opens house 12
	assert.Equal(t, 12, Locate(345, cusps))
	assert.Equal(t, 1, Locate(15, cusps))
	assert.Equal(t, 1, Locate(360, cusps))
}

func TestLocateEveryLongitudeLandsInOneHouse(t *testing.T) {
	cusps, err := Placidus(120, 40, 23.4)
	require.NoError(t, err)

	for lon := 0.0; lon < 360; lon += 0.25 {
		h := Locate(lon, cusps)
		require.GreaterOrEqual(t, h, 1)
		require.LessOrEqual(t, h, 12)

		start := cusps.Cusp(h)
		require.LessOrEqualf(t, forwardFrom(start, lon), cusps.Width(h),
			"lon %v placed in house %d [%v, %v)", lon, h, start, cusps.Cusp(h+1))
	}
}

func forwardFrom(start, lon float64) float64 {
	d := lon - start
	for d < 0 {
		d += 360
	}
	return d
}

func TestLocateCuspBelongsToHouseItOpens(t *testing.T) {
	cusps := Regiomontanus(15, 51.5, DefaultObliquity)
	for n := 1; n <= HouseCount; n++ {
		if cusps.Width(n) == 0 {
			continue
		}
		assert.Equal(t, n, Locate(cusps.Cusp(n), cusps), "cusp of house %d", n)
	}
}

func TestLocateAllPreservesOrder(t *testing.T) {
	bodies := []Body{
		{Name: "Moon", Longitude: 15},
		{Name: "Sun", Longitude: 345},
		{Name: "Mars", Longitude: 95},
	}
	got := LocateAll(bodies, Equal(330))
	require.Len(t, got, 3)
	assert.Equal(t, Placement{Body: bodies[0], House: 2}, got[0])
	assert.Equal(t, Placement{Body: bodies[1], House: 1}, got[1])
	assert.Equal(t, Placement{Body: bodies[2], House: 5}, got[2])
}

func TestTally(t *testing.T) {
	positions := map[string]float64{
		"Sun":     345,
		"Moon":    15,
		"Mercury": 350,
		"Venus":   200,
	}
	counts := Tally(positions, Equal(330))

	want := [HouseCount]int{2, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0}
	assert.Equal(t, want, counts)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(positions), total)
}

func TestTallyEmpty(t *testing.T) {
	assert.Equal(t, [HouseCount]int{}, Tally(nil, Equal(0)))
}

func TestOccupantsSortedWithinHouse(t *testing.T) {
	positions := map[string]float64{
		"Sun":     345,
		"Mercury": 350,
		"Moon":    15,
	}
	occ := Occupants(positions, Equal(330))
	assert.Equal(t, []string{"Mercury", "Sun"}, occ[0])
	assert.Equal(t, []string{"Moon"}, occ[1])
	assert.Empty(t, occ[5])
}
