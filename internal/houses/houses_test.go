package houses

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/skyhouses/internal/angle"
)

// requireCuspsNear compares cusp sets around the circle, so 359.9999 and 0
// count as equal.
func requireCuspsNear(t *testing.T, want, got CuspSet, tol float64) {
	t.Helper()
	for i := range want {
		d := angle.ShortestDistance(want[i], got[i])
		require.LessOrEqualf(t, d, tol, "house %d: want %.4f, got %.4f", i+1, want[i], got[i])
	}
}

// requireWellFormed checks the CuspSet invariants shared by every system.
func requireWellFormed(t *testing.T, c CuspSet) {
	t.Helper()
	for i, v := range c {
		require.Falsef(t, math.IsNaN(v), "house %d is NaN", i+1)
		require.GreaterOrEqualf(t, v, 0.0, "house %d", i+1)
		require.Lessf(t, v, 360.0, "house %d", i+1)
	}
	require.InDelta(t, 360.0, c.Span(), 1e-6, "span of %v", c)
	require.InDelta(t, 180.0, angle.ForwardSeparation(c[0], c[6]), 1.0, "ascendant/descendant")
	require.InDelta(t, 180.0, angle.ForwardSeparation(c[9], c[3]), 1.0, "midheaven/nadir")
	require.True(t, c.Valid())
}

func TestAscendantReferenceValues(t *testing.T) {
	tests := []struct {
		lst, lat, obl float64
		want          float64
	}{
		// MC 0° Aries at 40°N rises 18° Cancer.
		{0, 40, 23.4392911, 108.4577},
		{120, 40, 23.4, 203.9051},
		// On the equator the point a quarter turn east of the meridian rises.
		{90, 0, 23.4, 180},
		{0, 0, 23.4, 90},
	}
	for _, tt := range tests {
		got := Ascendant(tt.lst, tt.lat, tt.obl)
		assert.LessOrEqualf(t, angle.ShortestDistance(tt.want, got), 1e-3,
			"Ascendant(%v, %v, %v) = %v, want %v", tt.lst, tt.lat, tt.obl, got, tt.want)
	}
}

func TestAscendantStaysEastOfMeridian(t *testing.T) {
	for lst := 0.0; lst < 360; lst += 11 {
		for lat := -90.0; lat <= 90; lat += 5 {
			asc := Ascendant(lst, lat, DefaultObliquity)
			require.False(t, math.IsNaN(asc))
			require.LessOrEqual(t, angle.ForwardSeparation(Midheaven(lst), asc), 180.0)
		}
	}
}

func TestMidheavenIsNormalizedSiderealTime(t *testing.T) {
	assert.InDelta(t, 30.0, Midheaven(390), 1e-9)
	assert.InDelta(t, 350.0, Midheaven(-10), 1e-9)
}

func TestEqualSpacing(t *testing.T) {
	for _, asc := range []float64{0, 17.25, 203.9, 359.9, -45} {
		c := Equal(asc)
		for i := range c {
			assert.InDelta(t, angle.Normalize(asc+30*float64(i)), c[i], 1e-9)
		}
		requireWellFormed(t, c)
	}
}

func TestWholeSignAlignment(t *testing.T) {
	for _, asc := range []float64{0, 17.25, 203.9, 359.9, 29.999} {
		c := WholeSign(asc)
		assert.Equal(t, math.Floor(asc/30)*30, c[0])
		for i := 1; i < HouseCount; i++ {
			assert.InDelta(t, 30.0, c.Width(i), 1e-9)
		}
		requireWellFormed(t, c)
	}
}

func TestReferenceCusps(t *testing.T) {
	const lst, lat, obl = 120.0, 40.0, 23.4
	asc := Ascendant(lst, lat, obl)

	tests := []struct {
		system System
		want   CuspSet
		got    func() (CuspSet, error)
	}{
		{
			SystemWholeSign,
			CuspSet{180, 210, 240, 270, 300, 330, 0, 30, 60, 90, 120, 150},
			func() (CuspSet, error) { return WholeSign(asc), nil },
		},
		{
			SystemPorphyry,
			CuspSet{203.9051, 235.9367, 267.9684, 300, 327.9684, 355.9367, 23.9051, 55.9367, 87.9684, 120, 147.9684, 175.9367},
			func() (CuspSet, error) { return Porphyry(asc, Midheaven(lst)), nil },
		},
		{
			SystemPlacidus,
			CuspSet{203.9051, 231.7526, 263.5329, 300, 331.1155, 0, 23.9051, 51.7526, 83.5329, 120, 151.1155, 180},
			func() (CuspSet, error) { return Placidus(lst, lat, obl) },
		},
		{
			SystemKoch,
			CuspSet{203.9051, 237.0395, 267.5940, 300, 325.1077, 354.2905, 23.9051, 57.0395, 87.5940, 120, 145.1077, 174.2905},
			func() (CuspSet, error) { return Koch(lst, lat, obl) },
		},
		{
			SystemRegiomontanus,
			CuspSet{203.9051, 229.2021, 260.5401, 300, 332.5227, 0, 23.9051, 49.2021, 80.5401, 120, 152.5227, 180},
			func() (CuspSet, error) { return Regiomontanus(lst, lat, obl), nil },
		},
		{
			SystemCampanus,
			CuspSet{203.9051, 235.8400, 267.8913, 300, 326.0472, 354.0849, 23.9051, 55.8400, 87.8913, 120, 146.0472, 174.0849},
			func() (CuspSet, error) { return Campanus(lst, lat, obl), nil },
		},
		{
			SystemMorinus,
			CuspSet{203.9051, 237.8264, 270, 300, 332.0824, 0, 23.9051, 57.8264, 90, 120, 152.0824, 180},
			func() (CuspSet, error) { return Morinus(lst, lat, obl) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.system.String(), func(t *testing.T) {
			got, err := tt.got()
			require.NoError(t, err)
			requireCuspsNear(t, tt.want, got, 1e-3)
			requireWellFormed(t, got)
		})
	}
}

func TestPlacidusEquator(t *testing.T) {
	c, err := Placidus(90, 0, 23.4)
	require.NoError(t, err)

	// With the MC at 90° the rising point is a quadrant further east, so
	// the ascendant is 180°; 90° would put it on the meridian.
	// At the equator every semi-arc is 90°, so the intermediate cusps sit at
	// 30° steps of right ascension from the meridian.
	want := CuspSet{180, 212.1740, 242.0822, 270, 297.9178, 327.8260, 0, 32.1740, 62.0822, 90, 117.9178, 147.8260}
	requireCuspsNear(t, want, c, 1e-3)
	requireWellFormed(t, c)
}

func TestMorinusIntermediateCuspsIgnoreLatitude(t *testing.T) {
	ref, err := Morinus(120, 40, 23.4)
	require.NoError(t, err)

	for _, lat := range []float64{-40, 0, 20} {
		c, err := Morinus(120, lat, 23.4)
		require.NoError(t, err)
		assert.NotEqual(t, ref.Ascendant(), c.Ascendant(), "lat %v", lat)
		for _, i := range []int{1, 2, 4, 5, 7, 8, 10, 11} {
			assert.Lessf(t, angle.ShortestDistance(ref[i], c[i]), 1e-9, "lat %v house %d", lat, i+1)
		}
	}
}

func TestLatitudeGuard(t *testing.T) {
	guarded := map[System]func(lat float64) (CuspSet, error){
		SystemPlacidus:    func(lat float64) (CuspSet, error) { return Placidus(75, lat, DefaultObliquity) },
		SystemKoch:        func(lat float64) (CuspSet, error) { return Koch(75, lat, DefaultObliquity) },
		SystemMorinus:     func(lat float64) (CuspSet, error) { return Morinus(75, lat, DefaultObliquity) },
		SystemTopocentric: func(lat float64) (CuspSet, error) { return Topocentric(75, lat, DefaultObliquity, 0) },
	}
	for sys, calc := range guarded {
		t.Run(sys.String(), func(t *testing.T) {
			for _, lat := range []float64{61, -61, 60.0001, 89} {
				c, err := calc(lat)
				require.ErrorIs(t, err, ErrLatitudeLimitExceeded)
				require.Equal(t, CuspSet{}, c)

				var herr *Error
				require.ErrorAs(t, err, &herr)
				assert.Equal(t, sys, herr.System)
				assert.Equal(t, "latitude", herr.Param)
				assert.Contains(t, herr.Suggested, SystemEqual)
				assert.Contains(t, herr.Suggested, SystemWholeSign)
			}
			for _, lat := range []float64{59, -59, 60, -60, 0} {
				c, err := calc(lat)
				require.NoError(t, err)
				require.Len(t, c, HouseCount)
				requireWellFormed(t, c)
			}
		})
	}
}

func TestSpatialSystemsHaveNoLatitudeGuard(t *testing.T) {
	for _, lat := range []float64{-90, -75, 66.6, 75, 89.9, 90} {
		requireWellFormed(t, Regiomontanus(200, lat, DefaultObliquity))
		requireWellFormed(t, Campanus(200, lat, DefaultObliquity))
		requireWellFormed(t, Porphyry(Ascendant(200, lat, DefaultObliquity), Midheaven(200)))
	}
}

func TestTopocentricLatitude(t *testing.T) {
	assert.Equal(t, 45.0, TopocentricLatitude(45, 0))
	assert.Equal(t, 45.0, TopocentricLatitude(45, -30))
	assert.InDelta(t, 44.2822, TopocentricLatitude(45, 1000), 1e-3)
	assert.InDelta(t, -44.2822, TopocentricLatitude(-45, 1000), 1e-3)
	assert.Equal(t, 0.0, TopocentricLatitude(0, 8848))
}

func TestTopocentricGuardUsesAdjustedLatitude(t *testing.T) {
	// 60.5°N from 5 km up is seen at about 59.38°.
	c, err := Topocentric(120, 60.5, DefaultObliquity, 5000)
	require.NoError(t, err)
	requireWellFormed(t, c)

	_, err = Topocentric(120, 60.5, DefaultObliquity, 0)
	require.ErrorIs(t, err, ErrLatitudeLimitExceeded)
}

func TestTopocentricAtSeaLevelMatchesPlacidus(t *testing.T) {
	p, err := Placidus(233, 51.5, DefaultObliquity)
	require.NoError(t, err)
	tc, err := Topocentric(233, 51.5, DefaultObliquity, 0)
	require.NoError(t, err)
	require.Equal(t, p, tc)
}

// calcAll runs every system through the dispatcher.
func calcAll(t *testing.T, lst, lat, obl float64) map[System]CuspSet {
	t.Helper()
	out := make(map[System]CuspSet, len(Systems))
	for _, sys := range Systems {
		if limit, ok := sys.LatitudeLimit(); ok && math.Abs(lat) > limit {
			continue
		}
		c, err := CalculateCusps(sys, Params{LocalSiderealTime: lst, Latitude: lat, Obliquity: obl})
		require.NoError(t, err, "%s lst=%v lat=%v", sys, lst, lat)
		out[sys] = c
	}
	return out
}

func TestFullSystemSweep(t *testing.T) {
	sets := calcAll(t, 120, 40, 23.4)
	require.Len(t, sets, len(Systems))
	for sys, c := range sets {
		t.Run(sys.String(), func(t *testing.T) {
			require.Len(t, c, 12)
			requireWellFormed(t, c)
		})
	}
}

func TestInvariantsAcrossGrid(t *testing.T) {
	for lst := -180.0; lst <= 540; lst += 13.7 {
		for lat := -90.0; lat <= 90; lat += 7.5 {
			for _, obl := range []float64{5, 23.4392911, 45} {
				for sys, c := range calcAll(t, lst, lat, obl) {
					if !c.Valid() {
						t.Fatalf("%s lst=%v lat=%v obl=%v: invalid set %v (span %v)", sys, lst, lat, obl, c, c.Span())
					}
					requireWellFormed(t, c)
				}
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := calcAll(t, 287.123, -33.87, 23.44)
	b := calcAll(t, 287.123, -33.87, 23.44)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("repeat calculation differs (-first +second):\n%s", diff)
	}
}

func TestLSTIsNormalizedInternally(t *testing.T) {
	base := calcAll(t, 75, 48.85, DefaultObliquity)
	for _, shift := range []float64{360, -360, 7200} {
		shifted := calcAll(t, 75+shift, 48.85, DefaultObliquity)
		for sys := range base {
			requireCuspsNear(t, base[sys], shifted[sys], 1e-6)
		}
	}
}

func TestQuadrantSetClampsOutOfQuadrantCusps(t *testing.T) {
	// House 11 given west of the meridian and house 2 past the nadir.
	c := quadrantSet(100, 10, 350, 50, 200, 150)
	requireWellFormed(t, c)
	assert.Equal(t, 10.0, c[10])
	assert.Equal(t, 190.0, c[1])
	assert.Equal(t, 190.0, c[2])
}

func TestSystemsAreDistinct(t *testing.T) {
	sets := calcAll(t, 47, 52, DefaultObliquity)
	seen := map[string]System{}
	for _, sys := range Systems {
		if sys == SystemTopocentric {
			// Sea-level topocentric is Placidus by construction.
			continue
		}
		key := fmt.Sprintf("%.6f", sets[sys])
		if other, dup := seen[key]; dup {
			t.Fatalf("%s and %s produced identical cusps", sys, other)
		}
		seen[key] = sys
	}
}
