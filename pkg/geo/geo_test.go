package geo_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasteCollect/pkg/e"
	"wasteCollect/pkg/geo"
)

func TestCalculateDistance_SamePointIsZero(t *testing.T) {
	t.Parallel()

	points := [][2]string{
		{"0", "0"},
		{"-23.5505", "-46.6333"},
		{"90", "180"},
		{"-90", "-180"},
		{"89.9999", "179.9999"},
	}
	for _, p := range points {
		d, err := geo.CalculateDistance(p[0], p[1], p[0], p[1])
		require.NoError(t, err)
		assert.Equal(t, 0.0, d, "point %v", p)
	}
}

func TestCalculateDistance_SaoPauloToRio(t *testing.T) {
	t.Parallel()

	d, err := geo.CalculateDistance("-23.5505", "-46.6333", "-22.9068", "-43.1729")
	require.NoError(t, err)
	assert.InDelta(t, 357, d, 10)
}

func TestCalculateDistance_OneDegreeOfLongitudeAtEquator(t *testing.T) {
	t.Parallel()

	d, err := geo.CalculateDistance("0", "0", "0", "1")
	require.NoError(t, err)
	assert.InDelta(t, 111, d, 2)
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	t.Parallel()

	ab, err := geo.CalculateDistance("10", "20", "-30", "40")
	require.NoError(t, err)
	ba, err := geo.CalculateDistance("-30", "40", "10", "20")
	require.NoError(t, err)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestDistance_NearPolesAndAntipodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b geo.Point
	}{
		{"pole to pole", geo.Point{Lat: 90, Lng: 0}, geo.Point{Lat: -90, Lng: 0}},
		{"antipodal equator", geo.Point{Lat: 0, Lng: 0}, geo.Point{Lat: 0, Lng: 180}},
		{"near north pole", geo.Point{Lat: 89.9999, Lng: 10}, geo.Point{Lat: 89.9999, Lng: -170}},
		{"across antimeridian", geo.Point{Lat: 0, Lng: 179.9}, geo.Point{Lat: 0, Lng: -179.9}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			d := geo.Distance(c.a, c.b)
			assert.False(t, math.IsNaN(d))
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, math.Pi*geo.EarthRadiusKM+1e-6)
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		value   string
		kind    geo.Kind
		want    float64
		wantMsg string
	}{
		{"lat max", "90", geo.Latitude, 90, ""},
		{"lat min", "-90", geo.Latitude, -90, ""},
		{"lng max", "180", geo.Longitude, 180, ""},
		{"lng min", "-180", geo.Longitude, -180, ""},
		{"decimal", "-23.5505", geo.Latitude, -23.5505, ""},
		{"padded", "  12.5 ", geo.Longitude, 12.5, ""},
		{"lat out of range", "91", geo.Latitude, 0, "Invalid latitude: must be between -90 and 90"},
		{"lat below range", "-90.0001", geo.Latitude, 0, "Invalid latitude: must be between -90 and 90"},
		{"lng out of range", "181", geo.Longitude, 0, "Invalid longitude: must be between -180 and 180"},
		{"non numeric", "abc", geo.Latitude, 0, "Invalid latitude: must be a valid number"},
		{"nan", "NaN", geo.Longitude, 0, "Invalid longitude: must be a valid number"},
		{"inf", "Inf", geo.Latitude, 0, "Invalid latitude: must be a valid number"},
		{"empty", "", geo.Latitude, 0, "latitude is required"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got, err := geo.ParseCoordinate(c.value, c.kind)
			if c.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, c.want, got)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, e.ErrInvalidCoordinates))
			assert.Equal(t, c.wantMsg, geo.Message(err))
		})
	}
}

func TestCalculateDistance_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := geo.CalculateDistance("91", "0", "0", "0")
	require.ErrorIs(t, err, e.ErrInvalidCoordinates)

	_, err = geo.CalculateDistance("0", "0", "0", "181")
	require.ErrorIs(t, err, e.ErrInvalidCoordinates)
}

func TestValidateFormat_CollectsAllProblems(t *testing.T) {
	t.Parallel()

	assert.Empty(t, geo.ValidateFormat("10", "20"))
	assert.Empty(t, geo.ValidateFormat("", ""))
	assert.Equal(t, []string{
		"Invalid latitude: must be between -90 and 90",
		"Invalid longitude: must be a valid number",
	}, geo.ValidateFormat("100", "x"))
}
