package weather_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maravek/etudes/weather"
)

// TestNewReading_Validation rejects impossible observations.
func TestNewReading_Validation(t *testing.T) {
	_, err := weather.NewReading(10, 12, 5, 0)
	assert.ErrorIs(t, err, weather.ErrBadReading, "dew point above temperature")

	_, err = weather.NewReading(10, 5, -1, 0)
	assert.ErrorIs(t, err, weather.ErrBadReading, "negative wind speed")

	_, err = weather.NewReading(10, 5, 5, -0.1)
	assert.ErrorIs(t, err, weather.ErrBadReading, "negative rainfall")
}

// TestReading_RoundedAccessors rounds each captured measurement.
func TestReading_RoundedAccessors(t *testing.T) {
	r, err := weather.NewReading(23.4, 18.7, 5.2, 12.4)
	require.NoError(t, err)

	assert.Equal(t, 23, r.Temperature())
	assert.Equal(t, 19, r.DewPoint())
	assert.Equal(t, 5, r.WindSpeed())
	assert.Equal(t, 12, r.TotalRain())
}

// TestReading_DerivedMeasures pins the humidity, heat index and wind chill
// for a spread of observations covering both wind-chill branches.
func TestReading_DerivedMeasures(t *testing.T) {
	cases := []struct {
		name                  string
		temp, dew, wind, rain float64
		humidity, heat, chill int
	}{
		{"mild", 23.4, 18.7, 5.2, 12.4, 75, 24, 74},
		{"cold and windy", 2.0, -3.0, 10.0, 0.0, 69, 65, 28},
		{"hot and humid, calm", 30.0, 25.0, 2.0, 40.2, 75, 36, 86},
		{"below freezing", -5.0, -8.0, 20.0, 1.0, 79, 104, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := weather.NewReading(tc.temp, tc.dew, tc.wind, tc.rain)
			require.NoError(t, err)

			assert.Equal(t, tc.humidity, r.RelativeHumidity(), "relative humidity")
			assert.Equal(t, tc.heat, r.HeatIndex(), "heat index")
			assert.Equal(t, tc.chill, r.WindChill(), "wind chill")
		})
	}
}

// TestReading_ValueEquality compares readings with ==.
func TestReading_ValueEquality(t *testing.T) {
	a, err := weather.NewReading(23.4, 18.7, 5.2, 12.4)
	require.NoError(t, err)
	b, err := weather.NewReading(23.4, 18.7, 5.2, 12.4)
	require.NoError(t, err)
	c, err := weather.NewReading(23.5, 18.7, 5.2, 12.4)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, a == b, "identical measurements compare equal")
	assert.False(t, a == c)
}

// TestReading_String reports the rounded quadruple.
func TestReading_String(t *testing.T) {
	r, err := weather.NewReading(23.4, 18.7, 5.2, 12.4)
	require.NoError(t, err)

	assert.Equal(t, "Reading: T = 23, D = 19, v = 5, rain = 12", r.String())
}
