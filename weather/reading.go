package weather

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadReading indicates physically impossible construction arguments.
var ErrBadReading = errors.New("weather: invalid reading")

// Reading is one Stevenson-screen observation. It is a comparable value
// type: two readings taken with identical measurements compare equal
// with ==.
type Reading struct {
	temperature float64 // air temperature, °C
	dewPoint    float64 // °C, never above temperature
	windSpeed   float64 // mph, non-negative
	totalRain   float64 // mm, non-negative
}

// NewReading validates and captures one observation.
func NewReading(temperature, dewPoint, windSpeed, totalRain float64) (Reading, error) {
	switch {
	case dewPoint > temperature:
		return Reading{}, fmt.Errorf("%w: dew point %.2f above air temperature %.2f",
			ErrBadReading, dewPoint, temperature)
	case windSpeed < 0:
		return Reading{}, fmt.Errorf("%w: negative wind speed %.2f", ErrBadReading, windSpeed)
	case totalRain < 0:
		return Reading{}, fmt.Errorf("%w: negative rainfall %.2f", ErrBadReading, totalRain)
	}

	return Reading{
		temperature: temperature,
		dewPoint:    dewPoint,
		windSpeed:   windSpeed,
		totalRain:   totalRain,
	}, nil
}

// Temperature returns the air temperature in °C, rounded.
func (r Reading) Temperature() int {
	return int(math.Round(r.temperature))
}

// DewPoint returns the dew point in °C, rounded.
func (r Reading) DewPoint() int {
	return int(math.Round(r.dewPoint))
}

// WindSpeed returns the wind speed in mph, rounded.
func (r Reading) WindSpeed() int {
	return int(math.Round(r.windSpeed))
}

// TotalRain returns the rainfall in mm, rounded.
func (r Reading) TotalRain() int {
	return int(math.Round(r.totalRain))
}

// RelativeHumidity derives the humidity percentage from the Magnus
// saturation-pressure ratio of dew point and air temperature. The
// construction invariant dewPoint ≤ temperature keeps the result in
// [0, 100].
func (r Reading) RelativeHumidity() int {
	const a, b = 17.625, 243.04
	ratio := math.Exp(a*r.dewPoint/(b+r.dewPoint)) / math.Exp(a*r.temperature/(b+r.temperature))

	return int(math.Round(100 * ratio))
}

// HeatIndex computes Rothfusz's nine-coefficient regression over the air
// temperature (°C) and relative humidity.
func (r Reading) HeatIndex() int {
	t := r.temperature
	h := float64(r.RelativeHumidity())

	const (
		c1 = -8.78469475556
		c2 = 1.61139411
		c3 = 2.33854883889
		c4 = -0.14611605
		c5 = -0.012308094
		c6 = -0.0164248277778
		c7 = 0.002211732
		c8 = 0.00072546
		c9 = -0.000003582
	)

	hi := c1 + c2*t + c3*h + c4*t*h + c5*t*t + c6*h*h +
		c7*t*t*h + c8*t*h*h + c9*t*t*h*h

	return int(math.Round(hi))
}

// WindChill computes the NWS wind-chill temperature in °F. The formula only
// applies below 50 °F and above 3 mph of wind; outside that range the air
// temperature in °F is returned unchanged.
func (r Reading) WindChill() int {
	tf := r.temperature*9/5 + 32
	v := r.windSpeed

	if tf > 50 || v <= 3 {
		return int(math.Round(tf))
	}

	chill := 35.74 + 0.6215*tf - 35.75*math.Pow(v, 0.16) + 0.4275*tf*math.Pow(v, 0.16)

	return int(math.Round(chill))
}

// String reports the rounded measurements.
func (r Reading) String() string {
	return fmt.Sprintf("Reading: T = %d, D = %d, v = %d, rain = %d",
		r.Temperature(), r.DewPoint(), r.WindSpeed(), r.TotalRain())
}
