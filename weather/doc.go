// Package weather provides an immutable Stevenson-screen reading and the
// usual derived measures.
//
// A Reading captures air temperature (°C), dew point (°C), wind speed (mph)
// and total rainfall (mm) at construction and never changes. Accessors
// round to the nearest integer; RelativeHumidity, HeatIndex and WindChill
// compute the standard meteorological formulas from the unrounded values.
//
// Errors:
//
//   - ErrBadReading: dew point above air temperature, or negative wind
//     speed or rainfall.
package weather
