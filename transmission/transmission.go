package transmission

import (
	"errors"
	"fmt"
)

var (
	// ErrBadThresholds indicates shift points that are not strictly
	// increasing, or a first threshold that is not positive.
	ErrBadThresholds = errors.New("transmission: thresholds must be positive and strictly increasing")

	// ErrNegativeSpeed indicates an attempt to decelerate below 0 mph.
	ErrNegativeSpeed = errors.New("transmission: speed cannot become negative")
)

// gearCount is the number of driving gears; gear 0 is idle.
const gearCount = 6

// Automatic is a speed-driven gearbox. The zero value is not usable; build
// one with New.
type Automatic struct {
	thresholds [gearCount - 1]int
	speed      int
	gear       int
}

// New builds an Automatic from the five speeds at which the box shifts from
// gear 1→2, 2→3, 3→4, 4→5 and 5→6. The thresholds must be strictly
// increasing and the first must be positive.
func New(t1, t2, t3, t4, t5 int) (*Automatic, error) {
	if t1 <= 0 || t1 >= t2 || t2 >= t3 || t3 >= t4 || t4 >= t5 {
		return nil, fmt.Errorf("%w: got %d, %d, %d, %d, %d", ErrBadThresholds, t1, t2, t3, t4, t5)
	}

	return &Automatic{thresholds: [gearCount - 1]int{t1, t2, t3, t4, t5}}, nil
}

// IncreaseSpeed accelerates by 1 mph and reshifts.
func (a *Automatic) IncreaseSpeed() {
	a.speed++
	a.shift()
}

// DecreaseSpeed decelerates by 1 mph and reshifts.
// Returns ErrNegativeSpeed when already stopped.
func (a *Automatic) DecreaseSpeed() error {
	if a.speed == 0 {
		return ErrNegativeSpeed
	}
	a.speed--
	a.shift()

	return nil
}

// Speed returns the current speed in mph.
func (a *Automatic) Speed() int {
	return a.speed
}

// Gear returns the current gear: 0 when idle, 1 through 6 when moving.
func (a *Automatic) Gear() int {
	return a.gear
}

// shift recomputes the gear from the current speed.
func (a *Automatic) shift() {
	if a.speed == 0 {
		a.gear = 0

		return
	}
	for i, limit := range a.thresholds {
		if a.speed < limit {
			a.gear = i + 1

			return
		}
	}
	a.gear = gearCount
}

// String reports the state as "Transmission (speed = X, gear = Y)".
func (a *Automatic) String() string {
	return fmt.Sprintf("Transmission (speed = %d, gear = %d)", a.speed, a.gear)
}
