// Package transmission models an automatic gearbox that shifts purely as a
// function of speed.
//
// What:
//
//   - Automatic tracks a speed in whole miles per hour and derives the gear
//     from five strictly increasing shift thresholds.
//   - Speed 0 is idle (gear 0); below the first threshold is gear 1; at or
//     above the last threshold is gear 6.
//   - IncreaseSpeed and DecreaseSpeed move the speed by exactly 1 mph and
//     reshift immediately, so the observable gear is never stale.
//
// Errors:
//
//   - ErrBadThresholds: thresholds not strictly increasing, or the first
//     threshold not positive.
//   - ErrNegativeSpeed: DecreaseSpeed called at speed 0.
package transmission
