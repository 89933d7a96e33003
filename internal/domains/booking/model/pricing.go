package model

import (
	"math"
	"time"
)

const hoursPerNight = 24

// Nights returns the number of billable nights for a stay. Partial nights are
// charged in full, and any positive stay is billed for at least one night.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	if hours <= 0 {
		return 0
	}

	nights := int(math.Ceil(hours / hoursPerNight))
	if nights < 1 {
		nights = 1
	}

	return nights
}

// ComputeTotalPrice prices a stay at the nightly rate, rounding half-up to two
// decimal places.
func ComputeTotalPrice(nightlyRate float64, checkIn, checkOut time.Time) float64 {
	total := nightlyRate * float64(Nights(checkIn, checkOut))

	return math.Floor(total*100+0.5) / 100
}
