package unit

import "time"

// Frequency is the number of occurrences of an event per unit of time,
// always a non-negative number of hertz.
type Frequency struct {
	hz float64
}

// Hertz returns a frequency of hz occurrences per second.
func Hertz(hz float64) Frequency {
	return Frequency{hz: positive(hz)}
}

// PerPeriod returns the frequency equivalent to one occurrence every period.
func PerPeriod(period time.Duration) Frequency {
	if period <= 0 {
		return Frequency{}
	}

	return Hertz(1 / period.Seconds())
}

// Hertz returns the frequency in hertz.
func (f Frequency) Hertz() float64 {
	return f.hz
}

// Period returns the time a single occurrence takes. It returns zero for a
// zero frequency.
func (f Frequency) Period() time.Duration {
	if f.hz == 0 {
		return 0
	}

	return time.Duration(float64(time.Second) / f.hz)
}
