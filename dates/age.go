package dates

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads time.Now.
var SystemClock Clock = ClockFunc(time.Now)

// IntegerAge returns the number of birthdays between birth and at. It is
// negative when birth lies in the future. Only the calendar dates are
// used; each time is read in its own location.
func IntegerAge(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}

// NaturalAge is IntegerAge clamped at zero.
func NaturalAge(birth, at time.Time) int {
	return max(IntegerAge(birth, at), 0)
}

// Age is NaturalAge.
func Age(birth, at time.Time) int {
	return NaturalAge(birth, at)
}

// AgeToday returns the natural age at clock's current date. A nil clock
// uses SystemClock.
func AgeToday(birth time.Time, clock Clock) int {
	if clock == nil {
		clock = SystemClock
	}
	return NaturalAge(birth, clock.Now())
}
