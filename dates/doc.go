// Package dates computes ages from calendar dates.
//
// Ages count whole years on the calendar, not elapsed durations. Someone
// born on 29 February turns a year older on 1 March in common years.
package dates
