// Package date provides the date types used by the holdings and trades
// feeds. Both feeds coerce unparsable values to an absent date, so the zero
// value of every type in this package means "no date".
package date

import (
	"fmt"
	"time"
)

// AsOfFormat is the layout of the AsOfDate column in the holdings feed
// (day/month/two-digit-year).
const AsOfFormat = "02/01/06"

// Format is the layout used to render dates as strings, ISO-8601.
const Format = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in its standard format, or empty when absent.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(Format)
}

// ParseAsOf parses a value of the holdings feed's AsOfDate column.
func ParseAsOf(str string) (Date, error) {
	on, err := time.Parse(AsOfFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, AsOfFormat, err)
	}
	return New(on.Date()), nil
}

// MustParseAsOf is like ParseAsOf but panics on error.
func MustParseAsOf(str string) Date {
	d, err := ParseAsOf(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Max returns the later of d and x, treating an absent date as earliest.
func (d Date) Max(x Date) Date {
	if d.IsZero() {
		return x
	}
	if x.IsZero() || x.Before(d) {
		return d
	}
	return x
}
