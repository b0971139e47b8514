// Package dostime converts between time.Time and the 32-bit MS-DOS
// date/time format.
//
// A DOS time packs a local date in the high 16 bits and a local time in the
// low 16 bits, which keeps values ordered by magnitude:
//
//	bits 31-25  year - 1980 (0-127)
//	bits 24-21  month (1-12)
//	bits 20-16  day (1-31)
//	bits 15-11  hour (0-23)
//	bits 10-5   minute (0-59)
//	bits  4-0   second / 2 (0-29)
//
// The format has a two second resolution and covers Jan 1, 1980 00:00:00
// through Dec 31, 2107 23:59:58. Zero is not a valid date and is returned by
// the constructors for anything out of range.
package dostime

import "time"

// Time is a packed MS-DOS date/time.
type Time uint32

const (
	// Min is Jan 1, 1980 00:00:00.
	Min Time = 0x00210000

	// Max is Dec 31, 2107 23:59:58.
	Max Time = 0xFF9FBF7D

	minYear = 1980
	maxYear = 2107
)

// New packs a broken-down date. The second is truncated to an even value.
// Returns 0 when any field is out of range.
func New(year, month, day, hour, minute, second int) Time {
	if year < minYear || year > maxYear ||
		month < 1 || month > 12 ||
		day < 1 || day > 31 ||
		hour < 0 || hour > 23 ||
		minute < 0 || minute > 59 ||
		second < 0 || second > 59 {
		return 0
	}

	return Time(year-minYear)<<25 |
		Time(month)<<21 |
		Time(day)<<16 |
		Time(hour)<<11 |
		Time(minute)<<5 |
		Time(second)>>1
}

// FromTime converts t, read in its own location, rounding odd seconds up to
// the next even second. Returns 0 when t falls outside the DOS range.
func FromTime(t time.Time) Time {
	even := (t.Unix() + 1) &^ 1
	r := time.Unix(even, 0).In(t.Location())
	return New(r.Year(), int(r.Month()), r.Day(), r.Hour(), r.Minute(), r.Second())
}

// Fields unpacks d without validating it.
func (d Time) Fields() (year, month, day, hour, minute, second int) {
	year = int(d>>25&0x7F) + minYear
	month = int(d >> 21 & 0x0F)
	day = int(d >> 16 & 0x1F)
	hour = int(d >> 11 & 0x1F)
	minute = int(d >> 5 & 0x3F)
	second = int(d<<1) & 0x3E
	return year, month, day, hour, minute, second
}

// Time converts d to a time.Time in loc. It reports false when a field is
// out of range, including days past the end of their month.
func (d Time) Time(loc *time.Location) (time.Time, bool) {
	year, month, day, hour, minute, second := d.Fields()
	if month < 1 || month > 12 ||
		day < 1 || day > 31 ||
		hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// Valid reports whether d decodes to a real date.
func (d Time) Valid() bool {
	_, ok := d.Time(time.UTC)
	return ok
}
