// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the sky-engine:
// instants, observers, body positions, configuration criteria,
// candidates, verification results, and catalog entries.
package types

import (
	"fmt"
	"math"
	"time"
)

// JulianDay is a continuous, fractional Julian day number. All internal
// computation uses this single representation; negative values (pre-epoch)
// are valid. Calendar conversion happens only at formatting boundaries.
type JulianDay float64

// J2000 is the standard epoch 2000 January 1.5 TT.
const J2000 JulianDay = 2451545.0

// DaysPerJulianCentury converts a Julian day offset into Julian centuries.
const DaysPerJulianCentury = 36525.0

// CenturiesSinceJ2000 returns the Julian centuries elapsed since J2000.
func (jd JulianDay) CenturiesSinceJ2000() float64 {
	return (float64(jd) - float64(J2000)) / DaysPerJulianCentury
}

// Add returns the instant shifted by the given number of days.
func (jd JulianDay) Add(days float64) JulianDay {
	return jd + JulianDay(days)
}

// Before reports whether jd precedes other.
func (jd JulianDay) Before(other JulianDay) bool { return jd < other }

// CalendarDate is a proleptic Gregorian calendar date with a fractional
// hour. Years use astronomical numbering: year 0 is 1 BC, -1 is 2 BC.
type CalendarDate struct {
	Year  int     `json:"year" yaml:"year"`
	Month int     `json:"month" yaml:"month"`
	Day   int     `json:"day" yaml:"day"`
	Hour  float64 `json:"hour" yaml:"hour"`
}

// JulianDayOf converts a proleptic Gregorian date to a Julian day number.
// The Gregorian leap rule is applied to all dates, including those before
// the 1582 calendar reform.
func JulianDayOf(d CalendarDate) JulianDay {
	y, m := d.Year, d.Month
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(d.Day) + b - 1524.5 + d.Hour/24.0
	return JulianDay(jd)
}

// Calendar converts the instant back to a proleptic Gregorian date.
func (jd JulianDay) Calendar() CalendarDate {
	z := math.Floor(float64(jd) + 0.5)
	f := float64(jd) + 0.5 - z

	alpha := math.Floor((z - 1867216.25) / 36524.25)
	a := z + 1 + alpha - math.Floor(alpha/4)
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e) + f
	month := int(e) - 1
	if e >= 14 {
		month = int(e) - 13
	}
	year := int(c) - 4716
	if month <= 2 {
		year = int(c) - 4715
	}

	dayInt := math.Floor(day)
	return CalendarDate{
		Year:  year,
		Month: month,
		Day:   int(dayInt),
		Hour:  (day - dayInt) * 24,
	}
}

// FromTime converts a Go time to a Julian day number.
func FromTime(t time.Time) JulianDay {
	t = t.UTC()
	hour := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	return JulianDayOf(CalendarDate{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
		Hour:  hour,
	})
}

// String formats the instant as a human-readable date with BC/AD era,
// e.g. "23 Sep 2017 AD 12:00". Formatting is a presentation concern;
// internal arithmetic never round-trips through this.
func (jd JulianDay) String() string {
	d := jd.Calendar()
	era := "AD"
	year := d.Year
	if year <= 0 {
		era = "BC"
		year = 1 - year
	}
	h := int(d.Hour)
	m := int(math.Round((d.Hour - float64(h)) * 60))
	if m == 60 {
		h, m = h+1, 0
	}
	return fmt.Sprintf("%d %s %d %s %02d:%02d", d.Day, monthAbbrev(d.Month), year, era, h, m)
}

func monthAbbrev(m int) string {
	names := [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	if m < 1 || m > 12 {
		return "???"
	}
	return names[m-1]
}
