// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJulianDayOf_KnownEpochs(t *testing.T) {
	tests := []struct {
		name string
		date CalendarDate
		want float64
	}{
		{"J2000", CalendarDate{Year: 2000, Month: 1, Day: 1, Hour: 12}, 2451545.0},
		{"sputnik launch", CalendarDate{Year: 1957, Month: 10, Day: 4, Hour: 0.81 * 24}, 2436116.31},
		{"virgo alignment midnight", CalendarDate{Year: 2017, Month: 9, Day: 23}, 2458019.5},
		{"unix epoch", CalendarDate{Year: 1970, Month: 1, Day: 1}, 2440587.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDayOf(tt.date)
			assert.InDelta(t, tt.want, float64(got), 1e-6)
		})
	}
}

func TestJulianDay_CalendarRoundTrip(t *testing.T) {
	// Includes pre-epoch (negative and BC-era) instants; the proleptic
	// Gregorian rule must invert exactly everywhere.
	jds := []JulianDay{
		-1000.25,
		0.0,
		1280869.083,
		1720860.33,
		2436116.31,
		2451545.0,
		2458019.5,
	}
	for _, jd := range jds {
		back := JulianDayOf(jd.Calendar())
		assert.InDelta(t, float64(jd), float64(back), 1e-6, "round trip of JD %f", float64(jd))
	}
}

func TestJulianDayOf_BCYearNumbering(t *testing.T) {
	// Astronomical year 0 is 1 BC; the scale stays continuous across
	// the era boundary.
	dec31 := JulianDayOf(CalendarDate{Year: 0, Month: 12, Day: 31})
	jan1 := JulianDayOf(CalendarDate{Year: 1, Month: 1, Day: 1})
	assert.InDelta(t, 1.0, float64(jan1-dec31), 1e-9)
}

func TestFromTime(t *testing.T) {
	got := FromTime(time.Date(2017, 9, 23, 12, 0, 0, 0, time.UTC))
	assert.InDelta(t, 2458020.0, float64(got), 1e-6)

	// Non-UTC zones convert through UTC.
	loc := time.FixedZone("east", 2*3600)
	got = FromTime(time.Date(2017, 9, 23, 14, 0, 0, 0, loc))
	assert.InDelta(t, 2458020.0, float64(got), 1e-6)
}

func TestJulianDay_String(t *testing.T) {
	assert.Equal(t, "23 Sep 2017 AD 12:00", JulianDay(2458020.0).String())
	assert.Equal(t, "1 Jan 2000 AD 12:00", J2000.String())

	// Year 0 renders as 1 BC.
	bc := JulianDayOf(CalendarDate{Year: 0, Month: 3, Day: 15})
	assert.Contains(t, bc.String(), "BC")
}

func TestCenturiesSinceJ2000(t *testing.T) {
	assert.Equal(t, 0.0, J2000.CenturiesSinceJ2000())
	assert.InDelta(t, 1.0, J2000.Add(36525).CenturiesSinceJ2000(), 1e-12)
	assert.True(t, math.Signbit(J2000.Add(-1).CenturiesSinceJ2000()))
}

func TestEntryKey(t *testing.T) {
	key := EntryKey("revelation_12_sign", 2458019.5)
	assert.Equal(t, "revelation_12_sign@2458019.50000", key)

	// Re-deriving from the same instant reproduces the key exactly.
	assert.Equal(t, key, EntryKey("revelation_12_sign", JulianDay(2458019.5)))
}
