// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitt/sky-engine/pkg/types"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		in   string
		want types.JulianDay
	}{
		{"2458019.5", 2458019.5},
		{"2451545", 2451545},
		{"-1000.25", -1000.25},
		{"2017-09-23", types.JulianDayOf(types.CalendarDate{Year: 2017, Month: 9, Day: 23})},
		{"-1206-10-30", types.JulianDayOf(types.CalendarDate{Year: -1206, Month: 10, Day: 30})},
	}
	for _, tt := range tests {
		got, err := parseInstant(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseInstant_Invalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2017/09/23"} {
		_, err := parseInstant(in)
		assert.Error(t, err, in)
	}
}
