package core

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / DefaultTickRate},
		{-5, time.Second / DefaultTickRate},
	}

	for _, tt := range tests {
		got := RuntimeConfig{TickRate: tt.rate}.TickInterval()
		if got != tt.want {
			t.Errorf("TickInterval() with rate %d = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorDefault, ""},
		{ColorBrightRed, "9"},
		{ColorOrange, "208"},
		{ColorBrown, "130"},
		{Color(200), ""},
	}

	for _, tt := range tests {
		if got := tt.color.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tt.color, got, tt.want)
		}
	}
}
