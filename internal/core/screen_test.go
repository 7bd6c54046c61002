package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("NewScreen() = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	if got, expected := s.String(), strings.Repeat(strings.Repeat(" ", 12)+"\n", 3)+strings.Repeat(" ", 12); got != expected {
		t.Errorf("String() = %q, expected blank rows", got)
	}

	empty := NewScreen(-3, -1)
	if empty.Width() != 0 || empty.Height() != 0 || empty.String() != "" {
		t.Errorf("NewScreen(-3, -1) = %dx%d, expected 0x0", empty.Width(), empty.Height())
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')

	tests := []struct {
		x, y int
		want rune
	}{
		{5, 5, 'X'},
		{-1, 0, ' '},
		{10, 0, ' '},
		{0, -1, ' '},
		{0, 10, ' '},
	}

	for _, tt := range []struct{ x, y int }{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.Set(tt.x, tt.y, 'A')
	}
	for _, tt := range tests {
		if got := s.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("Get(%d, %d) = %q, expected %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScreenSetColoredAndClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 3, '●', ColorRed)

	if cell := s.GetCell(2, 3); cell != (ScreenCell{Rune: '●', Color: ColorRed}) {
		t.Errorf("GetCell(2, 3) = %+v, expected red marble", cell)
	}

	s.Clear()
	if c := s.GetCell(2, 3); c != (ScreenCell{Rune: ' '}) {
		t.Errorf("Clear() should reset color, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Hello")
	s.DrawText(18, 0, "Hello")
	s.DrawTextColored(0, 2, "×2 ok", ColorYellow)

	if got := s.Row(1); got != "  Hello             " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(0); !strings.HasSuffix(got, "He") {
		t.Errorf("Row(0) = %q, expected text clipped at the right edge", got)
	}
	if s.Get(0, 2) != '×' || s.Get(1, 2) != '2' {
		t.Errorf("multibyte text misplaced: %q", s.Row(2))
	}
	if s.GetCell(1, 2).Color != ColorYellow {
		t.Error("DrawTextColored should color every rune")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")
	s.DrawTextCenteredColored(3, "×××", ColorOrange)

	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("Row(2) = %q, expected Hi at column 9", s.Row(2))
	}
	// Centered by rune count, not bytes.
	if c := s.GetCell(8, 3); c.Rune != '×' || c.Color != ColorOrange {
		t.Errorf("GetCell(8, 3) = %+v, expected orange ×", c)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 5)
	for y := range 5 {
		s.DrawHLine(0, y, 8, 'x')
	}
	s.DrawBox(1, 1, 5, 3)

	expected := []string{
		"xxxxxxxx",
		"x┌───┐xx",
		"x│   │xx",
		"x└───┘xx",
		"xxxxxxxx",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}

	s.Clear()
	s.DrawBox(0, 0, 1, 4)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("DrawBox() narrower than 2 should draw nothing")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.Set(9, 9, 'Z')

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("Resize() = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if row0 := s.Row(0); row0 != "Hello   " {
		t.Errorf("Row(0) = %q, expected content preserved", row0)
	}

	s.Resize(15, 8)
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") || len(row0) != 15 {
		t.Errorf("Row(0) = %q after enlarging", row0)
	}
	if s.Get(9, 7) != ' ' {
		t.Error("cells cropped by the shrink should come back blank")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	for _, y := range []int{-1, 2} {
		if got := s.Row(y); got != "    " {
			t.Errorf("Row(%d) = %q, expected spaces", y, got)
		}
	}
}
