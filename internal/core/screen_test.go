package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.GetCell(3, 2).Rune; got != 'X' {
		t.Errorf("GetCell(3,2) = %q, want 'X'", got)
	}

	s.SetColored(4, 2, '@', ColorBrightRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '@' || cell.Color != ColorBrightRed {
		t.Errorf("SetColored not applied: %+v", cell)
	}

	// Out of bounds writes are ignored, reads return blanks
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'B')
	s.Set(0, 5, 'C')
	if got := s.GetCell(-1, 0).Rune; got != ' ' {
		t.Errorf("out-of-bounds GetCell = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '#', ColorYellow)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear left cell %+v", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(2, 1, 'Z')

	s.Resize(10, 6)
	if s.Width() != 10 || s.Height() != 6 {
		t.Fatalf("Resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if got := s.GetCell(2, 1).Rune; got != 'Z' {
		t.Errorf("content lost on grow: %q", got)
	}

	s.Resize(2, 2)
	if got := s.GetCell(1, 1).Rune; got != ' ' {
		t.Errorf("shrunk screen cell = %q", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(1, 1, "hello")

	if got := s.Row(1); !strings.Contains(got, "hello") {
		t.Errorf("Row(1) = %q, want to contain 'hello'", got)
	}

	// Clipped at the right edge, no panic
	s.DrawText(8, 0, "long")
	if got := s.GetCell(9, 0).Rune; got != 'o' {
		t.Errorf("clipped text cell = %q, want 'o'", got)
	}
}

func TestDrawTextWideRunes(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(0, 0, "ㄅㄆㄇ")

	if got := s.GetCell(0, 0).Rune; got != 'ㄅ' {
		t.Errorf("cell 0 = %q, want 'ㄅ'", got)
	}
	if got := s.GetCell(2, 0).Rune; got != 'ㄇ' {
		t.Errorf("cell 2 = %q, want 'ㄇ'", got)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(NewRect(1, 1, 5, 3))

	if got := s.GetCell(1, 1).Rune; got != '┌' {
		t.Errorf("top-left corner = %q", got)
	}
	if got := s.GetCell(5, 3).Rune; got != '┘' {
		t.Errorf("bottom-right corner = %q", got)
	}
	if got := s.GetCell(3, 1).Rune; got != '─' {
		t.Errorf("top edge = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
