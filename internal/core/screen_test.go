package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got, want := s.String(), "      \n      \n      "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 4)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.Set(p[0], p[1], 'X') // must not panic
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, want space", p[0], p[1], got)
		}
	}
	if got := s.Row(9); got != "    " {
		t.Errorf("Row(9) = %q, want blank row", got)
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{
			name: "text clipped at right edge",
			draw: func(s *Screen) { s.DrawText(5, 0, "score") },
			want: []string{"     sco", "        ", "        ", "        "},
		},
		{
			name: "centered text",
			draw: func(s *Screen) { s.DrawTextCentered(1, "hi") },
			want: []string{"        ", "   hi   ", "        ", "        "},
		},
		{
			name: "filled rect",
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 3, 2), '█') },
			want: []string{"        ", " ███    ", " ███    ", "        "},
		},
		{
			name: "box outline",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 5, 4)) },
			want: []string{"┌───┐   ", "│   │   ", "│   │   ", "└───┘   "},
		},
		{
			name: "fill then clear",
			draw: func(s *Screen) { s.Fill('*'); s.Clear() },
			want: []string{"        ", "        ", "        ", "        "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 4)
			tt.draw(s)
			if got := s.String(); got != strings.Join(tt.want, "\n") {
				t.Errorf("screen =\n%s\nwant\n%s", got, strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "stars")
	s.DrawText(0, 8, "ground")

	s.Resize(4, 3)
	if got := s.Row(0); got != "star" {
		t.Errorf("after shrink Row(0) = %q, want %q", got, "star")
	}

	s.Resize(12, 9)
	if got := s.Row(0); !strings.HasPrefix(got, "star ") {
		t.Errorf("after grow Row(0) = %q", got)
	}
	if got := s.Row(8); strings.TrimSpace(got) != "" {
		t.Errorf("cropped rows should come back blank, got %q", got)
	}
}

func TestScreenPen(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetPen(ColorRed)
	s.Set(1, 1, '@')
	s.DrawTextColor(3, 1, "ok", ColorYellow)
	s.Set(6, 1, '#')

	if c := s.GetCell(1, 1); c.Rune != '@' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, want red '@'", c)
	}
	if c := s.GetCell(3, 1); c.Color != ColorYellow {
		t.Errorf("DrawTextColor color = %v, want yellow", c.Color)
	}
	if c := s.GetCell(6, 1); c.Color != ColorRed {
		t.Error("DrawTextColor should leave the pen unchanged")
	}

	s.SetCell(0, 2, Cell{Rune: '*', Color: ColorBrightYellow})
	if c := s.GetCell(0, 2); c.Color != ColorBrightYellow {
		t.Errorf("SetCell color = %v", c.Color)
	}

	s.Clear()
	s.Set(0, 0, 'x')
	if c := s.GetCell(0, 0); c.Color != ColorDefault {
		t.Error("Clear should reset the pen")
	}
}
