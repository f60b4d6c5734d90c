package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(5, 20, 1, 10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top row", 5, 20, true},
		{"middle", 5, 25, true},
		{"last row", 5, 29, true},
		{"just below", 5, 30, false},
		{"just above", 5, 19, false},
		{"left of column", 4, 25, false},
		{"right of column", 6, 25, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestMax(t *testing.T) {
	if Max(-3, 0) != 0 {
		t.Error("Max(-3, 0) should be 0")
	}
	if Max(7, 2) != 7 {
		t.Error("Max(7, 2) should be 7")
	}
}

func TestInputFrameMostRecentWins(t *testing.T) {
	f := NewInputFrame(16)
	if f.Has(ActionFlap) {
		t.Error("New frame should have no action")
	}

	f.Set(ActionFlap)
	f.Set(ActionPlay)
	if !f.Has(ActionPlay) || f.Has(ActionFlap) {
		t.Errorf("Later action should replace earlier one, got %v", f.Action)
	}
	if f.Has(ActionNone) {
		t.Error("Has(ActionNone) should always be false")
	}

	f.Clear()
	if f.Action != ActionNone || f.ElapsedMs != 0 {
		t.Errorf("Clear should reset frame, got %+v", f)
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("navy")
	if !ok || c != ColorNavy {
		t.Errorf("ParseColor(navy) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
	if _, ok := ColorDefault.ANSI(); ok {
		t.Error("ColorDefault should have no ANSI code")
	}
	if code, _ := ColorNavy.ANSI(); code != 17 {
		t.Errorf("ColorNavy.ANSI() = %d, expected 17", code)
	}
}
