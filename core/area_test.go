package core

import "testing"

func TestRect_Overlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"inside", Rect{X: 12, Y: 12, Width: 2, Height: 2}, true},
		{"partial right", Rect{X: 19, Y: 15, Width: 5, Height: 5}, true},
		{"touching right edge", Rect{X: 20, Y: 10, Width: 5, Height: 5}, false},
		{"touching bottom edge", Rect{X: 10, Y: 20, Width: 5, Height: 5}, false},
		{"far away", Rect{X: 100, Y: 100, Width: 5, Height: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestRect_Anchors(t *testing.T) {
	r := CenteredAt(50, 40, 10, 6)
	if r.X != 45 || r.Y != 37 {
		t.Errorf("CenteredAt gave (%d,%d), want (45,37)", r.X, r.Y)
	}
	cx, cy := r.Center()
	if cx != 50 || cy != 40 {
		t.Errorf("Center() = (%d,%d), want (50,40)", cx, cy)
	}

	s := MidBottomAt(400, 580, 52, 32)
	if s.Bottom() != 580 || s.Left() != 374 || s.Right() != 426 {
		t.Errorf("MidBottomAt gave %+v", s)
	}
}

func TestPlayMode(t *testing.T) {
	if ModeSingle.Players() != 1 || ModeMulti.Players() != 2 {
		t.Error("Unexpected player counts")
	}
	if ModeSingle.String() != "single" || ModeMulti.String() != "multi" {
		t.Error("Unexpected mode names")
	}
}
