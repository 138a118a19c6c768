package types

import "testing"

func TestDirectionCount(t *testing.T) {
	all := AllDirections()
	if len(all) != DirectionCount {
		t.Fatalf("Expected %d directions, got %d", DirectionCount, len(all))
	}

	seen := make(map[string]bool)
	for _, d := range all {
		if !d.IsValid() {
			t.Errorf("Direction %d should be valid", d)
		}
		if seen[d.String()] {
			t.Errorf("Duplicate direction name %q", d.String())
		}
		seen[d.String()] = true
	}
}

func TestDirectionDefaultsToFront(t *testing.T) {
	var d Direction
	if d != DirectionFront {
		t.Errorf("Zero value should be front, got %s", d)
	}
}

func TestDirectionMirror(t *testing.T) {
	tests := []struct {
		in   Direction
		want Direction
	}{
		{DirectionFront, DirectionFront},
		{DirectionUp, DirectionUp},
		{DirectionDown, DirectionDown},
		{DirectionLeft, DirectionRight},
		{DirectionFrontLeft, DirectionFrontRight},
		{DirectionUpLeft, DirectionUpRight},
		{DirectionDownLeft, DirectionDownRight},
	}

	for _, tt := range tests {
		if got := tt.in.Mirror(); got != tt.want {
			t.Errorf("%s.Mirror() = %s, want %s", tt.in, got, tt.want)
		}
		if got := tt.want.Mirror(); got != tt.in {
			t.Errorf("%s.Mirror() = %s, want %s", tt.want, got, tt.in)
		}
	}
}

func TestDirectionTextureName(t *testing.T) {
	tests := []struct {
		in   Direction
		want string
	}{
		{DirectionFront, "bocchi-front"},
		{DirectionUpLeft, "bocchi-upleft"},
		{DirectionDownRight, "bocchi-downright"},
		{Direction(99), "bocchi-front"},
	}

	for _, tt := range tests {
		if got := tt.in.TextureName(); got != tt.want {
			t.Errorf("TextureName(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestActivityStateString(t *testing.T) {
	if StateEating.String() != "Eating" || ActivityState(42).String() != "Unknown" {
		t.Error("Unexpected ActivityState names")
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range AllDirections() {
		if got, ok := ParseDirection(d.String()); !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
		if got, ok := ParseDirection(d.TextureName()); !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.TextureName(), got, ok)
		}
	}
	if _, ok := ParseDirection("back"); ok {
		t.Error("back is not a direction")
	}
}
