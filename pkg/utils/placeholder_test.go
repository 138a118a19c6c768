package utils

import (
	"testing"

	"github.com/decker502/mascot/pkg/types"
)

func TestGazeOffsetMirrors(t *testing.T) {
	for _, d := range types.AllDirections() {
		dx, dy := GazeOffset(d)
		mx, my := GazeOffset(d.Mirror())
		if dx != -mx || dy != my {
			t.Errorf("GazeOffset(%v) = (%f, %f), mirrored (%f, %f)", d, dx, dy, mx, my)
		}
	}
	if dx, dy := GazeOffset(types.DirectionFront); dx != 0 || dy != 0 {
		t.Errorf("front should look straight ahead, got (%f, %f)", dx, dy)
	}
}

func TestPlaceholderColorStable(t *testing.T) {
	a := PlaceholderColor("karaage")
	b := PlaceholderColor("karaage")
	if a != b {
		t.Errorf("same key produced different colors: %v vs %v", a, b)
	}
	if PlaceholderColor("") != placeholderPalette.Unknown {
		t.Error("empty key should use the unknown color")
	}
	if a.A != 255 {
		t.Errorf("placeholder color should be opaque, got alpha %d", a.A)
	}
}
