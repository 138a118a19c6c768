package utils

import (
	"math"
	"testing"

	"github.com/decker502/mascot/pkg/types"
)

// 角色贴图的未缩放尺寸
var testView = Size{Width: 400, Height: 400}

func TestResolveDirectionTable(t *testing.T) {
	// 横向分界：±200（视图半宽）、±100（正面区）
	// 纵向分界：y < -120 为上，y > 120 为下
	tests := []struct {
		name string
		x, y float64
		want types.Direction
	}{
		{name: "center", x: 0, y: 0, want: types.DirectionFront},
		{name: "up", x: 0, y: -150, want: types.DirectionUp},
		{name: "down", x: 0, y: 150, want: types.DirectionDown},
		{name: "left", x: -250, y: 0, want: types.DirectionLeft},
		{name: "right", x: 250, y: 0, want: types.DirectionRight},
		{name: "frontleft", x: -150, y: 0, want: types.DirectionFrontLeft},
		{name: "frontright", x: 150, y: 0, want: types.DirectionFrontRight},
		{name: "upleft corner", x: -250, y: -150, want: types.DirectionUpLeft},
		{name: "upright corner", x: 250, y: -150, want: types.DirectionUpRight},
		{name: "downleft corner", x: -250, y: 150, want: types.DirectionDownLeft},
		{name: "downright corner", x: 250, y: 150, want: types.DirectionDownRight},
		{name: "frontleft up collapses to upleft", x: -150, y: -150, want: types.DirectionUpLeft},
		{name: "frontleft down collapses to downleft", x: -150, y: 150, want: types.DirectionDownLeft},
		{name: "frontright up collapses to upright", x: 150, y: -150, want: types.DirectionUpRight},
		{name: "frontright down collapses to downright", x: 150, y: 150, want: types.DirectionDownRight},
		{name: "front area edge", x: 100, y: 0, want: types.DirectionFront},
		{name: "view edge is frontright", x: 200, y: 0, want: types.DirectionFrontRight},
		{name: "top margin edge", x: 0, y: -120, want: types.DirectionFront},
		{name: "far outside", x: -1e6, y: 1e6, want: types.DirectionDownLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDirection(Point{X: tt.x, Y: tt.y}, testView)
			if got != tt.want {
				t.Errorf("ResolveDirection(%.0f, %.0f) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestResolveDirectionTotalAndMirrored(t *testing.T) {
	reached := make(map[types.Direction]bool)

	for x := -600.0; x <= 600.0; x += 7.5 {
		for y := -600.0; y <= 600.0; y += 7.5 {
			d := ResolveDirection(Point{X: x, Y: y}, testView)
			if !d.IsValid() {
				t.Fatalf("(%f, %f) produced invalid direction %d", x, y, d)
			}
			reached[d] = true

			mirrored := ResolveDirection(Point{X: -x, Y: y}, testView)
			if mirrored != d.Mirror() {
				t.Fatalf("Mirror mismatch at (%f, %f): got %s and %s", x, y, d, mirrored)
			}
		}
	}

	if len(reached) != types.DirectionCount {
		t.Errorf("Expected all %d directions to be reachable, got %d", types.DirectionCount, len(reached))
	}
}

func TestResolveDirectionMalformedInput(t *testing.T) {
	nan := math.NaN()
	if got := ResolveDirection(Point{X: nan, Y: nan}, testView); got != types.DirectionFront {
		t.Errorf("NaN input should degrade to front, got %s", got)
	}
	if got := ResolveDirection(Point{X: math.Inf(1), Y: 0}, testView); got != types.DirectionRight {
		t.Errorf("+Inf x should be right, got %s", got)
	}
	if got := ResolveDirection(Point{}, Size{}); !got.IsValid() {
		t.Errorf("Zero-size view should still give a valid direction, got %d", got)
	}
}

func TestCustomResolver(t *testing.T) {
	r := DirectionResolver{MarginTop: 10, MarginBottom: 10, FrontAreaSide: 20}
	if got := r.Resolve(Point{X: 30, Y: 0}, testView); got != types.DirectionFrontRight {
		t.Errorf("Expected frontright with narrow front area, got %s", got)
	}
	if got := r.Resolve(Point{X: 0, Y: -150}, testView); got != types.DirectionFront {
		t.Errorf("Expected front with narrow top margin, got %s", got)
	}
}

func TestToLocalAndContains(t *testing.T) {
	local := ToLocal(Point{X: 170, Y: 80}, Point{X: 100, Y: 100}, 0.7, 0.7)
	if math.Abs(local.X-100) > 1e-9 || math.Abs(local.Y+28.571428571) > 1e-6 {
		t.Errorf("Unexpected local point %+v", local)
	}
	if !ContainsLocal(local, testView) {
		t.Error("Point should be inside the view")
	}
	if ContainsLocal(Point{X: 201, Y: 0}, testView) {
		t.Error("Point outside the half-width should not be contained")
	}

	zero := ToLocal(Point{X: 10, Y: 10}, Point{}, 0, 0)
	if zero.X != 10 || zero.Y != 10 {
		t.Errorf("Zero scale should be treated as 1, got %+v", zero)
	}
}
