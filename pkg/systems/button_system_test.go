package systems

import (
	"testing"

	"github.com/decker502/mascot/pkg/components"
	"github.com/decker502/mascot/pkg/ecs"
)

func createTestButton(em *ecs.EntityManager, onClick func()) (ecs.EntityID, *components.ButtonComponent) {
	id := em.CreateEntity()
	button := &components.ButtonComponent{
		TextureKey: "spawn-button",
		Width:      180,
		Height:     56,
		Enabled:    true,
		OnClick:    onClick,
	}
	em.AddComponent(id, &components.PositionComponent{X: 100, Y: 50})
	em.AddComponent(id, button)
	return id, button
}

func TestButtonClick(t *testing.T) {
	tests := []struct {
		name       string
		downX      float64
		upX        float64
		wantClicks int
	}{
		{name: "press and release inside", downX: 150, upX: 200, wantClicks: 1},
		{name: "release outside cancels", downX: 150, upX: 400, wantClicks: 0},
		{name: "press outside", downX: 20, upX: 150, wantClicks: 0},
		{name: "right edge inclusive", downX: 280, upX: 280, wantClicks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			s := NewButtonSystem(em)
			clicks := 0
			createTestButton(em, func() { clicks++ })

			s.HandlePointerDown(tt.downX, 70)
			s.HandlePointerUp(tt.upX, 70)

			if clicks != tt.wantClicks {
				t.Errorf("Expected %d clicks, got %d", tt.wantClicks, clicks)
			}
		})
	}
}

func TestButtonStates(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewButtonSystem(em)
	_, button := createTestButton(em, nil)

	s.HandlePointerMove(150, 70)
	if button.State != components.UIHovered {
		t.Errorf("Expected UIHovered, got %v", button.State)
	}

	if !s.HandlePointerDown(150, 70) {
		t.Fatal("Press on enabled button should be consumed")
	}
	if button.State != components.UIClicked {
		t.Errorf("Expected UIClicked, got %v", button.State)
	}

	s.HandlePointerMove(500, 500)
	if button.State != components.UINormal {
		t.Errorf("Expected UINormal after leaving, got %v", button.State)
	}

	// nil 回调不应 panic
	s.HandlePointerMove(150, 70)
	s.HandlePointerUp(150, 70)
	if button.State != components.UIHovered {
		t.Errorf("Expected UIHovered after release, got %v", button.State)
	}
}

func TestButtonDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewButtonSystem(em)
	clicks := 0
	_, button := createTestButton(em, func() { clicks++ })

	button.Enabled = false
	s.Update(1.0 / 60)
	if button.State != components.UIDisabled {
		t.Errorf("Expected UIDisabled, got %v", button.State)
	}

	if s.HandlePointerDown(150, 70) {
		t.Error("Disabled button must not consume presses")
	}
	s.HandlePointerUp(150, 70)
	if clicks != 0 {
		t.Errorf("Disabled button fired %d clicks", clicks)
	}

	button.Enabled = true
	s.Update(1.0 / 60)
	if button.State != components.UINormal {
		t.Errorf("Re-enabled button should return to UINormal, got %v", button.State)
	}

	// 按下后被禁用，松开不再触发
	s.HandlePointerDown(150, 70)
	button.Enabled = false
	s.Update(1.0 / 60)
	s.HandlePointerUp(150, 70)
	if clicks != 0 {
		t.Errorf("Button disabled while pressed fired %d clicks", clicks)
	}
}
