package systems

import (
	"testing"

	"github.com/gonewx/pong/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestPaddleVelocity(t *testing.T) {
	left := &components.ControlComponent{
		Schemes: []components.ControlScheme{
			{Up: ebiten.KeyQ, Down: ebiten.KeyA},
			{Up: ebiten.KeyW, Down: ebiten.KeyS},
		},
		Speed: 20,
	}
	right := &components.ControlComponent{
		Schemes: []components.ControlScheme{{Up: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown}},
		Speed:   20,
	}

	tests := []struct {
		name    string
		control *components.ControlComponent
		pressed []ebiten.Key
		want    int
	}{
		{"左侧无按键", left, nil, 0},
		{"左侧 Q 向上", left, []ebiten.Key{ebiten.KeyQ}, -20},
		{"左侧 A 向下", left, []ebiten.Key{ebiten.KeyA}, 20},
		{"左侧 W 向上", left, []ebiten.Key{ebiten.KeyW}, -20},
		{"左侧 S 向下", left, []ebiten.Key{ebiten.KeyS}, 20},
		{"上下同时按下时向下优先", left, []ebiten.Key{ebiten.KeyQ, ebiten.KeyA}, 20},
		{"跨方案同时按下时向下优先", left, []ebiten.Key{ebiten.KeyW, ebiten.KeyA}, 20},
		{"右侧方向键上", right, []ebiten.Key{ebiten.KeyArrowUp}, -20},
		{"右侧方向键下", right, []ebiten.Key{ebiten.KeyArrowDown}, 20},
		{"右侧忽略左侧按键", right, []ebiten.Key{ebiten.KeyQ, ebiten.KeyS}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := fakeKeys{}
			for _, k := range tt.pressed {
				keys[k] = true
			}
			if got := PaddleVelocity(keys, tt.control); got != tt.want {
				t.Errorf("PaddleVelocity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInputSystemUpdate(t *testing.T) {
	em, m := newTestMatch(t)
	keys := fakeKeys{ebiten.KeyQ: true, ebiten.KeyArrowDown: true}

	NewInputSystem(em, keys).Update()

	if v := mustVelocity(t, em, m.Left); v.YVel != -20 || v.XVel != 0 {
		t.Errorf("left velocity = (%d, %d), want (0, -20)", v.XVel, v.YVel)
	}
	if v := mustVelocity(t, em, m.Right); v.YVel != 20 || v.XVel != 0 {
		t.Errorf("right velocity = (%d, %d), want (0, 20)", v.XVel, v.YVel)
	}
	// 球没有 ControlComponent，速度不受影响
	if v := mustVelocity(t, em, m.Puck); v.XVel != 10 || v.YVel != 10 {
		t.Errorf("puck velocity = (%d, %d), want (10, 10)", v.XVel, v.YVel)
	}

	// 松开按键后速度归零
	clear(keys)
	NewInputSystem(em, keys).Update()
	if v := mustVelocity(t, em, m.Left); v.YVel != 0 {
		t.Errorf("left YVel = %d after release, want 0", v.YVel)
	}
}
