package systems

import (
	"slices"
	"testing"

	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/ecs"
)

func TestCheckAABBCollision(t *testing.T) {
	paddle := components.RectComponent{X: 24, Y: 270, W: 20, H: 90}

	tests := []struct {
		name string
		puck components.RectComponent
		want bool
	}{
		{"重叠", components.RectComponent{X: 40, Y: 300, W: 20, H: 20}, true},
		{"右边缘相接", components.RectComponent{X: 44, Y: 300, W: 20, H: 20}, false},
		{"左边缘相接", components.RectComponent{X: 4, Y: 300, W: 20, H: 20}, false},
		{"上边缘相接", components.RectComponent{X: 30, Y: 250, W: 20, H: 20}, false},
		{"在上方", components.RectComponent{X: 30, Y: 100, W: 20, H: 20}, false},
		{"空矩形", components.RectComponent{X: 30, Y: 300}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkAABBCollision(tt.puck, paddle); got != tt.want {
				t.Errorf("checkAABBCollision() = %v, want %v", got, tt.want)
			}
			if got := checkAABBCollision(paddle, tt.puck); got != tt.want {
				t.Errorf("checkAABBCollision() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionSystemLeftPaddle(t *testing.T) {
	em, m := newTestMatch(t)
	puck := mustRect(t, em, m.Puck)
	vel := mustVelocity(t, em, m.Puck)
	*puck = components.RectComponent{X: 40, Y: 300, W: 20, H: 20}
	vel.XVel = -10

	hits := NewCollisionSystem(em).Update()

	if !slices.Equal(hits, []components.Side{components.SideLeft}) {
		t.Errorf("hits = %v, want [Left]", hits)
	}
	if puck.X != 44 {
		t.Errorf("puck.X = %d, want 44", puck.X)
	}
	if vel.XVel != 10 {
		t.Errorf("XVel = %d, want 10", vel.XVel)
	}
}

func TestCollisionSystemRightPaddle(t *testing.T) {
	em, m := newTestMatch(t)
	puck := mustRect(t, em, m.Puck)
	vel := mustVelocity(t, em, m.Puck)
	*puck = components.RectComponent{X: 1030, Y: 300, W: 20, H: 20}

	hits := NewCollisionSystem(em).Update()

	if !slices.Equal(hits, []components.Side{components.SideRight}) {
		t.Errorf("hits = %v, want [Right]", hits)
	}
	if puck.X != 1016 {
		t.Errorf("puck.X = %d, want 1016", puck.X)
	}
	if vel.XVel != -10 || vel.YVel != 10 {
		t.Errorf("velocity = (%d, %d), want (-10, 10)", vel.XVel, vel.YVel)
	}
}

func TestCollisionSystemMiss(t *testing.T) {
	em, m := newTestMatch(t)
	puck := mustRect(t, em, m.Puck)
	*puck = components.RectComponent{X: 30, Y: 100, W: 20, H: 20}

	if hits := NewCollisionSystem(em).Update(); len(hits) != 0 {
		t.Errorf("hits = %v, want none", hits)
	}
	if puck.X != 30 {
		t.Errorf("puck.X = %d, want unchanged 30", puck.X)
	}
}

// TestCollisionSystemDoubleDeflection 两块球拍在同一帧都与球相交时两次反转
// 这是已知行为：球会被推回左拍左侧且 X 速度方向不变。
func TestCollisionSystemDoubleDeflection(t *testing.T) {
	em := ecs.NewEntityManager()

	puckID := em.CreateEntity()
	puck := &components.RectComponent{X: 110, Y: 300, W: 20, H: 20}
	vel := &components.VelocityComponent{XVel: 10, YVel: 10, HasBounce: true}
	em.AddComponent(puckID, puck)
	em.AddComponent(puckID, vel)
	em.AddComponent(puckID, &components.PuckComponent{SpawnX: 530, SpawnY: 350})

	for _, p := range []struct {
		side components.Side
		rect components.RectComponent
	}{
		{components.SideLeft, components.RectComponent{X: 100, Y: 0, W: 50, H: 720}},
		{components.SideRight, components.RectComponent{X: 120, Y: 0, W: 50, H: 720}},
	} {
		id := em.CreateEntity()
		rect := p.rect
		em.AddComponent(id, &rect)
		em.AddComponent(id, &components.PaddleComponent{Side: p.side})
	}

	hits := NewCollisionSystem(em).Update()

	if !slices.Equal(hits, []components.Side{components.SideLeft, components.SideRight}) {
		t.Fatalf("hits = %v, want [Left Right]", hits)
	}
	if puck.X != 100 {
		t.Errorf("puck.X = %d, want 100", puck.X)
	}
	if vel.XVel != 10 {
		t.Errorf("XVel = %d, want 10 (negated twice)", vel.XVel)
	}
}

func TestCollisionSystemMissingEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	if hits := NewCollisionSystem(em).Update(); hits != nil {
		t.Errorf("hits = %v, want nil", hits)
	}
}
