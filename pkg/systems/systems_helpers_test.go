package systems

import (
	"testing"

	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/ecs"
	"github.com/gonewx/pong/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeKeys 测试用键盘状态
type fakeKeys map[ebiten.Key]bool

func (k fakeKeys) IsKeyPressed(key ebiten.Key) bool { return k[key] }

// newTestMatch 用默认配置创建球和两块球拍
func newTestMatch(t *testing.T) (*ecs.EntityManager, entities.MatchEntities) {
	t.Helper()
	em := ecs.NewEntityManager()
	m, err := entities.SpawnMatchEntities(em, config.Default())
	if err != nil {
		t.Fatalf("SpawnMatchEntities() error: %v", err)
	}
	return em, m
}

func mustRect(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.RectComponent {
	t.Helper()
	rect, ok := ecs.GetComponent[*components.RectComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no RectComponent", id)
	}
	return rect
}

func mustVelocity(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.VelocityComponent {
	t.Helper()
	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no VelocityComponent", id)
	}
	return vel
}
