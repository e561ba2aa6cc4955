package systems

import (
	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 把拥有 Rect + Color 的实体画成实心矩形
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 按创建顺序绘制（球、左拍、右拍）
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.RectComponent, *components.ColorComponent](s.entityManager) {
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		clr, _ := ecs.GetComponent[*components.ColorComponent](s.entityManager, id)

		vector.DrawFilledRect(screen,
			float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H),
			clr.Color, false)
	}
}
