package entities

import (
	"fmt"

	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/ecs"
)

// NewPuckEntity 创建球实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 球的配置（初始矩形、速度、是否反弹、颜色）
//
// 返回:
//   - ecs.EntityID: 创建的球实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewPuckEntity(em *ecs.EntityManager, cfg config.PuckConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.Rect.W <= 0 || cfg.Rect.H <= 0 {
		return 0, fmt.Errorf("invalid puck size %dx%d", cfg.Rect.W, cfg.Rect.H)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.RectComponent{
		X: cfg.Rect.X,
		Y: cfg.Rect.Y,
		W: cfg.Rect.W,
		H: cfg.Rect.H,
	})
	em.AddComponent(id, &components.VelocityComponent{
		XVel:      cfg.Velocity.X,
		YVel:      cfg.Velocity.Y,
		HasBounce: cfg.Bounce,
	})
	em.AddComponent(id, &components.PuckComponent{
		SpawnX: cfg.Rect.X,
		SpawnY: cfg.Rect.Y,
	})
	em.AddComponent(id, &components.ColorComponent{Color: cfg.Color.Color()})

	return id, nil
}
