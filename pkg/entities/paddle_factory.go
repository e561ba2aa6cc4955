package entities

import (
	"fmt"

	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/ecs"
)

// NewPaddleEntity 创建球拍实体
// 球拍初始静止、不反弹，只通过键盘改变垂直速度
//
// 参数:
//   - em: 实体管理器
//   - side: 所属一方
//   - cfg: 球拍配置（矩形、颜色、按键）
//   - speed: 按键时的速度大小
//
// 返回:
//   - ecs.EntityID: 创建的球拍实体ID，如果失败返回 0
//   - error: 如果按键无法解析或参数非法返回错误
func NewPaddleEntity(em *ecs.EntityManager, side components.Side, cfg config.PaddleConfig, speed int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.Rect.W <= 0 || cfg.Rect.H <= 0 {
		return 0, fmt.Errorf("invalid %s paddle size %dx%d", side, cfg.Rect.W, cfg.Rect.H)
	}

	schemes := make([]components.ControlScheme, 0, len(cfg.Controls))
	for _, ctrl := range cfg.Controls {
		up, down, err := ctrl.Keys()
		if err != nil {
			return 0, fmt.Errorf("%s paddle controls: %w", side, err)
		}
		schemes = append(schemes, components.ControlScheme{Up: up, Down: down})
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.RectComponent{
		X: cfg.Rect.X,
		Y: cfg.Rect.Y,
		W: cfg.Rect.W,
		H: cfg.Rect.H,
	})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.PaddleComponent{Side: side})
	em.AddComponent(id, &components.ControlComponent{
		Schemes: schemes,
		Speed:   speed,
	})
	em.AddComponent(id, &components.ColorComponent{Color: cfg.Color.Color()})

	return id, nil
}
