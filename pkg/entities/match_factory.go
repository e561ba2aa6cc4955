package entities

import (
	"fmt"

	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/ecs"
)

// MatchEntities 一局比赛的三个实体
type MatchEntities struct {
	Puck  ecs.EntityID
	Left  ecs.EntityID
	Right ecs.EntityID
}

// SpawnMatchEntities 按 球、左球拍、右球拍 的顺序创建实体
// 创建顺序即各系统的处理顺序
func SpawnMatchEntities(em *ecs.EntityManager, cfg *config.GameConfig) (MatchEntities, error) {
	var m MatchEntities
	var err error

	if cfg == nil {
		return m, fmt.Errorf("game config cannot be nil")
	}

	if m.Puck, err = NewPuckEntity(em, cfg.Puck); err != nil {
		return m, fmt.Errorf("failed to create puck: %w", err)
	}
	if m.Left, err = NewPaddleEntity(em, components.SideLeft, cfg.Paddles.Left, cfg.Paddles.Speed); err != nil {
		return m, fmt.Errorf("failed to create left paddle: %w", err)
	}
	if m.Right, err = NewPaddleEntity(em, components.SideRight, cfg.Paddles.Right, cfg.Paddles.Speed); err != nil {
		return m, fmt.Errorf("failed to create right paddle: %w", err)
	}

	return m, nil
}
