package systems

import (
	"fmt"
	"io"

	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/ecs"
	"github.com/gonewx/pong/pkg/game"
	"github.com/gonewx/pong/pkg/logging"
)

var scoreLog = logging.For("ScoreSystem")

// ScoreSystem 判断得分并重置球
//
// 球越过右拍右边缘：左方得分；随后球完全越过左拍左边缘：右方得分。
// 得分后球回到出生点，速度保持不变；每次得分向控制台输出 "Left: L, Right: R"。
type ScoreSystem struct {
	entityManager *ecs.EntityManager
	match         *game.MatchState
	console       io.Writer
}

// NewScoreSystem 创建计分系统
//
// 参数:
//   - em: 实体管理器
//   - match: 比赛状态（比分）
//   - console: 比分行输出目标，nil 时不输出
func NewScoreSystem(em *ecs.EntityManager, match *game.MatchState, console io.Writer) *ScoreSystem {
	if console == nil {
		console = io.Discard
	}
	return &ScoreSystem{
		entityManager: em,
		match:         match,
		console:       console,
	}
}

// Update 执行本帧计分
//
// 返回:
//   - []components.Side: 本帧得分的一方（按检查顺序）
func (s *ScoreSystem) Update() []components.Side {
	m, ok := findMatchRects(s.entityManager)
	if !ok {
		return nil
	}
	puck, ok := ecs.GetComponent[*components.PuckComponent](s.entityManager, m.puckID)
	if !ok {
		return nil
	}

	var scored []components.Side

	if m.puck.X > m.right.Right() {
		if s.award(components.SideLeft, m.puck, puck) {
			scored = append(scored, components.SideLeft)
		}
	}

	if m.puck.Right() < m.left.X {
		if s.award(components.SideRight, m.puck, puck) {
			scored = append(scored, components.SideRight)
		}
	}

	return scored
}

func (s *ScoreSystem) award(side components.Side, rect *components.RectComponent, puck *components.PuckComponent) bool {
	if !s.match.Award(side) {
		return false
	}

	rect.X = puck.SpawnX
	rect.Y = puck.SpawnY

	line := s.match.ScoreLine()
	if _, err := fmt.Fprintln(s.console, line); err != nil {
		scoreLog.WithError(err).Warn("failed to write score line")
	}
	scoreLog.WithField("scorer", side).Debug(line)
	return true
}
