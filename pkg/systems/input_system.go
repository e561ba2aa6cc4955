package systems

import (
	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyReader 键盘状态来源
type KeyReader interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeyReader 读取 ebiten 的实时键盘状态
type EbitenKeyReader struct{}

// IsKeyPressed 实现 KeyReader
func (EbitenKeyReader) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// InputSystem 根据键盘状态设置球拍的 Y 速度
type InputSystem struct {
	entityManager *ecs.EntityManager
	keys          KeyReader
}

// NewInputSystem 创建输入系统，keys 为 nil 时读取 ebiten 键盘
func NewInputSystem(em *ecs.EntityManager, keys KeyReader) *InputSystem {
	if keys == nil {
		keys = EbitenKeyReader{}
	}
	return &InputSystem{
		entityManager: em,
		keys:          keys,
	}
}

// Update 为每个拥有 Control + Velocity 的实体设置 Y 速度
func (s *InputSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.ControlComponent, *components.VelocityComponent](s.entityManager) {
		control, _ := ecs.GetComponent[*components.ControlComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		vel.YVel = PaddleVelocity(s.keys, control)
	}
}

// PaddleVelocity 计算球拍速度
// 任一套按键的“下”键按下 -> +Speed；否则任一“上”键按下 -> -Speed；否则 0
func PaddleVelocity(keys KeyReader, control *components.ControlComponent) int {
	for _, scheme := range control.Schemes {
		if keys.IsKeyPressed(scheme.Down) {
			return control.Speed
		}
	}
	for _, scheme := range control.Schemes {
		if keys.IsKeyPressed(scheme.Up) {
			return -control.Speed
		}
	}
	return 0
}
