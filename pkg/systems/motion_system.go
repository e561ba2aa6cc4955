package systems

import (
	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/ecs"
)

// MotionSystem 按速度逐帧移动实体，并处理屏幕边界
//
// 边界策略：
//   - X 方向：x > 屏幕宽 或 x < -w 时撤销这一步（允许球离开球场以便得分）
//   - Y 方向：y+h > 屏幕高 或 y < 0 时撤销这一步（实体始终完整留在屏幕内）
//
// 撤销后若实体 HasBounce，则反转对应速度分量。
type MotionSystem struct {
	entityManager *ecs.EntityManager
	screenWidth   int
	screenHeight  int
}

// NewMotionSystem 创建运动系统
func NewMotionSystem(em *ecs.EntityManager, screenWidth, screenHeight int) *MotionSystem {
	return &MotionSystem{
		entityManager: em,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
	}
}

// Update 按创建顺序移动所有拥有 Rect + Velocity 的实体
//
// 返回:
//   - []ecs.EntityID: 本帧碰到边界并反弹的实体
func (s *MotionSystem) Update() []ecs.EntityID {
	var bounced []ecs.EntityID

	for _, id := range ecs.GetEntitiesWith2[*components.RectComponent, *components.VelocityComponent](s.entityManager) {
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		if s.step(rect, vel) {
			bounced = append(bounced, id)
		}
	}

	return bounced
}

// step 移动单个实体，返回是否发生反弹
func (s *MotionSystem) step(rect *components.RectComponent, vel *components.VelocityComponent) bool {
	bounced := false

	rect.X += vel.XVel
	if rect.X > s.screenWidth || rect.X < -rect.W {
		rect.X -= vel.XVel
		if vel.HasBounce {
			vel.XVel = -vel.XVel
			bounced = true
		}
	}

	rect.Y += vel.YVel
	if rect.Bottom() > s.screenHeight || rect.Y < 0 {
		rect.Y -= vel.YVel
		if vel.HasBounce {
			vel.YVel = -vel.YVel
			bounced = true
		}
	}

	return bounced
}
