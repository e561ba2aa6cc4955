package systems

import (
	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/ecs"
	"github.com/gonewx/pong/pkg/logging"
)

var collisionLog = logging.For("CollisionSystem")

// CollisionSystem 处理球与球拍的碰撞
//
// 先检查左球拍、再检查右球拍，两次检查每帧都会执行。
// 击中左拍：球贴到左拍右侧；击中右拍：球贴到右拍左侧；X 速度反转。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{entityManager: em}
}

// Update 执行本帧碰撞检测
//
// 返回:
//   - []components.Side: 本帧被击中的球拍（按检查顺序）
func (s *CollisionSystem) Update() []components.Side {
	m, ok := findMatchRects(s.entityManager)
	if !ok {
		return nil
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, m.puckID)
	if !ok {
		return nil
	}

	var hits []components.Side

	if checkAABBCollision(*m.puck, *m.left) {
		m.puck.X = m.left.Right()
		vel.XVel = -vel.XVel
		hits = append(hits, components.SideLeft)
	}

	if checkAABBCollision(*m.puck, *m.right) {
		m.puck.X = m.right.X - m.puck.W
		vel.XVel = -vel.XVel
		hits = append(hits, components.SideRight)
	}

	if len(hits) > 1 {
		collisionLog.WithField("xVel", vel.XVel).Debug("puck deflected by both paddles in one tick")
	}

	return hits
}

// checkAABBCollision 检查两个矩形是否相交
// 边缘相接不算相交；宽或高为 0 的矩形不与任何矩形相交
func checkAABBCollision(a, b components.RectComponent) bool {
	if a.W <= 0 || a.H <= 0 || b.W <= 0 || b.H <= 0 {
		return false
	}
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}
