package systems

import (
	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/ecs"
)

// matchRects 一场比赛中球和两块球拍的矩形
type matchRects struct {
	puckID ecs.EntityID
	puck   *components.RectComponent
	left   *components.RectComponent
	right  *components.RectComponent
}

// findMatchRects 查询球和左右球拍，任一缺失时返回 false
func findMatchRects(em *ecs.EntityManager) (matchRects, bool) {
	var m matchRects

	puckID, _, ok := ecs.First[*components.PuckComponent](em)
	if !ok {
		return m, false
	}
	m.puckID = puckID
	m.puck, ok = ecs.GetComponent[*components.RectComponent](em, puckID)
	if !ok {
		return m, false
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PaddleComponent, *components.RectComponent](em) {
		paddle, _ := ecs.GetComponent[*components.PaddleComponent](em, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](em, id)
		switch paddle.Side {
		case components.SideLeft:
			if m.left == nil {
				m.left = rect
			}
		case components.SideRight:
			if m.right == nil {
				m.right = rect
			}
		}
	}

	return m, m.left != nil && m.right != nil
}
