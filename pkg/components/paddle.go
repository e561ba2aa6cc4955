package components

import "github.com/hajimehoshi/ebiten/v2"

// Side 球拍所属的一方
type Side int

const (
	// SideLeft 左侧玩家
	SideLeft Side = iota
	// SideRight 右侧玩家
	SideRight
)

// String 返回 "Left" 或 "Right"，与控制台输出一致
func (s Side) String() string {
	if s == SideRight {
		return "Right"
	}
	return "Left"
}

// PaddleComponent 标记球拍实体
type PaddleComponent struct {
	Side Side
}

// ControlScheme 一套上/下按键
type ControlScheme struct {
	Up   ebiten.Key
	Down ebiten.Key
}

// ControlComponent 键盘控制
// 多套按键同时生效；任一“下”键按下优先于“上”键
type ControlComponent struct {
	Schemes []ControlScheme
	Speed   int // 按键时的速度大小（像素/帧）
}
