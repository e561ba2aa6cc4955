package components

// RectComponent 实体的轴对齐矩形（位置 + 尺寸，单位像素）
// 既是绘制区域，也是碰撞盒
type RectComponent struct {
	X int // 左上角 X
	Y int // 左上角 Y
	W int // 宽度
	H int // 高度
}

// Right 返回矩形右边缘的 X 坐标
func (r RectComponent) Right() int { return r.X + r.W }

// Bottom 返回矩形下边缘的 Y 坐标
func (r RectComponent) Bottom() int { return r.Y + r.H }
