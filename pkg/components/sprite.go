package components

import "image/color"

// ColorComponent 实体的绘制颜色，实体被绘制为实心矩形
type ColorComponent struct {
	Color color.RGBA
}
