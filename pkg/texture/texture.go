// Package texture 封装一张可绘制的 ebiten 图像及其渲染参数
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // 注册 JPEG 解码器
	_ "image/png"  // 注册 PNG 解码器
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	// ErrNoFace 未设置字体时无法渲染文字
	ErrNoFace = errors.New("texture: no font face")
	// ErrEmptyText 空字符串无法渲染
	ErrEmptyText = errors.New("texture: empty text")
)

// ColorKey 加载图片时被替换为透明的颜色（青色）
var ColorKey = color.RGBA{R: 0, G: 255, B: 255, A: 255}

// FlipMode 翻转方式
type FlipMode int

const (
	FlipNone FlipMode = iota
	FlipHorizontal
	FlipVertical
	FlipBoth
)

// RenderOptions 渲染参数，nil 表示原样绘制
type RenderOptions struct {
	Clip   *image.Rectangle // 源图子区域，目标尺寸随之变化
	Angle  float64          // 顺时针旋转角度（度）
	Center *image.Point     // 旋转中心，相对绘制位置；nil 为中心点
	Flip   FlipMode
}

// Texture 持有一张图像以及颜色调制、透明度、混合模式
type Texture struct {
	image  *ebiten.Image
	width  int
	height int

	face text.Face

	r, g, b, a uint8
	blend      ebiten.Blend
}

// New 创建空纹理，face 用于 LoadFromRenderedText，可为 nil
func New(face text.Face) *Texture {
	return &Texture{
		face:  face,
		r:     255,
		g:     255,
		b:     255,
		a:     255,
		blend: ebiten.BlendSourceOver,
	}
}

// SetFace 替换渲染文字用的字体
func (t *Texture) SetFace(face text.Face) {
	t.face = face
}

// LoadFromFile 从文件加载 PNG/JPEG 图像，青色像素转为透明
// 原有图像先被释放，加载失败后纹理为空。
func (t *Texture) LoadFromFile(path string) error {
	t.Free()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	keyed := ApplyColorKey(img, ColorKey)
	t.image = ebiten.NewImageFromImage(keyed)
	t.width = keyed.Bounds().Dx()
	t.height = keyed.Bounds().Dy()
	return nil
}

// LoadFromRenderedText 用当前字体把 s 渲染成新图像
// 失败时保留原有图像。
func (t *Texture) LoadFromRenderedText(s string, clr color.Color) error {
	if s == "" {
		return ErrEmptyText
	}
	if t.face == nil {
		return ErrNoFace
	}

	w, h := text.Measure(s, t.face, 0)
	width, height := int(math.Ceil(w)), int(math.Ceil(h))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("texture: text %q measures %dx%d", s, width, height)
	}

	img := ebiten.NewImage(width, height)
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, s, t.face, op)

	t.Free()
	t.image = img
	t.width = width
	t.height = height
	return nil
}

// Render 在 (x, y) 绘制纹理，未持有图像时不做任何事
func (t *Texture) Render(dst *ebiten.Image, x, y int, opts *RenderOptions) {
	if t.image == nil {
		return
	}

	src := t.image
	w, h := t.width, t.height
	if opts != nil && opts.Clip != nil {
		clip := opts.Clip.Intersect(t.image.Bounds())
		if clip.Empty() {
			return
		}
		src = t.image.SubImage(clip).(*ebiten.Image)
		w, h = clip.Dx(), clip.Dy()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = renderGeoM(x, y, w, h, opts)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: t.r, G: t.g, B: t.b, A: t.a})
	op.Blend = t.blend
	dst.DrawImage(src, op)
}

// renderGeoM 计算翻转、旋转、平移后的变换矩阵
func renderGeoM(x, y, w, h int, opts *RenderOptions) ebiten.GeoM {
	var m ebiten.GeoM
	if opts == nil {
		m.Translate(float64(x), float64(y))
		return m
	}

	fw, fh := float64(w), float64(h)
	if opts.Flip == FlipHorizontal || opts.Flip == FlipBoth {
		m.Scale(-1, 1)
		m.Translate(fw, 0)
	}
	if opts.Flip == FlipVertical || opts.Flip == FlipBoth {
		m.Scale(1, -1)
		m.Translate(0, fh)
	}

	if opts.Angle != 0 {
		cx, cy := fw/2, fh/2
		if opts.Center != nil {
			cx, cy = float64(opts.Center.X), float64(opts.Center.Y)
		}
		m.Translate(-cx, -cy)
		m.Rotate(opts.Angle * math.Pi / 180)
		m.Translate(cx, cy)
	}

	m.Translate(float64(x), float64(y))
	return m
}

// ApplyColorKey 复制 img，把与 key 相同的像素替换为全透明
func ApplyColorKey(img image.Image, key color.RGBA) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)

	for i := 0; i+3 < len(out.Pix); i += 4 {
		p := out.Pix[i : i+4 : i+4]
		if p[0] == key.R && p[1] == key.G && p[2] == key.B && p[3] == 255 {
			p[0], p[1], p[2], p[3] = 0, 0, 0, 0
		}
	}
	return out
}

// Free 释放持有的图像，可重复调用
func (t *Texture) Free() {
	if t.image != nil {
		t.image.Deallocate()
		t.image = nil
	}
	t.width = 0
	t.height = 0
}

// SetColor 设置颜色调制
func (t *Texture) SetColor(r, g, b uint8) {
	t.r, t.g, t.b = r, g, b
}

// SetAlpha 设置透明度调制
func (t *Texture) SetAlpha(a uint8) {
	t.a = a
}

// SetBlendMode 设置混合模式
func (t *Texture) SetBlendMode(blend ebiten.Blend) {
	t.blend = blend
}

// Width 图像宽度，未持有图像时为 0
func (t *Texture) Width() int { return t.width }

// Height 图像高度，未持有图像时为 0
func (t *Texture) Height() int { return t.height }

// Loaded 是否持有图像
func (t *Texture) Loaded() bool { return t.image != nil }
