package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestFace(t *testing.T) *text.GoTextFace {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	require.NoError(t, err)
	return &text.GoTextFace{Source: source, Size: 64}
}

func TestApplyColorKey(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, ColorKey)
	src.Set(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	out := ApplyColorKey(src, ColorKey)

	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(0, 0), "cyan should become transparent")
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, out.NRGBAAt(1, 0))
	assert.Equal(t, ColorKey, src.RGBAAt(0, 0), "source must not be modified")
}

// TestApplyColorKeyOffsetBounds 源图边界不从 (0,0) 开始时输出从原点开始
func TestApplyColorKeyOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(6, 5, ColorKey)

	out := ApplyColorKey(src, ColorKey)

	assert.Equal(t, image.Rect(0, 0, 2, 1), out.Bounds())
	assert.Equal(t, uint8(0), out.NRGBAAt(1, 0).A)
}

func TestRenderGeoM(t *testing.T) {
	tests := []struct {
		name  string
		opts  *RenderOptions
		in    [2]float64
		wantX float64
		wantY float64
	}{
		{"无参数仅平移", nil, [2]float64{0, 0}, 100, 50},
		{"水平翻转左上角到右上角", &RenderOptions{Flip: FlipHorizontal}, [2]float64{0, 0}, 120, 50},
		{"垂直翻转左上角到左下角", &RenderOptions{Flip: FlipVertical}, [2]float64{0, 0}, 100, 60},
		{"双向翻转左上角到右下角", &RenderOptions{Flip: FlipBoth}, [2]float64{0, 0}, 120, 60},
		// 20x10 绕中心 (10,5) 顺时针 90 度：(0,0) -> (15,-5)
		{"绕中心旋转90度", &RenderOptions{Angle: 90}, [2]float64{0, 0}, 115, 45},
		// 绕左上角旋转 180 度：(20,10) -> (-20,-10)
		{"绕指定点旋转180度", &RenderOptions{Angle: 180, Center: &image.Point{}}, [2]float64{20, 10}, 80, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := renderGeoM(100, 50, 20, 10, tt.opts)
			x, y := m.Apply(tt.in[0], tt.in[1])
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestLoadFromRenderedTextErrors(t *testing.T) {
	tex := New(nil)

	assert.ErrorIs(t, tex.LoadFromRenderedText("", color.Black), ErrEmptyText)
	assert.ErrorIs(t, tex.LoadFromRenderedText("0        0", color.Black), ErrNoFace)
	assert.False(t, tex.Loaded())
}

// TestLoadFromRenderedTextKeepsStaleImage 渲染失败时保留上一次的图像
func TestLoadFromRenderedTextKeepsStaleImage(t *testing.T) {
	tex := New(newTestFace(t))
	require.NoError(t, tex.LoadFromRenderedText("1        0", color.Black))
	require.True(t, tex.Loaded())
	width, height := tex.Width(), tex.Height()
	assert.Positive(t, width)

	tex.SetFace(nil)
	assert.ErrorIs(t, tex.LoadFromRenderedText("2        0", color.Black), ErrNoFace)
	assert.True(t, tex.Loaded(), "stale image must be kept")
	assert.Equal(t, width, tex.Width())
	assert.Equal(t, height, tex.Height())

	assert.ErrorIs(t, tex.LoadFromRenderedText("", color.Black), ErrEmptyText)
	assert.True(t, tex.Loaded())
}

func TestLoadFromFileMissing(t *testing.T) {
	tex := New(nil)
	err := tex.LoadFromFile(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.False(t, tex.Loaded())
	assert.Zero(t, tex.Width())
}

func TestLoadFromFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	tex := New(nil)
	assert.Error(t, tex.LoadFromFile(path))
	assert.False(t, tex.Loaded())
}

func TestLoadFromFileAndFree(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 12, 7))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "sprite.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	tex := New(nil)
	require.NoError(t, tex.LoadFromFile(path))
	assert.True(t, tex.Loaded())
	assert.Equal(t, 12, tex.Width())
	assert.Equal(t, 7, tex.Height())

	tex.Free()
	assert.False(t, tex.Loaded())
	assert.Zero(t, tex.Width())
	assert.Zero(t, tex.Height())

	// 重复释放无副作用
	tex.Free()
	assert.False(t, tex.Loaded())
}

func TestModulationSetters(t *testing.T) {
	tex := New(nil)
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, [4]uint8{tex.r, tex.g, tex.b, tex.a})

	tex.SetColor(1, 2, 3)
	tex.SetAlpha(4)
	assert.Equal(t, [4]uint8{1, 2, 3, 4}, [4]uint8{tex.r, tex.g, tex.b, tex.a})
}
