package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/gonewx/pong/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内置默认配置在嵌入文件系统中的路径
const DefaultConfigPath = "data/config/pong.yaml"

// GameConfig 游戏配置
//
// 描述窗口、比赛规则、球与球拍的初始状态、按键、字体与音效。
// 默认值与原版 pong 的常量完全一致。
//
// 配置文件位置: data/config/pong.yaml
type GameConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Match   MatchConfig   `yaml:"match"`
	Puck    PuckConfig    `yaml:"puck"`
	Paddles PaddlesConfig `yaml:"paddles"`
	Font    FontConfig    `yaml:"font"`
	Audio   AudioConfig   `yaml:"audio"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background RGBA   `yaml:"background"` // 清屏颜色
}

// MatchConfig 比赛规则配置
type MatchConfig struct {
	// WinningScore 任意一方达到此分数即结束比赛
	WinningScore int `yaml:"winningScore"`

	// ScoreTextY 比分文字的顶部 Y 坐标（水平居中）
	ScoreTextY int `yaml:"scoreTextY"`

	// ScoreSeparator 左右比分之间的分隔字符串
	ScoreSeparator string `yaml:"scoreSeparator"`
}

// RectConfig 轴对齐矩形
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// VelocityConfig 速度（像素/帧）
type VelocityConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RGBA 颜色，YAML 中写作 {r, g, b, a}
type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Color 转换为 color.RGBA
func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// PuckConfig 球的配置
type PuckConfig struct {
	// Rect 初始位置与尺寸；得分后球重置到 Rect.X, Rect.Y
	Rect     RectConfig     `yaml:"rect"`
	Velocity VelocityConfig `yaml:"velocity"`
	Bounce   bool           `yaml:"bounce"`
	Color    RGBA           `yaml:"color"`
}

// PaddlesConfig 双方球拍配置
type PaddlesConfig struct {
	// Speed 按键时球拍的垂直速度大小
	Speed int          `yaml:"speed"`
	Left  PaddleConfig `yaml:"left"`
	Right PaddleConfig `yaml:"right"`
}

// PaddleConfig 单个球拍配置
type PaddleConfig struct {
	Rect     RectConfig      `yaml:"rect"`
	Color    RGBA            `yaml:"color"`
	Controls []ControlConfig `yaml:"controls"`
}

// ControlConfig 一套上/下按键
// 按键名称使用 Ebitengine 的命名（如 "Q", "ArrowUp"），大小写不敏感
type ControlConfig struct {
	Up   string `yaml:"up"`
	Down string `yaml:"down"`
}

// Keys 解析按键名称
func (c ControlConfig) Keys() (up, down ebiten.Key, err error) {
	if up, err = ParseKey(c.Up); err != nil {
		return 0, 0, err
	}
	if down, err = ParseKey(c.Down); err != nil {
		return 0, 0, err
	}
	return up, down, nil
}

// FontConfig 比分字体配置
type FontConfig struct {
	// Path TTF/OTF 文件路径，为空时使用内置字体
	Path  string  `yaml:"path"`
	Size  float64 `yaml:"size"`
	Color RGBA    `yaml:"color"`
}

// AudioConfig 音效配置
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// ParseKey 将按键名称解析为 ebiten.Key
func ParseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", name, err)
	}
	return key, nil
}

// Default 返回与原版常量一致的默认配置
func Default() *GameConfig {
	black := RGBA{A: 255}
	return &GameConfig{
		Window: WindowConfig{
			Title:      "pong",
			Width:      1080,
			Height:     720,
			Background: RGBA{R: 255, G: 255, B: 255, A: 255},
		},
		Match: MatchConfig{
			WinningScore:   10,
			ScoreTextY:     24,
			ScoreSeparator: "        ",
		},
		Puck: PuckConfig{
			Rect:     RectConfig{X: 530, Y: 350, W: 20, H: 20},
			Velocity: VelocityConfig{X: 10, Y: 10},
			Bounce:   true,
			Color:    black,
		},
		Paddles: PaddlesConfig{
			Speed: 20,
			Left: PaddleConfig{
				Rect:  RectConfig{X: 24, Y: 270, W: 20, H: 90},
				Color: RGBA{R: 255, A: 255},
				Controls: []ControlConfig{
					{Up: "Q", Down: "A"},
					{Up: "W", Down: "S"},
				},
			},
			Right: PaddleConfig{
				Rect:  RectConfig{X: 1036, Y: 270, W: 20, H: 90},
				Color: RGBA{B: 255, A: 255},
				Controls: []ControlConfig{
					{Up: "ArrowUp", Down: "ArrowDown"},
				},
			},
		},
		Font: FontConfig{
			Size:  64,
			Color: black,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// Parse 解析 YAML 配置
//
// 未出现在 YAML 中的字段保留 Default() 的值。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *GameConfig: 校验通过的配置
//   - error: 解析或校验失败时返回错误
func Parse(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Load 从文件系统加载配置
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	return Parse(data)
}

// LoadDefault 从嵌入文件系统加载内置配置
// 调用前必须先调用 embedded.Init()
func LoadDefault() (*GameConfig, error) {
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return Parse(data)
}

// Validate 验证配置有效性
//
// 检查：
//   - 窗口尺寸、获胜分数、字体大小为正
//   - 球与球拍的尺寸为正
//   - 球拍速度非负，且每个球拍至少有一套可解析的按键
//   - 音量在 0.0 ~ 1.0 之间
func (c *GameConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Match.WinningScore <= 0 {
		errs = append(errs, fmt.Errorf("winningScore must be positive, got %d", c.Match.WinningScore))
	}
	if c.Puck.Rect.W <= 0 || c.Puck.Rect.H <= 0 {
		errs = append(errs, fmt.Errorf("puck size must be positive, got %dx%d", c.Puck.Rect.W, c.Puck.Rect.H))
	}
	if c.Paddles.Speed < 0 {
		errs = append(errs, fmt.Errorf("paddle speed must not be negative, got %d", c.Paddles.Speed))
	}
	paddles := []struct {
		side string
		cfg  PaddleConfig
	}{
		{"left", c.Paddles.Left},
		{"right", c.Paddles.Right},
	}
	for _, pc := range paddles {
		side, p := pc.side, pc.cfg
		if p.Rect.W <= 0 || p.Rect.H <= 0 {
			errs = append(errs, fmt.Errorf("%s paddle size must be positive, got %dx%d", side, p.Rect.W, p.Rect.H))
		}
		if len(p.Controls) == 0 {
			errs = append(errs, fmt.Errorf("%s paddle has no controls", side))
		}
		for _, ctrl := range p.Controls {
			if _, _, err := ctrl.Keys(); err != nil {
				errs = append(errs, fmt.Errorf("%s paddle: %w", side, err))
			}
		}
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font size must be positive, got %.1f", c.Font.Size))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be within [0, 1], got %.2f", c.Audio.Volume))
	}

	return errors.Join(errs...)
}
