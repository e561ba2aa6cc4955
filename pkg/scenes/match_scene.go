package scenes

import (
	"fmt"
	"image/color"
	"io"

	"github.com/atotto/clipboard"
	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/ecs"
	"github.com/gonewx/pong/pkg/entities"
	"github.com/gonewx/pong/pkg/game"
	"github.com/gonewx/pong/pkg/logging"
	"github.com/gonewx/pong/pkg/systems"
	"github.com/gonewx/pong/pkg/texture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

var matchLog = logging.For("MatchScene")

var (
	_ Scene       = (*MatchScene)(nil)
	_ game.Closer = (*MatchScene)(nil)
)

// CopyScoreKey 复制当前比分到剪贴板的按键
const CopyScoreKey = ebiten.KeyF5

// WindowEvents 窗口事件来源
type WindowEvents interface {
	IsWindowBeingClosed() bool
}

// HotKeyReader 读取“刚按下”的按键
type HotKeyReader interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

// Clipboard 剪贴板写入
type Clipboard interface {
	WriteAll(text string) error
}

type ebitenWindow struct{}

func (ebitenWindow) IsWindowBeingClosed() bool { return ebiten.IsWindowBeingClosed() }

// EbitenHotKeys 通过 inpututil 读取本帧刚按下的按键
type EbitenHotKeys struct{}

func (EbitenHotKeys) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// MatchSceneConfig 比赛场景依赖，nil 字段使用 ebiten/系统默认实现
type MatchSceneConfig struct {
	Game      *config.GameConfig
	Resources *game.ResourceManager
	Audio     *game.AudioManager // 可为 nil
	Console   io.Writer          // 比分行与胜负输出，nil 时丢弃

	Keys      systems.KeyReader
	Window    WindowEvents
	HotKeys   HotKeyReader
	Clipboard Clipboard
}

// MatchScene 一场双人对战
//
// 每次 Update 的顺序：
//  1. 检查上一帧留下的退出请求
//  2. 移动实体
//  3. 处理窗口关闭事件
//  4. 根据键盘设置球拍速度
//  5. 球与球拍碰撞
//  6. 计分与重置球
//  7. 重新渲染比分文字
//  8. 检查胜负
//
// 比赛结束后 Update 返回 ebiten.Termination。
type MatchScene struct {
	cfg           *config.GameConfig
	entityManager *ecs.EntityManager
	entities      entities.MatchEntities
	match         *game.MatchState

	motionSystem    *systems.MotionSystem
	inputSystem     *systems.InputSystem
	collisionSystem *systems.CollisionSystem
	scoreSystem     *systems.ScoreSystem
	renderSystem    *systems.RenderSystem

	scoreTexture      *texture.Texture
	renderedScoreText string
	fontColor         color.RGBA
	background        color.RGBA

	audio     *game.AudioManager
	console   io.Writer
	window    WindowEvents
	hotKeys   HotKeyReader
	clipboard Clipboard

	closed bool
}

// NewMatchScene 创建比赛场景
// 字体加载失败或实体创建失败时返回错误
func NewMatchScene(sc MatchSceneConfig) (*MatchScene, error) {
	if sc.Game == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if sc.Resources == nil {
		return nil, fmt.Errorf("resource manager cannot be nil")
	}
	cfg := sc.Game

	face, err := sc.Resources.LoadFont(cfg.Font.Path, cfg.Font.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to load score font: %w", err)
	}

	em := ecs.NewEntityManager()
	spawned, err := entities.SpawnMatchEntities(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn match entities: %w", err)
	}

	console := sc.Console
	if console == nil {
		console = io.Discard
	}
	match := game.NewMatchState(cfg.Match.WinningScore, cfg.Match.ScoreSeparator)

	s := &MatchScene{
		cfg:             cfg,
		entityManager:   em,
		entities:        spawned,
		match:           match,
		motionSystem:    systems.NewMotionSystem(em, cfg.Window.Width, cfg.Window.Height),
		inputSystem:     systems.NewInputSystem(em, sc.Keys),
		collisionSystem: systems.NewCollisionSystem(em),
		scoreSystem:     systems.NewScoreSystem(em, match, console),
		renderSystem:    systems.NewRenderSystem(em),
		scoreTexture:    texture.New(face),
		fontColor:       cfg.Font.Color.Color(),
		background:      cfg.Window.Background.Color(),
		audio:           sc.Audio,
		console:         console,
		window:          sc.Window,
		hotKeys:         sc.HotKeys,
		clipboard:       sc.Clipboard,
	}
	if s.window == nil {
		s.window = ebitenWindow{}
	}
	if s.hotKeys == nil {
		s.hotKeys = EbitenHotKeys{}
	}
	if s.clipboard == nil {
		s.clipboard = systemClipboard{}
	}

	matchLog.WithField("winningScore", cfg.Match.WinningScore).Debug("match scene created")
	return s, nil
}

// Match 返回比赛状态
func (s *MatchScene) Match() *game.MatchState {
	return s.match
}

// Update 推进一帧
func (s *MatchScene) Update(deltaTime float64) error {
	if s.match.ApplyQuit() {
		matchLog.WithField("reason", s.match.Reason()).Info("match terminated")
		return ebiten.Termination
	}

	for _, id := range s.motionSystem.Update() {
		if id == s.entities.Puck {
			s.audio.PlaySound(game.SoundWallBounce)
		}
	}

	if s.window.IsWindowBeingClosed() {
		matchLog.Debug("window close requested")
		s.match.RequestQuit()
	}
	if s.hotKeys.IsKeyJustPressed(CopyScoreKey) {
		s.copyScore()
	}

	s.inputSystem.Update()

	if hits := s.collisionSystem.Update(); len(hits) > 0 {
		s.audio.PlaySound(game.SoundPaddleHit)
	}

	if scored := s.scoreSystem.Update(); len(scored) > 0 {
		s.audio.PlaySound(game.SoundScore)
	}

	s.refreshScoreText()

	if winner, ok := s.match.CheckWinner(); ok {
		fmt.Fprintf(s.console, "%s Wins!\n", winner)
		s.audio.PlaySound(game.SoundWin)
		matchLog.WithFields(logrus.Fields{
			"winner": winner,
			"left":   s.match.LeftScore(),
			"right":  s.match.RightScore(),
		}).Info("match won")
		return ebiten.Termination
	}

	return nil
}

// Draw 清屏后绘制实体和比分
func (s *MatchScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.renderSystem.Draw(screen)

	x := (s.cfg.Window.Width - s.scoreTexture.Width()) / 2
	s.scoreTexture.Render(screen, x, s.cfg.Match.ScoreTextY, nil)
}

// Close 比分清零并释放比分纹理，可重复调用
func (s *MatchScene) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.match.Reset()
	s.scoreTexture.Free()
	s.renderedScoreText = ""
	matchLog.Debug("match scene closed")
	return nil
}

// refreshScoreText 比分变化时重新渲染，失败时保留旧纹理并在下一帧重试
func (s *MatchScene) refreshScoreText() {
	current := s.match.ScoreText()
	if current == s.renderedScoreText {
		return
	}
	if err := s.scoreTexture.LoadFromRenderedText(current, s.fontColor); err != nil {
		matchLog.WithError(err).Warn("unable to render score text")
		return
	}
	s.renderedScoreText = current
}

func (s *MatchScene) copyScore() {
	line := s.match.ScoreLine()
	if err := s.clipboard.WriteAll(line); err != nil {
		matchLog.WithError(err).Warn("failed to copy score to clipboard")
		return
	}
	matchLog.WithField("score", line).Info("score copied to clipboard")
}
