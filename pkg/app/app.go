// Package app 提供游戏应用的核心包装器
//
// 该包把配置、持久化、音频和场景组装成一个 ebiten.Game，
// main 包只负责解析命令行并运行它。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/game"
	"github.com/gonewx/pong/pkg/logging"
	"github.com/gonewx/pong/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
)

var appLog = logging.For("App")

// 全局热键
const (
	FullscreenKey  = ebiten.KeyF11   // 切换全屏
	SoundToggleKey = ebiten.KeyM     // 音效开关
	VolumeDownKey  = ebiten.KeyMinus // 音量 -0.1
	VolumeUpKey    = ebiten.KeyEqual // 音量 +0.1
)

const volumeStep = 0.1

// Config 定义应用启动配置
type Config struct {
	// ConfigPath 游戏配置文件路径，为空时使用内嵌的默认配置
	ConfigPath string
	// FontPath 覆盖配置中的比分字体
	FontPath string
	// NoSave 不读写设置与战绩
	NoSave bool
	// Mute 本次运行静音
	Mute bool
	// Console 比分与胜负输出，通常为 os.Stdout
	Console io.Writer
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig      *config.GameConfig
	sceneManager    *game.SceneManager
	matchScene      *scenes.MatchScene
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager
	recordManager   *game.RecordManager
	hotKeys         scenes.HotKeyReader

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	closed bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 中途失败时已获取的资源会被释放。
func NewApp(cfg Config) (*App, error) {
	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.FontPath != "" {
		gameConfig.Font.Path = cfg.FontPath
	}

	var storage *gdata.Manager
	if !cfg.NoSave {
		storage, err = game.OpenStorage(game.StorageAppName)
		if err != nil {
			// 降级模式：设置和战绩只保存在内存中
			appLog.WithError(err).Warn("persistent storage unavailable")
			storage = nil
		}
	}
	settingsManager := game.NewSettingsManager(storage)
	recordManager := game.NewRecordManager(storage)

	var audioContext *audio.Context
	if gameConfig.Audio.Enabled && !cfg.Mute {
		audioContext = audio.NewContext(game.SampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	audioManager.SetMasterVolume(gameConfig.Audio.Volume)

	resourceManager := game.NewResourceManager()

	matchScene, err := scenes.NewMatchScene(scenes.MatchSceneConfig{
		Game:      gameConfig,
		Resources: resourceManager,
		Audio:     audioManager,
		Console:   cfg.Console,
	})
	if err != nil {
		resourceManager.Release()
		audioManager.Close()
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(matchScene)

	appLog.WithField("record", recordManager.GetRecord()).Debug("app initialized")

	return &App{
		gameConfig:      gameConfig,
		sceneManager:    sceneManager,
		matchScene:      matchScene,
		resourceManager: resourceManager,
		audioManager:    audioManager,
		settingsManager: settingsManager,
		recordManager:   recordManager,
		hotKeys:         scenes.EbitenHotKeys{},
	}, nil
}

func loadGameConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		gameConfig, err := config.LoadDefault()
		if err != nil {
			return nil, fmt.Errorf("failed to load default config: %w", err)
		}
		return gameConfig, nil
	}

	gameConfig, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	appLog.WithField("path", path).Debug("config loaded")
	return gameConfig, nil
}

// ApplyWindowSettings 按配置和已保存的设置初始化窗口
// 必须在 ebiten.RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	w := a.gameConfig.Window
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(a.settingsManager.GetSettings().Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次；比赛结束时返回 ebiten.Termination
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if a.hotKeys.IsKeyJustPressed(FullscreenKey) {
		a.toggleFullscreen()
	}
	a.handleSoundKeys()

	deltaTime := 1.0 / 60.0
	return a.sceneManager.Update(deltaTime)
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	a.settingsManager.SetFullscreen(fullscreen)

	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}
	appLog.WithField("fullscreen", fullscreen).Debug("fullscreen toggled")
}

// handleSoundKeys 修改音效设置，退出时随全屏设置一起保存
func (a *App) handleSoundKeys() {
	sm := a.settingsManager
	settings := sm.GetSettings()

	if a.hotKeys.IsKeyJustPressed(SoundToggleKey) {
		sm.SetSoundEnabled(!settings.SoundEnabled)
		appLog.WithField("enabled", settings.SoundEnabled).Debug("sound toggled")
	}

	step := 0.0
	if a.hotKeys.IsKeyJustPressed(VolumeDownKey) {
		step -= volumeStep
	}
	if a.hotKeys.IsKeyJustPressed(VolumeUpKey) {
		step += volumeStep
	}
	if step != 0 {
		// 按十分位取整，避免浮点累积误差
		sm.SetSoundVolume(math.Round((settings.SoundVolume+step)*10) / 10)
		appLog.WithField("volume", settings.SoundVolume).Debug("sound volume changed")
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧留黑边
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// Close 记录比赛结果、释放资源并保存设置与战绩
// 只在第一次调用时生效
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	a.recordManager.Record(a.matchScene.Match())

	a.sceneManager.Close()
	a.resourceManager.Release()
	a.audioManager.Close()

	var errs []error
	if err := a.settingsManager.Save(); err != nil {
		errs = append(errs, err)
	}
	if err := a.recordManager.Save(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
