package game

import (
	"github.com/gonewx/pong/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
)

var sceneLog = logging.For("SceneManager")

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	closed       bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is closed if it holds resources.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		sm.closeScene(sm.currentScene)
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene and forwards its error.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(deltaTime)
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Close 释放当前场景的资源，只生效一次
func (sm *SceneManager) Close() {
	if sm.closed {
		return
	}
	sm.closed = true
	if sm.currentScene != nil {
		sm.closeScene(sm.currentScene)
	}
}

func (sm *SceneManager) closeScene(scene Scene) {
	closer, ok := scene.(Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		sceneLog.WithError(err).Warn("scene close failed")
	}
}
