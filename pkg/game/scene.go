package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	// Returning ebiten.Termination ends the game loop normally.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，持有资源的场景在游戏结束时释放它们
//
// SceneManager.Close() 会对当前场景调用一次 Close()，
// 无论比赛是因退出还是分出胜负而结束。
type Closer interface {
	Close() error
}
