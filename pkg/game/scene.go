package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one full-screen view of the app.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Unmounter 是一个可选接口，场景被替换或程序退出时调用
//
// 实现此接口的场景应在 Unmount() 中释放所有监听器和计时器，
// 之后不得再修改任何状态。
type Unmounter interface {
	Unmount()
}

// Resizable 是一个可选接口，接收逻辑屏幕尺寸
// App.Layout 每帧调用，实现方应自行忽略未变化的尺寸
type Resizable interface {
	SetViewport(width, height int)
}
