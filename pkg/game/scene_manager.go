package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按名称创建场景，避免 app 与 scenes 之间的循环依赖
type SceneFactory func(name string) Scene

// SceneManager controls which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
// 旧场景若实现了 Unmounter，会先被卸载
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	sm.unmountCurrent()
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Load 通过工厂创建并切换到指定场景
func (sm *SceneManager) Load(name string) bool {
	log.Printf("[SceneManager] 加载场景: %s", name)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene := sm.sceneFactory(name)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return false
	}
	sm.SwitchTo(newScene)
	return true
}

// Close 卸载当前场景（程序退出时调用）
func (sm *SceneManager) Close() {
	sm.unmountCurrent()
	sm.currentScene = nil
}

func (sm *SceneManager) unmountCurrent() {
	if u, ok := sm.currentScene.(Unmounter); ok {
		u.Unmount()
	}
}

// Resize 把逻辑屏幕尺寸转发给当前场景
func (sm *SceneManager) Resize(width, height int) {
	if r, ok := sm.currentScene.(Resizable); ok {
		r.SetViewport(width, height)
	}
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
