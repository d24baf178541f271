package scenes

import (
	"github.com/decker502/portfolio/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// PortfolioSceneName 工厂中页面场景的名称
const PortfolioSceneName = "portfolio"

// NewFactory 返回创建页面场景的工厂
func NewFactory(rm *game.ResourceManager, opts Options) game.SceneFactory {
	return func(name string) game.Scene {
		if name != PortfolioSceneName {
			return nil
		}
		return NewPortfolioScene(rm, opts)
	}
}
