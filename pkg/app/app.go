// Package app 提供页面应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/scenes"
	"github.com/decker502/portfolio/pkg/splash"
)

const (
	motionConfigPath  = "data/motion.yaml"
	contentConfigPath = "data/content.yaml"

	// minLayoutWidth/minLayoutHeight 窗口被拖得过小时的逻辑尺寸下限
	minLayoutWidth  = 320
	minLayoutHeight = 240
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ContentFile/MotionFile 磁盘上的覆盖文件，为空则使用嵌入版本
	ContentFile string
	MotionFile  string
	// SplashVariant 启动画面变体（"timer" 或 "timer+ready"），为空使用 motion.yaml 中的设置
	SplashVariant string
	// DisableReveal 关闭视口相交检测，内容直接显示
	DisableReveal bool
	// DisableCursor 关闭光标拖尾
	DisableCursor bool
}

// FromRuntime 从运行时配置构造
func FromRuntime(rc config.RuntimeConfig) Config {
	return Config{
		Verbose:       rc.Verbose,
		ContentFile:   rc.ContentFile,
		MotionFile:    rc.MotionFile,
		SplashVariant: rc.SplashVariant,
		DisableReveal: rc.DisableReveal,
		DisableCursor: rc.DisableCursor,
	}
}

// App 是页面应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool

	layoutW, layoutH int
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	opts, err := BuildOptions(cfg)
	if err != nil {
		return nil, err
	}

	resourceManager := game.NewResourceManager()

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewFactory(resourceManager, opts))
	if !sceneManager.Load(scenes.PortfolioSceneName) {
		return nil, fmt.Errorf("场景创建失败: %s", scenes.PortfolioSceneName)
	}

	log.Printf("[App] Started: %d sections, splash variant %s", len(opts.Content.Sections), opts.SplashVariant)

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// BuildOptions 加载配置文件并组装场景选项
func BuildOptions(cfg Config) (scenes.Options, error) {
	var opts scenes.Options

	motion, err := loadMotion(cfg.MotionFile)
	if err != nil {
		return opts, fmt.Errorf("动画配置加载失败: %w", err)
	}
	content, err := loadContent(cfg.ContentFile)
	if err != nil {
		return opts, fmt.Errorf("页面内容加载失败: %w", err)
	}

	// 命令行/环境变量优先于 motion.yaml
	name := cfg.SplashVariant
	if name == "" {
		name = motion.Splash.Variant
	}
	variant, err := splash.ParseVariant(name)
	if err != nil {
		return opts, err
	}

	opts = scenes.Options{
		Motion:        motion,
		Content:       content,
		SplashVariant: variant,
		DisableReveal: cfg.DisableReveal,
		DisableCursor: cfg.DisableCursor,
	}
	return opts, nil
}

func loadMotion(file string) (*config.MotionConfig, error) {
	if file != "" {
		log.Printf("[Config] 使用磁盘动画配置: %s", file)
		return config.LoadMotionConfigFile(file)
	}
	return config.LoadMotionConfig(motionConfigPath)
}

func loadContent(file string) (*config.ContentConfig, error) {
	if file != "" {
		log.Printf("[Config] 使用磁盘页面内容: %s", file)
		return config.LoadContentConfigFile(file)
	}
	return config.LoadContentConfig(contentConfigPath)
}

// Update 更新页面逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制页面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 页面随窗口重排，逻辑尺寸等于窗口尺寸；尺寸变化时通知场景
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := LayoutSize(outsideWidth, outsideHeight)
	if w != a.layoutW || h != a.layoutH {
		a.layoutW, a.layoutH = w, h
		a.sceneManager.Resize(w, h)
	}
	return w, h
}

// LayoutSize 把窗口尺寸限制在下限以上
func LayoutSize(outsideWidth, outsideHeight int) (int, int) {
	return max(outsideWidth, minLayoutWidth), max(outsideHeight, minLayoutHeight)
}

// Close 卸载当前场景（窗口关闭时调用）
func (a *App) Close() {
	a.sceneManager.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
