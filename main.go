package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/decker502/portfolio/pkg/app"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/embedded"
)

func main() {
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Animated single-page portfolio",
		RunE:  run,
	}

	flags := rootCmd.Flags()
	flags.BoolP("verbose", "v", false, "启用详细日志")
	flags.Bool("fullscreen", false, "全屏启动")
	flags.String("content", "", "页面内容 YAML（覆盖嵌入版本）")
	flags.String("motion", "", "动画参数 YAML（覆盖嵌入版本）")
	flags.String("splash", "", "启动画面变体: timer | timer+ready")
	flags.Bool("no-reveal", false, "关闭滚动显现，内容直接可见")
	flags.Bool("no-cursor", false, "关闭光标拖尾")
	return rootCmd
}

func run(cmd *cobra.Command, _ []string) error {
	rc, err := config.ReadRuntime()
	if err != nil {
		return fmt.Errorf("环境变量解析失败: %w", err)
	}
	applyFlags(cmd, &rc)

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.FromRuntime(rc))
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(rc.Fullscreen)

	return ebiten.RunGame(gameApp)
}

// applyFlags 命令行参数覆盖环境变量（仅显式设置的参数）
func applyFlags(cmd *cobra.Command, rc *config.RuntimeConfig) {
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		rc.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("fullscreen") {
		rc.Fullscreen, _ = flags.GetBool("fullscreen")
	}
	if flags.Changed("content") {
		rc.ContentFile, _ = flags.GetString("content")
	}
	if flags.Changed("motion") {
		rc.MotionFile, _ = flags.GetString("motion")
	}
	if flags.Changed("splash") {
		rc.SplashVariant, _ = flags.GetString("splash")
	}
	if flags.Changed("no-reveal") {
		rc.DisableReveal, _ = flags.GetBool("no-reveal")
	}
	if flags.Changed("no-cursor") {
		rc.DisableCursor, _ = flags.GetBool("no-cursor")
	}
}
