package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/embedded"
	"github.com/decker502/portfolio/pkg/scenes"
	"github.com/decker502/portfolio/pkg/splash"
)

func initData(t *testing.T) {
	t.Helper()
	embedded.Init(os.DirFS("../.."))
}

func TestBuildOptionsFromEmbedded(t *testing.T) {
	initData(t)

	opts, err := BuildOptions(Config{})
	if err != nil {
		t.Fatalf("BuildOptions() error = %v", err)
	}
	if opts.SplashVariant != splash.VariantTimerAndReady {
		t.Errorf("SplashVariant = %v, 期望 timer+ready", opts.SplashVariant)
	}
	if len(opts.Content.Sections) == 0 {
		t.Error("期望加载到页面区块")
	}
	if opts.Motion.Splash.MinDisplayMs != config.DefaultMotionConfig().Splash.MinDisplayMs {
		t.Errorf("MinDisplayMs = %d", opts.Motion.Splash.MinDisplayMs)
	}
}

func TestBuildOptionsOverrides(t *testing.T) {
	initData(t)

	dir := t.TempDir()
	motionFile := filepath.Join(dir, "motion.yaml")
	if err := os.WriteFile(motionFile, []byte("splash:\n  variant: timer\n  minDisplayMs: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	contentFile := filepath.Join(dir, "content.yaml")
	content := "owner:\n  firstName: Test\nsections:\n  - id: about\n    title: About\n    kind: text\n"
	if err := os.WriteFile(contentFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := BuildOptions(Config{
		MotionFile:    motionFile,
		ContentFile:   contentFile,
		DisableReveal: true,
	})
	if err != nil {
		t.Fatalf("BuildOptions() error = %v", err)
	}
	if opts.Motion.Splash.MinDisplayMs != 500 {
		t.Errorf("MinDisplayMs = %d, 期望 500", opts.Motion.Splash.MinDisplayMs)
	}
	if len(opts.Content.Sections) != 1 || opts.Content.Sections[0].ID != "about" {
		t.Errorf("Sections = %+v", opts.Content.Sections)
	}
	if opts.SplashVariant != splash.VariantTimer {
		t.Errorf("SplashVariant = %v, 期望 timer", opts.SplashVariant)
	}
	if !opts.DisableReveal {
		t.Error("期望 DisableReveal 传递到场景选项")
	}

	// 显式变体优先于配置文件
	opts, err = BuildOptions(Config{MotionFile: motionFile, SplashVariant: "timer+ready"})
	if err != nil {
		t.Fatalf("BuildOptions() error = %v", err)
	}
	if opts.SplashVariant != splash.VariantTimerAndReady {
		t.Errorf("SplashVariant = %v, 期望 timer+ready", opts.SplashVariant)
	}
}

func TestBuildOptionsErrors(t *testing.T) {
	initData(t)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"未知变体", Config{SplashVariant: "fancy"}},
		{"动画配置不存在", Config{MotionFile: filepath.Join(t.TempDir(), "missing.yaml")}},
		{"内容不存在", Config{ContentFile: filepath.Join(t.TempDir(), "missing.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildOptions(tt.cfg); err == nil {
				t.Error("期望返回错误")
			}
		})
	}
}

func TestFromRuntime(t *testing.T) {
	rc := config.RuntimeConfig{
		Verbose:       true,
		ContentFile:   "c.yaml",
		MotionFile:    "m.yaml",
		SplashVariant: "timer",
		DisableCursor: true,
	}
	cfg := FromRuntime(rc)
	if !cfg.Verbose || cfg.ContentFile != "c.yaml" || cfg.MotionFile != "m.yaml" ||
		cfg.SplashVariant != "timer" || !cfg.DisableCursor || cfg.DisableReveal {
		t.Errorf("FromRuntime() = %+v", cfg)
	}
}

func TestLayoutSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"正常窗口", 1280, 720, 1280, 720},
		{"过窄", 100, 720, minLayoutWidth, 720},
		{"过矮", 1280, 10, 1280, minLayoutHeight},
		{"最小化", 0, 0, minLayoutWidth, minLayoutHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := LayoutSize(tt.w, tt.h)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("LayoutSize(%d, %d) = (%d, %d), 期望 (%d, %d)", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestNewAppLayoutAndClose(t *testing.T) {
	initData(t)

	a, err := NewApp(Config{Verbose: true})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	scene, ok := a.GetSceneManager().GetCurrentScene().(*scenes.PortfolioScene)
	if !ok {
		t.Fatal("期望当前场景为 PortfolioScene")
	}

	if w, h := a.Layout(1024, 768); w != 1024 || h != 768 {
		t.Errorf("Layout() = (%d, %d)", w, h)
	}
	if scene.Page() == nil || scene.Page().Width != 1024 {
		t.Fatal("期望 Layout 触发页面排版")
	}

	a.Layout(800, 600)
	if scene.Page().Width != 800 {
		t.Errorf("Page().Width = %v, 期望 800", scene.Page().Width)
	}

	a.Close()
	if scene.ListenerCount() != 0 || scene.PendingTimers() != 0 {
		t.Errorf("关闭后 listeners=%d timers=%d, 期望全部释放", scene.ListenerCount(), scene.PendingTimers())
	}
	if a.GetSceneManager().GetCurrentScene() != nil {
		t.Error("期望关闭后没有当前场景")
	}
}
