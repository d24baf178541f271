package config

import (
	"github.com/caarlos0/env/v11"
)

// RuntimeConfig 运行时开关（环境变量，可被命令行参数覆盖）
type RuntimeConfig struct {
	Verbose       bool   `env:"PORTFOLIO_VERBOSE" envDefault:"false"`
	Fullscreen    bool   `env:"PORTFOLIO_FULLSCREEN" envDefault:"false"`
	ContentFile   string `env:"PORTFOLIO_CONTENT_FILE"`
	MotionFile    string `env:"PORTFOLIO_MOTION_FILE"`
	SplashVariant string `env:"PORTFOLIO_SPLASH_VARIANT"`
	// DisableReveal 模拟没有视口相交能力的环境
	DisableReveal bool `env:"PORTFOLIO_DISABLE_REVEAL" envDefault:"false"`
	DisableCursor bool `env:"PORTFOLIO_DISABLE_CURSOR" envDefault:"false"`
}

// ReadRuntime 从环境变量读取
func ReadRuntime() (RuntimeConfig, error) {
	return env.ParseAs[RuntimeConfig]()
}
