package config

import "testing"

func TestReadRuntime(t *testing.T) {
	t.Setenv("PORTFOLIO_VERBOSE", "true")
	t.Setenv("PORTFOLIO_SPLASH_VARIANT", "timer")
	t.Setenv("PORTFOLIO_DISABLE_REVEAL", "1")
	t.Setenv("PORTFOLIO_CONTENT_FILE", "/tmp/content.yaml")

	rc, err := ReadRuntime()
	if err != nil {
		t.Fatalf("ReadRuntime() error = %v", err)
	}
	if !rc.Verbose || !rc.DisableReveal {
		t.Errorf("布尔开关未生效: %+v", rc)
	}
	if rc.Fullscreen || rc.DisableCursor {
		t.Errorf("未设置的开关应为 false: %+v", rc)
	}
	if rc.SplashVariant != "timer" || rc.ContentFile != "/tmp/content.yaml" {
		t.Errorf("字符串字段不符: %+v", rc)
	}
}

func TestReadRuntime_BadBool(t *testing.T) {
	t.Setenv("PORTFOLIO_FULLSCREEN", "maybe")
	if _, err := ReadRuntime(); err == nil {
		t.Error("期望无法解析的布尔值返回错误")
	}
}
