//go:build !mobile

package utils

import "os"

// mobileEmulateEnv 设为 "1" 时桌面端按移动端处理输入（本地调试触摸行为）
const mobileEmulateEnv = "PORTFOLIO_MOBILE_EMULATE"

// IsMobile 检测当前是否按移动设备处理输入
func IsMobile() bool {
	return os.Getenv(mobileEmulateEnv) == "1"
}
