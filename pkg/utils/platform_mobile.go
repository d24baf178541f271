//go:build mobile

package utils

// IsMobile 移动端构建恒为 true
// 没有悬停光标，InputPoller 在手指抬起后保留最后的触摸位置
func IsMobile() bool {
	return true
}
