// Package splash 开场遮罩的显示时序
package splash

// Gate 双输入闸门
// 两个条件可以按任意顺序独立置位，二者都为真时才打开。
// 只读方法使用值接收者，Sequencer.Gate() 返回的快照可以直接查询
type Gate struct {
	timerElapsed bool
	contentReady bool
}

// SetTimerElapsed 最短显示时间已到
func (g *Gate) SetTimerElapsed() {
	g.timerElapsed = true
}

// SetContentReady 页面内容已就绪
func (g *Gate) SetContentReady() {
	g.contentReady = true
}

// TimerElapsed 最短显示时间是否已到
func (g Gate) TimerElapsed() bool {
	return g.timerElapsed
}

// ContentReady 内容是否已就绪
func (g Gate) ContentReady() bool {
	return g.contentReady
}

// Open 两个条件是否都已满足
func (g Gate) Open() bool {
	return g.timerElapsed && g.contentReady
}
