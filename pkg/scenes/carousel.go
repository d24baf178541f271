package scenes

import (
	"time"

	"github.com/decker502/portfolio/pkg/game"
)

// Carousel 推荐语轮播
// 自动播放计时器登记在 Lifecycle 上，卸载时一并清除
type Carousel struct {
	life     *game.Lifecycle
	count    int
	index    int
	interval time.Duration
	timer    game.TimerID
	// changedAt 最近一次切换时的 Lifecycle 时钟，用于切换淡入
	changedAt float64
}

// NewCarousel 创建轮播；interval <= 0 或条目少于两条时不自动播放
func NewCarousel(life *game.Lifecycle, count int, interval time.Duration) *Carousel {
	c := &Carousel{life: life, count: count, interval: interval, changedAt: -1}
	c.arm()
	return c
}

func (c *Carousel) arm() {
	if c.interval <= 0 || c.count < 2 {
		return
	}
	c.timer = c.life.After(c.interval, func() {
		c.timer = 0
		c.advance(1)
		c.arm()
	})
}

// Next 手动切到下一条，并重新计时
func (c *Carousel) Next() {
	if c.count == 0 {
		return
	}
	c.advance(1)
	c.restart()
}

// Prev 手动切到上一条
func (c *Carousel) Prev() {
	if c.count == 0 {
		return
	}
	c.advance(-1)
	c.restart()
}

func (c *Carousel) restart() {
	if c.timer != 0 {
		c.life.ClearTimer(c.timer)
		c.timer = 0
	}
	c.arm()
}

func (c *Carousel) advance(step int) {
	if c.count == 0 {
		return
	}
	c.index = ((c.index+step)%c.count + c.count) % c.count
	c.changedAt = c.life.Clock()
}

// Index 当前显示的条目
func (c *Carousel) Index() int {
	return c.index
}

// Count 条目数量
func (c *Carousel) Count() int {
	return c.count
}

// SinceChange 距离上次切换的秒数，从未切换时返回 -1
func (c *Carousel) SinceChange() float64 {
	if c.changedAt < 0 {
		return -1
	}
	return c.life.Clock() - c.changedAt
}
