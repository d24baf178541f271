package scenes

import (
	"math"
	"testing"
)

func TestScrollerClamp(t *testing.T) {
	s := NewScroller(0.8)
	s.SetLimit(3000, 720)

	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"向上越界", -100, 0},
		{"正常滚动", 500, 500},
		{"向下越界", 5000, 2280},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.By(tt.delta)
			if got := s.Offset(); got != tt.want {
				t.Errorf("Offset() = %v, 期望 %v", got, tt.want)
			}
		})
	}
}

func TestScrollerShortPage(t *testing.T) {
	s := NewScroller(0.8)
	s.SetLimit(500, 720)
	s.By(100)
	if s.Offset() != 0 || s.Max() != 0 {
		t.Errorf("内容比视口短时不应滚动: offset=%v max=%v", s.Offset(), s.Max())
	}
}

func TestScrollerSmoothScroll(t *testing.T) {
	s := NewScroller(0.8)
	s.SetLimit(5000, 720)
	s.ScrollTo(1200)

	if !s.Animating() {
		t.Fatal("ScrollTo 后应处于平滑滚动中")
	}

	prev := s.Offset()
	for i := 0; i < 60; i++ {
		s.Update(1.0 / 60)
		if s.Offset() < prev {
			t.Fatalf("第 %d 帧滚动回退: %v < %v", i, s.Offset(), prev)
		}
		prev = s.Offset()
	}
	if math.Abs(s.Offset()-1200) > 1e-9 || s.Animating() {
		t.Errorf("0.8s 后 offset=%v animating=%v, 期望停在 1200", s.Offset(), s.Animating())
	}
}

func TestScrollerManualCancelsSmooth(t *testing.T) {
	s := NewScroller(0.8)
	s.SetLimit(5000, 720)
	s.ScrollTo(2000)
	s.Update(0.1)

	s.By(-10)
	if s.Animating() {
		t.Error("手动滚动应取消平滑滚动")
	}
	at := s.Offset()
	s.Update(0.5)
	if s.Offset() != at {
		t.Errorf("取消后不应继续移动: %v -> %v", at, s.Offset())
	}
}
