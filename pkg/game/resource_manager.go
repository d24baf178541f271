package game

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"
)

// FontID 字体标识
type FontID string

const (
	FontRegular FontID = "regular"
	FontMedium  FontID = "medium"
	FontBold    FontID = "bold"
	FontItalic  FontID = "italic"
)

// fontData 内置字体（Go 字体族，随二进制分发）
var fontData = map[FontID][]byte{
	FontRegular: goregular.TTF,
	FontMedium:  gomedium.TTF,
	FontBold:    gobold.TTF,
	FontItalic:  goitalic.TTF,
}

// PreloadJob 预加载任务
// Run 必须响应 ctx 取消
type PreloadJob struct {
	Name string
	Run  func(ctx context.Context) error
}

// ResourceManager 集中管理字体和预加载任务
//
// 字体源只解析一次，字号不同的 face 单独缓存。
// Preload 会并发执行任务，因此缓存由互斥锁保护。
//
// Usage:
//
//	rm := NewResourceManager()
//	done := rm.PreloadAsync(ctx, meshJob)
//	// 每帧非阻塞检查 done
//	face, err := rm.LoadFont(FontBold, 36)
type ResourceManager struct {
	mu            sync.Mutex
	sourceCache   map[FontID]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		sourceCache:   make(map[FontID]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// source 返回（必要时解析）字体源
func (rm *ResourceManager) source(id FontID) (*text.GoTextFaceSource, error) {
	rm.mu.Lock()
	src, ok := rm.sourceCache[id]
	rm.mu.Unlock()
	if ok {
		return src, nil
	}

	data, ok := fontData[id]
	if !ok {
		return nil, fmt.Errorf("unknown font %q", id)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", id, err)
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()
	// 并发解析时保留先写入的那一份
	if existing, ok := rm.sourceCache[id]; ok {
		return existing, nil
	}
	rm.sourceCache[id] = src
	return src, nil
}

// LoadFont 加载指定字体和字号的 face
//
// 参数:
//   - id: 字体标识
//   - size: 字号（逻辑像素）
func (rm *ResourceManager) LoadFont(id FontID, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", id, size)

	rm.mu.Lock()
	cached, exists := rm.fontFaceCache[cacheKey]
	rm.mu.Unlock()
	if exists {
		return cached, nil
	}

	src, err := rm.source(id)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    src,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}

	rm.mu.Lock()
	rm.fontFaceCache[cacheKey] = face
	rm.mu.Unlock()
	return face, nil
}

// GetFont 返回已缓存的 face，未加载时返回 nil
func (rm *ResourceManager) GetFont(id FontID, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", id, size)
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.fontFaceCache[cacheKey]
}

// MustFont 加载失败时退回常规字体
// 内置字体只有在 id 拼写错误时才会失败
func (rm *ResourceManager) MustFont(id FontID, size float64) *text.GoTextFace {
	face, err := rm.LoadFont(id, size)
	if err == nil {
		return face
	}
	log.Printf("[ResourceManager] 字体 %s 加载失败，使用常规字体: %v", id, err)
	face, err = rm.LoadFont(FontRegular, size)
	if err != nil {
		panic(fmt.Sprintf("built-in font unavailable: %v", err))
	}
	return face
}

// fontJobs 解析全部内置字体源
func (rm *ResourceManager) fontJobs() []PreloadJob {
	jobs := make([]PreloadJob, 0, len(fontData))
	for id := range fontData {
		jobs = append(jobs, PreloadJob{
			Name: "font:" + string(id),
			Run: func(ctx context.Context) error {
				if err := ctx.Err(); err != nil {
					return err
				}
				_, err := rm.source(id)
				return err
			},
		})
	}
	return jobs
}

// Preload 并发执行内置字体解析和额外任务，任一失败即取消其余任务
func (rm *ResourceManager) Preload(ctx context.Context, jobs ...PreloadJob) error {
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	all := append(rm.fontJobs(), jobs...)
	for _, job := range all {
		g.Go(func() error {
			if err := job.Run(gctx); err != nil {
				return fmt.Errorf("preload %s: %w", job.Name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Printf("[ResourceManager] 预加载完成: %d 个任务, 耗时 %v", len(all), time.Since(start))
	return nil
}

// PreloadAsync 在后台执行 Preload
// 返回的通道恰好收到一个结果后关闭
func (rm *ResourceManager) PreloadAsync(ctx context.Context, jobs ...PreloadJob) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- rm.Preload(ctx, jobs...)
	}()
	return done
}
