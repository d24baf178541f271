package scenes

import (
	"context"
	"math"
)

// Vec3 三维点
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) normalize() Vec3 {
	l := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Segment 投影后的二维线段（屏幕坐标）
type Segment struct {
	X0, Y0, X1, Y1 float64
	// Depth 线段中点深度，-1 最远 1 最近，用于调整透明度
	Depth float64
}

// HeroMesh 首屏 3D 场景用的线框球体
//
// 网格在预加载阶段离开帧循环生成，帧循环只负责旋转和投影。
type HeroMesh struct {
	Vertices []Vec3
	Edges    [][2]int
}

// BuildIcosphere 细分正二十面体得到线框球
// 每次细分会检查 ctx，便于卸载时中止预加载
func BuildIcosphere(ctx context.Context, subdivisions int) (*HeroMesh, error) {
	t := (1 + math.Sqrt(5)) / 2
	verts := []Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range verts {
		verts[i] = verts[i].normalize()
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	for s := 0; s < subdivisions; s++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		midCache := make(map[[2]int]int)
		midpoint := func(a, b int) int {
			key := [2]int{min(a, b), max(a, b)}
			if idx, ok := midCache[key]; ok {
				return idx
			}
			va, vb := verts[a], verts[b]
			verts = append(verts, Vec3{(va.X + vb.X) / 2, (va.Y + vb.Y) / 2, (va.Z + vb.Z) / 2}.normalize())
			midCache[key] = len(verts) - 1
			return len(verts) - 1
		}

		next := make([][3]int, 0, len(faces)*4)
		for _, f := range faces {
			a := midpoint(f[0], f[1])
			b := midpoint(f[1], f[2])
			c := midpoint(f[2], f[0])
			next = append(next,
				[3]int{f[0], a, c},
				[3]int{f[1], b, a},
				[3]int{f[2], c, b},
				[3]int{a, b, c},
			)
		}
		faces = next
	}

	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, f := range faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			key := [2]int{min(a, b), max(a, b)}
			if !seen[key] {
				seen[key] = true
				edges = append(edges, key)
			}
		}
	}
	return &HeroMesh{Vertices: verts, Edges: edges}, nil
}

// Project 绕 Y 轴旋转 yaw、绕 X 轴倾斜 pitch 后正交投影
// (cx, cy) 为屏幕中心，radius 为球的屏幕半径
func (m *HeroMesh) Project(yaw, pitch, cx, cy, radius float64) []Segment {
	sy, cyaw := math.Sin(yaw), math.Cos(yaw)
	sp, cp := math.Sin(pitch), math.Cos(pitch)

	rotated := make([]Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		x := v.X*cyaw + v.Z*sy
		z := -v.X*sy + v.Z*cyaw
		y := v.Y*cp - z*sp
		z = v.Y*sp + z*cp
		rotated[i] = Vec3{x, y, z}
	}

	segs := make([]Segment, 0, len(m.Edges))
	for _, e := range m.Edges {
		a, b := rotated[e[0]], rotated[e[1]]
		segs = append(segs, Segment{
			X0:    cx + a.X*radius,
			Y0:    cy - a.Y*radius,
			X1:    cx + b.X*radius,
			Y1:    cy - b.Y*radius,
			Depth: (a.Z + b.Z) / 2,
		})
	}
	return segs
}
