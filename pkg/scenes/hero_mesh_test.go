package scenes

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestBuildIcosphere(t *testing.T) {
	tests := []struct {
		name         string
		subdivisions int
		wantVerts    int
		wantEdges    int
	}{
		// V = 10·4^n + 2, E = 30·4^n
		{"正二十面体", 0, 12, 30},
		{"细分一次", 1, 42, 120},
		{"细分两次", 2, 162, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh, err := BuildIcosphere(context.Background(), tt.subdivisions)
			if err != nil {
				t.Fatalf("BuildIcosphere() error = %v", err)
			}
			if len(mesh.Vertices) != tt.wantVerts {
				t.Errorf("顶点数 = %d, 期望 %d", len(mesh.Vertices), tt.wantVerts)
			}
			if len(mesh.Edges) != tt.wantEdges {
				t.Errorf("边数 = %d, 期望 %d", len(mesh.Edges), tt.wantEdges)
			}
			for i, v := range mesh.Vertices {
				if r := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z); math.Abs(r-1) > 1e-9 {
					t.Fatalf("顶点 %d 不在单位球面上: r=%v", i, r)
				}
			}
		})
	}
}

func TestBuildIcosphereCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := BuildIcosphere(ctx, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("取消后 error = %v, 期望 context.Canceled", err)
	}
}

func TestHeroMeshProject(t *testing.T) {
	mesh, _ := BuildIcosphere(context.Background(), 1)
	segs := mesh.Project(0.7, 0.3, 400, 300, 100)

	if len(segs) != len(mesh.Edges) {
		t.Fatalf("线段数 = %d, 期望 %d", len(segs), len(mesh.Edges))
	}
	for _, s := range segs {
		for _, p := range [][2]float64{{s.X0, s.Y0}, {s.X1, s.Y1}} {
			if math.Hypot(p[0]-400, p[1]-300) > 100+1e-9 {
				t.Fatalf("投影点 %v 超出球的屏幕半径", p)
			}
		}
		if s.Depth < -1 || s.Depth > 1 {
			t.Fatalf("深度 %v 超出 [-1, 1]", s.Depth)
		}
	}
}
