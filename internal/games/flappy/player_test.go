package flappy

import (
	"math"
	"testing"

	"github.com/zhangkai803/flappy-bird/internal/config"
	"github.com/zhangkai803/flappy-bird/internal/core"
)

func TestPlayerGravityAndMove(t *testing.T) {
	tests := []struct {
		name    string
		y       int
		vel     float64
		wantY   int
		wantVel float64
	}{
		{"at rest", 25, 0, 25, 0.2},
		{"falling slowly", 25, 1.0, 26, 1.2},
		{"near the cap", 25, 1.9, 27, 2.1},
		{"at the cap", 25, 2.0, 27, 2.0},
		{"above the cap", 25, 3.0, 28, 3.0},
		{"rising", 25, -2.0, 24, -1.8},
		{"clamped at top", 0, -2.0, 0, -1.8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(config.DefaultFlappyConfig())
			p.Y = tc.y
			p.Velocity = tc.vel

			p.GravityAndMove()

			if p.Y != tc.wantY {
				t.Errorf("Y = %d, expected %d", p.Y, tc.wantY)
			}
			if math.Abs(p.Velocity-tc.wantVel) > epsilon {
				t.Errorf("Velocity = %v, expected %v", p.Velocity, tc.wantVel)
			}
		})
	}
}

func TestPlayerNeverAboveScreen(t *testing.T) {
	p := NewPlayer(config.DefaultFlappyConfig())
	for i := 0; i < 50; i++ {
		p.Flap()
		p.GravityAndMove()
		if p.Y < 0 {
			t.Fatalf("Y = %d after %d steps, expected >= 0", p.Y, i+1)
		}
	}
	if p.Y != 0 {
		t.Errorf("continuous flapping should pin the player at the top, Y = %d", p.Y)
	}
}

func TestPlayerFlapIsIdempotent(t *testing.T) {
	p := NewPlayer(config.DefaultFlappyConfig())
	p.Velocity = 1.6

	p.Flap()
	once := p.Velocity
	p.Flap()

	if once != -2.0 || p.Velocity != once {
		t.Errorf("Flap() twice = %v, once = %v, expected -2.0", p.Velocity, once)
	}
}

func TestPlayerRender(t *testing.T) {
	p := NewPlayer(config.DefaultFlappyConfig())
	dst := core.NewScreen(80, 50)

	p.Render(dst)

	want := core.Cell{Rune: '@', Fg: core.ColorYellow, Bg: core.ColorBlack}
	if got := dst.GetCell(5, 25); got != want {
		t.Errorf("GetCell(5, 25) = %+v, expected %+v", got, want)
	}
}

func TestObstacleWrapPeriod(t *testing.T) {
	o := NewObstacle(config.DefaultFlappyConfig())
	if o.X != 80 {
		t.Fatalf("X = %d, expected 80", o.X)
	}

	for i := 1; i <= 80; i++ {
		o.Move()
		if o.X <= 0 {
			t.Fatalf("X = %d after %d moves, expected > 0", o.X, i)
		}
		if i < 80 && o.X == 80 {
			t.Fatalf("wrapped early after %d moves", i)
		}
	}

	if o.X != 80 {
		t.Errorf("X = %d after 80 moves, expected 80", o.X)
	}
	if o.GapY != 20 || o.Size != 10 {
		t.Errorf("gap changed to %d+%d after wrapping", o.GapY, o.Size)
	}
}

func TestObstacleRender(t *testing.T) {
	o := NewObstacle(config.DefaultFlappyConfig())
	o.X = 40
	dst := core.NewScreen(80, 50)

	o.Render(dst)

	for y := 0; y < 50; y++ {
		inGap := y >= 20 && y < 30
		got := dst.Get(40, y)
		if inGap && got != ' ' {
			t.Errorf("row %d is inside the gap, got %q", y, got)
		}
		if !inGap && got != '|' {
			t.Errorf("row %d should be pipe, got %q", y, got)
		}
	}
	if dst.Get(39, 0) != ' ' || dst.Get(41, 0) != ' ' {
		t.Error("obstacle should occupy a single column")
	}
}

func TestObstacleGap(t *testing.T) {
	o := NewObstacle(config.DefaultFlappyConfig())
	o.X = 5

	gap := o.Gap()
	if gap != core.NewRect(5, 20, 1, 10) {
		t.Errorf("Gap() = %+v", gap)
	}
}
