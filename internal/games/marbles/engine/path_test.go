package engine_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-marbles/internal/config"
	"github.com/vovakirdan/tui-marbles/internal/core"
	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
)

const eps = 1e-9

func TestNewLevelParamsShapesCycle(t *testing.T) {
	cfg := config.DefaultMarblesConfig()
	tests := []struct {
		level int
		a     float64
		maxT  float64
	}{
		{1, 25, 25},
		{2, 15, 32},
		{3, 65, 18},
		{4, 10, 40},
		{5, 80, 15},
		{6, 25, 25},
		{12, 15, 32},
	}
	for _, tt := range tests {
		p := engine.NewLevelParams(cfg, tt.level)
		if p.A != tt.a || p.MaxT != tt.maxT {
			t.Errorf("level %d: A=%v MaxT=%v, expected A=%v MaxT=%v", tt.level, p.A, p.MaxT, tt.a, tt.maxT)
		}
		// Radius at the mouth is always the board's max radius.
		if r := p.A + p.B*p.MaxT; math.Abs(r-140) > eps {
			t.Errorf("level %d: mouth radius = %v, expected 140", tt.level, r)
		}
	}
}

func TestQueueLengthLevelOne(t *testing.T) {
	p := engine.NewLevelParams(config.DefaultMarblesConfig(), 1)
	if p.QueueLen != 99 {
		t.Errorf("QueueLen = %d, expected 99", p.QueueLen)
	}
}

func TestQueueLengthCapped(t *testing.T) {
	cfg := config.DefaultMarblesConfig()
	p := engine.NewLevelParams(cfg, 200)
	if p.QueueLen != cfg.Chain.MaxQueue {
		t.Errorf("QueueLen = %d, expected cap %d", p.QueueLen, cfg.Chain.MaxQueue)
	}
}

func TestPaletteGrowsEveryTwoLevels(t *testing.T) {
	cfg := config.DefaultMarblesConfig()
	tests := []struct {
		level int
		want  []engine.Color
	}{
		{1, []engine.Color{engine.ColorRed, engine.ColorBlue, engine.ColorGreen}},
		{2, []engine.Color{engine.ColorRed, engine.ColorBlue, engine.ColorGreen, engine.ColorYellow}},
		{7, engine.AllColors()},
	}
	for _, tt := range tests {
		got := engine.NewLevelParams(cfg, tt.level).Palette()
		if len(got) != len(tt.want) {
			t.Fatalf("level %d: palette %v, expected %v", tt.level, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("level %d: palette[%d] = %v, expected %v", tt.level, i, got[i], tt.want[i])
			}
		}
	}
}

func TestPositionAtPitAndMouth(t *testing.T) {
	p := engine.NewLevelParams(config.DefaultMarblesConfig(), 1)

	pit := p.Position(0)
	if pit.Dist(core.V(185, 284)) > eps {
		t.Errorf("Position(0) = %v, expected (185, 284)", pit)
	}
	if d := p.Mouth().Dist(p.Center); math.Abs(d-140) > 1e-6 {
		t.Errorf("mouth distance from center = %v, expected 140", d)
	}
}

func TestSamplesAreLazyAndRestartable(t *testing.T) {
	p := engine.NewLevelParams(config.DefaultMarblesConfig(), 1)
	seq := p.Samples(0.5)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	first, second := count(), count()
	if first != second || first != 51 {
		t.Errorf("Samples(0.5) yielded %d then %d points, expected 51 both times", first, second)
	}

	for pt := range seq {
		if pt.Dist(p.Position(0)) > eps {
			t.Errorf("first sample = %v, expected pit %v", pt, p.Position(0))
		}
		break
	}

	for range p.Samples(0) {
		t.Fatal("Samples(0) should yield nothing")
	}
}

func TestGenerateQueueDeterministic(t *testing.T) {
	p := engine.NewLevelParams(config.DefaultMarblesConfig(), 3)
	a := engine.GenerateQueue(p, rand.New(rand.NewSource(7)))
	b := engine.GenerateQueue(p, rand.New(rand.NewSource(7)))

	if len(a) != p.QueueLen {
		t.Fatalf("len = %d, expected %d", len(a), p.QueueLen)
	}
	palette := map[engine.Color]bool{}
	for _, c := range p.Palette() {
		palette[c] = true
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("queues diverge at %d", i)
		}
		if !palette[a[i]] {
			t.Errorf("queue[%d] = %v, not in level palette", i, a[i])
		}
	}
}

func TestInitialWave(t *testing.T) {
	p := engine.NewLevelParams(config.DefaultMarblesConfig(), 1)
	colors := engine.GenerateQueue(p, rand.New(rand.NewSource(1)))

	chain, queue, nextID := engine.InitialWave(colors, p, 10)
	if len(chain) != 20 || queue.Len() != 79 {
		t.Fatalf("wave %d + queue %d, expected 20 + 79", len(chain), queue.Len())
	}
	if nextID != 30 {
		t.Errorf("nextID = %d, expected 30", nextID)
	}
	if tail, _ := chain.Tail(); tail.T != p.MaxT {
		t.Errorf("tail T = %v, expected mouth %v", tail.T, p.MaxT)
	}
	for i := 1; i < len(chain); i++ {
		if d := chain[i].T - chain[i-1].T; math.Abs(d-p.Spacing) > eps {
			t.Errorf("gap %d = %v, expected %v", i, d, p.Spacing)
		}
	}
	if queue[0] != colors[20] {
		t.Errorf("queue front = %v, expected colors[20] = %v", queue[0], colors[20])
	}
}

func TestColorNames(t *testing.T) {
	tests := []struct {
		color engine.Color
		name  string
		char  rune
	}{
		{engine.ColorRed, "red", 'R'},
		{engine.ColorBlue, "blue", 'B'},
		{engine.ColorGreen, "green", 'G'},
		{engine.ColorYellow, "yellow", 'Y'},
		{engine.ColorPurple, "purple", 'P'},
		{engine.ColorOrange, "orange", 'O'},
		{engine.ColorCount, "unknown", '?'},
	}

	for _, tt := range tests {
		if got := tt.color.String(); got != tt.name {
			t.Errorf("String() = %q, expected %q", got, tt.name)
		}
		if got := tt.color.Char(); got != tt.char {
			t.Errorf("%s.Char() = %q, expected %q", tt.name, got, tt.char)
		}
	}

	if got := engine.AllColors(); len(got) != int(engine.ColorCount) || got[0] != engine.ColorRed {
		t.Errorf("AllColors() = %v, expected the six colors from red", got)
	}
}
