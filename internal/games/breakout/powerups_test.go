package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestRollDrop(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().PowerUps

	cfg.DropChance = 0
	pm := NewPowerUpManager(1, cfg)
	for range 100 {
		if _, ok := pm.RollDrop(); ok {
			t.Fatal("Drop chance 0 should never drop")
		}
	}

	cfg.DropChance = 100
	cfg.Weights = config.PowerUpWeights{ExtraLife: 1}
	pm = NewPowerUpManager(1, cfg)
	for range 100 {
		typ, ok := pm.RollDrop()
		if !ok || typ != PickupExtraLife {
			t.Fatalf("Drop chance 100 with one weight should always drop that pickup, got %v %v", typ, ok)
		}
	}
}

func TestRollDropDeterministic(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().PowerUps
	a := NewPowerUpManager(7, cfg)
	b := NewPowerUpManager(7, cfg)
	for i := range 200 {
		ta, oka := a.RollDrop()
		tb, okb := b.RollDrop()
		if ta != tb || oka != okb {
			t.Fatalf("Roll %d differs: %v/%v vs %v/%v", i, ta, oka, tb, okb)
		}
	}
}

func TestEffects(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().PowerUps
	pm := NewPowerUpManager(1, cfg)

	pm.AddEffect(EffectWiden, 0)
	if got := pm.PaddleWidth(9); got != 9+cfg.WidenAmount {
		t.Errorf("Widen: width %v", got)
	}

	pm.AddEffect(EffectShrink, 10)
	if pm.HasEffect(EffectWiden) {
		t.Error("Shrink should cancel widen")
	}
	if got := pm.PaddleWidth(5); got != cfg.MinPaddleWidth {
		t.Errorf("Shrink should clamp to the minimum width, got %v", got)
	}

	pm.AddEffect(EffectSpeedUp, 10)
	if got := pm.SpeedFactor(); got != cfg.SpeedFactor {
		t.Errorf("SpeedFactor() = %v, want %v", got, cfg.SpeedFactor)
	}
	pm.AddEffect(EffectSlowDown, 10)
	if got := pm.SpeedFactor(); got != 1/cfg.SpeedFactor {
		t.Errorf("SpeedFactor() = %v, want %v", got, 1/cfg.SpeedFactor)
	}

	expired := pm.ExpireEffects(10 + cfg.Duration)
	if len(expired) != 2 || len(pm.Effects()) != 0 {
		t.Errorf("All effects should expire, expired %v remaining %d", expired, len(pm.Effects()))
	}
	if got := pm.SpeedFactor(); got != 1 {
		t.Errorf("No effect should give factor 1, got %v", got)
	}
}

func TestEffectExtends(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().PowerUps
	pm := NewPowerUpManager(1, cfg)
	pm.AddEffect(EffectWiden, 0)
	pm.AddEffect(EffectWiden, 100)

	if len(pm.Effects()) != 1 {
		t.Fatalf("Repeated effect should extend, got %d effects", len(pm.Effects()))
	}
	if got := pm.Effects()[0].TicksRemaining(100); got != cfg.Duration {
		t.Errorf("TicksRemaining() = %d, want %d", got, cfg.Duration)
	}
}

func TestPickupGlyphs(t *testing.T) {
	seen := make(map[rune]bool)
	for p := range PickupCount {
		g := p.Glyph()
		if g == '?' || seen[g] {
			t.Errorf("Pickup %s has a missing or duplicate glyph %q", p, g)
		}
		seen[g] = true
	}
}

func TestPickupEffectMapping(t *testing.T) {
	for p := range PickupCount {
		e, timed := p.Effect()
		switch p {
		case PickupMultiball, PickupExtraLife:
			if timed {
				t.Errorf("%s should be instant, got effect %s", p, e)
			}
		default:
			if !timed || e.String() == "?" {
				t.Errorf("%s should start a labelled effect, got %s %v", p, e, timed)
			}
		}
	}
	if e, ok := PickupType(42).Effect(); ok {
		t.Errorf("Unknown pickup started effect %s", e)
	}
}

func TestOppositeEffects(t *testing.T) {
	pairs := map[EffectType]EffectType{
		EffectWiden:    EffectShrink,
		EffectShrink:   EffectWiden,
		EffectSpeedUp:  EffectSlowDown,
		EffectSlowDown: EffectSpeedUp,
	}
	for e, want := range pairs {
		if got := e.opposite(); got != want {
			t.Errorf("%s.opposite() = %s, want %s", e, got, want)
		}
	}
}

func TestSimpleRNG(t *testing.T) {
	a, b := NewSimpleRNG(0), NewSimpleRNG(1)
	if a.Next() != b.Next() {
		t.Error("Seed 0 should behave like seed 1")
	}

	r := NewSimpleRNG(99)
	for range 1000 {
		if v := r.Intn(7); v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d out of range", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v out of range", f)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}
