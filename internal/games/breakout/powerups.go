package breakout

import (
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// PickupType is what a falling pickup does when the paddle catches it.
type PickupType int

const (
	PickupWiden PickupType = iota
	PickupShrink
	PickupMultiball
	PickupSpeedUp
	PickupSlowDown
	PickupExtraLife
	PickupCount
)

// EffectType is a timed modifier started by a pickup.
type EffectType int

const (
	EffectWiden EffectType = iota
	EffectShrink
	EffectSpeedUp
	EffectSlowDown
	effectNone EffectType = -1
)

// pickupKinds describes every pickup. Instant pickups have effect effectNone.
var pickupKinds = [PickupCount]struct {
	glyph  rune
	name   string
	effect EffectType
}{
	PickupWiden:     {'W', "Widen", EffectWiden},
	PickupShrink:    {'S', "Shrink", EffectShrink},
	PickupMultiball: {'M', "Multi", effectNone},
	PickupSpeedUp:   {'+', "Fast", EffectSpeedUp},
	PickupSlowDown:  {'-', "Slow", EffectSlowDown},
	PickupExtraLife: {'♥', "Life", effectNone},
}

func (p PickupType) valid() bool { return p >= 0 && p < PickupCount }

// Glyph is the rune drawn for a falling pickup.
func (p PickupType) Glyph() rune {
	if !p.valid() {
		return '?'
	}
	return pickupKinds[p].glyph
}

func (p PickupType) String() string {
	if !p.valid() {
		return "?"
	}
	return pickupKinds[p].name
}

// Effect returns the timed effect the pickup starts, if any.
func (p PickupType) Effect() (EffectType, bool) {
	if !p.valid() || pickupKinds[p].effect == effectNone {
		return effectNone, false
	}
	return pickupKinds[p].effect, true
}

var effectGlyphs = [...]string{EffectWiden: "W", EffectShrink: "S", EffectSpeedUp: "+", EffectSlowDown: "-"}

// String is the HUD label of the effect.
func (e EffectType) String() string {
	if e < 0 || int(e) >= len(effectGlyphs) {
		return "?"
	}
	return effectGlyphs[e]
}

// opposite returns the effect cancelled when e starts.
func (e EffectType) opposite() EffectType {
	return e ^ 1
}

// Effect is an active timed effect.
type Effect struct {
	Type      EffectType
	UntilTick int // First tick at which the effect is gone
}

// TicksRemaining returns how long the effect still lasts at tick now.
func (e Effect) TicksRemaining(now int) int {
	return max(e.UntilTick-now, 0)
}

// PowerUpManager rolls drops and tracks active effects. Falling pickups
// are world entities owned by the game.
type PowerUpManager struct {
	cfg     config.PowerUpConfig
	weights [PickupCount]int
	total   int
	effects []Effect // In activation order
	rng     *SimpleRNG
}

// NewPowerUpManager creates a manager whose drops follow seed.
func NewPowerUpManager(seed int64, cfg config.PowerUpConfig) *PowerUpManager {
	w := cfg.Weights
	pm := &PowerUpManager{
		cfg: cfg,
		weights: [PickupCount]int{
			PickupWiden:     max(w.Widen, 0),
			PickupShrink:    max(w.Shrink, 0),
			PickupMultiball: max(w.Multiball, 0),
			PickupSpeedUp:   max(w.SpeedUp, 0),
			PickupSlowDown:  max(w.SlowDown, 0),
			PickupExtraLife: max(w.ExtraLife, 0),
		},
		rng: NewSimpleRNG(seed),
	}
	for _, v := range pm.weights {
		pm.total += v
	}
	return pm
}

// RollDrop decides whether a destroyed brick drops a pickup and which one.
func (pm *PowerUpManager) RollDrop() (PickupType, bool) {
	if pm.rng.Intn(100) >= pm.cfg.DropChance {
		return 0, false
	}
	if pm.total == 0 {
		return PickupWiden, true
	}
	roll := pm.rng.Intn(pm.total)
	for p, w := range pm.weights {
		if roll < w {
			return PickupType(p), true
		}
		roll -= w
	}
	return PickupWiden, true
}

// RNGState exposes the generator state for snapshots.
func (pm *PowerUpManager) RNGState() uint64 {
	return pm.rng.state
}

// Effects returns a copy of the active effects, nil when there are none.
func (pm *PowerUpManager) Effects() []Effect {
	if len(pm.effects) == 0 {
		return nil
	}
	return slices.Clone(pm.effects)
}

// AddEffect starts e at tick now, or extends it if already active.
// Its opposite is cancelled.
func (pm *PowerUpManager) AddEffect(e EffectType, now int) {
	pm.RemoveEffect(e.opposite())
	until := now + pm.cfg.Duration
	if i := pm.index(e); i >= 0 {
		pm.effects[i].UntilTick = until
		return
	}
	pm.effects = append(pm.effects, Effect{Type: e, UntilTick: until})
}

func (pm *PowerUpManager) index(e EffectType) int {
	return slices.IndexFunc(pm.effects, func(x Effect) bool { return x.Type == e })
}

// RemoveEffect ends e if active.
func (pm *PowerUpManager) RemoveEffect(e EffectType) {
	if i := pm.index(e); i >= 0 {
		pm.effects = slices.Delete(pm.effects, i, i+1)
	}
}

// ExpireEffects drops the effects over at tick now and returns their types.
func (pm *PowerUpManager) ExpireEffects(now int) []EffectType {
	var expired []EffectType
	pm.effects = slices.DeleteFunc(pm.effects, func(e Effect) bool {
		if e.UntilTick <= now {
			expired = append(expired, e.Type)
			return true
		}
		return false
	})
	return expired
}

// HasEffect reports whether e is active.
func (pm *PowerUpManager) HasEffect(e EffectType) bool {
	return pm.index(e) >= 0
}

// ClearEffects ends every effect.
func (pm *PowerUpManager) ClearEffects() {
	pm.effects = pm.effects[:0]
}

// SpeedFactor is the ball speed multiplier of the active effects.
func (pm *PowerUpManager) SpeedFactor() float64 {
	if pm.cfg.SpeedFactor <= 0 {
		return 1
	}
	switch {
	case pm.HasEffect(EffectSpeedUp):
		return pm.cfg.SpeedFactor
	case pm.HasEffect(EffectSlowDown):
		return 1 / pm.cfg.SpeedFactor
	}
	return 1
}

// PaddleWidth applies widen or shrink to base, clamped to the configured range.
func (pm *PowerUpManager) PaddleWidth(base float64) float64 {
	switch {
	case pm.HasEffect(EffectWiden):
		base += pm.cfg.WidenAmount
	case pm.HasEffect(EffectShrink):
		base -= pm.cfg.ShrinkAmount
	}
	return min(max(base, pm.cfg.MinPaddleWidth), pm.cfg.MaxPaddleWidth)
}
