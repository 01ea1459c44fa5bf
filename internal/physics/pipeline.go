package physics

import (
	"io"
	"time"

	metrics "github.com/armon/go-metrics"
	"github.com/charmbracelet/log"
)

// Stage names a point in the tick after which listeners may run.
type Stage int

const (
	StageDetect  Stage = iota // After collision detection
	StageCorrect              // After positional correction
	StageBounce               // After velocity reflection
	StageCurve                // After curved surface modulation, the end of the tick
)

// String returns the stage name used in logs.
func (s Stage) String() string {
	switch s {
	case StageDetect:
		return "detect"
	case StageCorrect:
		return "correct"
	case StageBounce:
		return "bounce"
	case StageCurve:
		return "curve"
	default:
		return "unknown"
	}
}

// Listener consumes the collision events of a tick. The batch is shared
// between listeners and must not be modified.
type Listener interface {
	OnCollisions(w *World, events Events)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(w *World, events Events)

// OnCollisions calls f.
func (f ListenerFunc) OnCollisions(w *World, events Events) {
	f(w, events)
}

// Pipeline runs the per-tick stages in fixed order: integrate, detect,
// correct, bounce, curve. Every stage drains the whole batch before the
// next one starts.
type Pipeline struct {
	world     *World
	policy    MovingPolicy
	logger    *log.Logger
	metrics   *metrics.Metrics
	listeners [StageCurve + 1][]Listener
	tick      uint64
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for skipped events.
func WithLogger(logger *log.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink for per-tick counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithMovingPolicy sets how collisions between two moving entities resolve.
func WithMovingPolicy(policy MovingPolicy) Option {
	return func(p *Pipeline) {
		p.policy = policy
	}
}

// NewPipeline creates a pipeline over w.
func NewPipeline(w *World, opts ...Option) *Pipeline {
	p := &Pipeline{
		world:  w,
		policy: MovingElastic,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.metrics == nil {
		p.metrics = NewMetrics(&metrics.BlackholeSink{})
	}
	return p
}

// NewMetrics builds a metrics instance for the engine on top of sink.
func NewMetrics(sink metrics.MetricSink) *metrics.Metrics {
	conf := metrics.DefaultConfig("breakout")
	conf.EnableHostname = false
	conf.EnableRuntimeMetrics = false
	m, err := metrics.New(conf, sink)
	if err != nil {
		// Only fails when runtime metrics are enabled.
		panic(err)
	}
	return m
}

// World returns the world the pipeline operates on.
func (p *Pipeline) World() *World {
	return p.world
}

// Tick returns how many ticks have run.
func (p *Pipeline) Tick() uint64 {
	return p.tick
}

// AddListener registers l to run at the end of each tick.
func (p *Pipeline) AddListener(l Listener) {
	p.AddStageListener(StageCurve, l)
}

// AddStageListener registers l to run right after stage. Listeners of the
// same stage run in registration order.
func (p *Pipeline) AddStageListener(stage Stage, l Listener) {
	if stage < StageDetect || stage > StageCurve {
		stage = StageCurve
	}
	p.listeners[stage] = append(p.listeners[stage], l)
}

// Step runs one tick of dt seconds and returns the tick's collision events.
func (p *Pipeline) Step(dt float64) Events {
	start := time.Now()
	p.tick++

	Integrate(p.world, dt)

	events, tested := detect(p.world)
	p.notify(StageDetect, events)

	skipped := p.report(StageCorrect, ApplyCorrections(p.world, events))
	p.notify(StageCorrect, events)

	skipped += p.report(StageBounce, ApplyBounces(p.world, events, p.policy))
	p.notify(StageBounce, events)

	skipped += p.report(StageCurve, ApplyCurvedBounces(p.world, events))
	p.notify(StageCurve, events)

	p.metrics.IncrCounter([]string{"physics", "pairs", "tested"}, float32(tested))
	p.metrics.IncrCounter([]string{"physics", "collisions"}, float32(len(events)))
	if skipped > 0 {
		p.metrics.IncrCounter([]string{"physics", "events", "skipped"}, float32(skipped))
	}
	p.metrics.MeasureSince([]string{"physics", "tick"}, start)

	return events
}

func (p *Pipeline) notify(stage Stage, events Events) {
	for _, l := range p.listeners[stage] {
		l.OnCollisions(p.world, events)
	}
}

func (p *Pipeline) report(stage Stage, skipped Events) int {
	for _, ev := range skipped {
		p.logger.Debug("skipped stale collision",
			"stage", stage,
			"tick", p.tick,
			"first", ev.Collidees[0],
			"second", ev.Collidees[1],
		)
	}
	return len(skipped)
}
