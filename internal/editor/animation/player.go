package animation

import "time"

// DefaultInterval is the delay between playback steps (about 30 fps).
const DefaultInterval = 33 * time.Millisecond

// Player releases samples one interval apart as frame time accumulates.
// It is driven by the render loop and never blocks.
type Player struct {
	interval time.Duration
	samples  []Sample
	next     int
	elapsed  time.Duration
	playing  bool
}

// NewPlayer creates an idle player. A non-positive interval uses
// DefaultInterval.
func NewPlayer(interval time.Duration) *Player {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Player{interval: interval}
}

// Interval returns the delay between steps.
func (p *Player) Interval() time.Duration {
	return p.interval
}

// Start begins playback, replacing anything already playing. The first
// sample is due one interval after Start.
func (p *Player) Start(samples []Sample) {
	p.samples = samples
	p.next = 0
	p.elapsed = 0
	p.playing = len(samples) > 0
}

// Update advances playback by dt and returns the samples that became due,
// in order. It returns nil when idle.
func (p *Player) Update(dt time.Duration) []Sample {
	if !p.playing {
		return nil
	}
	p.elapsed += dt

	var due []Sample
	for p.elapsed >= p.interval && p.next < len(p.samples) {
		due = append(due, p.samples[p.next])
		p.next++
		p.elapsed -= p.interval
	}
	if p.next >= len(p.samples) {
		p.finish()
	}
	return due
}

// Stop cancels playback. It reports whether anything was playing.
func (p *Player) Stop() bool {
	was := p.playing
	p.finish()
	return was
}

// Playing reports whether samples remain.
func (p *Player) Playing() bool {
	return p.playing
}

// Remaining returns the number of samples not yet emitted.
func (p *Player) Remaining() int {
	if !p.playing {
		return 0
	}
	return len(p.samples) - p.next
}

func (p *Player) finish() {
	p.playing = false
	p.samples = nil
	p.next = 0
	p.elapsed = 0
}
