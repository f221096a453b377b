// Package player turns a precomputed trace into a seekable playback cursor.
//
// A Player is Idle, Playing or Paused. While playing, one repeating timer
// advances the step and pauses at the last snapshot. Every operation is
// safe for concurrent use; listeners are called after each state change,
// outside the lock.
//
// With [WithExternalClock] no timer is started and the owner drives
// playback by calling [Player.Tick], which is how the terminal UI uses it.
package player

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/trace"
)

const (
	DefaultSpeed = 500 * time.Millisecond
	MinSpeed     = 10 * time.Millisecond
	MaxSpeed     = 5 * time.Second
)

type Phase int

const (
	Idle Phase = iota
	Playing
	Paused
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// State is a point-in-time view of the cursor.
type State struct {
	TraceID    string
	Step       int
	TotalSteps int
	IsPlaying  bool
	Phase      Phase
	Progress   float64
	Speed      time.Duration
}

type Listener func(State)

type Option func(*Player)

func WithSpeed(d time.Duration) Option {
	return func(p *Player) { p.speed = clampSpeed(d) }
}

// WithExternalClock disables the internal timer; call Tick to advance.
func WithExternalClock() Option {
	return func(p *Player) { p.external = true }
}

func WithLogger(l *log.Logger) Option {
	return func(p *Player) { p.logger = l }
}

func WithListener(fn Listener) Option {
	return func(p *Player) { p.listeners = append(p.listeners, fn) }
}

type Player struct {
	mu        sync.Mutex
	id        string
	tr        trace.Trace
	step      int
	phase     Phase
	speed     time.Duration
	external  bool
	gen       uint64
	stop      chan struct{}
	listeners []Listener
	logger    *log.Logger
}

func New(opts ...Option) *Player {
	p := &Player{speed: DefaultSpeed}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	return p
}

// Load installs a trace. A new id resets the cursor to step 0 and stops
// playback; loading the same id again changes nothing.
func (p *Player) Load(id string, tr trace.Trace) {
	p.mu.Lock()
	if id != "" && id == p.id {
		p.mu.Unlock()
		return
	}
	p.stopTimerLocked()
	p.id = id
	p.tr = tr
	p.step = 0
	p.phase = Idle
	p.logger.Debug("trace loaded", "id", id, "algorithm", tr.Algorithm, "steps", tr.Len())
	p.commitLocked()
}

// TogglePlay starts or pauses playback. Starting at the last step is a no-op.
func (p *Player) TogglePlay() {
	p.mu.Lock()
	if p.phase == Playing {
		p.pauseLocked()
		p.commitLocked()
		return
	}
	if p.step >= p.tr.Len()-1 {
		p.mu.Unlock()
		return
	}
	p.phase = Playing
	if !p.external {
		p.startTimerLocked()
	}
	p.commitLocked()
}

func (p *Player) Play() {
	if !p.IsPlaying() {
		p.TogglePlay()
	}
}

func (p *Player) Pause() {
	p.mu.Lock()
	if p.phase != Playing {
		p.mu.Unlock()
		return
	}
	p.pauseLocked()
	p.commitLocked()
}

// Next pauses and advances one step. At the last snapshot it only stops
// playback; a stopped player is left untouched.
func (p *Player) Next() {
	p.stepBy(1)
}

// Prev pauses and steps back. At step 0 it only stops playback; a stopped
// player is left untouched.
func (p *Player) Prev() {
	p.stepBy(-1)
}

func (p *Player) stepBy(delta int) {
	p.mu.Lock()
	target := p.step + delta
	if target < 0 || target >= p.tr.Len() {
		if p.phase != Playing {
			p.mu.Unlock()
			return
		}
		target = p.step
	}
	p.pauseLocked()
	p.step = target
	p.commitLocked()
}

// JumpTo pauses and seeks to target. Targets outside the trace are ignored
// and leave playback untouched.
func (p *Player) JumpTo(target int) {
	p.mu.Lock()
	if target < 0 || target >= p.tr.Len() {
		p.mu.Unlock()
		return
	}
	p.pauseLocked()
	p.step = target
	p.commitLocked()
}

func (p *Player) Reset() {
	p.mu.Lock()
	p.stopTimerLocked()
	p.step = 0
	p.phase = Idle
	p.commitLocked()
}

// SetSpeed changes the delay between steps, restarting a running timer.
func (p *Player) SetSpeed(d time.Duration) {
	p.mu.Lock()
	p.speed = clampSpeed(d)
	if p.phase == Playing && !p.external {
		p.stopTimerLocked()
		p.startTimerLocked()
	}
	p.commitLocked()
}

// Tick advances one step while playing. It is what the internal timer
// calls; external-clock owners call it directly.
func (p *Player) Tick() {
	p.mu.Lock()
	if !p.advanceLocked() {
		p.mu.Unlock()
		return
	}
	p.commitLocked()
}

// Close stops any running timer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopTimerLocked()
	if p.phase == Playing {
		p.phase = Paused
	}
}

func (p *Player) Subscribe(fn Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

func (p *Player) Step() int { return p.State().Step }

func (p *Player) IsPlaying() bool { return p.State().IsPlaying }

func (p *Player) TotalSteps() int { return p.State().TotalSteps }

func (p *Player) Progress() float64 { return p.State().Progress }

// Current returns the snapshot under the cursor and its pseudocode line.
func (p *Player) Current() (trace.Snapshot, string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.tr.At(p.step)
	if !ok {
		return trace.Snapshot{}, "", false
	}
	return s, p.tr.Line(p.step), true
}

func (p *Player) Trace() trace.Trace {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tr
}

func (p *Player) stateLocked() State {
	n := p.tr.Len()
	progress := 0.0
	if n > 0 {
		progress = float64(p.step+1) / float64(n) * 100
	}
	return State{
		TraceID:    p.id,
		Step:       p.step,
		TotalSteps: n,
		IsPlaying:  p.phase == Playing,
		Phase:      p.phase,
		Progress:   progress,
		Speed:      p.speed,
	}
}

// commitLocked releases the lock and notifies listeners.
func (p *Player) commitLocked() {
	st := p.stateLocked()
	ls := p.listeners
	p.mu.Unlock()
	for _, fn := range ls {
		fn(st)
	}
}

func (p *Player) pauseLocked() {
	p.stopTimerLocked()
	if p.phase == Playing {
		p.phase = Paused
		p.logger.Debug("paused", "step", p.step)
	} else if p.phase == Idle {
		p.phase = Paused
	}
}

func (p *Player) advanceLocked() bool {
	if p.phase != Playing {
		return false
	}
	n := p.tr.Len()
	if p.step < n-1 {
		p.step++
	}
	if p.step >= n-1 {
		p.stopTimerLocked()
		p.phase = Paused
		p.logger.Debug("reached end of trace", "steps", n)
	}
	return true
}

func (p *Player) startTimerLocked() {
	p.gen++
	stop := make(chan struct{})
	p.stop = stop
	go p.run(p.gen, p.speed, stop)
}

func (p *Player) stopTimerLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
	p.gen++
}

func (p *Player) run(gen uint64, every time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.mu.Lock()
			if gen != p.gen {
				p.mu.Unlock()
				return
			}
			if !p.advanceLocked() {
				p.mu.Unlock()
				return
			}
			p.commitLocked()
		}
	}
}

func clampSpeed(d time.Duration) time.Duration {
	switch {
	case d < MinSpeed:
		return MinSpeed
	case d > MaxSpeed:
		return MaxSpeed
	}
	return d
}
