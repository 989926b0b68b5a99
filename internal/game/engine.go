package game

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/candy-maze/internal/maze"
)

// maxCascade bounds the number of events one dispatch may apply. A
// transition produces at most one goal and two prize hits, so real
// cascades stay far below it.
const maxCascade = 16

// Observer is notified with the settled state after every dispatch. It
// runs on the engine goroutine and must not block.
type Observer interface {
	Observe(Session)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Session)

// Observe calls f(s).
func (f ObserverFunc) Observe(s Session) { f(s) }

// Journal records every applied event together with the state it led to.
type Journal interface {
	Record(ev Event, after Session) error
}

// EngineConfig configures an Engine.
type EngineConfig struct {
	Rules Rules
	Mazes maze.Generator
	Seed  uint64 // seeds the per-game prize RNG

	Clock     Clock       // defaults to RealClock
	Logger    *log.Logger // defaults to a discarding logger
	Journal   Journal     // optional
	Observers []Observer
}

// Engine owns one Session and serializes everything that changes it: key
// presses, timer firings and the collision events they cause. All
// mutation happens on the goroutine running Run.
type Engine struct {
	rules     Rules
	input     *InputHandler
	sched     *Scheduler
	journal   Journal
	observers []Observer
	feed      *Feed
	logger    *log.Logger

	mu    sync.RWMutex
	state Session

	keys  chan Key
	fired chan Firing

	done     chan struct{}
	doneOnce sync.Once
}

// NewEngine creates an engine in the pre-game state. Call Run to start
// processing.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Clock == nil {
		cfg.Clock = RealClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	e := &Engine{
		rules:     cfg.Rules,
		input:     NewInputHandler(cfg.Rules, cfg.Mazes, cfg.Seed),
		journal:   cfg.Journal,
		observers: cfg.Observers,
		feed:      NewFeed(),
		logger:    cfg.Logger,
		keys:      make(chan Key, 16),
		fired:     make(chan Firing, 64),
		done:      make(chan struct{}),
	}
	e.sched = NewScheduler(cfg.Clock, Emitters(cfg.Rules, cfg.Mazes), e.fire, cfg.Logger)
	return e
}

// fire is the timer callback. It runs on timer goroutines and only hands
// the firing to the loop.
func (e *Engine) fire(f Firing) {
	select {
	case e.fired <- f:
	case <-e.done:
	}
}

// Run processes input and timers until ctx is cancelled. It publishes the
// initial state first so readers can draw the attract screen.
func (e *Engine) Run(ctx context.Context) error {
	defer e.shutdown()

	e.publish()
	for {
		select {
		case <-ctx.Done():
			return nil
		case k := <-e.keys:
			e.HandleKey(k)
		case f := <-e.fired:
			e.HandleFired(f)
		}
	}
}

func (e *Engine) shutdown() {
	e.doneOnce.Do(func() {
		close(e.done)
	})
	e.sched.Stop()
	e.feed.Close()
	e.logger.Debug("engine stopped", "state", e.State())
}

// Press queues a key press for the loop. It blocks only while the queue
// is full and returns immediately once the engine has stopped.
func (e *Engine) Press(k Key) {
	select {
	case e.keys <- k:
	case <-e.done:
	}
}

// HandleKey applies the event for k, if the key is accepted in the
// current state. Must be called from the loop goroutine.
func (e *Engine) HandleKey(k Key) {
	ev, ok := e.input.Handle(e.state, k)
	if !ok {
		e.logger.Debug("key ignored", "key", k)
		return
	}
	e.Dispatch(ev)
}

// HandleFired applies the event of a timer firing unless the firing is
// stale. Must be called from the loop goroutine.
func (e *Engine) HandleFired(f Firing) {
	ev, ok := e.sched.Take(f, e.state)
	if !ok {
		return
	}
	e.Dispatch(ev)
}

// Dispatch applies ev and every collision event it causes, in order. The
// scheduler is re-synced after each transition; observers and the feed
// see the settled state once the cascade is done.
func (e *Engine) Dispatch(ev Event) {
	queue := []Event{ev}
	for n := 0; len(queue) > 0; n++ {
		if n == maxCascade {
			e.logger.Warn("dispatch cascade truncated", "pending", len(queue))
			break
		}
		ev := queue[0]
		queue = queue[1:]

		prev := e.state
		next := e.rules.Apply(prev, ev)
		e.setState(next)
		e.record(ev, next)
		e.sched.Sync(next)

		if collisionRelevant(prev, next) {
			queue = append(queue, Collisions(next)...)
		}
	}
	e.publish()
}

func (e *Engine) record(ev Event, after Session) {
	if ev.Kind() != (DecrementTimeEvent{}).Kind() {
		e.logger.Debug("event", "kind", ev.Kind(), "state", after)
	}
	if e.journal == nil {
		return
	}
	if err := e.journal.Record(ev, after); err != nil {
		e.logger.Warn("journal write failed", "kind", ev.Kind(), "err", err)
	}
}

func (e *Engine) publish() {
	s := e.State()
	for _, o := range e.observers {
		o.Observe(s)
	}
	e.feed.Publish(s)
}

func (e *Engine) setState(s Session) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

// State returns the current session. Safe for concurrent use.
func (e *Engine) State() Session {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Snapshots returns the channel of published states. Only the most
// recent unread state is kept.
func (e *Engine) Snapshots() <-chan Session {
	return e.feed.Updates()
}

// Done returns a channel closed once Run has returned.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}
