package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/candy-maze/internal/maze"
)

// EmitterID names one of the scheduler's event sources.
type EmitterID uint8

const (
	EmitTimeTick EmitterID = iota
	EmitLollipopSpawn
	EmitIceCreamSpawn
	EmitLollipopTextClear
	EmitIceCreamTextClear
	EmitRoundTransition
)

// Emitter is a declarative timed event source. While Enabled holds for
// the latest state, the scheduler keeps a single-shot timer of Delay
// armed; when it fires and Enabled still holds, Emit builds the event.
type Emitter struct {
	ID      EmitterID
	Name    string
	Delay   time.Duration
	Enabled func(Session) bool
	Emit    func(Session) Event
}

// Emitters returns the standard set of event sources. The round
// transition draws its next maze from mazes.
func Emitters(r Rules, mazes maze.Generator) []Emitter {
	out := []Emitter{
		{
			ID:      EmitTimeTick,
			Name:    "time-tick",
			Delay:   r.TickInterval,
			Enabled: Session.Running,
			Emit:    func(Session) Event { return DecrementTimeEvent{} },
		},
	}

	spawnIDs := [PrizeKinds]EmitterID{EmitLollipopSpawn, EmitIceCreamSpawn}
	clearIDs := [PrizeKinds]EmitterID{EmitLollipopTextClear, EmitIceCreamTextClear}
	for _, k := range Kinds {
		out = append(out, Emitter{
			ID:    spawnIDs[k],
			Name:  k.String() + "-spawn",
			Delay: r.Prize(k).SpawnDelay,
			Enabled: func(s Session) bool {
				return s.Running() && !s.Prize(k).Placed
			},
			Emit: func(Session) Event { return SpawnPrizeEvent{Prize: k} },
		})
	}
	for _, k := range Kinds {
		out = append(out, Emitter{
			ID:    clearIDs[k],
			Name:  k.String() + "-text-clear",
			Delay: r.PrizeTextDuration,
			Enabled: func(s Session) bool {
				return s.Prize(k).ShowText
			},
			Emit: func(Session) Event { return ClearPrizeTextEvent{Prize: k} },
		})
	}

	out = append(out, Emitter{
		ID:    EmitRoundTransition,
		Name:  "round-transition",
		Delay: r.LevelEndDelay,
		Enabled: func(s Session) bool {
			return s.IsGoalReached
		},
		Emit: func(Session) Event {
			return PrepareNextLevelEvent{Maze: mazes.Generate(r.Rows, r.Cols)}
		},
	})
	return out
}

// Firing is delivered by a timer when it expires. The generation ties it
// to one specific arming so stale firings can be recognised.
type Firing struct {
	ID  EmitterID
	gen uint64
}

type arming struct {
	timer Timer
	gen   uint64
}

// Scheduler keeps one timer armed per enabled emitter. It is driven from
// a single goroutine: Sync after every transition, Take for every firing.
// The fire callback is invoked from timer goroutines and must only hand
// the Firing over to that goroutine.
type Scheduler struct {
	clock    Clock
	emitters map[EmitterID]Emitter
	order    []EmitterID
	armed    map[EmitterID]arming
	gen      uint64
	fire     func(Firing)
	logger   *log.Logger
}

// NewScheduler creates a scheduler for the given emitters. Nothing is
// armed until the first Sync.
func NewScheduler(clock Clock, emitters []Emitter, fire func(Firing), logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Scheduler{
		clock:    clock,
		emitters: make(map[EmitterID]Emitter, len(emitters)),
		armed:    make(map[EmitterID]arming, len(emitters)),
		fire:     fire,
		logger:   logger,
	}
	for _, e := range emitters {
		s.emitters[e.ID] = e
		s.order = append(s.order, e.ID)
	}
	return s
}

// Sync brings the armed timers in line with state: emitters whose guard
// became true are armed, emitters whose guard became false are cancelled,
// and running timers of still-enabled emitters are left alone.
func (s *Scheduler) Sync(state Session) {
	for _, id := range s.order {
		e := s.emitters[id]
		a, isArmed := s.armed[id]
		enabled := e.Enabled(state)

		switch {
		case enabled && !isArmed:
			s.arm(e)
		case !enabled && isArmed:
			a.timer.Stop()
			delete(s.armed, id)
			s.logger.Debug("emitter cancelled", "emitter", e.Name)
		}
	}
}

func (s *Scheduler) arm(e Emitter) {
	s.gen++
	f := Firing{ID: e.ID, gen: s.gen}
	t := s.clock.AfterFunc(e.Delay, func() { s.fire(f) })
	s.armed[e.ID] = arming{timer: t, gen: f.gen}
	s.logger.Debug("emitter armed", "emitter", e.Name, "delay", e.Delay)
}

// Take accepts a firing against the current state. It returns the event
// to apply, or false when the firing is stale (its timer was cancelled or
// replaced) or the emitter's guard no longer holds. An accepted firing
// disarms the emitter; the next Sync re-arms it if it is still enabled.
func (s *Scheduler) Take(f Firing, state Session) (Event, bool) {
	a, ok := s.armed[f.ID]
	if !ok || a.gen != f.gen {
		return nil, false
	}
	delete(s.armed, f.ID)

	e := s.emitters[f.ID]
	if !e.Enabled(state) {
		return nil, false
	}
	return e.Emit(state), true
}

// Armed reports whether emitter id currently has a live timer.
func (s *Scheduler) Armed(id EmitterID) bool {
	_, ok := s.armed[id]
	return ok
}

// Stop cancels every armed timer.
func (s *Scheduler) Stop() {
	for id, a := range s.armed {
		a.timer.Stop()
		delete(s.armed, id)
	}
}
