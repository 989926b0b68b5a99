package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/candy-maze/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player follows the session and switches tracks. It is registered as an
// engine observer.
type Player interface {
	game.Observer
	Close() error
}

// Silent is a Player that plays nothing. Used when audio is muted or the
// output device is unavailable.
type Silent struct{}

func (Silent) Observe(game.Session) {}
func (Silent) Close() error         { return nil }

// Options configures the speaker player.
type Options struct {
	Volume      float64       // 0..1
	CueDuration time.Duration // length of the level-end cue
}

// SpeakerPlayer drives the system audio device through beep.
type SpeakerPlayer struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	ambient *beep.Ctrl
	opts    Options
	current Track
	logger  *log.Logger
}

// Open initializes the audio device and returns a player. If the device
// cannot be opened it logs a warning and falls back to Silent, so a game
// never fails to start over audio.
func Open(opts Options, logger *log.Logger) Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Volume <= 0 || opts.Volume > 1 {
		opts.Volume = 0.5
	}
	if opts.CueDuration <= 0 {
		opts.CueDuration = game.DefaultLevelEndDelay
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return Silent{}
	}

	p := &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		opts:   opts,
		logger: logger,
	}
	p.ambient = &beep.Ctrl{Streamer: newAmbient(sampleRate, opts.Volume), Paused: true}
	p.mixer.Add(p.ambient)
	speaker.Play(p.mixer)
	logger.Debug("audio started", "rate", int(sampleRate))
	return p
}

// Observe switches tracks when the selected track changes.
func (p *SpeakerPlayer) Observe(s game.Session) {
	next := TrackFor(s)

	p.mu.Lock()
	defer p.mu.Unlock()

	if next == p.current {
		return
	}
	p.logger.Debug("track change", "from", p.current, "to", next)
	p.current = next

	speaker.Lock()
	p.ambient.Paused = next != Ambient
	if next == LevelEnd {
		p.mixer.Add(beep.Take(sampleRate.N(p.opts.CueDuration), newCue(sampleRate, p.opts.Volume)))
	}
	speaker.Unlock()
}

// Close silences the player and releases the device.
func (p *SpeakerPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	p.ambient.Paused = true
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}
