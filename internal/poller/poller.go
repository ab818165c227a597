// Package poller runs the accessibility polling loop: it periodically
// snapshots the native hierarchy, tracks the most recent non-self
// application context, and detects text-selection overlay candidates.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/alvea-app/ax-agent/internal/ax"
	"github.com/alvea-app/ax-agent/internal/platform"
	"go.uber.org/zap"
)

// DefaultInterval is the fixed delay between ticks.
const DefaultInterval = 200 * time.Millisecond

// Tick summarizes one completed loop iteration.
type Tick struct {
	TS          int64       `yaml:"ts"                   json:"ts"`
	App         string      `yaml:"app,omitempty"        json:"app,omitempty"`
	SelfFocused bool        `yaml:"self_focused"         json:"self_focused"`
	Inputs      int         `yaml:"inputs"               json:"inputs"`
	Candidates  []Candidate `yaml:"candidates,omitempty" json:"candidates,omitempty"`
}

// Poller owns one background polling task. Start and Stop are idempotent;
// at most one loop runs at a time and only Stop (or the parent context)
// ends it. Individual tick failures never do.
type Poller struct {
	hierarchy platform.Hierarchy
	store     *SelectionStore
	interval  time.Duration
	selfName  string
	log       *zap.Logger

	// OnTick, if set before Start, is called from the loop goroutine after
	// every completed tick. Used by the watch command to stream summaries.
	OnTick func(Tick)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	stateMu     sync.Mutex
	candidates  []Candidate
	selfFocused bool
}

// New creates a poller. A zero interval falls back to DefaultInterval.
func New(hierarchy platform.Hierarchy, store *SelectionStore, interval time.Duration, selfName string, log *zap.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Poller{
		hierarchy: hierarchy,
		store:     store,
		interval:  interval,
		selfName:  selfName,
		log:       log,
	}
}

// Start spawns the polling goroutine and returns immediately. Calling Start
// while a loop is already running is a no-op; the existing loop keeps its
// cadence and no duplicate task is spawned.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.log.Debug("polling already running, start ignored")
		return
	}
	if p.done != nil {
		// A stopped loop may still be draining its final tick. Wait it out
		// so two loops can never run at once.
		<-p.done
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.log.Info("starting accessibility polling", zap.Duration("interval", p.interval))

	go p.run(ctx, p.done)
}

// Stop requests loop exit and returns without waiting. The running task
// observes the cancellation at its next iteration boundary; in-flight work
// for the current tick completes first. Stopping an idle poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel == nil {
		return
	}
	p.log.Info("stopping accessibility polling")
	p.cancel()
	p.cancel = nil
}

// Running reports whether a polling task is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return true
	}
	if p.done != nil {
		select {
		case <-p.done:
		default:
			return true
		}
	}
	return false
}

// Candidates returns the overlay candidates detected by the most recent
// tick. The slice is a copy; the loop replaces its own set every tick.
func (p *Poller) Candidates() []Candidate {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	return append([]Candidate(nil), p.candidates...)
}

// SelfFocused reports whether the most recent tick observed the hosting
// application's own UI in front.
func (p *Poller) SelfFocused() bool {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	return p.selfFocused
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		if ctx.Err() != nil {
			return
		}
		p.tick(ctx)

		// Fixed delay, not fixed rate: the interval starts after the tick
		// finishes, however long the native call took.
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.interval):
		}
	}
}

// tick performs one poll iteration. Failures are silent no-ops; the loop's
// only observable effects are the selection store and the candidate set.
func (p *Poller) tick(ctx context.Context) {
	// Scope the snapshot to the last known foreign app. Empty on the first
	// tick, which snapshots unfiltered.
	opts := platform.SnapshotOptions{App: p.store.App()}

	raw := p.hierarchy.Snapshot(ctx, opts)
	tree, err := ax.Decode(raw)
	if err != nil {
		p.log.Debug("tick skipped", zap.Error(err))
		return
	}

	var inputs []ax.Element
	selfFocused := false
	for i := range tree.Roots {
		root := tree.Roots[i]
		if ax.IsSelfApp(root, p.selfName) {
			// Our own UI never becomes the tracked context.
			selfFocused = true
			break
		}
		p.store.Store(root)
		inputs = append(inputs, ax.CollectInputs(root)...)
	}

	candidates := candidatesFrom(inputs)

	p.stateMu.Lock()
	p.candidates = candidates
	p.selfFocused = selfFocused
	p.stateMu.Unlock()

	p.log.Debug("tick complete",
		zap.Int("roots", len(tree.Roots)),
		zap.Int("inputs", len(inputs)),
		zap.Int("candidates", len(candidates)),
		zap.Bool("self_focused", selfFocused))

	if p.OnTick != nil {
		p.OnTick(Tick{
			TS:          time.Now().Unix(),
			App:         p.store.App(),
			SelfFocused: selfFocused,
			Inputs:      len(inputs),
			Candidates:  candidates,
		})
	}
}
