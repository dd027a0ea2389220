package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/pad"
)

var (
	ErrNotRunning = errors.New("engine: runtime stopped")
	ErrRunning    = errors.New("engine: runtime already running")
)

const commandBuffer = 64

type Config struct {
	Spec     geom.GridSpec
	Initial  geom.Cell
	Platform pad.Platform
	Anim     anim.Config
}

// Runtime hosts the two execution contexts of a pad. The control goroutine
// is the only writer of the selection; the render goroutine advances the
// marker on a fixed frame clock. Readers use the atomic accessors.
type Runtime struct {
	ctrl     *pad.Controller
	rec      *pad.Recognizer
	proj     *pad.Projector
	dots     *pad.DotField
	animator *anim.Animator
	fps      int

	cmds    chan Command
	running atomic.Bool
	stopped chan struct{}
	frames  atomic.Uint64

	// mu guards closed; senders hold it shared while enqueueing so the
	// control goroutine's final drain sees every accepted command.
	mu     sync.RWMutex
	closed bool
	quit   chan struct{}
}

func New(cfg Config) (*Runtime, error) {
	ctrl := pad.NewController(cfg.Spec, cfg.Initial)
	animator, err := anim.New(ctrl.Store(), cfg.Anim)
	if err != nil {
		return nil, err
	}
	fps := cfg.Anim.FPS
	if fps <= 0 {
		fps = anim.DefaultFPS
	}
	return &Runtime{
		ctrl:     ctrl,
		rec:      pad.NewRecognizer(ctrl, cfg.Platform),
		proj:     pad.NewProjector(ctrl),
		dots:     pad.NewDotField(cfg.Spec),
		animator: animator,
		fps:      fps,
		cmds:     make(chan Command, commandBuffer),
		stopped:  make(chan struct{}),
		quit:     make(chan struct{}),
	}, nil
}

// Run blocks until ctx is cancelled. A Runtime runs at most once.
func (r *Runtime) Run(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer close(r.stopped)
	defer r.proj.Close()

	log := pad.Logger()
	log.Info("runtime started",
		slog.Int("size", r.ctrl.Spec().Size),
		slog.Int("fps", r.fps),
		slog.String("platform", r.rec.Platform().String()),
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return r.control(groupCtx)
	})
	group.Go(func() error {
		return r.render(groupCtx)
	})
	err := group.Wait()

	log.Info("runtime stopped", slog.Uint64("frames", r.frames.Load()))
	return err
}

func (r *Runtime) control(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			r.shutdown()
			return nil
		case cmd := <-r.cmds:
			r.execute(cmd)
		}
	}
}

// shutdown refuses new commands and applies the ones already accepted.
func (r *Runtime) shutdown() {
	close(r.quit)
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	drained := 0
	for {
		select {
		case cmd := <-r.cmds:
			r.execute(cmd)
			drained++
		default:
			if drained > 0 {
				pad.Logger().Debug("drained commands", slog.Int("count", drained))
			}
			return
		}
	}
}

func (r *Runtime) execute(cmd Command) {
	r.apply(cmd)
	if cmd.done != nil {
		close(cmd.done)
	}
}

// enqueue hands cmd to the control goroutine, or reports ErrNotRunning once
// it has begun shutting down.
func (r *Runtime) enqueue(ctx context.Context, cmd Command) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ErrNotRunning
	}
	select {
	case r.cmds <- cmd:
		return nil
	case <-r.quit:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runtime) render(ctx context.Context) error {
	ticks := channerics.NewTicker(ctx.Done(), time.Second/time.Duration(r.fps))
	for range ticks {
		r.animator.Advance()
		r.frames.Add(1)
	}
	return nil
}

func (r *Runtime) apply(cmd Command) {
	switch cmd.Kind {
	case KindDown:
		r.rec.Down(cmd.Point)
	case KindMove:
		r.rec.Move(cmd.Point)
	case KindUp:
		r.rec.Up(cmd.Point)
	case KindCancel:
		r.rec.Cancel()
	case KindMoveTo:
		r.ctrl.MoveTo(cmd.Col, cmd.Row, cmd.ApplyFlip)
	case KindReset:
		r.ctrl.Reset()
	default:
		pad.Logger().Warn("unknown command", slog.String("kind", cmd.Kind.String()))
	}
}

// Submit queues cmd without waiting for it to be applied. A command it
// accepts is always applied, even if the runtime is stopping; once stopping
// has begun it returns ErrNotRunning.
func (r *Runtime) Submit(cmd Command) error {
	cmd.done = nil
	return r.enqueue(context.Background(), cmd)
}

// Do queues cmd and waits until the control goroutine has applied it.
func (r *Runtime) Do(ctx context.Context, cmd Command) error {
	cmd.done = make(chan struct{})
	if err := r.enqueue(ctx, cmd); err != nil {
		return err
	}
	select {
	case <-cmd.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MoveTo lets the runtime stand in as the pad's Handle.
func (r *Runtime) MoveTo(col, row int, applyFlip bool) {
	_ = r.Submit(MoveTo(col, row, applyFlip))
}

func (r *Runtime) Spec() geom.GridSpec        { return r.ctrl.Spec() }
func (r *Runtime) Snapshot() pad.Snapshot     { return r.ctrl.Snapshot() }
func (r *Runtime) Cell() geom.Cell            { return r.ctrl.Cell() }
func (r *Runtime) Coordinate() pad.Coordinate { return r.proj.Coordinate() }
func (r *Runtime) Frame() (anim.Frame, bool)  { return r.animator.Frame() }
func (r *Runtime) Dots() []pad.DotState       { return r.dots.Frame(r.ctrl.Snapshot()) }
func (r *Runtime) Frames() uint64             { return r.frames.Load() }
func (r *Runtime) Stopped() <-chan struct{}   { return r.stopped }

// SubscribeCoordinate registers fn with the projector. fn runs on the
// control goroutine.
func (r *Runtime) SubscribeCoordinate(fn func(pad.Coordinate)) func() {
	return r.proj.Subscribe(fn)
}
