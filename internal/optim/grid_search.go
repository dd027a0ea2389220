// Package optim searches spring constants for a fast, low-overshoot settle.
package optim

import (
	"context"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/metrics"
	"github.com/san-kum/gridpad/internal/pad"
	"github.com/san-kum/gridpad/internal/physics"
)

// Trial is one evaluated spring.
type Trial struct {
	Params    physics.SpringParams
	Frames    int
	Overshoot float64
	Settled   bool
	Score     float64
}

// GridSearch evaluates every damping/stiffness pair on a single jump of
// Jump pixels. Unsettled trials score twice MaxFrames.
type GridSearch struct {
	Damping   []float64
	Stiffness []float64
	Mass      float64
	Method    string
	FPS       int
	Jump      float64
	MaxFrames int
	// OvershootWeight converts pixels of overshoot into frames of penalty.
	OvershootWeight float64
}

func NewGridSearch(damping, stiffness []float64) *GridSearch {
	return &GridSearch{
		Damping:         damping,
		Stiffness:       stiffness,
		Mass:            physics.DefaultMass,
		Method:          anim.MethodAnalytic,
		FPS:             anim.DefaultFPS,
		Jump:            100,
		MaxFrames:       180,
		OvershootWeight: 4,
	}
}

// Search returns the best trial and all trials sorted by score.
func (g *GridSearch) Search(ctx context.Context) (Trial, []Trial, error) {
	params := make([]physics.SpringParams, 0, len(g.Damping)*len(g.Stiffness))
	for _, c := range g.Damping {
		for _, k := range g.Stiffness {
			params = append(params, physics.SpringParams{Damping: c, Stiffness: k, Mass: g.Mass})
		}
	}

	trials := make([]Trial, len(params))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range params {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			t, err := g.evaluate(p)
			if err != nil {
				return err
			}
			trials[i] = t
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Trial{}, nil, err
	}

	sort.SliceStable(trials, func(a, b int) bool {
		return trials[a].Score < trials[b].Score
	})
	if len(trials) == 0 {
		return Trial{Score: math.Inf(1)}, trials, nil
	}
	return trials[0], trials, nil
}

type source struct {
	snap pad.Snapshot
}

func (s *source) Load() pad.Snapshot { return s.snap }

func (g *GridSearch) evaluate(p physics.SpringParams) (Trial, error) {
	src := &source{snap: pad.Snapshot{Seq: 1}}
	a, err := anim.New(src, anim.Config{Method: g.Method, FPS: g.FPS, Spring: p})
	if err != nil {
		return Trial{}, err
	}
	a.Advance()

	target := geom.Point{X: g.Jump, Y: g.Jump}
	src.snap = pad.Snapshot{Position: target, Seq: 2}

	settle := metrics.NewSettleTime()
	overshoot := metrics.NewOvershoot()
	overshoot.Begin(geom.Point{})
	for i := 0; i < g.MaxFrames && !settle.Settled(); i++ {
		f, _ := a.Advance()
		settle.Observe(f, target)
		overshoot.Observe(f, target)
	}

	t := Trial{
		Params:    p,
		Frames:    int(settle.Value()),
		Overshoot: overshoot.Value() / math.Sqrt2,
		Settled:   settle.Settled(),
	}
	frames := float64(t.Frames)
	if !t.Settled {
		frames = 2 * float64(g.MaxFrames)
	}
	t.Score = frames + g.OvershootWeight*t.Overshoot
	return t, nil
}
