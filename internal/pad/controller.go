package pad

import (
	"log/slog"

	"github.com/san-kum/gridpad/internal/geom"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Handle is the imperative surface the owning shell holds on to.
type Handle interface {
	MoveTo(col, row int, applyFlip bool)
}

// Gestures is what a recognizer drives.
type Gestures interface {
	Tap(e geom.Point)
	BeginDrag()
	UpdateDrag(e geom.Point)
	EndDrag()
}

// Controller owns the authoritative selection position. All methods must be
// called from one goroutine (the control context); readers on other
// goroutines go through Store.
type Controller struct {
	spec    geom.GridSpec
	initial geom.Cell
	store   *Store
	state   State
}

// NewController commits the initial cell, with the flip policy applied,
// before returning.
func NewController(spec geom.GridSpec, initial geom.Cell) *Controller {
	c := &Controller{
		spec:    spec,
		initial: initial,
		store:   NewStore(),
	}
	c.MoveTo(initial.Col, initial.Row, true)
	return c
}

func (c *Controller) Spec() geom.GridSpec   { return c.spec }
func (c *Controller) Initial() geom.Cell    { return c.initial }
func (c *Controller) Store() *Store         { return c.store }
func (c *Controller) State() State          { return c.state }
func (c *Controller) Snapshot() Snapshot    { return c.store.Load() }
func (c *Controller) Cell() geom.Cell       { return c.spec.PixelToCell(c.store.Load().Position) }
func (c *Controller) Indices() geom.Indices { return c.spec.PixelToIndices(c.store.Load().Position) }

func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	return c.store.Subscribe(fn)
}

// Tap jumps straight to the snapped cell under e. Any drag in progress is
// dropped.
func (c *Controller) Tap(e geom.Point) {
	c.state = Idle
	lo, hi := c.spec.Offset, c.spec.MaxPosition()
	pos := geom.Point{
		X: c.spec.Snap(geom.Clamp(e.X, lo, hi)),
		Y: c.spec.Snap(geom.Clamp(e.Y, lo, hi)),
	}
	c.commit("tap", pos, false)
}

func (c *Controller) BeginDrag() {
	if c.state == Dragging {
		return
	}
	c.state = Dragging
	c.commit("drag-begin", c.store.Load().Position, true)
}

// UpdateDrag tracks e without snapping. Ignored unless a drag is active.
func (c *Controller) UpdateDrag(e geom.Point) {
	if c.state != Dragging {
		Logger().Debug("drag update outside drag", slog.Float64("x", e.X), slog.Float64("y", e.Y))
		return
	}
	c.commit("drag-update", c.spec.ClampPoint(e.Offset(c.spec.Offset)), true)
}

// EndDrag commits the drag to the nearest cell.
func (c *Controller) EndDrag() {
	if c.state != Dragging {
		return
	}
	c.state = Idle
	c.commit("drag-end", c.spec.SnapPoint(c.store.Load().Position), false)
}

// MoveTo jumps to a 1-indexed cell. Out-of-range cells are clamped. The drag
// flag is left as it is.
func (c *Controller) MoveTo(col, row int, applyFlip bool) {
	pos := c.spec.CellToPixel(geom.Cell{Col: col, Row: row}, applyFlip)
	c.commit("move-to", pos, c.store.Load().Dragging)
}

// Reset returns to the initial cell through the same path as construction.
func (c *Controller) Reset() {
	c.MoveTo(c.initial.Col, c.initial.Row, true)
}

func (c *Controller) commit(reason string, pos geom.Point, dragging bool) {
	snap := c.store.commit(pos, dragging)
	Logger().Debug("position commit",
		slog.String("reason", reason),
		slog.Float64("x", pos.X),
		slog.Float64("y", pos.Y),
		slog.Bool("dragging", dragging),
		slog.Uint64("seq", snap.Seq),
	)
}
