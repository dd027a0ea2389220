package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/engine"
	"github.com/san-kum/gridpad/internal/readout"
	"github.com/san-kum/gridpad/internal/viz"
)

const (
	title       = "gridpad"
	resetGlyph  = "↺"
	dotRune     = '•'
	centerRune  = '◯'
	markerRune  = '●'
	readoutGap  = "   "
	hintMessage = "click or drag to select · r reset · q quit"
)

// Options configure the pad shell.
type Options struct {
	Readouts []readout.Range
	Theme    viz.Theme
	FPS      int
}

// Model is the bubbletea shell around a running engine.Runtime. It never
// touches the selection directly: pointer input is submitted to the
// runtime and every frame is drawn from its published state.
type Model struct {
	rt       *engine.Runtime
	layout   Layout
	readouts []readout.Range
	styles   viz.Styles
	frameDur time.Duration
	canvas   *viz.Canvas

	pressed bool
	pointer [2]int
	width   int
	height  int
}

func New(rt *engine.Runtime, opts Options) Model {
	styles := viz.NewStyles(opts.Theme)
	fps := opts.FPS
	if fps <= 0 {
		fps = anim.DefaultFPS
	}

	originX := styles.Panel.GetBorderLeftSize() + styles.Panel.GetPaddingLeft()
	originY := titleHeight + styles.Panel.GetBorderTopSize() + styles.Panel.GetPaddingTop()
	layout := NewLayout(rt.Spec(), originX, originY)

	return Model{
		rt:       rt,
		layout:   layout,
		readouts: opts.Readouts,
		styles:   styles,
		frameDur: time.Second / time.Duration(fps),
		canvas:   viz.NewCanvas(layout.Width(), layout.Height()),
	}
}

const titleHeight = 1

type frameMsg time.Time

func (m Model) frame() tea.Cmd {
	return tea.Tick(m.frameDur, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.frame() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.BlurMsg:
		if m.pressed {
			m.pressed = false
			m.submit(engine.Cancel())
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		select {
		case <-m.rt.Stopped():
			return m, tea.Quit
		default:
		}
		return m, m.frame()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "r":
		m.submit(engine.Reset())
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.onReset(msg.X, msg.Y) {
			m.submit(engine.Reset())
			return m, nil
		}
		m.pressed = true
		m.pointer = [2]int{msg.X, msg.Y}
		m.submit(engine.Down(m.layout.ToLocal(msg.X, msg.Y)))
	case tea.MouseActionMotion:
		if m.pressed {
			m.pointer = [2]int{msg.X, msg.Y}
			m.submit(engine.Move(m.layout.ToLocal(msg.X, msg.Y)))
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.submit(engine.Up(m.layout.ToLocal(msg.X, msg.Y)))
		}
	}
	return m, nil
}

func (m Model) submit(cmd engine.Command) {
	_ = m.rt.Submit(cmd)
}

// barRow is the terminal row of the readout bar.
func (m Model) barRow() int {
	p := m.styles.Panel
	return m.layout.OriginY + m.layout.Height() + p.GetPaddingBottom() + p.GetBorderBottomSize()
}

// onReset reports whether (x, y) hits the reset glyph.
func (m Model) onReset(x, y int) bool {
	if y != m.barRow() {
		return false
	}
	start := lipgloss.Width(m.readoutText(false))
	if len(m.readouts) > 0 {
		start += lipgloss.Width(readoutGap)
	}
	return x >= start && x < start+lipgloss.Width(resetGlyph)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.Panel.Render(m.drawPad()))
	b.WriteString("\n")
	b.WriteString(m.readoutText(true))
	if len(m.readouts) > 0 {
		b.WriteString(readoutGap)
	}
	b.WriteString(m.styles.Reset.Render(resetGlyph))
	b.WriteString("\n")
	b.WriteString(m.styles.KeyHint.Render(hintMessage))
	return b.String()
}

func (m Model) drawPad() string {
	c := m.canvas
	c.Clear()

	for _, ds := range m.rt.Dots() {
		x, y := m.layout.DotCell(ds.Col, ds.Row)
		style := &m.styles.Faint
		if ds.Emphasized {
			style = &m.styles.Dot
		}
		r := dotRune
		if ds.IsCenter {
			r = centerRune
			if ds.Emphasized {
				style = &m.styles.Center
			}
		}
		c.Set(x, y, r, style)
	}

	// hidden until the first position is committed
	if f, ok := m.rt.Frame(); ok {
		x, y := m.layout.MarkerCell(f.Position)
		if f.Dragging && m.pressed {
			x, y = m.layout.CanvasCell(m.pointer[0], m.pointer[1])
		}
		c.Set(x, y, markerRune, &m.styles.Marker)
	}
	return c.String()
}

func (m Model) readoutText(styled bool) string {
	coord := m.rt.Coordinate()
	parts := make([]string, 0, len(m.readouts))
	for _, r := range m.readouts {
		label, value := r.Label(), r.Read(coord)
		if styled {
			label, value = m.styles.Label.Render(label), m.styles.Value.Render(value)
		}
		parts = append(parts, label+" "+value)
	}
	return strings.Join(parts, readoutGap)
}
