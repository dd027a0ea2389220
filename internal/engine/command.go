package engine

import (
	"fmt"

	"github.com/san-kum/gridpad/internal/geom"
)

type Kind int

const (
	KindDown Kind = iota
	KindMove
	KindUp
	KindCancel
	KindMoveTo
	KindReset
)

func (k Kind) String() string {
	switch k {
	case KindDown:
		return "down"
	case KindMove:
		return "move"
	case KindUp:
		return "up"
	case KindCancel:
		return "cancel"
	case KindMoveTo:
		return "moveto"
	case KindReset:
		return "reset"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Command is one user intent for the control goroutine. Point is in local
// lattice pixels; Col, Row and ApplyFlip are used by MoveTo.
type Command struct {
	Kind      Kind
	Point     geom.Point
	Col, Row  int
	ApplyFlip bool

	done chan struct{}
}

func Down(p geom.Point) Command { return Command{Kind: KindDown, Point: p} }
func Move(p geom.Point) Command { return Command{Kind: KindMove, Point: p} }
func Up(p geom.Point) Command   { return Command{Kind: KindUp, Point: p} }
func Cancel() Command           { return Command{Kind: KindCancel} }
func Reset() Command            { return Command{Kind: KindReset} }
func MoveTo(col, row int, applyFlip bool) Command {
	return Command{Kind: KindMoveTo, Col: col, Row: row, ApplyFlip: applyFlip}
}
