package geom

import (
	"math"
	"testing"
)

func testSpec() GridSpec {
	return NewDensity(PlatformWeb, 1).Spec(11, false, false)
}

func TestEnsureOdd(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-4, 3}, {0, 3}, {1, 3}, {3, 3}, {4, 5}, {10, 11}, {11, 11}, {20, 21},
	}
	for _, tt := range tests {
		if got := EnsureOdd(tt.in); got != tt.want {
			t.Errorf("EnsureOdd(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestExtent(t *testing.T) {
	g := NewGridSpec(5, 10, 4, false, false)
	if got := g.Extent(); got != 48 {
		t.Errorf("expected extent 48, got %f", got)
	}
	if got := g.MinPosition(); got != 9 {
		t.Errorf("expected min position 9, got %f", got)
	}
	if got := g.MaxPosition(); got != 49 {
		t.Errorf("expected max position 49, got %f", got)
	}
}

func TestSnapIdempotent(t *testing.T) {
	g := testSpec()
	for v := -20.0; v < g.Extent()+20; v += 0.37 {
		once := g.Snap(v)
		if twice := g.Snap(once); math.Abs(twice-once) > 1e-9 {
			t.Fatalf("snap not idempotent at %f: %f then %f", v, once, twice)
		}
	}
}

func TestSnapBoundaryUsesFloor(t *testing.T) {
	g := NewGridSpec(11, 10, 5, false, false)
	// 25 is the boundary between index 1 and 2
	if got := g.Snap(25); got != 30 {
		t.Errorf("expected boundary value to snap to 30, got %f", got)
	}
	if got := g.Snap(24.999); got != 20 {
		t.Errorf("expected 24.999 to snap to 20, got %f", got)
	}
}

func TestClampBounded(t *testing.T) {
	lo, hi := 2.5, 7.25
	for v := -10.0; v < 20; v += 0.25 {
		got := Clamp(v, lo, hi)
		if got < lo || got > hi {
			t.Fatalf("Clamp(%f) = %f outside [%f, %f]", v, got, lo, hi)
		}
		if v >= lo && v <= hi && got != v {
			t.Fatalf("Clamp(%f) should be identity inside range, got %f", v, got)
		}
	}
}

func TestCellPixelRoundTrip(t *testing.T) {
	g := testSpec()
	for col := 1; col <= g.Size; col++ {
		for row := 1; row <= g.Size; row++ {
			p := g.CellToPixel(Cell{col, row}, false)
			idx := g.PixelToIndices(p)
			if idx.Col != col-1 || idx.Row != row-1 {
				t.Fatalf("cell (%d,%d) round-tripped to indices %+v", col, row, idx)
			}
			if c := g.PixelToCell(p); c != (Cell{col, row}) {
				t.Fatalf("cell (%d,%d) round-tripped to %+v", col, row, c)
			}
		}
	}
}

func TestCellToPixelFlip(t *testing.T) {
	g := NewGridSpec(11, 10, 5, true, false)
	p := g.CellToPixel(Cell{3, 3}, true)
	want := g.CellToPixel(Cell{9, 3}, false)
	if p != want {
		t.Errorf("expected flipped (3,3) to land on (9,3): got %+v want %+v", p, want)
	}

	// flip is self-inverse
	c := g.Flip(g.Flip(Cell{4, 7}))
	if c != (Cell{4, 7}) {
		t.Errorf("expected flip involution, got %+v", c)
	}
}

func TestCellToPixelClampsOutOfRange(t *testing.T) {
	g := NewGridSpec(5, 10, 5, false, false)
	tests := []struct {
		in   Cell
		want Cell
	}{
		{Cell{0, 0}, Cell{1, 1}},
		{Cell{-3, 9}, Cell{1, 5}},
		{Cell{6, 2}, Cell{5, 2}},
	}
	for _, tt := range tests {
		got := g.PixelToCell(g.CellToPixel(tt.in, false))
		if got != tt.want {
			t.Errorf("CellToPixel(%+v) landed on %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestCellCentersWithinBounds(t *testing.T) {
	g := testSpec()
	first := g.CellToPixel(Cell{1, 1}, false)
	last := g.CellToPixel(Cell{g.Size, g.Size}, false)
	if math.Abs(first.X-g.MinPosition()) > 1e-9 || math.Abs(last.X-g.MaxPosition()) > 1e-9 {
		t.Errorf("expected cell centers to span [%f, %f], got [%f, %f]",
			g.MinPosition(), g.MaxPosition(), first.X, last.X)
	}
}

func TestMarkerCenterOnDot(t *testing.T) {
	g := testSpec()
	p := g.CellToPixel(Cell{4, 6}, false)
	m := g.MarkerCenter(p)
	d := g.DotCenter(3, 5)
	if math.Abs(m.X-d.X) > 1e-9 || math.Abs(m.Y-d.Y) > 1e-9 {
		t.Errorf("marker %+v should sit on dot %+v", m, d)
	}
}

func TestDensity(t *testing.T) {
	web := NewDensity(PlatformWeb, 3)
	if web.Factor != 1.5 {
		t.Errorf("expected web factor 1.5, got %f", web.Factor)
	}
	native := NewDensity(PlatformNative, 3)
	if native.Factor != 2 {
		t.Errorf("expected native factor capped at 2, got %f", native.Factor)
	}
	if native.Spacing() != 9 {
		t.Errorf("expected spacing 9, got %f", native.Spacing())
	}
	if native.Offset() != 6 {
		t.Errorf("expected offset 6, got %f", native.Offset())
	}
	if native.Radius() != 1.5 {
		t.Errorf("expected radius 1.5, got %f", native.Radius())
	}
}
