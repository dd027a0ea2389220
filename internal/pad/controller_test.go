package pad_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/pad"
)

const (
	spacing = 10.0
	offset  = 5.0
)

var _ = Describe("Controller", func() {
	var (
		spec geom.GridSpec
		ctrl *pad.Controller
	)

	BeforeEach(func() {
		spec = geom.NewGridSpec(11, spacing, offset, false, false)
		ctrl = pad.NewController(spec, geom.Cell{Col: 3, Row: 3})
	})

	It("commits the initial cell before returning", func() {
		snap := ctrl.Snapshot()
		Expect(snap.Ready()).To(BeTrue())
		Expect(snap.Seq).To(Equal(uint64(1)))
		Expect(snap.Dragging).To(BeFalse())
		Expect(ctrl.Cell()).To(Equal(geom.Cell{Col: 3, Row: 3}))
		Expect(ctrl.State()).To(Equal(pad.Idle))
	})

	It("snaps a drag to the enclosing cell on release", func() {
		ctrl.BeginDrag()
		Expect(ctrl.State()).To(Equal(pad.Dragging))
		Expect(ctrl.Snapshot().Dragging).To(BeTrue())

		// UpdateDrag adds the offset, so the raw position is O+3.2S.
		ctrl.UpdateDrag(geom.Point{X: 3.2 * spacing, Y: 3.2 * spacing})
		raw := ctrl.Snapshot().Position
		Expect(raw.X).To(BeNumerically("~", offset+3.2*spacing, 1e-9))
		Expect(ctrl.Snapshot().Dragging).To(BeTrue())

		ctrl.EndDrag()
		snap := ctrl.Snapshot()
		Expect(snap.Dragging).To(BeFalse())
		Expect(snap.Position).To(Equal(spec.SnapPoint(raw)))
		Expect(ctrl.Cell()).To(Equal(geom.Cell{Col: 4, Row: 4}))
		Expect(ctrl.Indices()).To(Equal(geom.Indices{Col: 3, Row: 3}))
	})

	It("clamps drag updates to the lattice", func() {
		ctrl.BeginDrag()
		ctrl.UpdateDrag(geom.Point{X: -400, Y: 900})
		p := ctrl.Snapshot().Position
		Expect(p.X).To(Equal(spec.MinPosition()))
		Expect(p.Y).To(Equal(spec.MaxPosition()))
	})

	It("ignores drag updates while idle", func() {
		before := ctrl.Snapshot()
		ctrl.UpdateDrag(geom.Point{X: 50, Y: 50})
		ctrl.EndDrag()
		Expect(ctrl.Snapshot()).To(Equal(before))
	})

	It("clamps a tap below the origin onto cell (1,1)", func() {
		ctrl.Tap(geom.Point{X: 0, Y: 0})
		Expect(ctrl.Cell()).To(Equal(geom.Cell{Col: 1, Row: 1}))
		Expect(ctrl.Snapshot().Position).To(Equal(geom.Point{X: offset + spacing/2, Y: offset + spacing/2}))
	})

	It("clamps a tap past the far edge onto the last cell", func() {
		ctrl.Tap(geom.Point{X: 1e6, Y: 1e6})
		Expect(ctrl.Cell()).To(Equal(geom.Cell{Col: 11, Row: 11}))
	})

	It("clears the drag flag on tap", func() {
		ctrl.BeginDrag()
		ctrl.Tap(geom.Point{X: 42, Y: 17})
		Expect(ctrl.State()).To(Equal(pad.Idle))
		Expect(ctrl.Snapshot().Dragging).To(BeFalse())
	})

	It("clamps out-of-range MoveTo targets", func() {
		ctrl.MoveTo(0, 99, false)
		Expect(ctrl.Cell()).To(Equal(geom.Cell{Col: 1, Row: 11}))
	})

	It("leaves the drag flag alone on MoveTo", func() {
		ctrl.BeginDrag()
		ctrl.MoveTo(6, 6, false)
		Expect(ctrl.Snapshot().Dragging).To(BeTrue())
		Expect(ctrl.State()).To(Equal(pad.Dragging))
	})

	It("notifies subscribers on every commit until cancelled", func() {
		var seen []uint64
		cancel := ctrl.Subscribe(func(s pad.Snapshot) { seen = append(seen, s.Seq) })
		ctrl.Tap(geom.Point{X: 20, Y: 20})
		ctrl.MoveTo(5, 5, false)
		cancel()
		ctrl.Reset()
		Expect(seen).To(Equal([]uint64{2, 3}))
	})

	Describe("with a flipped x axis", func() {
		BeforeEach(func() {
			spec = geom.NewGridSpec(11, spacing, offset, true, false)
			ctrl = pad.NewController(spec, geom.Cell{Col: 3, Row: 3})
		})

		It("applies the flip to the initial cell", func() {
			Expect(ctrl.Cell()).To(Equal(geom.Cell{Col: 9, Row: 3}))
		})

		It("resets to the coordinate it was built with", func() {
			proj := pad.NewProjector(ctrl)
			defer proj.Close()
			initial := proj.Coordinate()

			ctrl.Tap(geom.Point{X: 80, Y: 12})
			Expect(proj.Coordinate()).NotTo(Equal(initial))

			ctrl.MoveTo(3, 3, true)
			Expect(proj.Coordinate()).To(Equal(initial))
			ctrl.Reset()
			Expect(proj.Coordinate()).To(Equal(initial))
		})

		It("lands on the same cell when MoveTo is repeated", func() {
			ctrl.MoveTo(2, 7, true)
			first := ctrl.Snapshot().Position
			ctrl.MoveTo(2, 7, true)
			Expect(ctrl.Snapshot().Position).To(Equal(first))
			Expect(first).To(Equal(spec.SnapPoint(spec.CellToPixel(geom.Cell{Col: 10, Row: 7}, false))))
		})
	})
})

var _ = Describe("Projector", func() {
	It("maps the lattice corners onto the unit square with y inverted", func() {
		spec := geom.NewGridSpec(5, spacing, offset, false, false)
		Expect(pad.Project(spec, spec.CellToPixel(geom.Cell{Col: 1, Row: 1}, false))).
			To(Equal(pad.Coordinate{X: 0, Y: 1}))
		Expect(pad.Project(spec, spec.CellToPixel(geom.Cell{Col: 5, Row: 5}, false))).
			To(Equal(pad.Coordinate{X: 1, Y: 0}))
		Expect(pad.Project(spec, spec.CellToPixel(geom.Cell{Col: 3, Row: 3}, false))).
			To(Equal(pad.Coordinate{X: 0.5, Y: 0.5}))
	})

	It("stays in range for every reachable position", func() {
		spec := geom.NewDensity(geom.PlatformNative, 3).Spec(9, true, true)
		ctrl := pad.NewController(spec, geom.Cell{Col: 1, Row: 1})
		proj := pad.NewProjector(ctrl)
		defer proj.Close()

		var out []pad.Coordinate
		cancel := proj.Subscribe(func(c pad.Coordinate) { out = append(out, c) })
		defer cancel()

		ctrl.BeginDrag()
		for v := -50.0; v < spec.Extent()+50; v += 1.3 {
			ctrl.UpdateDrag(geom.Point{X: v, Y: spec.Extent() - v})
		}
		ctrl.EndDrag()

		Expect(out).NotTo(BeEmpty())
		for _, c := range out {
			Expect(c.InRange()).To(BeTrue(), "coordinate %+v", c)
		}
	})

	It("stops following the controller once closed", func() {
		spec := geom.NewGridSpec(5, spacing, offset, false, false)
		ctrl := pad.NewController(spec, geom.Cell{Col: 1, Row: 1})
		proj := pad.NewProjector(ctrl)
		before := proj.Coordinate()
		proj.Close()
		ctrl.MoveTo(5, 5, false)
		Expect(proj.Coordinate()).To(Equal(before))
	})
})

var _ = Describe("DotField", func() {
	var (
		spec  geom.GridSpec
		field *pad.DotField
	)

	BeforeEach(func() {
		spec = geom.NewGridSpec(7, spacing, offset, false, false)
		field = pad.NewDotField(spec)
	})

	It("lays out size squared dots with one center", func() {
		dots := field.Dots()
		Expect(dots).To(HaveLen(49))
		centers := 0
		for _, d := range dots {
			if d.IsCenter {
				centers++
				Expect(d.Col).To(Equal(3))
				Expect(d.Row).To(Equal(3))
			}
		}
		Expect(centers).To(Equal(1))

		d, ok := field.At(2, 5)
		Expect(ok).To(BeTrue())
		Expect(d.Center).To(Equal(spec.DotCenter(2, 5)))
		_, ok = field.At(7, 0)
		Expect(ok).To(BeFalse())
	})

	It("emphasizes exactly the row and column of the selection", func() {
		ctrl := pad.NewController(spec, geom.Cell{Col: 1, Row: 1})
		for col := 1; col <= spec.Size; col++ {
			for row := 1; row <= spec.Size; row++ {
				ctrl.MoveTo(col, row, false)
				for _, ds := range field.Frame(ctrl.Snapshot()) {
					want := ds.Col == col-1 || ds.Row == row-1
					Expect(ds.Emphasized).To(Equal(want),
						"dot (%d,%d) for cell (%d,%d)", ds.Col, ds.Row, col, row)
				}
			}
		}
	})

	It("tracks the raw position during a drag", func() {
		ctrl := pad.NewController(spec, geom.Cell{Col: 1, Row: 1})
		ctrl.BeginDrag()
		// raw x lands in column index 4 before any snap
		ctrl.UpdateDrag(geom.Point{X: 4.7 * spacing, Y: 0})
		frame := field.Frame(ctrl.Snapshot())
		emphasis := field.Emphasis(geom.Indices{Col: 4, Row: 0})
		for i, ds := range frame {
			Expect(ds.Emphasized).To(Equal(emphasis[i]))
		}
	})
})
