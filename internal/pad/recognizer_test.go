package pad_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/pad"
)

type recorder struct {
	events []string
}

func (r *recorder) Tap(geom.Point)        { r.events = append(r.events, "tap") }
func (r *recorder) BeginDrag()            { r.events = append(r.events, "begin") }
func (r *recorder) UpdateDrag(geom.Point) { r.events = append(r.events, "update") }
func (r *recorder) EndDrag()              { r.events = append(r.events, "end") }

var _ = Describe("Recognizer", func() {
	var rec *recorder

	BeforeEach(func() {
		rec = &recorder{}
	})

	Describe("on a pointer platform", func() {
		var r *pad.Recognizer

		BeforeEach(func() {
			r = pad.NewRecognizer(rec, pad.Pointer)
		})

		It("resolves a press and release as a tap", func() {
			r.Down(geom.Point{X: 10, Y: 10})
			r.Up(geom.Point{X: 10, Y: 10})
			Expect(rec.events).To(Equal([]string{"tap"}))
		})

		It("treats jitter below the travel threshold as a tap", func() {
			r.Down(geom.Point{X: 10, Y: 10})
			r.Move(geom.Point{X: 10.5, Y: 10.2})
			r.Up(geom.Point{X: 10.5, Y: 10.2})
			Expect(rec.events).To(Equal([]string{"tap"}))
		})

		It("begins a pan once the pointer travels far enough", func() {
			r.Down(geom.Point{X: 10, Y: 10})
			r.Move(geom.Point{X: 12, Y: 10})
			Expect(r.Panning()).To(BeTrue())
			r.Move(geom.Point{X: 20, Y: 14})
			r.Up(geom.Point{X: 20, Y: 14})
			Expect(rec.events).To(Equal([]string{"begin", "update", "update", "end"}))
			Expect(r.Panning()).To(BeFalse())
		})

		It("ignores motion without a press", func() {
			r.Move(geom.Point{X: 40, Y: 40})
			r.Up(geom.Point{X: 40, Y: 40})
			Expect(rec.events).To(BeEmpty())
		})

		It("ends a pan on cancel and drops a bare press", func() {
			r.Down(geom.Point{X: 0, Y: 0})
			r.Cancel()
			Expect(rec.events).To(BeEmpty())

			r.Down(geom.Point{X: 0, Y: 0})
			r.Move(geom.Point{X: 5, Y: 5})
			r.Cancel()
			Expect(rec.events).To(Equal([]string{"begin", "update", "end"}))
		})
	})

	Describe("on a touch platform", func() {
		var r *pad.Recognizer

		BeforeEach(func() {
			r = pad.NewRecognizer(rec, pad.Touch)
		})

		It("begins the pan on press and lets the tap win without movement", func() {
			r.Down(geom.Point{X: 10, Y: 10})
			Expect(r.Panning()).To(BeTrue())
			r.Up(geom.Point{X: 10, Y: 10})
			Expect(rec.events).To(Equal([]string{"begin", "tap"}))
		})

		It("ends the pan after any movement", func() {
			r.Down(geom.Point{X: 10, Y: 10})
			r.Move(geom.Point{X: 10.1, Y: 10})
			r.Up(geom.Point{X: 10.1, Y: 10})
			Expect(rec.events).To(Equal([]string{"begin", "update", "end"}))
		})

		It("leaves the controller idle after a stationary touch", func() {
			spec := geom.NewGridSpec(11, spacing, offset, false, false)
			ctrl := pad.NewController(spec, geom.Cell{Col: 3, Row: 3})
			tr := pad.NewRecognizer(ctrl, pad.Touch)

			tr.Down(geom.Point{X: 70, Y: 70})
			Expect(ctrl.Snapshot().Dragging).To(BeTrue())
			tr.Up(geom.Point{X: 70, Y: 70})

			Expect(ctrl.State()).To(Equal(pad.Idle))
			Expect(ctrl.Snapshot().Dragging).To(BeFalse())
			Expect(ctrl.Cell()).To(Equal(geom.Cell{Col: 7, Row: 7}))
		})
	})

	It("parses platform names", func() {
		p, err := pad.ParsePlatform("Touch")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(pad.Touch))

		p, err = pad.ParsePlatform("")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(pad.Pointer))

		_, err = pad.ParsePlatform("stylus")
		Expect(err).To(MatchError(pad.ErrUnknownPlatform))
	})
})
