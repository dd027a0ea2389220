package export

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
)

func render(s Scene) (*gg.Context, error) {
	size := int(math.Ceil(s.Size()))
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.Hex(string(s.Theme.Background)))
	dc.Scale(s.Scale, s.Scale)

	ext := s.Spec.Extent()
	bg := gg.NewLinearGradientBrush(0, ext, ext, 0).
		AddColorStop(0, gg.Hex(gradientFrom)).
		AddColorStop(1, gg.Hex(gradientTo))
	dc.SetFillBrush(bg)
	dc.DrawRoundedRectangle(0, 0, ext, ext, cornerRadius)
	if err := dc.Fill(); err != nil {
		return dc, fmt.Errorf("background: %w", err)
	}

	text := gg.Hex(string(s.Theme.Text))
	dc.SetLineWidth(s.Density.StrokeWidth())
	for _, m := range s.marks() {
		c := text
		c.A *= m.opacity
		dc.DrawCircle(m.center.X, m.center.Y, m.radius)
		var err error
		if m.stroked {
			dc.SetStrokeBrush(gg.Solid(c))
			err = dc.Stroke()
		} else {
			dc.SetFillBrush(gg.Solid(c))
			err = dc.Fill()
		}
		if err != nil {
			return dc, fmt.Errorf("dot: %w", err)
		}
	}

	dc.SetHexColor(withAlpha(s.Theme.Text))
	dc.SetLineWidth(borderWidth)
	dc.DrawRoundedRectangle(0, 0, ext, ext, cornerRadius)
	if err := dc.Stroke(); err != nil {
		return dc, fmt.Errorf("border: %w", err)
	}
	return dc, nil
}

// PNG encodes s as a PNG image.
func PNG(w io.Writer, s Scene) error {
	dc, err := render(s)
	defer dc.Close()
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func SavePNG(path string, s Scene) error {
	dc, err := render(s)
	defer dc.Close()
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}
