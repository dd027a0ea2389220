package geom

import "math"

const (
	PlatformWeb    = "web"
	PlatformNative = "native"

	baseSpacing  = 11.0
	maxFactor    = 2.0
	webFactor    = 1.5
	offsetRatio  = 1.5
	radiusRatio  = 6.0
	focusedRatio = 2.4
)

// Density derives the lattice metrics from a shared layout-density factor.
type Density struct {
	Factor float64
}

func DensityFactor(platform string, pixelRatio float64) float64 {
	if platform == PlatformWeb {
		return math.Min(maxFactor, webFactor)
	}
	return math.Min(maxFactor, pixelRatio)
}

func NewDensity(platform string, pixelRatio float64) Density {
	return Density{Factor: DensityFactor(platform, pixelRatio)}
}

func (d Density) Spacing() float64 { return baseSpacing - d.Factor }
func (d Density) Offset() float64  { return d.Spacing() / offsetRatio }
func (d Density) Radius() float64  { return d.Spacing() / radiusRatio }

// FocusedRadius is the radius of the selection marker.
func (d Density) FocusedRadius() float64 {
	return d.Radius() + d.Spacing()/focusedRatio
}

// CenterRadius is the radius of the stroked selection-origin dot.
func (d Density) CenterRadius() float64 {
	return d.Radius() * 1.5
}

func (d Density) StrokeWidth() float64 {
	return d.Spacing() / radiusRatio
}

// Spec builds a GridSpec using this density's spacing and offset.
func (d Density) Spec(size int, flipX, flipY bool) GridSpec {
	return NewGridSpec(size, d.Spacing(), d.Offset(), flipX, flipY)
}
