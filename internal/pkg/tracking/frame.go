package tracking

import (
	"math"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

const (
	tileSize       = 256
	maxMercatorLat = 85.0511287798

	DefaultFrameWidth   = 800
	DefaultFrameHeight  = 600
	DefaultFramePadding = 30
	DefaultMaxZoom      = 15
)

// FrameOptions describe the map display a viewport is fitted into
type FrameOptions struct {
	Width   int
	Height  int
	Padding int
	MaxZoom int
}

// DefaultFrameOptions returns the display policy used by the admin map
func DefaultFrameOptions() FrameOptions {
	return FrameOptions{
		Width:   DefaultFrameWidth,
		Height:  DefaultFrameHeight,
		Padding: DefaultFramePadding,
		MaxZoom: DefaultMaxZoom,
	}
}

func (o FrameOptions) normalized() FrameOptions {
	d := DefaultFrameOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.MaxZoom <= 0 {
		o.MaxZoom = d.MaxZoom
	}
	// keep at least one pixel of drawable area
	if o.Padding*2 >= o.Width || o.Padding*2 >= o.Height {
		o.Padding = (min(o.Width, o.Height) - 1) / 2
	}
	return o
}

// FitFrame picks the center and the largest zoom, capped at MaxZoom, at which the
// bounds fit inside the padded display. Bounds that collapse to a point get MaxZoom.
func FitFrame(v models.Viewport, opts FrameOptions) models.MapFrame {
	opts = opts.normalized()

	swX, swY := project(v.Bounds.SouthWest)
	neX, neY := project(v.Bounds.NorthEast)
	dx := math.Abs(neX - swX)
	dy := math.Abs(swY - neY)

	availW := float64(opts.Width - 2*opts.Padding)
	availH := float64(opts.Height - 2*opts.Padding)

	zoom := opts.MaxZoom
	scale := math.Inf(1)
	if dx > 0 {
		scale = math.Min(scale, availW/dx)
	}
	if dy > 0 {
		scale = math.Min(scale, availH/dy)
	}
	if !math.IsInf(scale, 1) {
		zoom = int(math.Floor(math.Log2(scale)))
		zoom = max(0, min(zoom, opts.MaxZoom))
	}

	return models.MapFrame{
		Viewport: v,
		Center:   unproject((swX+neX)/2, (swY+neY)/2),
		Zoom:     zoom,
		Padding:  opts.Padding,
	}
}

// project maps a coordinate to Web Mercator pixels at zoom 0
func project(c models.Coordinate) (float64, float64) {
	lat := math.Max(-maxMercatorLat, math.Min(maxMercatorLat, c.Latitude))
	sin := math.Sin(lat * math.Pi / 180)
	x := (c.Longitude + 180) / 360 * tileSize
	y := (0.5 - math.Log((1+sin)/(1-sin))/(4*math.Pi)) * tileSize
	return x, y
}

func unproject(x, y float64) models.Coordinate {
	lng := x/tileSize*360 - 180
	n := math.Pi - 2*math.Pi*y/tileSize
	lat := 180 / math.Pi * math.Atan(math.Sinh(n))
	return models.Coordinate{Latitude: lat, Longitude: lng}
}
