package export

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/viz"
)

const (
	svgPathColor   = "#00ff88"
	svgMarkerColor = "#ffcc00"
	svgVelColor    = "#00ccff"
	svgAccColor    = "#ff4466"
	svgCircleColor = "#aa66ff"
	svgGroundColor = "#444466"
)

// svgView maps world metres to SVG pixels with one scale on both axes.
type svgView struct {
	min    mgl64.Vec2
	scale  float64
	offX   float64
	offY   float64
	height float64
}

func newSVGView(min, max mgl64.Vec2, width, height int) svgView {
	span := max.Sub(min)
	span[0] = math.Max(span[0], 1)
	span[1] = math.Max(span[1], 1)
	const pad = 0.08
	w, h := float64(width), float64(height)
	scale := math.Min(w/(span[0]*(1+2*pad)), h/(span[1]*(1+2*pad)))
	return svgView{
		min:    min,
		scale:  scale,
		offX:   (w - span[0]*scale) / 2,
		offY:   (h - span[1]*scale) / 2,
		height: h,
	}
}

func (v svgView) project(p mgl64.Vec2) (float64, float64) {
	return v.offX + (p[0]-v.min[0])*v.scale, v.height - v.offY - (p[1]-v.min[1])*v.scale
}

// WriteSVG draws the flight path with the overlays enabled in opts.Layers.
// Markers are labelled with their time; vectors and osculating circles are
// drawn at every marker and at the last sample.
func WriteSVG(w io.Writer, tr *dynamo.Trajectory, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 800, 500
	}
	scene := viz.NewScene(tr, opts.Layers, opts.MarkerInterval)
	lo, hi := scene.Bounds()
	view := newSVGView(lo, hi, opts.Width, opts.Height)
	vScale, aScale := scene.VectorScales()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<defs><clipPath id="frame"><rect width="%d" height="%d"/></clipPath></defs>
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Width, opts.Height)

	gx0, gy := view.project(mgl64.Vec2{lo[0], 0})
	gx1, _ := view.project(mgl64.Vec2{hi[0], 0})
	fmt.Fprintf(bw, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="4 4"/>
`, gx0, gy, gx1, gy, svgGroundColor)

	if opts.Layers.Path {
		fmt.Fprintf(bw, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, svgPathColor)
		for i := 0; i < tr.Len(); i++ {
			x, y := view.project(tr.At(i).Position())
			if i == 0 {
				fmt.Fprintf(bw, "%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(bw, " L%.1f,%.1f", x, y)
			}
		}
		bw.WriteString("\"/>\n")
	}

	points := append(append([]int(nil), scene.Markers()...), tr.Len()-1)
	for k, i := range points {
		s := tr.At(i)
		x, y := view.project(s.Position())
		isMarker := k < len(points)-1

		if opts.Layers.Circles && s.Circle != nil {
			cx, cy := view.project(mgl64.Vec2{s.Circle.Cx, s.Circle.Cy})
			fmt.Fprintf(bw, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-opacity="0.5" clip-path="url(#frame)"/>
`, cx, cy, s.Circle.R*view.scale, svgCircleColor)
		}
		if opts.Layers.Vectors {
			vx, vy := view.project(s.Position().Add(s.Velocity().Mul(vScale)))
			ax, ay := view.project(s.Position().Add(s.Acceleration().Mul(aScale)))
			fmt.Fprintf(bw, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.2"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.2"/>
`, x, y, vx, vy, svgVelColor, x, y, ax, ay, svgAccColor)
		}
		if opts.Layers.Markers && isMarker {
			fmt.Fprintf(bw, `<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>
<text x="%.1f" y="%.1f" fill="%s" font-size="10" font-family="monospace">%.1fs</text>
`, x, y, svgMarkerColor, x+5, y-5, svgMarkerColor, s.T)
		}
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}
