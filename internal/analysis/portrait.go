package analysis

import (
	"strings"

	"github.com/san-kum/projsim/internal/dynamo"
)

// Field picks one value out of a sample.
type Field func(dynamo.Sample) float64

var (
	FieldT     Field = func(s dynamo.Sample) float64 { return s.T }
	FieldX     Field = func(s dynamo.Sample) float64 { return s.X }
	FieldY     Field = func(s dynamo.Sample) float64 { return s.Y }
	FieldVx    Field = func(s dynamo.Sample) float64 { return s.Vx }
	FieldVy    Field = func(s dynamo.Sample) float64 { return s.Vy }
	FieldV     Field = func(s dynamo.Sample) float64 { return s.V }
	FieldTheta Field = func(s dynamo.Sample) float64 { return s.Theta }
	FieldAPar  Field = func(s dynamo.Sample) float64 { return s.APar }
	FieldAPerp Field = func(s dynamo.Sample) float64 { return s.APerp }
)

// Fields maps the names accepted on the command line to their accessors.
var Fields = map[string]Field{
	"t": FieldT, "x": FieldX, "y": FieldY,
	"vx": FieldVx, "vy": FieldVy, "v": FieldV,
	"theta": FieldTheta, "apar": FieldAPar, "aperp": FieldAPerp,
}

// Point is one entry of a Portrait.
type Point struct{ X, Y float64 }

// Portrait plots one sample field against another. X against Y is the path,
// Vx against Vy the hodograph.
type Portrait struct {
	Points []Point
}

func NewPortrait(tr *dynamo.Trajectory, fx, fy Field) *Portrait {
	if tr == nil {
		return &Portrait{}
	}
	p := &Portrait{Points: make([]Point, tr.Len())}
	for i := range p.Points {
		s := tr.At(i)
		p.Points[i] = Point{X: fx(s), Y: fy(s)}
	}
	return p
}

// Bounds returns the extent of the points with ten percent padding. A flat
// extent is widened to one unit.
func (p *Portrait) Bounds() (minX, maxX, minY, maxY float64) {
	if len(p.Points) == 0 {
		return 0, 1, 0, 1
	}
	minX, maxX = p.Points[0].X, p.Points[0].X
	minY, maxY = p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	return minX - rangeX*0.1, maxX + rangeX*0.1, minY - rangeY*0.1, maxY + rangeY*0.1
}

// ASCII renders the portrait as a width x height character grid with the
// zero axes drawn where they are visible.
func (p *Portrait) ASCII(width, height int) string {
	if len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}
	minX, maxX, minY, maxY := p.Bounds()
	rangeX, rangeY := maxX-minX, maxY-minY

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			grid[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := int(-minX / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if grid[row][col] == ' ' {
				grid[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int(-minY/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if grid[row][col] == ' ' {
				grid[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
