package advanced

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels
const drawPadding = 20

// Fill colours cycled through so neighbouring pieces are told apart
var drawPalette = [][3]float64{
	{0.20, 0.55, 0.35},
	{0.25, 0.40, 0.70},
	{0.70, 0.45, 0.20},
	{0.55, 0.30, 0.60},
	{0.65, 0.60, 0.20},
}

// Draw renders the polygons, scale pixels per unit, with the origin at the
// bottom left. Each polygon gets its own fill colour and a white outline.
func (list PolygonList) Draw(scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, poly := range list {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		// Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, poly := range list {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		color := drawPalette[i%len(drawPalette)]
		c.SetRGB(color[0], color[1], color[2])
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}
	return c
}

// SavePNG draws the polygons and writes the image to path.
func (list PolygonList) SavePNG(path string, scale float64) error {
	return errors.Wrapf(list.Draw(scale).SavePNG(path), "saving %s", path)
}

// Show draws the polygons and prints the image inline in the terminal. This
// only works in iTerm, so it's for debugging.
func (list PolygonList) Show(scale float64) error {
	path := filepath.Join(os.TempDir(), "acd_polygon_list.png")
	if err := list.SavePNG(path, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
