package plot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportImage writes a sweep curve to an image file. Format follows the file
// extension (.png, .svg, .pdf); anything else gets a .png suffix.
func ExportImage(series Series, title, xLabel, yLabel, filename string) error {
	if len(series.X) != len(series.Y) {
		return fmt.Errorf("series length mismatch: %d x, %d y", len(series.X), len(series.Y))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(series.X))
	for i := range series.X {
		pts[i] = plotter.XY{X: series.X[i], Y: series.Y[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 90, B: 181, A: 255}
	p.Add(line)

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
