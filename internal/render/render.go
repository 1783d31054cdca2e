// Package render rasterizes chart geometry into a PNG image.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/astella/napkin/schema"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Options configures PNG rendering.
type Options struct {
	Size int     // width and height in pixels
	DPI  float64 // resolution used to convert point sizes to pixels
}

// DefaultOptions returns a 14 inch square at 100 dpi.
func DefaultOptions() Options {
	return Options{Size: 1400, DPI: 100}
}

// Figure layout, as fractions of the image side.
const (
	plotRadius    = 0.365
	plotCenterX   = 0.5
	plotCenterY   = 0.435 // from the top
	legendY       = 0.90
	legendStartX  = 0.18
	legendSwatchW = 0.025
	legendSwatchH = 0.012
	footnoteY     = 0.96
)

// Grid rings drawn inside the outer ring.
var gridRings = []float64{20, 40, 60, 80}

// legendOffsets are the swatch positions of the three legend entries.
var legendOffsets = []float64{0, 0.20, 0.35}

type fonts struct {
	regular, bold, italic *truetype.Font
}

func loadFonts() (fonts, error) {
	var f fonts
	var err error
	if f.regular, err = truetype.Parse(goregular.TTF); err != nil {
		return f, fmt.Errorf("failed to parse regular font: %w", err)
	}
	if f.bold, err = truetype.Parse(gobold.TTF); err != nil {
		return f, fmt.Errorf("failed to parse bold font: %w", err)
	}
	if f.italic, err = truetype.Parse(goitalic.TTF); err != nil {
		return f, fmt.Errorf("failed to parse italic font: %w", err)
	}
	return f, nil
}

// canvas maps chart coordinates onto the image and carries the drawing state.
type canvas struct {
	r     chart.Renderer
	theme schema.Theme
	fonts fonts
	size  float64
	dpi   float64
	cx    float64
	cy    float64
	scale float64 // pixels per score unit
}

// WritePNG renders the chart and encodes it as PNG to w.
func WritePNG(w io.Writer, g schema.ChartGeometry, theme schema.Theme, opts Options) error {
	if opts.Size <= 0 || opts.DPI <= 0 {
		return fmt.Errorf("invalid render options: size %d, dpi %v", opts.Size, opts.DPI)
	}
	f, err := loadFonts()
	if err != nil {
		return err
	}
	r, err := chart.PNG(opts.Size, opts.Size)
	if err != nil {
		return fmt.Errorf("failed to create raster renderer: %w", err)
	}
	r.SetDPI(opts.DPI)

	size := float64(opts.Size)
	c := &canvas{
		r:     r,
		theme: theme,
		fonts: f,
		size:  size,
		dpi:   opts.DPI,
		cx:    size * plotCenterX,
		cy:    size * plotCenterY,
		scale: size * plotRadius / schema.MaxScore,
	}
	c.draw(g)

	if err := r.Save(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// draw paints every layer in z-order.
func (c *canvas) draw(g schema.ChartGeometry) {
	c.background()
	for _, layer := range g.Layers {
		switch layer.Kind {
		case schema.GridLayer:
			c.grid(g)
		case schema.OuterRingLayer:
			c.outerRing()
		case schema.BenchmarkBandLayer:
			c.band(g)
		case schema.BenchmarkLineLayer:
			c.polygon(pointsOf(g, layer.Series), c.theme.BenchmarkLine, "")
		case schema.SubjectFillLayer:
			c.polygon(pointsOf(g, schema.SubjectSeries), schema.LineStyle{}, c.theme.SubjectLine.Color)
		case schema.SubjectLineLayer:
			c.polygon(pointsOf(g, schema.SubjectSeries), c.theme.SubjectLine, "")
		case schema.SubjectHaloLayer:
			c.markers(g, true)
		case schema.BenchmarkLabelLayer:
			c.benchmarkLabels(g, layer.Series)
		case schema.SubjectMarkerLayer:
			c.markers(g, false)
		case schema.SubjectLabelLayer:
			c.subjectLabels(g)
		case schema.AxisLabelLayer:
			c.axisLabels(g)
		}
	}
	c.legend(g)
	c.footnote(g)
}

func (c *canvas) background() {
	c.r.ResetStyle()
	c.r.SetFillColor(hexColor(c.theme.Background, 1))
	c.rect(0, 0, c.size, c.size)
	c.r.Fill()
}

func (c *canvas) grid(g schema.ChartGeometry) {
	style := c.theme.Grid
	c.stroke(style)
	for _, ring := range gridRings {
		c.r.Circle(ring*c.scale, c.ix(0), c.iy(0))
		c.r.Stroke()
	}
	for _, a := range g.Axes {
		c.stroke(style)
		c.r.MoveTo(c.ix(0), c.iy(0))
		c.r.LineTo(c.ix(a.Tip.X), c.iy(a.Tip.Y))
		c.r.Stroke()
	}
}

func (c *canvas) outerRing() {
	c.stroke(c.theme.OuterRing)
	c.r.Circle(schema.MaxScore*c.scale, c.ix(0), c.iy(0))
	c.r.Stroke()
}

// band fills the area between the low and high series. The low polygon is
// traced in reverse so the non-zero fill rule leaves it open.
func (c *canvas) band(g schema.ChartGeometry) {
	high := pointsOf(g, schema.HighSeries)
	low := pointsOf(g, schema.LowSeries)
	if len(high) == 0 {
		return
	}
	c.r.ResetStyle()
	c.r.SetFillColor(hexColor(c.theme.BandColor, c.theme.BandAlpha))
	c.path(high)
	reversed := make([]schema.Point, len(low))
	for i, p := range low {
		reversed[len(low)-1-i] = p
	}
	c.path(reversed)
	c.r.Fill()
}

// polygon strokes the closed series path with line, or fills it with fill at
// the theme's subject alpha when fill is set.
func (c *canvas) polygon(points []schema.Point, line schema.LineStyle, fill string) {
	if len(points) == 0 {
		return
	}
	if fill != "" {
		c.r.ResetStyle()
		c.r.SetFillColor(hexColor(fill, c.theme.SubjectFill))
		c.path(points)
		c.r.Fill()
		return
	}
	c.stroke(line)
	c.path(points)
	c.r.Stroke()
}

func (c *canvas) markers(g schema.ChartGeometry, halo bool) {
	radius := c.pt(c.theme.MarkerRadius)
	for _, a := range g.Axes {
		c.r.ResetStyle()
		if halo {
			c.r.SetFillColor(hexColor(c.theme.SubjectLine.Color, c.theme.HaloAlpha))
			c.r.Circle(radius+c.pt(c.theme.MarkerEdge), c.ix(a.Subject.Pos.X), c.iy(a.Subject.Pos.Y))
			c.r.Fill()
			continue
		}
		c.r.SetFillColor(hexColor(c.theme.SubjectLine.Color, 1))
		c.r.SetStrokeColor(hexColor(schema.White, 1))
		c.r.SetStrokeWidth(c.pt(c.theme.MarkerEdge))
		c.r.Circle(radius, c.ix(a.Subject.Pos.X), c.iy(a.Subject.Pos.Y))
		c.r.FillStroke()
	}
}

func (c *canvas) benchmarkLabels(g schema.ChartGeometry, series schema.SeriesKind) {
	for _, a := range g.Axes {
		p := a.Low
		if series == schema.HighSeries {
			p = a.High
		}
		c.boxedText(p.Label, p.Place.Pos, p.Place.Align, c.theme.BenchmarkLabel)
	}
}

func (c *canvas) subjectLabels(g schema.ChartGeometry) {
	for _, a := range g.Axes {
		c.boxedText(a.Subject.Label, a.Subject.Place.Pos, a.Subject.Place.Align, c.theme.SubjectLabel)
	}
}

func (c *canvas) axisLabels(g schema.ChartGeometry) {
	for _, a := range g.Axes {
		c.text(a.Label.Text, c.px(a.Label.Pos.X), c.py(a.Label.Pos.Y), a.Label.Align, c.theme.AxisLabel, c.fonts.bold)
	}
}

func (c *canvas) legend(g schema.ChartGeometry) {
	y := c.size * legendY
	w, h := c.size*legendSwatchW, c.size*legendSwatchH
	for i, entry := range g.Legend {
		if i >= len(legendOffsets) {
			break
		}
		x := c.size * (legendStartX + legendOffsets[i])
		alpha := 1.0
		if entry.Series != schema.SubjectSeries {
			alpha = 0.35
		}
		c.r.ResetStyle()
		c.r.SetFillColor(hexColor(c.theme.SeriesColor(entry.Series), alpha))
		c.rect(x, y-h/2, x+w, y+h/2)
		c.r.Fill()
		c.text(entry.Text, x+w+c.size*0.01, y, schema.AlignLeft, c.theme.LegendText, c.fonts.bold)
	}
}

func (c *canvas) footnote(g schema.ChartGeometry) {
	if g.Footnote == "" {
		return
	}
	c.text(g.Footnote, c.size/2, c.size*footnoteY, schema.AlignCenter, c.theme.Footnote, c.fonts.italic)
}

// boxedText draws text centred vertically on a chart point, inside a rounded box.
func (c *canvas) boxedText(body string, at schema.Point, align schema.Align, style schema.TextStyle) {
	font := c.fonts.regular
	if style.Bold {
		font = c.fonts.bold
	}
	c.r.ResetStyle()
	c.r.SetFont(font)
	c.r.SetFontSize(style.Size)
	box := c.r.MeasureText(body)
	w, h := float64(box.Width()), float64(box.Height())

	x, y := c.px(at.X), c.py(at.Y)
	left := alignedLeft(x, w, align)
	pad := c.pt(style.Size) * style.BoxMargin

	c.r.ResetStyle()
	c.r.SetFillColor(hexColor(schema.White, style.BoxAlpha))
	c.r.SetStrokeColor(hexColor(style.BoxEdge, style.BoxAlpha))
	c.r.SetStrokeWidth(c.pt(style.BoxWidth))
	c.roundedRect(left-pad, y-h/2-pad, left+w+pad, y+h/2+pad, pad)
	c.r.FillStroke()

	c.text(body, x, y, align, style, font)
}

// text draws a single line vertically centred on y.
func (c *canvas) text(body string, x, y float64, align schema.Align, style schema.TextStyle, font *truetype.Font) {
	c.r.ResetStyle()
	c.r.SetFont(font)
	c.r.SetFontSize(style.Size)
	c.r.SetFontColor(hexColor(style.Color, 1))
	box := c.r.MeasureText(body)
	w, h := float64(box.Width()), float64(box.Height())
	c.r.Text(body, round(alignedLeft(x, w, align)), round(y+h/2))
}

func (c *canvas) stroke(style schema.LineStyle) {
	c.r.ResetStyle()
	c.r.SetStrokeColor(hexColor(style.Color, style.Alpha))
	c.r.SetStrokeWidth(c.pt(style.Width))
	if len(style.Dash) > 0 {
		dash := make([]float64, len(style.Dash))
		for i, d := range style.Dash {
			dash[i] = c.pt(d)
		}
		c.r.SetStrokeDashArray(dash)
	}
}

func (c *canvas) path(points []schema.Point) {
	for i, p := range points {
		if i == 0 {
			c.r.MoveTo(c.ix(p.X), c.iy(p.Y))
			continue
		}
		c.r.LineTo(c.ix(p.X), c.iy(p.Y))
	}
	c.r.Close()
}

func (c *canvas) rect(x0, y0, x1, y1 float64) {
	c.r.MoveTo(round(x0), round(y0))
	c.r.LineTo(round(x1), round(y0))
	c.r.LineTo(round(x1), round(y1))
	c.r.LineTo(round(x0), round(y1))
	c.r.Close()
}

func (c *canvas) roundedRect(x0, y0, x1, y1, radius float64) {
	radius = math.Min(radius, math.Min((x1-x0)/2, (y1-y0)/2))
	c.r.MoveTo(round(x0+radius), round(y0))
	c.r.LineTo(round(x1-radius), round(y0))
	c.r.QuadCurveTo(round(x1), round(y0), round(x1), round(y0+radius))
	c.r.LineTo(round(x1), round(y1-radius))
	c.r.QuadCurveTo(round(x1), round(y1), round(x1-radius), round(y1))
	c.r.LineTo(round(x0+radius), round(y1))
	c.r.QuadCurveTo(round(x0), round(y1), round(x0), round(y1-radius))
	c.r.LineTo(round(x0), round(y0+radius))
	c.r.QuadCurveTo(round(x0), round(y0), round(x0+radius), round(y0))
	c.r.Close()
}

// pt converts a size in points to pixels.
func (c *canvas) pt(v float64) float64 {
	return v * c.dpi / 72
}

func (c *canvas) px(x float64) float64 { return c.cx + x*c.scale }
func (c *canvas) py(y float64) float64 { return c.cy - y*c.scale }
func (c *canvas) ix(x float64) int     { return round(c.px(x)) }
func (c *canvas) iy(y float64) int     { return round(c.py(y)) }

func alignedLeft(x, width float64, align schema.Align) float64 {
	switch align {
	case schema.AlignLeft:
		return x
	case schema.AlignRight:
		return x - width
	default:
		return x - width/2
	}
}

func pointsOf(g schema.ChartGeometry, series schema.SeriesKind) []schema.Point {
	points := make([]schema.Point, 0, len(g.Axes))
	for _, a := range g.Axes {
		switch series {
		case schema.LowSeries:
			points = append(points, a.Low.Pos)
		case schema.HighSeries:
			points = append(points, a.High.Pos)
		default:
			points = append(points, a.Subject.Pos)
		}
	}
	return points
}

func hexColor(hex string, alpha float64) drawing.Color {
	c := drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
	return c.WithAlpha(uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255)))
}

func round(v float64) int {
	return int(math.Round(v))
}
