package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gomohr/internal/stress"
)

// DiagramData holds everything the diagrams need for one stress scenario.
type DiagramData struct {
	State  stress.State
	Theta  float64 // current rotation angle (degrees)
	Point  stress.Point
	Circle stress.Circle
	Curve  stress.Curve
}

// DrawASCIICurve renders the σx'(θ) and τx'y'(θ) series as a terminal graph
// over the sampled domain.
func DrawASCIICurve(data DiagramData) string {
	if len(data.Curve) == 0 {
		return ""
	}

	series := [][]float64{
		data.Curve.SigmaX1s(),
		data.Curve.TauX1Y1s(),
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(14),
		asciigraph.Width(66),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("Rotation angle θ: %.0f° to %.0f°",
			data.Curve[0].ThetaDeg, data.Curve[len(data.Curve)-1].ThetaDeg)),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  STRESS TRANSFORMATION CURVES\n")
	sb.WriteString("  ────────────────────────────\n\n")
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	sb.WriteString("  Blue: σx'(θ)   Red: τx'y'(θ)\n")
	sb.WriteString(fmt.Sprintf("  At θ = %.1f°:  σx' = %.2f, τx'y' = %.2f\n",
		data.Theta, data.Point.SigmaX1, data.Point.TauX1Y1))

	return sb.String()
}

// DrawASCIIMohrCircle sketches the Mohr's Circle on a character grid with
// the σ/τ axes, the original x-face, the current rotated face and the
// principal points marked.
func DrawASCIIMohrCircle(data DiagramData) string {
	const (
		cols = 61
		rows = 25
	)

	c := data.Circle

	// View window: circle plus 30% margin, equal span on both axes so the
	// circle stays round-ish on the grid.
	margin := c.Radius * 1.3
	if margin == 0 {
		margin = 1
	}
	xMin, xMax := c.Center-margin, c.Center+margin
	yMin, yMax := -margin, margin

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	toCell := func(x, y float64) (row, col int, ok bool) {
		col = int(math.Round((x - xMin) / (xMax - xMin) * float64(cols-1)))
		row = int(math.Round((yMax - y) / (yMax - yMin) * float64(rows-1)))
		ok = row >= 0 && row < rows && col >= 0 && col < cols
		return row, col, ok
	}

	// Axes first so the circle draws over them.
	if r, _, ok := toCell(c.Center, 0); ok {
		for j := 0; j < cols; j++ {
			grid[r][j] = '─'
		}
	}
	if _, col, ok := toCell(0, 0); ok {
		for i := 0; i < rows; i++ {
			grid[i][col] = '│'
		}
	}

	// Circle perimeter.
	xs, ys := stress.MohrPoints(c, 240)
	for i := range xs {
		if r, col, ok := toCell(xs[i], ys[i]); ok {
			grid[r][col] = '·'
		}
	}

	mark := func(x, y float64, ch rune) {
		if r, col, ok := toCell(x, y); ok {
			grid[r][col] = ch
		}
	}
	mark(c.Center, 0, '+')
	mark(c.Sigma1, 0, '1')
	mark(c.Sigma2, 0, '2')
	mark(data.State.SigmaX, data.State.TauXY, 'x')
	mark(data.Point.SigmaX1, data.Point.TauX1Y1, '●')

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  MOHR'S CIRCLE (σ horizontal, τ vertical)\n")
	sb.WriteString("  ────────────────────────────────────────\n\n")
	for _, line := range grid {
		sb.WriteString("  ")
		sb.WriteString(string(line))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  +  center (σavg = %.2f)\n", c.Center))
	sb.WriteString(fmt.Sprintf("  1  σ1 = %.2f    2  σ2 = %.2f\n", c.Sigma1, c.Sigma2))
	sb.WriteString(fmt.Sprintf("  x  original face (θ=0): (%.2f, %.2f)\n",
		data.State.SigmaX, data.State.TauXY))
	sb.WriteString(fmt.Sprintf("  ●  rotated face (θ=%.1f°): (%.2f, %.2f)\n",
		data.Theta, data.Point.SigmaX1, data.Point.TauX1Y1))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results. Widths are measured in
// runes so σ, τ and ° glyphs keep the borders aligned.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
