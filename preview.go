package contour

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Preview renders the splines as braille text framed by a rounded border.
// It is meant for a quick look in a terminal.
type Preview struct {
	// Cols is the width of the drawing in terminal cells.
	Cols int
	// Rows is the height in cells. Zero derives it from the canvas aspect.
	Rows int
	// Steps is the number of line segments each cubic is flattened into.
	Steps int
	Title string
}

var (
	previewBorder = lipgloss.Color("#243141")
	previewAccent = lipgloss.Color("#7C3AED")

	previewBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(previewBorder).Padding(0, 1)
	previewTitle = lipgloss.NewStyle().Foreground(previewAccent).Bold(true)
)

// Draw writes the framed preview to w.
func (pv *Preview) Draw(w io.Writer, res *Result) error {
	if res.Width <= 0 || res.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrSize, res.Width, res.Height)
	}
	cols := pv.Cols
	if cols <= 0 {
		cols = 80
	}
	rows := pv.Rows
	if rows <= 0 {
		// A braille dot is roughly square, a cell holds 2x4 of them.
		rows = Max(1, cols*res.Height/(res.Width*2))
	}
	steps := pv.Steps
	if steps <= 0 {
		steps = 4
	}

	canvas := newDotCanvas(cols, rows)
	sx := float64(cols*2-1) / float64(res.Width)
	sy := float64(rows*4-1) / float64(res.Height)
	for _, layer := range res.Splines {
		for _, s := range layer {
			pl := s.Flatten(steps)
			for i := 1; i < len(pl); i++ {
				a, b := pl[i-1], pl[i]
				canvas.line(int(a.X*sx), int(a.Y*sy), int(b.X*sx), int(b.Y*sy))
			}
		}
	}

	title := pv.Title
	if title == "" {
		title = fmt.Sprintf("%d layers · %dx%d grid", len(res.Thresholds), res.Cols, res.Rows)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, previewTitle.Render(title), canvas.String())
	_, err := io.WriteString(w, previewBox.Render(body)+"\n")
	return err
}
