package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/stats"
	"github.com/abhisek/sahayak/internal/ui/theme"
)

const columnWidth = 5

// RenderChart draws points as a vertical bar chart rows tall, with the
// weekday labels underneath. Bars are scaled to the largest count.
func RenderChart(points []stats.DailyActivity, rows int) string {
	peak := 0
	for _, p := range points {
		peak = max(peak, p.Count)
	}

	bar := lipgloss.NewStyle().Foreground(theme.Secondary)
	var b strings.Builder

	for row := rows; row >= 1; row-- {
		for _, p := range points {
			cell := strings.Repeat(" ", columnWidth)
			if barHeight(p.Count, peak, rows) >= row {
				cell = " " + bar.Render("███") + " "
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	for _, p := range points {
		b.WriteString(center(fmt.Sprint(p.Count), columnWidth))
	}
	b.WriteString("\n")
	for _, p := range points {
		b.WriteString(theme.Subtitle.Render(center(p.Date, columnWidth)))
	}
	return b.String()
}

// barHeight scales count to [0, rows]. Any non-zero count gets at least
// one row.
func barHeight(count, peak, rows int) int {
	if count <= 0 || peak <= 0 {
		return 0
	}
	return max(count*rows/peak, 1)
}

func center(s string, w int) string {
	n := lipgloss.Width(s)
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}
