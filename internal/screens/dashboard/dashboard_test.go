package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/stats"
)

func TestBarHeight(t *testing.T) {
	tests := []struct {
		count, peak, rows int
		want              int
	}{
		{0, 5, 6, 0},
		{5, 5, 6, 6},
		{1, 10, 6, 1},
		{5, 10, 6, 3},
		{3, 0, 6, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, barHeight(tt.count, tt.peak, tt.rows), "count=%d peak=%d", tt.count, tt.peak)
	}
}

func TestRenderChartEmptyHistory(t *testing.T) {
	out := RenderChart(stats.UserStats{}.ChartPoints(), 4)
	assert.Contains(t, out, "Today")
	assert.NotContains(t, out, "███")
}

func TestRenderChartLabels(t *testing.T) {
	points := []stats.DailyActivity{{Date: "Mon", Count: 2}, {Date: "Tue", Count: 4}}
	out := RenderChart(points, 4)
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Tue")
	assert.Contains(t, out, "███")
}

func TestDashboardView(t *testing.T) {
	ctrl := controller.New(nil, nil)
	ctrl.Apply(controller.RecordActivity{Kind: stats.KindQuery})
	ctrl.Apply(controller.RecordActivity{Kind: stats.KindQuery})
	ctrl.Apply(controller.RecordActivity{Kind: stats.KindResourceView})

	view := New(ctrl).View(100, 80)
	assert.Contains(t, view, "Impact Report")
	assert.Contains(t, view, "Questions Asked")
	assert.Contains(t, view, "Lessons Viewed")
	assert.Contains(t, view, "10% Complete", "methodology master at one resource")
	assert.Contains(t, view, "Super Asker")
	assert.Contains(t, view, stats.WeekdayLabel(time.Now()))
}
