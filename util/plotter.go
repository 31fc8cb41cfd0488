package util

import (
	"io"

	"schedule-server/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotWeeklyStatistics renders an HTML bar chart of active shifts and
// time offs per weekday. days and stats are parallel slices.
func PlotWeeklyStatistics(w io.Writer, days []models.DayOption, stats []models.Statistics) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Schedule Statistics",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Active shifts and time offs by day",
		}),
	)

	xAxis := make([]string, 0, len(days))
	active := make([]opts.BarData, 0, len(days))
	timeOffs := make([]opts.BarData, 0, len(days))
	for i, day := range days {
		xAxis = append(xAxis, day.Label)
		active = append(active, opts.BarData{Value: stats[i].ActiveShifts})
		timeOffs = append(timeOffs, opts.BarData{Value: stats[i].TimeOffs})
	}

	bar.SetXAxis(xAxis).
		AddSeries("Active Shifts", active).
		AddSeries("Time Offs", timeOffs)

	// Render the chart as a standalone HTML page.
	return bar.Render(w)
}
