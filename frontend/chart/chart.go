package chart

import (
	"io"
	"sort"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"tutordash/frontend/models"
)

// The on-track reference line rises linearly from 0% to 100% across the
// academic term.
var (
	OnTrackStart = time.Date(2025, time.August, 13, 0, 0, 0, 0, time.UTC)
	OnTrackEnd   = time.Date(2026, time.May, 22, 0, 0, 0, 0, time.UTC)
)

const defaultCourseColor = "#666"

// BuildSeries groups progress entries by course into chronological time
// series, one per enrolled course, and appends the dashed on-track target
// line. Entries for courses outside the enrollment list are ignored.
func BuildSeries(courses []models.Course, entries []models.ProgressEntry) []chart.Series {
	byCourse := make(map[int][]models.ProgressEntry)
	for _, e := range entries {
		byCourse[e.CourseID] = append(byCourse[e.CourseID], e)
	}

	var series []chart.Series
	for _, course := range courses {
		points := byCourse[course.ID]
		if len(points) == 0 {
			continue
		}
		sort.Slice(points, func(i, j int) bool {
			return points[i].RecordedAt.Before(points[j].RecordedAt)
		})

		xs := make([]time.Time, 0, len(points))
		ys := make([]float64, 0, len(points))
		for _, p := range points {
			xs = append(xs, p.RecordedAt)
			ys = append(ys, p.Percentage.Float())
		}
		// go-chart needs two points to draw anything.
		if len(xs) == 1 {
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}

		color := parseHexColor(course.Color)
		series = append(series, chart.TimeSeries{
			Name:    course.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    3,
			},
		})
	}

	series = append(series, chart.TimeSeries{
		Name:    "On track (target)",
		XValues: []time.Time{OnTrackStart, OnTrackEnd},
		YValues: []float64{0, 100},
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("999999"),
			StrokeWidth:     2,
			StrokeDashArray: []float64{5, 5},
		},
	})
	return series
}

// Render draws the series as a PNG for the dashboard canvas.
func Render(w io.Writer, series []chart.Series) error {
	graph := chart.Chart{
		Width:  900,
		Height: 420,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 2006"),
		},
		YAxis: chart.YAxis{
			Name:  "Completion %",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

func parseHexColor(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = strings.Repeat(string(hex[0]), 2) + strings.Repeat(string(hex[1]), 2) + strings.Repeat(string(hex[2]), 2)
	}
	if len(hex) != 6 {
		return parseHexColor(defaultCourseColor)
	}
	return drawing.ColorFromHex(hex)
}
