package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

var profileTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
var profileInfoStyle = lipgloss.NewStyle().Faint(true)

// View renders the selected dive's synthesized depth profile as a braille
// line chart, depth growing downward the way dive software draws it.
func View(data *Data) string {
	b := &strings.Builder{}
	b.WriteString(profileTitleStyle.Render("Profile"))
	b.WriteString("\n")
	if data == nil {
		b.WriteString(profileInfoStyle.Render("No dive selected. Pick one in the log or press 'c' to add one."))
		return b.String()
	}
	if data.site != "" {
		b.WriteString("Site: ")
		b.WriteString(data.site)
		b.WriteString("\n")
	}
	samples := data.computer.Samples
	if len(samples) < 2 {
		b.WriteString(profileInfoStyle.Render("No profile; the record has no depth or duration."))
		return b.String()
	}

	maxT := samples[len(samples)-1].Time
	// Depth plotted negative so the surface sits at the top of the chart.
	minV := 0.0
	for _, s := range samples {
		if v := -float64(s.Depth) / 1000; v < minV {
			minV = v
		}
	}
	if minV == 0 {
		minV = -0.1
	}

	// chart dimensions
	width := 42
	height := 10
	lc := timeserieslinechart.New(width, height)
	start := time.Unix(0, 0)
	end := time.Unix(int64(maxT), 0)
	lc.SetTimeRange(start, end)
	lc.SetViewTimeAndYRange(start, end, minV, 0)
	// X values are elapsed seconds; label them as minutes into the dive.
	minutes := maxT / 60
	if minutes <= 0 {
		minutes = 1
	}
	xStep := 1
	if minutes < lc.GraphWidth() {
		xStep = lc.GraphWidth() / minutes
		if xStep < 1 {
			xStep = 1
		}
	}
	lc.SetXStep(xStep)
	lc.Model.XLabelFormatter = func(i int, v float64) string {
		return fmt.Sprintf("%d'", int(v)/60)
	}
	for _, s := range samples {
		lc.Push(timeserieslinechart.TimePoint{Time: time.Unix(int64(s.Time), 0), Value: -float64(s.Depth) / 1000})
	}
	lc.DrawBraille()

	b.WriteString("Depth (m) over time:\n")
	b.WriteString(lc.View())
	b.WriteString("\n")
	legendStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	b.WriteString(legendStyle.Render("─"))
	b.WriteString(" ")
	b.WriteString(profileInfoStyle.Render("Synthesized depth"))
	b.WriteString("\n")
	c := data.computer
	b.WriteString(profileInfoStyle.Render(fmt.Sprintf("max %.1f m / avg %.1f m | %d:%02d | %d samples",
		float64(c.MaxDepth)/1000, float64(c.MeanDepth)/1000, c.Duration/60, c.Duration%60, len(samples))))
	return b.String()
}
