package wordfreq

import (
	"io"
	"strings"
)

// ChartKind identifies one of the supported visualization shapes.
type ChartKind int

// Chart kinds in the order the UI offers them.
const (
	ChartWordCloud ChartKind = iota
	ChartBar
	ChartPie
	ChartLine
	ChartScatter
	ChartRadar
	ChartHeatmap
)

var chartKindNames = [...]string{
	ChartWordCloud: "wordcloud",
	ChartBar:       "bar",
	ChartPie:       "pie",
	ChartLine:      "line",
	ChartScatter:   "scatter",
	ChartRadar:     "radar",
	ChartHeatmap:   "heatmap",
}

var chartKindLabels = [...]string{
	ChartWordCloud: "Word cloud",
	ChartBar:       "Bar chart",
	ChartPie:       "Pie chart",
	ChartLine:      "Line chart",
	ChartScatter:   "Scatter plot",
	ChartRadar:     "Radar chart",
	ChartHeatmap:   "Heatmap",
}

// ChartKinds returns every chart kind in display order.
func ChartKinds() []ChartKind {
	return []ChartKind{
		ChartWordCloud,
		ChartBar,
		ChartPie,
		ChartLine,
		ChartScatter,
		ChartRadar,
		ChartHeatmap,
	}
}

// Valid reports whether k is a known chart kind.
func (k ChartKind) Valid() bool {
	return k >= ChartWordCloud && k <= ChartHeatmap
}

// String returns the identifier used in URLs and flags.
func (k ChartKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return chartKindNames[k]
}

// Label returns the human-readable name.
func (k ChartKind) Label() string {
	if !k.Valid() {
		return "Unknown"
	}
	return chartKindLabels[k]
}

// ParseChartKind parses an identifier such as "bar". Matching ignores case
// and surrounding space. Returns EINVALID for unknown kinds.
func ParseChartKind(s string) (ChartKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range ChartKinds() {
		if chartKindNames[k] == s {
			return k, nil
		}
	}
	return 0, Errorf(EINVALID, "unknown chart kind %q", s)
}

// ChartData is the input to a chart render.
type ChartData struct {
	// Title is shown above the chart.
	Title string

	// Terms are the ranked terms to plot.
	Terms []Term

	// MaxCount is the highest count in the full table. Radar axes use it
	// as their maximum.
	MaxCount int

	// Sections holds per-section counts for the heatmap.
	Sections []*FrequencyTable
}

// ChartRenderer renders a chart as a self-contained HTML document.
type ChartRenderer interface {
	// Render writes the chart of the given kind to w. Rendering the same
	// kind and data twice produces identical output. Empty data renders a
	// placeholder chart rather than failing.
	Render(w io.Writer, kind ChartKind, data ChartData) error
}
