// Package echarts implements wordfreq.ChartRenderer with go-echarts.
package echarts

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wordfreq"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// DefaultHeight is the fixed display height of every chart.
const DefaultHeight = "600px"

// PlaceholderTitle is shown when there are no terms to plot.
const PlaceholderTitle = "No terms to display"

// Word cloud font sizes in pixels.
const (
	minWordSize = 20
	maxWordSize = 100
)

// Ensure Renderer implements wordfreq.ChartRenderer at compile time.
var _ wordfreq.ChartRenderer = (*Renderer)(nil)

// Renderer renders charts as standalone HTML documents.
type Renderer struct {
	height     string
	assetsHost string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHeight sets the chart height as a CSS length.
// Defaults to DefaultHeight.
func WithHeight(h string) Option {
	return func(r *Renderer) {
		r.height = h
	}
}

// WithAssetsHost sets the base URL the echarts scripts are loaded from.
// Defaults to the go-echarts CDN.
func WithAssetsHost(host string) Option {
	return func(r *Renderer) {
		r.assetsHost = host
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{height: DefaultHeight}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type chart interface {
	Render(w io.Writer) error
}

// Render writes the chart of the given kind to w.
func (r *Renderer) Render(w io.Writer, kind wordfreq.ChartKind, data wordfreq.ChartData) error {
	if !kind.Valid() {
		return wordfreq.Errorf(wordfreq.EINVALID, "unknown chart kind %d", int(kind))
	}

	global := r.globalOptions(kind, data)

	var c chart
	if len(data.Terms) == 0 {
		c = placeholder(global)
	} else {
		switch kind {
		case wordfreq.ChartWordCloud:
			c = wordCloud(global, data)
		case wordfreq.ChartBar:
			c = bar(global, data)
		case wordfreq.ChartPie:
			c = pie(global, data)
		case wordfreq.ChartLine:
			c = line(global, data)
		case wordfreq.ChartScatter:
			c = scatter(global, data)
		case wordfreq.ChartRadar:
			c = radar(global, data)
		case wordfreq.ChartHeatmap:
			c = heatmap(global, data)
		}
	}

	if err := c.Render(w); err != nil {
		return fmt.Errorf("render %s chart: %w", kind, err)
	}
	return nil
}

func (r *Renderer) globalOptions(kind wordfreq.ChartKind, data wordfreq.ChartData) []charts.GlobalOpts {
	title := data.Title
	if len(data.Terms) == 0 {
		title = PlaceholderTitle
	}

	init := opts.Initialization{
		PageTitle: title,
		Width:     "100%",
		Height:    r.height,
		ChartID:   ChartID(kind, data),
	}
	if r.assetsHost != "" {
		init.AssetsHost = r.assetsHost
	}

	return []charts.GlobalOpts{
		charts.WithInitializationOpts(init),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

// ChartID derives a stable element ID from the chart input so that the
// same input always renders the same document.
func ChartID(kind wordfreq.ChartKind, data wordfreq.ChartData) string {
	h := xxhash.New()
	_, _ = h.WriteString(kind.String())
	_, _ = h.WriteString("\x00" + data.Title)
	_, _ = h.WriteString("\x00" + strconv.Itoa(data.MaxCount))
	for _, t := range data.Terms {
		_, _ = h.WriteString("\x00" + t.Token + "\x00" + strconv.Itoa(t.Count))
	}
	if kind == wordfreq.ChartHeatmap {
		for _, s := range data.Sections {
			for _, t := range data.Terms {
				_, _ = h.WriteString("\x00" + strconv.Itoa(s.Count(t.Token)))
			}
		}
	}
	return "wordfreq_" + strconv.FormatUint(h.Sum64(), 16)
}

func tokens(terms []wordfreq.Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.Token
	}
	return out
}

func placeholder(global []charts.GlobalOpts) chart {
	c := charts.NewBar()
	c.SetGlobalOptions(global...)
	c.SetXAxis([]string{})
	return c
}

func wordCloud(global []charts.GlobalOpts, data wordfreq.ChartData) chart {
	items := make([]opts.WordCloudData, len(data.Terms))
	for i, t := range data.Terms {
		items[i] = opts.WordCloudData{Name: t.Token, Value: t.Count}
	}

	c := charts.NewWordCloud()
	c.SetGlobalOptions(global...)
	c.AddSeries("", items,
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{
			SizeRange: []float32{minWordSize, maxWordSize},
			Shape:     "circle",
		}),
	)
	return c
}

func bar(global []charts.GlobalOpts, data wordfreq.ChartData) chart {
	items := make([]opts.BarData, len(data.Terms))
	for i, t := range data.Terms {
		items[i] = opts.BarData{Value: t.Count}
	}

	c := charts.NewBar()
	c.SetGlobalOptions(global...)
	c.SetXAxis(tokens(data.Terms)).AddSeries("", items)
	return c
}

func pie(global []charts.GlobalOpts, data wordfreq.ChartData) chart {
	items := make([]opts.PieData, len(data.Terms))
	for i, t := range data.Terms {
		items[i] = opts.PieData{Name: t.Token, Value: t.Count}
	}

	c := charts.NewPie()
	c.SetGlobalOptions(global...)
	c.AddSeries("", items,
		charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{"30%", "75%"},
		}),
	)
	return c
}

func line(global []charts.GlobalOpts, data wordfreq.ChartData) chart {
	items := make([]opts.LineData, len(data.Terms))
	for i, t := range data.Terms {
		items[i] = opts.LineData{Value: t.Count}
	}

	c := charts.NewLine()
	c.SetGlobalOptions(global...)
	c.SetXAxis(tokens(data.Terms)).AddSeries("", items)
	return c
}

func scatter(global []charts.GlobalOpts, data wordfreq.ChartData) chart {
	items := make([]opts.ScatterData, len(data.Terms))
	for i, t := range data.Terms {
		items[i] = opts.ScatterData{Value: t.Count}
	}

	c := charts.NewScatter()
	c.SetGlobalOptions(global...)
	c.SetXAxis(tokens(data.Terms)).AddSeries("", items)
	return c
}

func radar(global []charts.GlobalOpts, data wordfreq.ChartData) chart {
	limit := data.MaxCount
	if limit < 1 {
		limit = 1
	}

	indicators := make([]*opts.Indicator, len(data.Terms))
	values := make([]int, len(data.Terms))
	for i, t := range data.Terms {
		indicators[i] = &opts.Indicator{Name: t.Token, Max: float32(limit)}
		values[i] = t.Count
	}

	c := charts.NewRadar()
	c.SetGlobalOptions(global...)
	c.SetGlobalOptions(charts.WithRadarComponentOpts(opts.RadarComponent{
		Indicator: indicators,
	}))
	c.AddSeries("", []opts.RadarData{{Value: values}})
	return c
}

// heatmap plots each term against the document sections it occurs in.
func heatmap(global []charts.GlobalOpts, data wordfreq.ChartData) chart {
	labels := make([]string, len(data.Sections))
	for i := range data.Sections {
		labels[i] = "§" + strconv.Itoa(i+1)
	}

	var items []opts.HeatMapData
	highest := 0
	for x, section := range data.Sections {
		for y, t := range data.Terms {
			n := section.Count(t.Token)
			if n > highest {
				highest = n
			}
			items = append(items, opts.HeatMapData{Value: [3]interface{}{x, y, n}})
		}
	}
	if highest < 1 {
		highest = 1
	}

	c := charts.NewHeatMap()
	c.SetGlobalOptions(global...)
	c.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "section", Data: labels}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: tokens(data.Terms)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(highest),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#50a3ba", "#eac736", "#d94e5d"},
			},
		}),
	)
	c.AddSeries("Heatmap", items)
	return c
}
