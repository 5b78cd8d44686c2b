package mock

import (
	"io"

	"github.com/fwojciec/wordfreq"
)

var _ wordfreq.ChartRenderer = (*ChartRenderer)(nil)

// ChartRenderer is a mock implementation of wordfreq.ChartRenderer.
type ChartRenderer struct {
	RenderFn func(w io.Writer, kind wordfreq.ChartKind, data wordfreq.ChartData) error
}

func (r *ChartRenderer) Render(w io.Writer, kind wordfreq.ChartKind, data wordfreq.ChartData) error {
	return r.RenderFn(w, kind, data)
}
