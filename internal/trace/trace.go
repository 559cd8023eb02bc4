// Package trace replays the typewriter offline, without timers, for the
// trace command: a tick table and a chart of the visible character count.
package trace

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/typist/internal/typing"
)

// Row is one transition and the moment it would be applied, measured from
// driver start.
type Row struct {
	Tick  int
	At    time.Duration
	Delay time.Duration
	State typing.State
}

// Build computes the first n transitions.
func Build(p typing.Phrases, t typing.Timing, n int) []Row {
	steps := typing.Sequence(p, t, n)
	rows := make([]Row, len(steps))
	var at time.Duration
	for i, st := range steps {
		at += st.Delay
		rows[i] = Row{Tick: i + 1, At: at, Delay: st.Delay, State: st.State}
	}
	return rows
}

// WriteTable prints rows as an aligned table.
func WriteTable(out io.Writer, rows []Row) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TICK\tAT\tDELAY\tPHRASE\tCHARS\tMODE\tTEXT")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%v\t%v\t%d\t%d\t%s\t%q\n",
			r.Tick,
			r.At,
			r.Delay,
			r.State.PhraseIndex,
			r.State.CharCount,
			r.State.Mode,
			r.State.Text,
		)
	}
	return w.Flush()
}

// Series samples the visible character count at evenly spaced instants
// between start and the last row. With zero total time it falls back to
// one sample per tick.
func Series(rows []Row, samples int) []float64 {
	if len(rows) == 0 {
		return nil
	}
	total := rows[len(rows)-1].At
	if total <= 0 || samples < 2 {
		out := make([]float64, len(rows))
		for i, r := range rows {
			out[i] = float64(r.State.CharCount)
		}
		return out
	}

	out := make([]float64, samples)
	j, cur := 0, 0.0
	for i := range out {
		at := time.Duration(int64(total) * int64(i) / int64(samples-1))
		for j < len(rows) && rows[j].At <= at {
			cur = float64(rows[j].State.CharCount)
			j++
		}
		out[i] = cur
	}
	return out
}

// Plot charts Series(rows, width) with asciigraph.
func Plot(rows []Row, width, height int) string {
	data := Series(rows, width)
	if len(data) == 0 {
		return ""
	}
	caption := "visible characters over time"
	if len(rows) > 0 {
		caption = fmt.Sprintf("visible characters over %v", rows[len(rows)-1].At)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
