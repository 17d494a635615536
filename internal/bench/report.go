package bench

import (
	"encoding/csv"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteText prints rep as aligned tables, formatting numbers for lang.
func WriteText(w io.Writer, rep *Report, lang language.Tag) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	p := message.NewPrinter(lang)

	p.Fprintf(tw, "Insert %d words (ms)\tSearch %d words (ms)\tWords\t\n",
		rep.Options.ProbeSize, rep.Options.ProbeSize)
	for i, pt := range rep.Insert {
		search := ""
		if i < len(rep.Search) {
			search = p.Sprintf("%.4f", ms(rep.Search[i].Mean))
		}
		p.Fprintf(tw, "%.4f\t%s\t%d\t\n", ms(pt.Mean), search, pt.Size)
	}
	p.Fprintln(tw)

	p.Fprintf(tw, "Words\tBest insert\tAvg insert\tWorst insert\tBest search\tAvg search\tWorst search\t\n")
	for _, c := range rep.Cases {
		p.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n", c.Size,
			ms(c.Best.Insert), ms(c.Average.Insert), ms(c.Worst.Insert),
			ms(c.Best.Search), ms(c.Average.Search), ms(c.Worst.Search))
	}
	p.Fprintln(tw)

	c := rep.Comparison
	p.Fprintf(tw, "%d words, %d held out\tSet (ms)\tTree (ms)\t\n", c.Words, c.HoldOut)
	p.Fprintf(tw, "Insert\t%.4f\t%.4f\t\n", ms(c.SetInsert), ms(c.TreeInsert))
	p.Fprintf(tw, "Search\t%.4f\t%.4f\t\n", ms(c.SetSearch), ms(c.TreeSearch))

	return errors.Wrap(tw.Flush(), "write report")
}

// WriteCSV writes rep as CSV rows of the form benchmark,series,size,millis,
// ready for charting.
func WriteCSV(w io.Writer, rep *Report) error {
	cw := csv.NewWriter(w)
	row := func(bench, series string, size int, d time.Duration) {
		_ = cw.Write([]string{bench, series, strconv.Itoa(size), strconv.FormatFloat(ms(d), 'f', 6, 64)})
	}
	_ = cw.Write([]string{"benchmark", "series", "size", "millis"})
	for _, p := range rep.Insert {
		row("insert", "probe", p.Size, p.Mean)
	}
	for _, p := range rep.Search {
		row("search", "probe", p.Size, p.Mean)
	}
	for _, c := range rep.Cases {
		row("insert", "best", c.Size, c.Best.Insert)
		row("insert", "average", c.Size, c.Average.Insert)
		row("insert", "worst", c.Size, c.Worst.Insert)
		row("search", "best", c.Size, c.Best.Search)
		row("search", "average", c.Size, c.Average.Search)
		row("search", "worst", c.Size, c.Worst.Search)
	}
	c := rep.Comparison
	row("compare", "set_insert", c.Words, c.SetInsert)
	row("compare", "tree_insert", c.Words, c.TreeInsert)
	row("compare", "set_search", c.HoldOut, c.SetSearch)
	row("compare", "tree_search", c.HoldOut, c.TreeSearch)
	cw.Flush()
	return errors.Wrap(cw.Error(), "write csv")
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
