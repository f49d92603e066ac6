package profile

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// EmptyNotice is printed for a summary without describable columns.
const EmptyNotice = "No numeric or categorical columns to describe."

// Render prints the summary as a table with one row per statistic and one
// column per described frame column.
func (s *Summary) Render(w io.Writer) {
	if s.Empty() {
		fmt.Fprintln(w, EmptyNotice)
		return
	}
	labels := NumericStats
	if s.Layout == LayoutCategorical {
		labels = CategoricalStats
	}

	tw := tablewriter.NewWriter(w)
	hdr := make([]string, 0, len(s.Columns)+1)
	hdr = append(hdr, "")
	for _, c := range s.Columns {
		hdr = append(hdr, c.Name)
	}
	tw.SetHeader(hdr)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, label := range labels {
		row := make([]string, 0, len(hdr))
		row = append(row, label)
		for _, c := range s.Columns {
			row = append(row, c.cell(label))
		}
		tw.Append(row)
	}
	tw.Render()
}

func (c ColumnSummary) cell(label string) string {
	if n := c.Numeric; n != nil {
		switch label {
		case "count":
			return Stat(n.Count).String()
		case "mean":
			return n.Mean.String()
		case "std":
			return n.Std.String()
		case "min":
			return n.Min.String()
		case "25%":
			return n.Q25.String()
		case "50%":
			return n.Q50.String()
		case "75%":
			return n.Q75.String()
		case "max":
			return n.Max.String()
		}
	}
	if k := c.Categorical; k != nil {
		if k.Count == 0 && (label == "top" || label == "freq") {
			return "NaN"
		}
		switch label {
		case "count":
			return strconv.Itoa(k.Count)
		case "unique":
			return strconv.Itoa(k.Unique)
		case "top":
			return k.Top
		case "freq":
			return strconv.Itoa(k.Freq)
		}
	}
	return ""
}
