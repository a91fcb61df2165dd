package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/maisem/trebuchet/calibration"
	"github.com/olekukonko/tablewriter"
)

type sink func(w io.Writer, t calibration.Totals) error

func newSink(format string) (sink, error) {
	switch format {
	case "text":
		return writeText, nil
	case "table":
		return writeTable, nil
	}
	return nil, errors.Newf("unknown output format %q (want text or table)", format)
}

func writeText(w io.Writer, t calibration.Totals) error {
	for _, r := range calibration.Rules {
		if _, err := fmt.Fprintf(w, "%s: %d\n", r.Label, t.Get(r)); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, t calibration.Totals) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Label", "Rule", "Total"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, r := range calibration.Rules {
		table.Append([]string{r.Label, r.Name, strconv.Itoa(t.Get(r))})
	}
	table.Render()
	return nil
}
