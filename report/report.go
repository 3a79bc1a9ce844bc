package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/xhhuango/json"

	"github.com/bcdannyboy/turbo/positions"
	"github.com/bcdannyboy/turbo/sweep"
)

// Places is the number of decimals shown in console tables.
const Places = 6

func WriteJSON(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

func WriteSweepCSV(w io.Writer, points []sweep.Point) error {
	if err := gocsv.Marshal(&points, w); err != nil {
		return fmt.Errorf("failed to marshal sweep csv: %w", err)
	}
	return nil
}

func MetricsTable(w io.Writer, res positions.TurboResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	rows := [][]string{
		{"variant", res.Variant.String()},
		{"turbo price", round(res.Price)},
		{"barrier leg", round(res.Barrier)},
		{"lookback (strike)", round(res.LookbackStrike)},
		{"lookback (barrier)", round(res.LookbackBarrier)},
		{"dominant root", round(res.DominantRoot)},
		{"rebate", round(res.Rebate)},
		{"vanilla", round(res.Vanilla)},
		{"delta up", round(res.DeltaUp)},
		{"delta down", round(res.DeltaDown)},
		{"spot bump", round(res.SpotBump)},
		{"intrinsic value", round(res.IntrinsicValue)},
		{"barrier breached", strconv.FormatBool(res.BarrierBreached)},
	}
	table.AppendBulk(rows)
	table.Render()
}

func SweepTable(w io.Writer, s sweep.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Run", "Variant", "Points", "Min Price", "Max Price", "Mean Price", "Min Delta", "Max Delta", "Median Delta"})
	table.Append([]string{
		s.RunID,
		s.Variant,
		strconv.Itoa(s.Points),
		round(s.MinPrice),
		round(s.MaxPrice),
		round(s.MeanPrice),
		round(s.MinDelta),
		round(s.MaxDelta),
		round(s.MedianDelta),
	})
	table.Render()
}

func round(x float64) string {
	return decimal.NewFromFloat(x).Round(Places).String()
}
