package sweep

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

type Summary struct {
	RunID       string  `json:"run_id"`
	Variant     string  `json:"variant"`
	Points      int     `json:"points"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	MeanPrice   float64 `json:"mean_price"`
	MinDelta    float64 `json:"min_delta"`
	MaxDelta    float64 `json:"max_delta"`
	MedianDelta float64 `json:"median_delta"`
}

func Summarize(res Result) (Summary, error) {
	if len(res.Points) == 0 {
		return Summary{}, fmt.Errorf("summarize: empty sweep")
	}

	prices := make(stats.Float64Data, len(res.Points))
	deltas := make(stats.Float64Data, len(res.Points))
	for i, pt := range res.Points {
		prices[i] = pt.Price
		deltas[i] = pt.Delta
	}

	s := Summary{RunID: res.RunID, Variant: res.Variant.String(), Points: len(res.Points)}

	var err error
	if s.MinPrice, err = prices.Min(); err != nil {
		return Summary{}, err
	}
	if s.MaxPrice, err = prices.Max(); err != nil {
		return Summary{}, err
	}
	if s.MeanPrice, err = prices.Mean(); err != nil {
		return Summary{}, err
	}
	if s.MinDelta, err = deltas.Min(); err != nil {
		return Summary{}, err
	}
	if s.MaxDelta, err = deltas.Max(); err != nil {
		return Summary{}, err
	}
	if s.MedianDelta, err = deltas.Median(); err != nil {
		return Summary{}, err
	}
	return s, nil
}
