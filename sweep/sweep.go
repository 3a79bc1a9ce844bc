package sweep

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/cpu"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/bcdannyboy/turbo/models"
)

// Point is one spot of a price-vs-spot sweep. Delta is the slope of the turbo price against the
// previous grid point (the first point reuses the slope to its successor).
type Point struct {
	Spot    float64 `csv:"spot" json:"spot"`
	Price   float64 `csv:"price" json:"price"`
	Vanilla float64 `csv:"vanilla" json:"vanilla"`
	Delta   float64 `csv:"delta" json:"delta"`
}

type Options struct {
	// Workers bounds the number of concurrent evaluations; the logical CPU count when <= 0.
	Workers int
	// OnPoint is called once per evaluated spot, from the worker goroutine.
	OnPoint func()
	Model   []models.Option
}

type Result struct {
	RunID   string
	Variant models.OptionVariant
	Points  []Point
}

// SpotGrid returns n evenly spaced spots from `from` to `to` inclusive.
func SpotGrid(from, to float64, n int) ([]float64, error) {
	switch {
	case from <= 0:
		return nil, fmt.Errorf("%w: sweep start must be positive, got %v", models.ErrInvalidParameter, from)
	case to <= from:
		return nil, fmt.Errorf("%w: sweep end %v must exceed start %v", models.ErrInvalidParameter, to, from)
	case n < 2:
		return nil, fmt.Errorf("%w: sweep needs at least 2 points, got %d", models.ErrInvalidParameter, n)
	}
	return floats.Span(make([]float64, n), from, to), nil
}

// Run prices the turbo warrant and its vanilla counterpart at every spot. Spots are evaluated
// concurrently; each goroutine builds its own parameter set and writes only its own slot.
func Run(ctx context.Context, in models.Inputs, variant models.OptionVariant, spots []float64, opts Options) (Result, error) {
	if !variant.Valid() {
		return Result{}, fmt.Errorf("%w: %d", models.ErrInvalidOptionVariant, int(variant))
	}
	if len(spots) == 0 {
		return Result{}, fmt.Errorf("%w: empty spot grid", models.ErrInvalidParameter)
	}
	for i := 1; i < len(spots); i++ {
		if spots[i] <= spots[i-1] {
			return Result{}, fmt.Errorf("%w: spot grid must be strictly increasing, got %v after %v", models.ErrInvalidParameter, spots[i], spots[i-1])
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	runID := uuid.NewString()
	logger := log.WithFields(log.Fields{
		"run_id":  runID,
		"variant": variant.String(),
		"points":  len(spots),
		"workers": workers,
	})
	logger.Debug("starting sweep")

	points := make([]Point, len(spots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, spot := range spots {
		i, spot := i, spot
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pt, err := evaluate(in, variant, spot, opts.Model)
			if err != nil {
				return fmt.Errorf("spot %v: %w", spot, err)
			}
			points[i] = pt
			if opts.OnPoint != nil {
				opts.OnPoint()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.WithError(err).Warn("sweep aborted")
		return Result{}, err
	}

	fillDeltas(points)
	logger.Info("sweep complete")

	return Result{RunID: runID, Variant: variant, Points: points}, nil
}

// DefaultWorkers is the number of logical CPUs, capped by GOMAXPROCS.
func DefaultWorkers() int {
	limit := runtime.GOMAXPROCS(0)
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		log.WithError(err).Debug("cpu count unavailable, using GOMAXPROCS")
		return limit
	}
	if n > limit {
		return limit
	}
	return n
}

func evaluate(in models.Inputs, variant models.OptionVariant, spot float64, opts []models.Option) (Point, error) {
	in.Spot = spot
	p, err := models.NewValuationParameters(in, opts...)
	if err != nil {
		return Point{}, err
	}
	price, err := models.TurboPrice(p, variant)
	if err != nil {
		return Point{}, err
	}
	vanilla, err := models.VanillaPrice(p, variant)
	if err != nil {
		return Point{}, err
	}
	return Point{Spot: spot, Price: price, Vanilla: vanilla}, nil
}

// fillDeltas expects spots in strictly increasing order.
func fillDeltas(points []Point) {
	if len(points) < 2 {
		return
	}
	for i := 1; i < len(points); i++ {
		points[i].Delta = (points[i].Price - points[i-1].Price) / (points[i].Spot - points[i-1].Spot)
	}
	points[0].Delta = points[1].Delta
}
