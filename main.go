package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"github.com/bcdannyboy/turbo/config"
	"github.com/bcdannyboy/turbo/models"
	"github.com/bcdannyboy/turbo/positions"
	"github.com/bcdannyboy/turbo/report"
	turboslack "github.com/bcdannyboy/turbo/slack"
	"github.com/bcdannyboy/turbo/sweep"
)

var rootCmd = &cobra.Command{
	Use:   "turbo",
	Short: "Price turbo warrants under dividend-adjusted Black-Scholes-Merton",
	Long: `turbo prices knock-out turbo warrants by composing a reflection-principle barrier
price with a dominant-root weighted lookback rebate, and estimates the spot delta by
finite differences.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, err := cmd.Flags().GetString("env-file")
		if err != nil {
			return err
		}
		if envFile == "" {
			err = config.LoadEnv()
		} else {
			err = config.LoadEnv(envFile)
		}
		if err != nil {
			return err
		}
		return config.SetupLogging()
	},
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a single turbo warrant and its spot deltas",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, variant, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		res, err := positions.CalculateTurboMetrics(cfg.Parameters, variant, cfg.Bump)
		if err != nil {
			return fmt.Errorf("error pricing turbo: %w", err)
		}

		log.WithFields(log.Fields{
			"variant": variant.String(),
			"price":   res.Price,
		}).Debug("priced turbo")

		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		switch format {
		case "json":
			return report.WriteJSON(cmd.OutOrStdout(), res)
		case "table":
			report.MetricsTable(cmd.OutOrStdout(), res)
			return nil
		}
		return fmt.Errorf("unknown format %q", format)
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the turbo price and delta over a range of spots",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, variant, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		spots, err := sweep.SpotGrid(cfg.Sweep.From, cfg.Sweep.To, cfg.Sweep.Points)
		if err != nil {
			return err
		}

		showProgress, err := cmd.Flags().GetBool("progress")
		if err != nil {
			return err
		}

		opts := sweep.Options{Workers: cfg.Sweep.Workers}
		var (
			progress *mpb.Progress
			bar      *mpb.Bar
		)
		if showProgress {
			progress, bar = newProgressBar(cmd.ErrOrStderr(), len(spots))
			opts.OnPoint = bar.Increment
		}

		res, err := sweep.Run(cmd.Context(), cfg.Parameters, variant, spots, opts)
		if progress != nil {
			if err != nil {
				bar.Abort(false)
			}
			progress.Wait()
		}
		if err != nil {
			return fmt.Errorf("error running sweep: %w", err)
		}

		summary, err := sweep.Summarize(res)
		if err != nil {
			return err
		}
		report.SweepTable(cmd.OutOrStdout(), summary)

		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}
		if out == "" {
			return nil
		}

		if err := writeSweepFile(out, res.Points); err != nil {
			return err
		}
		log.WithFields(log.Fields{"run_id": res.RunID, "path": out}).Infof("wrote %d sweep points", len(res.Points))
		return nil
	},
}

var slackCmd = &cobra.Command{
	Use:   "slack",
	Short: "Serve /turbo slash commands over Slack socket mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		bot, err := turboslack.NewSlackBot(os.Getenv("SLACK_APP_TOKEN"), os.Getenv("SLACK_BOT_TOKEN"), cfg.Bump)
		if err != nil {
			return err
		}
		log.Info("starting slack bot")
		return bot.Start(cmd.Context())
	},
}

func newProgressBar(w io.Writer, total int) (*mpb.Progress, *mpb.Bar) {
	p := mpb.New(mpb.WithWidth(64), mpb.WithOutput(w))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Pricing"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)
	return p, bar
}

func writeSweepFile(path string, points []sweep.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	if err := report.WriteSweepCSV(f, points); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", path, err)
	}
	return nil
}

// loadConfig layers explicitly set flags over the YAML file over the defaults.
func loadConfig(flags *pflag.FlagSet) (config.File, models.OptionVariant, error) {
	path, err := flags.GetString("config")
	if err != nil {
		return config.File{}, 0, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.File{}, 0, err
	}

	floatFlags := map[string]*float64{
		"spot":            &cfg.Parameters.Spot,
		"strike":          &cfg.Parameters.Strike,
		"maturity":        &cfg.Parameters.Maturity,
		"rate":            &cfg.Parameters.Rate,
		"volatility":      &cfg.Parameters.Volatility,
		"barrier":         &cfg.Parameters.Barrier,
		"rebate-maturity": &cfg.Parameters.RebateMaturity,
		"dividend-yield":  &cfg.Parameters.DividendYield,
		"bump":            &cfg.Bump,
		"from":            &cfg.Sweep.From,
		"to":              &cfg.Sweep.To,
	}
	for name, dst := range floatFlags {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetFloat64(name); err != nil {
			return config.File{}, 0, err
		}
	}

	intFlags := map[string]*int{
		"points":  &cfg.Sweep.Points,
		"workers": &cfg.Sweep.Workers,
	}
	for name, dst := range intFlags {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetInt(name); err != nil {
			return config.File{}, 0, err
		}
	}

	if flags.Changed("variant") {
		if cfg.Variant, err = flags.GetString("variant"); err != nil {
			return config.File{}, 0, err
		}
	}

	variant, err := cfg.OptionVariant()
	if err != nil {
		return config.File{}, 0, err
	}
	return cfg, variant, nil
}

func addParameterFlags(cmd *cobra.Command) {
	d := config.Default()
	cmd.Flags().Float64("spot", d.Parameters.Spot, "Spot price of the underlying (S0).")
	cmd.Flags().Float64("strike", d.Parameters.Strike, "Strike (K).")
	cmd.Flags().Float64("maturity", d.Parameters.Maturity, "Maturity in years (T).")
	cmd.Flags().Float64("rate", d.Parameters.Rate, "Continuously compounded risk-free rate (r).")
	cmd.Flags().Float64("volatility", d.Parameters.Volatility, "Volatility (sigma).")
	cmd.Flags().Float64("barrier", d.Parameters.Barrier, "Knock-out barrier level (H).")
	cmd.Flags().Float64("rebate-maturity", d.Parameters.RebateMaturity, "Rebate maturity in years (T0).")
	cmd.Flags().Float64("dividend-yield", d.Parameters.DividendYield, "Continuous dividend yield (q).")
	cmd.Flags().StringP("variant", "v", d.Variant, "Option variant: call or put.")
	cmd.Flags().Float64("bump", d.Bump, "Absolute spot bump used for the finite-difference delta.")
}

func main() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML parameter file. Defaults to $TURBO_CONFIG.")
	rootCmd.PersistentFlags().String("env-file", "", "Optional .env file loaded before anything else.")

	addParameterFlags(priceCmd)
	priceCmd.Flags().StringP("format", "f", "table", "Output format: table or json.")

	addParameterFlags(sweepCmd)
	d := config.Default()
	sweepCmd.Flags().Float64("from", d.Sweep.From, "First spot of the sweep.")
	sweepCmd.Flags().Float64("to", d.Sweep.To, "Last spot of the sweep.")
	sweepCmd.Flags().Int("points", d.Sweep.Points, "Number of spots in the sweep.")
	sweepCmd.Flags().Int("workers", 0, "Concurrent pricers; the logical CPU count when 0.")
	sweepCmd.Flags().StringP("out", "o", "", "Write the sweep as CSV to this path.")
	sweepCmd.Flags().Bool("progress", false, "Show a progress bar.")

	slackCmd.Flags().Float64("bump", d.Bump, "Absolute spot bump used for the finite-difference delta.")

	rootCmd.AddCommand(priceCmd, sweepCmd, slackCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("error running command: %v", err)
	}
}
