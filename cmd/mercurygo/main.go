package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/autiwa/mercurygo/pkg/aei"
	"github.com/autiwa/mercurygo/pkg/report"
	"github.com/autiwa/mercurygo/pkg/resonance"
	"github.com/autiwa/mercurygo/pkg/utils"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mercurygo",
		Short: "Post-processing tools for mercury N-body simulations",
		Long: `Analysis tools for the output of a mercury N-body simulation:
detects mean-motion resonances and apsidal alignments between the
surviving planets of a run.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mercurygo/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		initCmd(),
		resonancesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return utils.SaveConfig(utils.DefaultConfig())
		},
	}
}

func resonancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resonances [simulation-dir]",
		Short: "Detect mean-motion resonances between adjacent planets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := utils.LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			dir := config.Simulation.Dir
			if len(args) > 0 {
				dir = args[0]
			}
			applyOverrides(cmd, config)
			if err := utils.ValidateConfig(config); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			logger := newLogger(config.Output.LogLevel)

			tracks, err := aei.NewReader(logger).ReadSystem(dir)
			if err != nil {
				return fmt.Errorf("loading simulation from %s: %w", dir, err)
			}
			logger.Info().Int("bodies", len(tracks)).Str("dir", dir).Msg("loaded system")

			results := resonance.New(config.Resonance).
				WithLogger(logger).
				Detect(tracks)

			out := os.Stdout
			if path, _ := cmd.Flags().GetString("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}
			return report.Write(out, report.Build(results), config.Output.Format)
		},
	}

	cmd.Flags().String("format", "", "output format: text, json or yaml")
	cmd.Flags().String("output", "", "write the report to a file instead of stdout")
	cmd.Flags().Int("denominator-limit", 0, "max denominator for candidate fractions")
	cmd.Flags().Int("samples", 0, "period ratios sampled per pair")
	cmd.Flags().Float64("uncertainty", -1, "fractional half-width of the ratio scan window")
	cmd.Flags().Int("trailing-points", 0, "samples per body used for the libration test")
	cmd.Flags().Float64("threshold", -1, "libration standard deviation threshold (degrees)")

	return cmd
}

// applyOverrides lets explicit flags win over the config file.
func applyOverrides(cmd *cobra.Command, config *utils.Config) {
	if cmd.Flags().Changed("format") {
		config.Output.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("denominator-limit") {
		config.Resonance.DenominatorLimit, _ = cmd.Flags().GetInt("denominator-limit")
	}
	if cmd.Flags().Changed("samples") {
		config.Resonance.SampleCount, _ = cmd.Flags().GetInt("samples")
	}
	if cmd.Flags().Changed("uncertainty") {
		config.Resonance.UncertaintyFraction, _ = cmd.Flags().GetFloat64("uncertainty")
	}
	if cmd.Flags().Changed("trailing-points") {
		config.Resonance.TrailingPoints, _ = cmd.Flags().GetInt("trailing-points")
	}
	if cmd.Flags().Changed("threshold") {
		config.Resonance.LibrationStdThreshold, _ = cmd.Flags().GetFloat64("threshold")
	}
}
