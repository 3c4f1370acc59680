// Command kurabench runs a spawn and query workload against a kura World
// and prints a JSON report with timings and storage statistics.
package main

import (
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	profileCPU    = "cpu"
	profileMem    = "mem"
	profileAllocs = "allocs"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		logger := zerolog.New(os.Stderr)
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg Config) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:          "kurabench",
		Short:        "Benchmark spawning and querying a kura World",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return eris.Wrapf(err, "create %s", outPath)
				}
				defer f.Close()
				out = f
			}

			if stop := startProfile(cfg.Profile); stop != nil {
				defer stop()
			}
			logger.Info().
				Int("entities", cfg.Entities).
				Int("rounds", cfg.Rounds).
				Str("profile", cfg.Profile).
				Msg("starting benchmark")
			return run(cfg, logger, out)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Entities, "entities", "n", cfg.Entities, "number of entities to spawn")
	flags.IntVarP(&cfg.Rounds, "rounds", "r", cfg.Rounds, "number of query rounds")
	flags.StringVar(&cfg.Profile, "profile", cfg.Profile, "profile mode: cpu, mem or allocs")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flags.StringVarP(&outPath, "out", "o", "", "write the report to this file instead of stdout")
	return cmd
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, eris.Wrapf(err, "parse log level %q", level)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger(), nil
}

// startProfile starts the requested pprof profile in the working directory
// and returns the function stopping it, or nil when profiling is off.
func startProfile(mode string) func() {
	var opt func(*profile.Profile)
	switch mode {
	case profileCPU:
		opt = profile.CPUProfile
	case profileMem:
		opt = profile.MemProfile
	case profileAllocs:
		opt = profile.MemProfileAllocs
	default:
		return nil
	}
	return profile.Start(opt, profile.ProfilePath("."), profile.Quiet, profile.NoShutdownHook).Stop
}
