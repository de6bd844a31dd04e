package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jwalitptl/healthbridge-seeder/internal/config"
	apperrors "github.com/jwalitptl/healthbridge-seeder/pkg/errors"
)

// options are the persistent flags shared by every command.
type options struct {
	envFile string
	seed    uint64
	yes     bool
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := rootCmd().ExecuteContext(ctx)
	if code := exitCode(err); code != 0 {
		log.Error().Err(err).Msg("seeder failed")
		stop()
		os.Exit(code)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "seeder",
		Short:         "HealthBridge synthetic data seeder",
		Long:          "Populates a HealthBridge MongoDB database with consistent synthetic users, appointments, medications and patient histories.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "path to the .env file")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed, overrides SEED_RANDOM (0 seeds from the clock)")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "answer yes to every additive prompt")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		patientsCmd(opts),
		doctorsCmd(opts),
		nursesCmd(opts),
		medicationsCmd(opts),
		appointmentsCmd(opts),
		recordsCmd(opts),
		fixPasswordsCmd(opts),
		countsCmd(opts),
		cleanupCmd(opts),
	)
	return root
}

// exitCode maps a command error to the process status. An operator saying
// no is not a failure.
func exitCode(err error) int {
	if err == nil || apperrors.IsCancelled(err) || errors.Is(err, context.Canceled) {
		return 0
	}
	return 1
}
