package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwalitptl/healthbridge-seeder/internal/report"
	"github.com/jwalitptl/healthbridge-seeder/internal/service"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/appointment"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/clinician"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/medical"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/medication"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/patient"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/purge"
)

// batchSize prefers the --count flag, then the SEED_* default.
func batchSize(flag, configured int) int {
	if flag > 0 {
		return flag
	}
	return configured
}

// askedSize is batchSize for generators that ask the operator when no count
// is given. Under --yes nobody is there to ask.
func askedSize(opts *options, flag, configured int) int {
	if flag > 0 || !opts.yes {
		return flag
	}
	return configured
}

func patientsCmd(opts *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Create local patients",
		RunE: run(opts, "patients", func(ctx context.Context, a *app) (*service.Result, error) {
			creator, err := a.creator(ctx)
			if err != nil {
				return nil, err
			}
			batch, err := patient.NewService(a.deps).Generate(ctx, creator, batchSize(count, a.cfg.Batch.Patients))
			if err != nil {
				return nil, err
			}
			a.log.Info("patients created", "inserted", batch.Result.Inserted)
			return batch.Result, nil
		}),
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of patients (default SEED_PATIENTS)")
	return cmd
}

func doctorsCmd(opts *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Create international doctors",
		RunE: run(opts, "doctors", func(ctx context.Context, a *app) (*service.Result, error) {
			creator, err := a.creator(ctx)
			if err != nil {
				return nil, err
			}
			batch, err := clinician.NewService(a.deps).Doctors(ctx, creator, batchSize(count, a.cfg.Batch.Doctors))
			if err != nil {
				return nil, err
			}
			a.log.Info("international doctors created", "inserted", batch.Result.Inserted)
			return batch.Result, nil
		}),
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of doctors (default SEED_DOCTORS)")
	return cmd
}

func nursesCmd(opts *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "nurses",
		Short: "Create nurses",
		RunE: run(opts, "nurses", func(ctx context.Context, a *app) (*service.Result, error) {
			creator, err := a.creator(ctx)
			if err != nil {
				return nil, err
			}
			batch, err := clinician.NewService(a.deps).Nurses(ctx, creator, batchSize(count, a.cfg.Batch.Nurses))
			if err != nil {
				return nil, err
			}
			a.log.Info("nurses created", "inserted", batch.Result.Inserted)
			return batch.Result, nil
		}),
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of nurses (default SEED_NURSES)")
	return cmd
}

func medicationsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "medications",
		Short: "Insert the medication catalog, skipping names already stored",
		RunE: run(opts, "medications", func(ctx context.Context, a *app) (*service.Result, error) {
			creator, err := a.creator(ctx)
			if err != nil {
				return nil, err
			}
			batch, err := medication.NewService(a.deps).Generate(ctx, creator)
			if err != nil {
				return nil, err
			}
			a.log.Info("medications processed", "inserted", batch.Result.Inserted, "skipped", batch.Result.Skipped)
			return batch.Result, nil
		}),
	}
}

func appointmentsCmd(opts *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Book appointments between existing doctors and patients",
		RunE: run(opts, "appointments", func(ctx context.Context, a *app) (*service.Result, error) {
			creator, err := a.creator(ctx)
			if err != nil {
				return nil, err
			}
			n := askedSize(opts, count, a.cfg.Batch.Appointments)
			batch, err := appointment.NewService(a.deps).Generate(ctx, creator, n)
			if err != nil {
				return nil, err
			}
			report.Appointments(batch.Appointments).Log(a.log)
			return batch.Result, nil
		}),
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of appointments to draw (asks when unset)")
	return cmd
}

func recordsCmd(opts *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Write patient histories for completed appointments",
		RunE: run(opts, "records", func(ctx context.Context, a *app) (*service.Result, error) {
			creator, err := a.creator(ctx)
			if err != nil {
				return nil, err
			}
			n := askedSize(opts, count, a.cfg.Batch.Records)
			batch, err := medical.NewService(a.deps).Generate(ctx, creator, n)
			if err != nil {
				return nil, err
			}
			report.Histories(batch.Histories).Log(a.log)
			return batch.Result, nil
		}),
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of appointments to document (asks when unset)")
	return cmd
}

func fixPasswordsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fix-passwords",
		Short: "Replace plaintext seed passwords with bcrypt hashes",
		RunE: run(opts, "fix-passwords", func(ctx context.Context, a *app) (*service.Result, error) {
			modified, err := a.users().FixPasswords(ctx)
			if err != nil {
				return nil, err
			}
			result := service.NewResult("password")
			result.Inserted = int(modified)
			return result, nil
		}),
	}
}

func countsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Show document counts for every seeded collection",
		RunE: run(opts, "counts", func(ctx context.Context, a *app) (*service.Result, error) {
			counts, err := report.Counts(ctx, a.store)
			if err != nil {
				return nil, err
			}
			report.LogCounts(a.log, counts)
			return nil, nil
		}),
	}
}

func cleanupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Interactively delete seeded data by scope",
		Long:  "Walks a numbered menu of deletion scopes. Every scope asks for confirmation; deleting all data asks twice. Admin users are never deleted.",
		RunE: run(opts, "cleanup", func(ctx context.Context, a *app) (*service.Result, error) {
			menu := purge.NewMenu(a.store, a.console, os.Stdout, a.log, a.metrics)
			return nil, menu.Run(ctx)
		}),
	}
}
