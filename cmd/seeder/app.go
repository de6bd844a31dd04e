package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/config"
	"github.com/jwalitptl/healthbridge-seeder/internal/prompt"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository/mongo"
	"github.com/jwalitptl/healthbridge-seeder/internal/service"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/event"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/user"
	apperrors "github.com/jwalitptl/healthbridge-seeder/pkg/errors"
	"github.com/jwalitptl/healthbridge-seeder/pkg/logger"
	"github.com/jwalitptl/healthbridge-seeder/pkg/messaging"
	"github.com/jwalitptl/healthbridge-seeder/pkg/messaging/redis"
	"github.com/jwalitptl/healthbridge-seeder/pkg/metrics"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
	"github.com/jwalitptl/healthbridge-seeder/pkg/security"
	"github.com/jwalitptl/healthbridge-seeder/pkg/validator"
)

const (
	metricsNamespace = "seeder"
	metricsJob       = "healthbridge_seeder"
	shutdownTimeout  = 5 * time.Second
)

// app is everything one command run needs, built from config and flags.
type app struct {
	cfg     *config.Config
	runID   string
	log     *logger.Logger
	metrics *metrics.Metrics
	store   *mongo.Store
	console *prompt.Console
	deps    *service.Deps
	broker  messaging.Broker
	events  *event.EventService
}

func newApp(ctx context.Context, opts *options) (*app, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if opts.verbose {
		level = logger.DebugLevel
	}
	runID := uuid.NewString()
	log := logger.NewLogger(&logger.Config{Level: level, Output: os.Stderr}).With("run_id", runID)

	m := metrics.New(metricsNamespace)

	store, err := mongo.NewStore(ctx, mongo.Config{
		URI:            cfg.Database.URI,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	}, m)
	if err != nil {
		return nil, apperrors.NewConnection("MongoDB", err)
	}
	log.Info("connected to MongoDB", "database", store.DatabaseName())

	console := prompt.NewConsole(os.Stdin, os.Stdout)
	var prompter prompt.Prompter = console
	if opts.yes {
		prompter = prompt.NewAutoConfirm(console)
	}

	a := &app{
		cfg:     cfg,
		runID:   runID,
		log:     log,
		metrics: m,
		store:   store,
		console: console,
		broker:  messaging.NopBroker{},
		deps: &service.Deps{
			Store:     store,
			Prompter:  prompter,
			Logger:    log,
			Metrics:   m,
			Validator: validator.New(),
			Random:    random.New(cfg.Seed),
			Now:       time.Now(),
		},
	}

	if url := cfg.Telemetry.RedisURL; url != "" {
		broker, err := redis.NewRedisBroker(ctx, redis.DefaultConfig(url), log.Zerolog(), m)
		if err != nil {
			log.Error(err, "run events disabled")
		} else {
			a.broker = broker
		}
	}
	a.events = event.NewEventService(messaging.NewBrokerAdapter(a.broker, event.Channel), log)

	return a, nil
}

// creator resolves the id stamped as createdBy on every generated record.
func (a *app) creator(ctx context.Context) (primitive.ObjectID, error) {
	return a.users().ResolveCreator(ctx)
}

func (a *app) users() *user.Service {
	return user.NewService(a.deps, security.NewBcryptHasher(security.DefaultCost))
}

// finish records the run telemetry. It never fails the run.
func (a *app) finish(ctx context.Context, command string, started time.Time, result *service.Result) {
	elapsed := time.Since(started)
	a.metrics.RunDuration.WithLabelValues(command).Observe(elapsed.Seconds())

	run := event.RunCompleted{
		RunID:      a.runID,
		Command:    command,
		DurationMs: elapsed.Milliseconds(),
	}
	if result != nil {
		run.Inserted = result.Inserted
		run.Skipped = result.Skipped
	}
	a.events.RunCompleted(ctx, run)

	if url := a.cfg.Telemetry.PushgatewayURL; url != "" {
		if err := a.metrics.Push(ctx, url, metricsJob); err != nil {
			a.log.Error(err, "failed to push run metrics", "pushgateway", url)
		}
	}
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.broker.Close(); err != nil {
		a.log.Error(err, "failed to close broker")
	}
	if err := a.store.Close(ctx); err != nil {
		a.log.Error(err, "failed to close store")
	}
}

type runFunc func(ctx context.Context, a *app) (*service.Result, error)

// run adapts fn into a cobra RunE: it builds the app, records telemetry
// and turns an operator's refusal into a clean exit.
func run(opts *options, command string, fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, opts)
		if err != nil {
			return err
		}
		defer a.close()

		started := time.Now()
		a.log.Debug("starting command", "command", command, "seed", a.cfg.Seed)

		result, err := fn(ctx, a)
		a.finish(ctx, command, started, result)

		if apperrors.IsCancelled(err) {
			a.log.Warn("operation cancelled", "reason", err.Error())
			return nil
		}
		return err
	}
}
