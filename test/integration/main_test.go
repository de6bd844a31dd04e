package integration_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jwalitptl/healthbridge-seeder/internal/prompt"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository/mongo"
	"github.com/jwalitptl/healthbridge-seeder/internal/service"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/purge"
	"github.com/jwalitptl/healthbridge-seeder/pkg/logger"
	"github.com/jwalitptl/healthbridge-seeder/pkg/metrics"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
	"github.com/jwalitptl/healthbridge-seeder/pkg/validator"
)

var store *mongo.Store

// TestMain connects to MONGODB_URI. Every test here wipes the non-admin
// data it finds, so only databases named "test" or ending in "_test" are used.
func TestMain(m *testing.M) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		fmt.Println("MONGODB_URI not set, skipping integration tests")
		os.Exit(0)
	}

	name, err := mongo.DatabaseName(uri)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if name != mongo.DefaultDatabase && !strings.HasSuffix(name, "_test") {
		fmt.Printf("Refusing to run against database %q, use a *_test database\n", name)
		os.Exit(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err = mongo.NewStore(ctx, mongo.Config{URI: uri}, metrics.New("seeder_it"))
	cancel()
	if err != nil {
		fmt.Printf("Error: %v\nMake sure MongoDB is reachable at %s\n", err, uri)
		os.Exit(1)
	}

	cleanup()
	code := m.Run()
	cleanup()

	_ = store.Close(context.Background())
	os.Exit(code)
}

func cleanup() {
	always := func(purge.Scope) bool { return true }
	c := purge.NewController(store, always, logger.Nop(), nil)
	if _, err := c.Run(context.Background(), purge.AllData); err != nil {
		fmt.Printf("Failed to clean up: %v\n", err)
	}
}

// newDeps answers yes to every additive question, as --yes does.
func newDeps(seed uint64) *service.Deps {
	return &service.Deps{
		Store:     store,
		Prompter:  prompt.NewAutoConfirm(prompt.NewScripted()),
		Logger:    logger.Nop(),
		Metrics:   metrics.New("seeder_it"),
		Validator: validator.New(),
		Random:    random.New(seed),
		Now:       time.Now(),
	}
}
