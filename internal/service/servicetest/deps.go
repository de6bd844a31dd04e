// Package servicetest builds service dependencies over mocks for unit tests.
package servicetest

import (
	"time"

	"github.com/jwalitptl/healthbridge-seeder/internal/prompt"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository/mocks"
	"github.com/jwalitptl/healthbridge-seeder/internal/service"
	"github.com/jwalitptl/healthbridge-seeder/pkg/logger"
	"github.com/jwalitptl/healthbridge-seeder/pkg/metrics"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
	"github.com/jwalitptl/healthbridge-seeder/pkg/validator"
)

// Now is the fixed clock used by service tests.
var Now = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

// Deps returns deps over a fresh mock store, seeded randomness and a scripted prompter.
func Deps(answers ...string) (*service.Deps, *mocks.MockStore, *prompt.Scripted) {
	store := mocks.NewMockStore()
	p := prompt.NewScripted(answers...)
	return &service.Deps{
		Store:     store,
		Prompter:  p,
		Logger:    logger.Nop(),
		Metrics:   metrics.New("seeder_test"),
		Validator: validator.New(),
		Random:    random.New(42),
		Now:       Now,
	}, store, p
}
