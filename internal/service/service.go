// Package service holds what the seeding services share: their dependencies
// and the per-batch result.
package service

import (
	"time"

	"github.com/jwalitptl/healthbridge-seeder/internal/prompt"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/pkg/logger"
	"github.com/jwalitptl/healthbridge-seeder/pkg/metrics"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
	"github.com/jwalitptl/healthbridge-seeder/pkg/validator"
)

// Deps is built once per command run and handed to every service.
type Deps struct {
	Store     repository.Store
	Prompter  prompt.Prompter
	Logger    *logger.Logger
	Metrics   *metrics.Metrics
	Validator validator.Validator
	Random    *random.Source
	// Now is fixed for the whole run so every record agrees on "today".
	Now time.Time
}

// Result counts what one batch did with its candidates.
type Result struct {
	Kind      string
	Generated int
	Skipped   int
	Inserted  int
}

func NewResult(kind string) *Result {
	return &Result{Kind: kind}
}

// Generate records n candidates drawn.
func (d *Deps) Generate(r *Result, n int) {
	r.Generated += n
	if d.Metrics != nil {
		d.Metrics.RecordsGenerated.WithLabelValues(r.Kind).Add(float64(n))
	}
}

// Skip records n candidates dropped for reason.
func (d *Deps) Skip(r *Result, reason string, n int) {
	if n <= 0 {
		return
	}
	r.Skipped += n
	if d.Metrics != nil {
		d.Metrics.RecordsSkipped.WithLabelValues(r.Kind, reason).Add(float64(n))
	}
}

// Insert records n documents written.
func (d *Deps) Insert(r *Result, n int) {
	r.Inserted += n
	if d.Metrics != nil {
		d.Metrics.RecordsInserted.WithLabelValues(r.Kind).Add(float64(n))
	}
}

// Skip reasons
const (
	ReasonNoFreeSlot = "no_free_slot"
	ReasonInvalid    = "invalid"
	ReasonDuplicate  = "duplicate"
	ReasonFailed     = "generation_failed"
)
