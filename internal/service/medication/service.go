package medication

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/assembler"
	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/internal/prompt"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/internal/service"
)

const Kind = "medication"

type Service struct {
	deps *service.Deps
}

func NewService(deps *service.Deps) *Service {
	return &Service{deps: deps}
}

type Batch struct {
	Result      *service.Result
	Medications []model.Medication
}

// Generate inserts the catalog entries whose name is not stored yet. Running
// it twice inserts nothing the second time.
func (s *Service) Generate(ctx context.Context, creator primitive.ObjectID) (*Batch, error) {
	meds := s.deps.Store.Medications()

	existing, err := meds.CountDocuments(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count medications: %w", err)
	}
	if existing > 0 {
		// Replacing wipes the collection, so it is asked even under auto-confirm.
		answer := s.deps.Prompter.Ask(fmt.Sprintf("Found %d existing medications. Delete them all and add new ones? (y/n): ", existing))
		if prompt.IsYes(answer) {
			deleted, err := meds.DeleteMany(ctx, nil)
			if err != nil {
				return nil, fmt.Errorf("failed to delete medications: %w", err)
			}
			s.deps.Logger.Info("deleted existing medications", "deleted", deleted)
			if s.deps.Metrics != nil {
				s.deps.Metrics.DocumentsDeleted.WithLabelValues(repository.CollectionMedications).Add(float64(deleted))
			}
		} else {
			s.deps.Logger.Info("will only add medications that don't already exist")
		}
	}

	catalog := pools.Formulary()
	result := service.NewResult(Kind)
	s.deps.Generate(result, len(catalog))

	fresh, err := s.withoutStored(ctx, catalog)
	if err != nil {
		return nil, err
	}
	s.deps.Skip(result, service.ReasonDuplicate, len(catalog)-len(fresh))

	asm := assembler.New(s.deps.Validator, s.deps.Random, s.deps.Now, creator)
	ready, failed := assembler.All(asm, Kind, fresh)
	for _, err := range failed {
		s.deps.Logger.Warn("skipping invalid medication", "error", err.Error())
	}
	s.deps.Skip(result, service.ReasonInvalid, len(failed))

	if len(ready) == 0 {
		s.deps.Logger.Info("all medications already exist, nothing added")
		return &Batch{Result: result}, nil
	}

	ids, err := meds.InsertMany(ctx, ready)
	if err != nil {
		return nil, fmt.Errorf("failed to insert medications: %w", err)
	}
	s.deps.Insert(result, len(ids))
	for i, m := range ready {
		s.deps.Logger.Info("added medication", "n", i+1, "name", m.Name)
	}
	return &Batch{Result: result, Medications: ready}, nil
}

// withoutStored drops catalog entries whose name is already in the collection
// or earlier in the catalog.
func (s *Service) withoutStored(ctx context.Context, catalog []model.Medication) ([]model.Medication, error) {
	names := make([]string, len(catalog))
	for i, m := range catalog {
		names[i] = m.Name
	}

	stored, err := s.deps.Store.Medications().Find(ctx, repository.NameIn(names))
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing medications: %w", err)
	}
	seen := make(map[string]bool, len(stored)+len(catalog))
	for _, m := range stored {
		seen[m.Name] = true
	}

	fresh := make([]model.Medication, 0, len(catalog))
	for _, m := range catalog {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		fresh = append(fresh, m)
	}
	return fresh, nil
}
