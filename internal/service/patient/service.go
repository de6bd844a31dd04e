package patient

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/assembler"
	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/internal/service"
	"github.com/jwalitptl/healthbridge-seeder/internal/synth"
	apperrors "github.com/jwalitptl/healthbridge-seeder/pkg/errors"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

const (
	Kind         = "patient"
	DefaultCount = 15

	MinAge       = 18
	MaxAge       = 85
	MaxAllergies = 3
)

type PatientService interface {
	Generate(ctx context.Context, creator primitive.ObjectID, count int) (*Batch, error)
}

type Service struct {
	deps *service.Deps
}

func NewService(deps *service.Deps) *Service {
	return &Service{deps: deps}
}

type Batch struct {
	Result   *service.Result
	Patients []model.Patient
}

func (s *Service) Generate(ctx context.Context, creator primitive.ObjectID, count int) (*Batch, error) {
	if count <= 0 {
		count = DefaultCount
	}

	existing, err := s.deps.Store.Users().CountDocuments(ctx, repository.ByRole(model.RolePatient))
	if err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	if existing > 0 && !s.deps.Prompter.Confirm(fmt.Sprintf("Found %d existing patients. Add %d more?", existing, count)) {
		return nil, apperrors.NewCancelled("patient generation")
	}

	result := service.NewResult(Kind)
	drafts := make([]model.Patient, count)
	for i := range drafts {
		drafts[i] = Draft(s.deps.Random, s.deps.Now)
	}
	s.deps.Generate(result, count)

	asm := assembler.New(s.deps.Validator, s.deps.Random, s.deps.Now, creator)
	ready, failed := assembler.All(asm, Kind, drafts)
	for _, err := range failed {
		s.deps.Logger.Warn("skipping invalid patient", "error", err.Error())
	}
	s.deps.Skip(result, service.ReasonInvalid, len(failed))
	if len(ready) == 0 {
		return &Batch{Result: result}, nil
	}

	ids, err := s.deps.Store.Patients().InsertMany(ctx, ready)
	if err != nil {
		return nil, fmt.Errorf("failed to insert patients: %w", err)
	}
	s.deps.Insert(result, len(ids))
	for i, p := range ready {
		s.deps.Logger.Info("added patient", "n", i+1, "name", p.FullName(), "email", p.Email)
	}
	return &Batch{Result: result, Patients: ready}, nil
}

// Draft builds one patient account with US contact details.
func Draft(src *random.Source, now time.Time) model.Patient {
	first := random.Pick(src, pools.PatientFirstNames)
	last := random.Pick(src, pools.PatientLastNames)

	return model.Patient{
		Identity: model.Identity{
			Email:     synth.Email(src, synth.PatientEmail, first, last),
			Password:  model.DefaultPassword,
			Role:      model.RolePatient,
			FirstName: first,
			LastName:  last,
		},
		Person: model.Person{
			DateOfBirth: synth.BirthDate(src, now, MinAge, MaxAge),
			Gender:      random.Pick(src, pools.PatientGenders),
			Phone:       synth.USPhone(src),
			Address:     synth.USAddress(src),
			Location:    fmt.Sprintf("%s, %s", random.Pick(src, pools.USCities), random.Pick(src, pools.USStates)),
			Active:      true,
		},
		MedicalRecordNumber: synth.MedicalRecordNumber(src),
		EmergencyContact:    synth.EmergencyContact(src),
		BloodType:           random.Pick(src, pools.BloodTypes),
		Allergies:           random.Sample(src, pools.Allergies, random.Between(src, 0, MaxAllergies)),
	}
}
